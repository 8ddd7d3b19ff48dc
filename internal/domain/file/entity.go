package file

import (
	"time"
)

type (
	ID int64

	// Record is backend-owned metadata for one uploaded file. The dashboard
	// holds a read-mostly cached copy and never mutates fields locally.
	Record struct {
		ID        ID
		Filename  string
		MimeType  string
		FileSize  int64
		OwnerID   int64
		CreatedAt time.Time
	}
	Records []*Record

	// DownloadLink is a short-lived URL pair returned by the backend for a
	// single download action. Never cached.
	DownloadLink struct {
		URL      string
		Filename string
	}
)

// Contains reports whether the set holds a record with the given id.
func (rs Records) Contains(id ID) bool {
	for _, r := range rs {
		if r != nil && r.ID == id {
			return true
		}
	}
	return false
}

// Find returns the record with the given id, or nil.
func (rs Records) Find(id ID) *Record {
	for _, r := range rs {
		if r != nil && r.ID == id {
			return r
		}
	}
	return nil
}
