package backend

import (
	"strings"
	"time"

	"storage-dashboard/internal/domain/file"
)

// wireTime tolerates both RFC3339 and the zone-less timestamps some backends
// emit for LocalDateTime fields.
type wireTime struct {
	time.Time
}

func (t *wireTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}

type fileRecord struct {
	ID        int64    `json:"id"`
	Filename  string   `json:"filename"`
	MimeType  string   `json:"mimeType"`
	FileSize  int64    `json:"fileSize"`
	OwnerID   int64    `json:"ownerId"`
	CreatedAt wireTime `json:"createdAt"`
}

func toDomainRecords(in []fileRecord) file.Records {
	out := make(file.Records, len(in))
	for i, r := range in {
		out[i] = &file.Record{
			ID:        file.ID(r.ID),
			Filename:  r.Filename,
			MimeType:  r.MimeType,
			FileSize:  r.FileSize,
			OwnerID:   r.OwnerID,
			CreatedAt: r.CreatedAt.Time,
		}
	}
	return out
}
