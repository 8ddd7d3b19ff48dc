package file

import (
	"time"
)

type (
	File struct {
		ID        int64     `json:"id"`
		Filename  string    `json:"filename"`
		MimeType  string    `json:"mime_type"`
		FileSize  int64     `json:"file_size"`
		SizeLabel string    `json:"size_label"`
		TypeLabel string    `json:"type_label"`
		Category  string    `json:"category"`
		CreatedAt time.Time `json:"created_at"`
	}
	Files        []File
	ResponseData struct {
		Data Files `json:"data"`
	}

	Preview struct {
		Available bool   `json:"available"`
		Mode      string `json:"mode"`
		URL       string `json:"url,omitempty"`
		MimeType  string `json:"mime_type"`
		Filename  string `json:"filename"`
	}

	Download struct {
		Available   bool   `json:"available"`
		DownloadURL string `json:"download_url,omitempty"`
		Filename    string `json:"filename,omitempty"`
	}
)
