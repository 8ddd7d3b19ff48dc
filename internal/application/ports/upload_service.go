package ports

import (
	"context"

	"storage-dashboard/internal/domain/session"
)

type UploadResult struct {
	Requested int
	Uploaded  int
}

// UploadService pushes a batch of local files to the backend, one request
// per file, strictly in order. A second invocation while one is in flight is
// rejected, whichever control it came from.
type UploadService interface {
	Upload(ctx context.Context, s *session.Session, batch []UploadInput) (*UploadResult, error)
}
