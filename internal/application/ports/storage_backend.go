package ports

import (
	"context"
	"io"

	"storage-dashboard/internal/domain/file"
	"storage-dashboard/internal/domain/session"
)

type (
	RegisterInput struct {
		Email       string
		Username    string
		Password    string
		PhoneNumber string
	}

	UploadInput struct {
		Filename string
		MimeType string
		Size     int64
		Content  io.Reader
	}
)

// StorageBackend is the remote file/auth API the dashboard consumes. Every
// call is one HTTP round trip; nothing is cached at this layer.
type StorageBackend interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	Register(ctx context.Context, in RegisterInput) error
	Me(ctx context.Context, token string) (*session.Profile, error)
	ListByOwner(ctx context.Context, token string, ownerID int64) (file.Records, error)
	Upload(ctx context.Context, token string, ownerID int64, in UploadInput) error
	Rename(ctx context.Context, token string, id file.ID, filename string) error
	Delete(ctx context.Context, token string, id file.ID) error
	ViewLink(ctx context.Context, token string, id file.ID) (string, error)
	DownloadLink(ctx context.Context, token string, id file.ID) (*file.DownloadLink, error)
}
