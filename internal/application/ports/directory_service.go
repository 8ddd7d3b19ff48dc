package ports

import (
	"context"

	"storage-dashboard/internal/domain/file"
	"storage-dashboard/internal/domain/session"
)

// DirectoryService owns the in-memory file list for the signed-in user.
// The list is always replaced wholesale on refresh, never merged.
type DirectoryService interface {
	ListAll(ctx context.Context, s *session.Session) (file.Records, error)
	ListByCategory(ctx context.Context, s *session.Session, c file.Category) (file.Records, error)
	Counts(ctx context.Context, s *session.Session) (file.CategoryCounts, error)
	Refresh(ctx context.Context, s *session.Session) error
	Rename(ctx context.Context, s *session.Session, id file.ID, newName string) error
	Remove(ctx context.Context, s *session.Session, id file.ID) error
}
