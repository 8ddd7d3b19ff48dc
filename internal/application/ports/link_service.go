package ports

import (
	"context"

	"storage-dashboard/internal/domain/file"
	"storage-dashboard/internal/domain/session"
)

// LinkService resolves ephemeral per-action URLs. Each call is a fresh round
// trip, even for the same file back to back. When the backend declines, the
// resolver yields an empty result rather than an error so the view can show
// its "preview unavailable" state.
type LinkService interface {
	ResolveViewURL(ctx context.Context, s *session.Session, id file.ID) string
	ResolveDownloadURL(ctx context.Context, s *session.Session, id file.ID) *file.DownloadLink
}
