package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"storage-dashboard/internal/application/ports"
	"storage-dashboard/internal/domain/file"
	"storage-dashboard/internal/domain/session"
)

// LinkResolver requests short-lived view/download URLs per user action.
// Results are never cached: previewing the same file twice is two round
// trips. A declined or failed request resolves to the empty result, and the
// caller shows its "preview unavailable" state.
type LinkResolver struct {
	logger   *zap.Logger
	storage  ports.StorageBackend
	mCounter *prometheus.CounterVec
}

func NewLinkResolver(
	logger *zap.Logger,
	storage ports.StorageBackend,
	mCounter *prometheus.CounterVec,
) ports.LinkService {
	return &LinkResolver{
		logger:   logger,
		storage:  storage,
		mCounter: mCounter,
	}
}

func (lr *LinkResolver) ResolveViewURL(ctx context.Context, s *session.Session, id file.ID) string {
	url, err := lr.storage.ViewLink(ctx, s.Token, id)
	if err != nil {
		lr.logger.Warn("view link resolution failed", zap.Int64("file_id", int64(id)), zap.Error(err))
		return ""
	}

	lr.mCounter.WithLabelValues("view_links_resolved_total").Inc()

	return url
}

func (lr *LinkResolver) ResolveDownloadURL(ctx context.Context, s *session.Session, id file.ID) *file.DownloadLink {
	link, err := lr.storage.DownloadLink(ctx, s.Token, id)
	if err != nil {
		lr.logger.Warn("download link resolution failed", zap.Int64("file_id", int64(id)), zap.Error(err))
		return nil
	}

	lr.mCounter.WithLabelValues("download_links_resolved_total").Inc()

	return link
}
