package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"storage-dashboard/internal/application/ports"
	"storage-dashboard/internal/domain/session"
)

// ErrUploadInFlight rejects a second batch while one is running. Picker and
// drag-drop go through the same gate, so they cannot double-fire.
var ErrUploadInFlight = errors.New("an upload is already in progress")

// UploadCoordinator pushes batches to the backend one file at a time.
// Sequential on purpose: it bounds backend load and keeps partial-failure
// accounting trivial for a low-traffic personal tool.
type UploadCoordinator struct {
	logger    *zap.Logger
	storage   ports.StorageBackend
	directory ports.DirectoryService
	mCounter  *prometheus.CounterVec
	gate      *semaphore.Weighted
}

func NewUploadCoordinator(
	logger *zap.Logger,
	storage ports.StorageBackend,
	directory ports.DirectoryService,
	mCounter *prometheus.CounterVec,
) ports.UploadService {
	return &UploadCoordinator{
		logger:    logger,
		storage:   storage,
		directory: directory,
		mCounter:  mCounter,
		gate:      semaphore.NewWeighted(1),
	}
}

// Upload sends each file as an independent request, in order. A failing
// file does not roll back or skip the others: every file gets its own
// attempt and commits on its own, while the batch reports one aggregate
// failure if anything went wrong. Whatever happened, the directory is
// refreshed afterwards so visible counts reflect server truth.
func (uc *UploadCoordinator) Upload(ctx context.Context, s *session.Session, batch []ports.UploadInput) (*ports.UploadResult, error) {
	res := &ports.UploadResult{Requested: len(batch)}
	if len(batch) == 0 {
		return res, nil
	}

	if !uc.gate.TryAcquire(1) {
		return nil, ErrUploadInFlight
	}
	defer uc.gate.Release(1)

	var failures []error
	for _, in := range batch {
		if err := uc.storage.Upload(ctx, s.Token, s.UserID, in); err != nil {
			failures = append(failures, fmt.Errorf("upload %q: %w", in.Filename, err))
			continue
		}
		res.Uploaded++
	}
	uploadErr := errors.Join(failures...)

	if err := uc.directory.Refresh(ctx, s); err != nil {
		uc.logger.Error("directory refresh after upload failed", zap.Error(err))
	}

	if uploadErr != nil {
		uc.logger.Error("upload batch failed",
			zap.Int("requested", res.Requested),
			zap.Int("uploaded", res.Uploaded),
			zap.Error(uploadErr),
		)
		uc.mCounter.WithLabelValues("upload_batches_failed_total").Inc()
		return res, uploadErr
	}

	uc.mCounter.WithLabelValues("files_uploaded_total").Add(float64(res.Uploaded))

	return res, nil
}
