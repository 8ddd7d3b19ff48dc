package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"storage-dashboard/internal/application/ports"
	"storage-dashboard/internal/domain/file"
	"storage-dashboard/internal/domain/session"
)

var ErrFileNotFound = errors.New("file not found in directory")

// DirectoryService holds the signed-in user's file list. The list is always
// replaced wholesale after a fetch, never merged, so a failed write can
// never leave it half-updated.
type DirectoryService struct {
	logger   *zap.Logger
	storage  ports.StorageBackend
	mCounter *prometheus.CounterVec

	mu      sync.Mutex
	records file.Records
}

func NewDirectoryService(
	logger *zap.Logger,
	storage ports.StorageBackend,
	mCounter *prometheus.CounterVec,
) ports.DirectoryService {
	return &DirectoryService{
		logger:   logger,
		storage:  storage,
		mCounter: mCounter,
	}
}

// Refresh fetches the full owner file set and swaps it in.
func (ds *DirectoryService) Refresh(ctx context.Context, s *session.Session) error {
	records, err := ds.storage.ListByOwner(ctx, s.Token, s.UserID)
	if err != nil {
		return fmt.Errorf("list files: %w", err)
	}

	ds.mu.Lock()
	ds.records = records
	ds.mu.Unlock()

	return nil
}

// ListAll returns the full set, ordered as the backend returned it. Every
// page view fetches fresh; the cached copy only serves mutation bookkeeping.
func (ds *DirectoryService) ListAll(ctx context.Context, s *session.Session) (file.Records, error) {
	if err := ds.Refresh(ctx, s); err != nil {
		return nil, err
	}
	return ds.snapshot(), nil
}

// ListByCategory is the same fetch filtered in memory through the shared
// classifier.
func (ds *DirectoryService) ListByCategory(ctx context.Context, s *session.Session, c file.Category) (file.Records, error) {
	all, err := ds.ListAll(ctx, s)
	if err != nil {
		return nil, err
	}
	return file.FilterByCategory(all, c), nil
}

// Counts derives the dashboard tile counters from one fetch.
func (ds *DirectoryService) Counts(ctx context.Context, s *session.Session) (file.CategoryCounts, error) {
	all, err := ds.ListAll(ctx, s)
	if err != nil {
		return file.CategoryCounts{}, err
	}
	return file.CountByCategory(all), nil
}

// Rename updates a file's name, keeping the original extension whatever the
// caller typed. On success the whole list is re-fetched rather than patched
// in place, so any server-side normalization lands locally too. On failure
// local state is untouched.
func (ds *DirectoryService) Rename(ctx context.Context, s *session.Session, id file.ID, newName string) error {
	current := ds.find(id)
	if current == nil {
		if err := ds.Refresh(ctx, s); err != nil {
			return err
		}
		if current = ds.find(id); current == nil {
			return ErrFileNotFound
		}
	}

	finalName := renameWithPreservedExt(current.Filename, newName)
	if finalName == current.Filename {
		return nil
	}

	if err := ds.storage.Rename(ctx, s.Token, id, finalName); err != nil {
		return fmt.Errorf("rename file %d: %w", id, err)
	}

	if err := ds.Refresh(ctx, s); err != nil {
		// the rename is committed server-side; the next view fetches fresh
		ds.logger.Error("refresh after rename failed", zap.Error(err))
	}

	ds.mCounter.WithLabelValues("files_renamed_total").Inc()

	return nil
}

// Remove deletes a file and drops it from the local list only after the
// server confirmed, without a full re-fetch.
func (ds *DirectoryService) Remove(ctx context.Context, s *session.Session, id file.ID) error {
	if err := ds.storage.Delete(ctx, s.Token, id); err != nil {
		return fmt.Errorf("delete file %d: %w", id, err)
	}

	ds.mu.Lock()
	kept := make(file.Records, 0, len(ds.records))
	for _, r := range ds.records {
		if r != nil && r.ID != id {
			kept = append(kept, r)
		}
	}
	ds.records = kept
	ds.mu.Unlock()

	ds.mCounter.WithLabelValues("files_deleted_total").Inc()

	return nil
}

func (ds *DirectoryService) snapshot() file.Records {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	out := make(file.Records, len(ds.records))
	copy(out, ds.records)
	return out
}

func (ds *DirectoryService) find(id file.ID) *file.Record {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.records.Find(id)
}
