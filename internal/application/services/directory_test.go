package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storage-dashboard/internal/domain/file"
)

// listBackedStorage simulates the backend's file table so mutations are
// observable through subsequent list fetches.
func listBackedStorage(records file.Records) *fakeStorage {
	store := make(map[file.ID]*file.Record, len(records))
	order := make([]file.ID, 0, len(records))
	for _, r := range records {
		cp := *r
		store[r.ID] = &cp
		order = append(order, r.ID)
	}

	f := &fakeStorage{}
	f.ListByOwnerFunc = func(ctx context.Context, token string, ownerID int64) (file.Records, error) {
		out := make(file.Records, 0, len(store))
		for _, id := range order {
			if r, ok := store[id]; ok {
				cp := *r
				out = append(out, &cp)
			}
		}
		return out, nil
	}
	f.RenameFunc = func(ctx context.Context, token string, id file.ID, filename string) error {
		r, ok := store[id]
		if !ok {
			return errors.New("no such file")
		}
		r.Filename = filename
		return nil
	}
	f.DeleteFunc = func(ctx context.Context, token string, id file.ID) error {
		if _, ok := store[id]; !ok {
			return errors.New("no such file")
		}
		delete(store, id)
		return nil
	}
	return f
}

func TestDirectoryService_ListAll(t *testing.T) {
	storage := listBackedStorage(testRecords())
	ds := NewDirectoryService(zap.NewNop(), storage, newTestCounter())

	all, err := ds.ListAll(context.Background(), testSession())

	require.NoError(t, err)
	require.Len(t, all, 6)
	// backend order is preserved, no client-side sort
	assert.Equal(t, file.ID(1), all[0].ID)
	assert.Equal(t, file.ID(6), all[5].ID)
}

func TestDirectoryService_ListByCategory(t *testing.T) {
	storage := listBackedStorage(testRecords())
	ds := NewDirectoryService(zap.NewNop(), storage, newTestCounter())
	s := testSession()

	all, err := ds.ListAll(context.Background(), s)
	require.NoError(t, err)

	images, err := ds.ListByCategory(context.Background(), s, file.CategoryImages)
	require.NoError(t, err)

	// every element matches the predicate
	for _, r := range images {
		assert.True(t, strings.HasPrefix(r.MimeType, "image/"))
	}
	// and nothing matching is omitted
	want := 0
	for _, r := range all {
		if strings.HasPrefix(r.MimeType, "image/") {
			want++
			assert.True(t, images.Contains(r.ID))
		}
	}
	assert.Len(t, images, want)

	docs, err := ds.ListByCategory(context.Background(), s, file.CategoryDocuments)
	require.NoError(t, err)
	// application/* and text/* both land in documents
	assert.True(t, docs.Contains(1))
	assert.True(t, docs.Contains(3))
	assert.Len(t, docs, 2)
}

func TestDirectoryService_Counts(t *testing.T) {
	storage := listBackedStorage(testRecords())
	ds := NewDirectoryService(zap.NewNop(), storage, newTestCounter())

	counts, err := ds.Counts(context.Background(), testSession())

	require.NoError(t, err)
	assert.Equal(t, 2, counts.Documents)
	assert.Equal(t, 1, counts.Images)
	assert.Equal(t, 1, counts.Videos)
	assert.Equal(t, 1, counts.Audio)
}

func TestDirectoryService_Rename(t *testing.T) {
	t.Run("preserves the original extension and re-fetches", func(t *testing.T) {
		storage := listBackedStorage(testRecords())
		ds := NewDirectoryService(zap.NewNop(), storage, newTestCounter())
		s := testSession()

		_, err := ds.ListAll(context.Background(), s)
		require.NoError(t, err)
		listCallsBefore := storage.calls(&storage.listCalls)

		var sentName string
		inner := storage.RenameFunc
		storage.RenameFunc = func(ctx context.Context, token string, id file.ID, filename string) error {
			sentName = filename
			return inner(ctx, token, id, filename)
		}

		err = ds.Rename(context.Background(), s, 1, "annual-report")
		require.NoError(t, err)
		assert.Equal(t, "annual-report.pdf", sentName)
		// success triggers a full re-fetch rather than a local patch
		assert.Equal(t, listCallsBefore+1, storage.calls(&storage.listCalls))

		all, err := ds.ListAll(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, "annual-report.pdf", all.Find(1).Filename)
	})

	t.Run("typed extension is replaced by the original one", func(t *testing.T) {
		storage := listBackedStorage(testRecords())
		ds := NewDirectoryService(zap.NewNop(), storage, newTestCounter())
		s := testSession()

		var sentName string
		inner := storage.RenameFunc
		storage.RenameFunc = func(ctx context.Context, token string, id file.ID, filename string) error {
			sentName = filename
			return inner(ctx, token, id, filename)
		}

		require.NoError(t, ds.Rename(context.Background(), s, 3, "ideas.md"))
		assert.Equal(t, "ideas.txt", sentName)
	})

	t.Run("failure leaves local state unchanged", func(t *testing.T) {
		storage := listBackedStorage(testRecords())
		ds := NewDirectoryService(zap.NewNop(), storage, newTestCounter())
		s := testSession()

		_, err := ds.ListAll(context.Background(), s)
		require.NoError(t, err)

		storage.RenameFunc = func(ctx context.Context, token string, id file.ID, filename string) error {
			return errors.New("boom")
		}
		listCallsBefore := storage.calls(&storage.listCalls)

		err = ds.Rename(context.Background(), s, 1, "new-name")
		require.Error(t, err)
		// no re-fetch, no local patch
		assert.Equal(t, listCallsBefore, storage.calls(&storage.listCalls))

		storage.RenameFunc = nil
		all, err := ds.ListAll(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, "report.pdf", all.Find(1).Filename)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		storage := listBackedStorage(testRecords())
		ds := NewDirectoryService(zap.NewNop(), storage, newTestCounter())

		err := ds.Rename(context.Background(), testSession(), 999, "whatever")
		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}

func TestDirectoryService_Remove(t *testing.T) {
	t.Run("drops the record locally without a re-fetch", func(t *testing.T) {
		storage := listBackedStorage(testRecords())
		ds := NewDirectoryService(zap.NewNop(), storage, newTestCounter())
		s := testSession()

		_, err := ds.ListAll(context.Background(), s)
		require.NoError(t, err)
		listCallsBefore := storage.calls(&storage.listCalls)

		require.NoError(t, ds.Remove(context.Background(), s, 2))
		assert.Equal(t, listCallsBefore, storage.calls(&storage.listCalls))

		all, err := ds.ListAll(context.Background(), s)
		require.NoError(t, err)
		assert.False(t, all.Contains(2))
		// no other record is altered
		assert.Len(t, all, 5)
		assert.Equal(t, "report.pdf", all.Find(1).Filename)
	})

	t.Run("failure leaves the list untouched", func(t *testing.T) {
		storage := listBackedStorage(testRecords())
		ds := NewDirectoryService(zap.NewNop(), storage, newTestCounter())
		s := testSession()

		_, err := ds.ListAll(context.Background(), s)
		require.NoError(t, err)

		storage.DeleteFunc = func(ctx context.Context, token string, id file.ID) error {
			return errors.New("boom")
		}

		require.Error(t, ds.Remove(context.Background(), s, 2))

		storage.DeleteFunc = nil
		all, err := ds.ListAll(context.Background(), s)
		require.NoError(t, err)
		assert.True(t, all.Contains(2))
		assert.Len(t, all, 6)
	})
}
