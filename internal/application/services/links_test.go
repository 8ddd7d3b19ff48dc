package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storage-dashboard/internal/domain/file"
)

func TestLinkResolver_ResolveViewURL(t *testing.T) {
	t.Run("every call is a fresh round trip", func(t *testing.T) {
		storage := &fakeStorage{
			ViewLinkFunc: func(ctx context.Context, token string, id file.ID) (string, error) {
				return "https://signed.example/view", nil
			},
		}
		lr := NewLinkResolver(zap.NewNop(), storage, newTestCounter())
		s := testSession()

		assert.Equal(t, "https://signed.example/view", lr.ResolveViewURL(context.Background(), s, 1))
		assert.Equal(t, "https://signed.example/view", lr.ResolveViewURL(context.Background(), s, 1))
		// same file, two observable round trips: nothing is cached
		assert.Equal(t, 2, storage.calls(&storage.viewCalls))
	})

	t.Run("a declined link resolves empty, not an error", func(t *testing.T) {
		storage := &fakeStorage{
			ViewLinkFunc: func(ctx context.Context, token string, id file.ID) (string, error) {
				return "", errors.New("backend says no")
			},
		}
		lr := NewLinkResolver(zap.NewNop(), storage, newTestCounter())

		assert.Equal(t, "", lr.ResolveViewURL(context.Background(), testSession(), 1))
	})
}

func TestLinkResolver_ResolveDownloadURL(t *testing.T) {
	t.Run("resolves url and filename per call", func(t *testing.T) {
		storage := &fakeStorage{
			DownloadLinkFunc: func(ctx context.Context, token string, id file.ID) (*file.DownloadLink, error) {
				return &file.DownloadLink{URL: "https://signed.example/dl", Filename: "report.pdf"}, nil
			},
		}
		lr := NewLinkResolver(zap.NewNop(), storage, newTestCounter())
		s := testSession()

		link := lr.ResolveDownloadURL(context.Background(), s, 1)
		require.NotNil(t, link)
		assert.Equal(t, "report.pdf", link.Filename)

		lr.ResolveDownloadURL(context.Background(), s, 1)
		assert.Equal(t, 2, storage.calls(&storage.downloadCalls))
	})

	t.Run("failure resolves to nil", func(t *testing.T) {
		storage := &fakeStorage{
			DownloadLinkFunc: func(ctx context.Context, token string, id file.ID) (*file.DownloadLink, error) {
				return nil, errors.New("boom")
			},
		}
		lr := NewLinkResolver(zap.NewNop(), storage, newTestCounter())

		assert.Nil(t, lr.ResolveDownloadURL(context.Background(), testSession(), 1))
	})
}
