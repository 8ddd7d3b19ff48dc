package services

import (
	"context"
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"storage-dashboard/internal/application/ports"
	"storage-dashboard/internal/domain/file"
	"storage-dashboard/internal/domain/session"
)

type fakeStorage struct {
	mu            sync.Mutex
	meCalls       int
	listCalls     int
	uploadCalls   int
	renameCalls   int
	deleteCalls   int
	viewCalls     int
	downloadCalls int

	LoginFunc        func(ctx context.Context, email, password string) (string, error)
	RegisterFunc     func(ctx context.Context, in ports.RegisterInput) error
	MeFunc           func(ctx context.Context, token string) (*session.Profile, error)
	ListByOwnerFunc  func(ctx context.Context, token string, ownerID int64) (file.Records, error)
	UploadFunc       func(ctx context.Context, token string, ownerID int64, in ports.UploadInput) error
	RenameFunc       func(ctx context.Context, token string, id file.ID, filename string) error
	DeleteFunc       func(ctx context.Context, token string, id file.ID) error
	ViewLinkFunc     func(ctx context.Context, token string, id file.ID) (string, error)
	DownloadLinkFunc func(ctx context.Context, token string, id file.ID) (*file.DownloadLink, error)
}

func (f *fakeStorage) count(n *int) {
	f.mu.Lock()
	*n++
	f.mu.Unlock()
}

func (f *fakeStorage) calls(n *int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *n
}

func (f *fakeStorage) Login(ctx context.Context, email, password string) (string, error) {
	if f.LoginFunc == nil {
		return "", errors.New("not used")
	}
	return f.LoginFunc(ctx, email, password)
}

func (f *fakeStorage) Register(ctx context.Context, in ports.RegisterInput) error {
	if f.RegisterFunc == nil {
		return errors.New("not used")
	}
	return f.RegisterFunc(ctx, in)
}

func (f *fakeStorage) Me(ctx context.Context, token string) (*session.Profile, error) {
	f.count(&f.meCalls)
	if f.MeFunc == nil {
		return nil, errors.New("not used")
	}
	return f.MeFunc(ctx, token)
}

func (f *fakeStorage) ListByOwner(ctx context.Context, token string, ownerID int64) (file.Records, error) {
	f.count(&f.listCalls)
	if f.ListByOwnerFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ListByOwnerFunc(ctx, token, ownerID)
}

func (f *fakeStorage) Upload(ctx context.Context, token string, ownerID int64, in ports.UploadInput) error {
	f.count(&f.uploadCalls)
	if f.UploadFunc == nil {
		return errors.New("not used")
	}
	return f.UploadFunc(ctx, token, ownerID, in)
}

func (f *fakeStorage) Rename(ctx context.Context, token string, id file.ID, filename string) error {
	f.count(&f.renameCalls)
	if f.RenameFunc == nil {
		return errors.New("not used")
	}
	return f.RenameFunc(ctx, token, id, filename)
}

func (f *fakeStorage) Delete(ctx context.Context, token string, id file.ID) error {
	f.count(&f.deleteCalls)
	if f.DeleteFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFunc(ctx, token, id)
}

func (f *fakeStorage) ViewLink(ctx context.Context, token string, id file.ID) (string, error) {
	f.count(&f.viewCalls)
	if f.ViewLinkFunc == nil {
		return "", errors.New("not used")
	}
	return f.ViewLinkFunc(ctx, token, id)
}

func (f *fakeStorage) DownloadLink(ctx context.Context, token string, id file.ID) (*file.DownloadLink, error) {
	f.count(&f.downloadCalls)
	if f.DownloadLinkFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DownloadLinkFunc(ctx, token, id)
}

type fakeStore struct {
	LoadFunc  func() (*session.Persisted, error)
	SaveFunc  func(p session.Persisted) error
	ClearFunc func() error

	saved   []session.Persisted
	cleared int
}

func (f *fakeStore) Load() (*session.Persisted, error) {
	if f.LoadFunc == nil {
		return nil, nil
	}
	return f.LoadFunc()
}

func (f *fakeStore) Save(p session.Persisted) error {
	f.saved = append(f.saved, p)
	if f.SaveFunc == nil {
		return nil
	}
	return f.SaveFunc(p)
}

func (f *fakeStore) Clear() error {
	f.cleared++
	if f.ClearFunc == nil {
		return nil
	}
	return f.ClearFunc()
}

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"})
}

func testSession() *session.Session {
	return &session.Session{
		Token:    "test-token",
		UserID:   42,
		Email:    "user@example.com",
		Username: "user",
	}
}

func testRecords() file.Records {
	return file.Records{
		{ID: 1, Filename: "report.pdf", MimeType: "application/pdf", FileSize: 2048, OwnerID: 42},
		{ID: 2, Filename: "holiday.png", MimeType: "image/png", FileSize: 4096, OwnerID: 42},
		{ID: 3, Filename: "notes.txt", MimeType: "text/plain", FileSize: 128, OwnerID: 42},
		{ID: 4, Filename: "song.mp3", MimeType: "audio/mpeg", FileSize: 1 << 20, OwnerID: 42},
		{ID: 5, Filename: "clip.mp4", MimeType: "video/mp4", FileSize: 5 << 20, OwnerID: 42},
		{ID: 6, Filename: "mystery.bin", MimeType: "x-unknown", FileSize: 99, OwnerID: 42},
	}
}
