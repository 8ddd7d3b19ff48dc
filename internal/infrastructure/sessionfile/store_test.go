package sessionfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storage-dashboard/internal/domain/session"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(zap.NewNop(), filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return s
}

func TestStore_New(t *testing.T) {
	_, err := New(zap.NewNop(), "")
	assert.Error(t, err)
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	// nothing stored yet
	p, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, p)

	want := session.Persisted{
		Token:    "tok-123",
		Email:    "user@example.com",
		Username: "user",
	}
	require.NoError(t, s.Save(want))

	p, err = s.Load()
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, want, *p)
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save(session.Persisted{Token: "tok", Email: "a@b.c"}))
	require.NoError(t, s.Clear())

	p, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, p)

	// clearing again is fine
	require.NoError(t, s.Clear())
}

func TestStore_Load_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := New(zap.NewNop(), path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err = s.Load()
	assert.Error(t, err)
}

func TestStore_Load_ExpiredTokenIsKept(t *testing.T) {
	s := newTestStore(t)

	// expired HS256 token; the store logs a hint but never purges it
	expired := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJleHAiOjE1MTYyMzkwMjJ9." +
		"4adcQq9ioYsBDDex-Lh1RhLtQXBHwp7sTW0wyAOdPFk"
	require.NoError(t, s.Save(session.Persisted{Token: expired, Email: "a@b.c"}))

	p, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, expired, p.Token)
}
