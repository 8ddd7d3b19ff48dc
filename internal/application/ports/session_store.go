package ports

import (
	"storage-dashboard/internal/domain/session"
)

// SessionStore is the client-local persistent storage for the session.
// Load returns nil when nothing is stored. Clear is idempotent.
type SessionStore interface {
	Load() (*session.Persisted, error)
	Save(p session.Persisted) error
	Clear() error
}
