package sessionfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"storage-dashboard/internal/domain/session"
)

// Store keeps the session in one JSON file, the dashboard's stand-in for
// browser local storage. Written at login, read on every guard check,
// removed only at explicit logout.
type Store struct {
	logger *zap.Logger
	path   string
}

func New(logger *zap.Logger, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	return &Store{logger: logger, path: path}, nil
}

func (s *Store) Load() (*session.Persisted, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var p session.Persisted
	if err = json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}

	s.logExpiryHint(p.Token)

	return &p, nil
}

func (s *Store) Save(p session.Persisted) error {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err = os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// logExpiryHint peeks at the token's exp claim without verifying the
// signature. The token stays opaque passthrough material: an expired token
// is logged, never purged, because only the backend's answer decides whether
// the session still stands.
func (s *Store) logExpiryHint(token string) {
	if token == "" || s.logger == nil {
		return
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	if exp.Before(time.Now()) {
		s.logger.Info("stored session token is past its expiry",
			zap.Time("expired_at", exp.Time),
		)
	}
}
