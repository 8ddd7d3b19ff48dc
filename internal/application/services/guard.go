package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"storage-dashboard/internal/application/ports"
	"storage-dashboard/internal/domain/session"
)

var (
	// ErrNoSession means nothing usable is stored locally. The guard makes
	// no network call in this case.
	ErrNoSession = errors.New("no stored session")
	// ErrSessionRejected means the backend declined the stored token. The
	// token is not purged; only an explicit logout clears it.
	ErrSessionRejected = errors.New("session rejected by storage backend")
)

type GuardService struct {
	logger  *zap.Logger
	store   ports.SessionStore
	storage ports.StorageBackend
}

func NewGuardService(
	logger *zap.Logger,
	store ports.SessionStore,
	storage ports.StorageBackend,
) ports.Guard {
	return &GuardService{
		logger:  logger,
		store:   store,
		storage: storage,
	}
}

// Check gates a protected view: load the persisted token+email, then ask the
// backend who the token belongs to. It runs in full on every protected
// request; there is no cross-view session cache.
func (gs *GuardService) Check(ctx context.Context) (*session.Session, error) {
	p, err := gs.store.Load()
	if err != nil {
		gs.logger.Error("session store read error", zap.Error(err))
		return nil, ErrNoSession
	}
	if p == nil || p.Token == "" || p.Email == "" {
		return nil, ErrNoSession
	}

	profile, err := gs.storage.Me(ctx, p.Token)
	if err != nil {
		gs.logger.Warn("who-am-i check failed", zap.Error(err))
		return nil, ErrSessionRejected
	}

	return &session.Session{
		Token:    p.Token,
		UserID:   profile.ID,
		Email:    p.Email,
		Username: profile.Username,
	}, nil
}
