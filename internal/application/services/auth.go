package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"storage-dashboard/internal/application/ports"
	"storage-dashboard/internal/domain/session"
	"storage-dashboard/internal/infrastructure/backend"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	logger   *zap.Logger
	storage  ports.StorageBackend
	store    ports.SessionStore
	mCounter *prometheus.CounterVec
}

func NewAuthService(
	logger *zap.Logger,
	storage ports.StorageBackend,
	store ports.SessionStore,
	mCounter *prometheus.CounterVec,
) ports.AuthService {
	return &AuthService{
		logger:   logger,
		storage:  storage,
		store:    store,
		mCounter: mCounter,
	}
}

// Login exchanges credentials for a bearer token and persists it alongside
// the email. The username is filled in later by the guard's who-am-i call.
func (as *AuthService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	token, err := as.storage.Login(ctx, email, password)
	if err != nil {
		if backend.IsAuthFailure(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	p := session.Persisted{Token: token, Email: email}
	if err = as.store.Save(p); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	as.mCounter.WithLabelValues("logins_total").Inc()

	return &session.Session{Token: token, Email: email}, nil
}

func (as *AuthService) Register(ctx context.Context, in ports.RegisterInput) error {
	if err := as.storage.Register(ctx, in); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	as.mCounter.WithLabelValues("registrations_total").Inc()

	return nil
}

// Logout tears the session down: this is the only place the persisted token
// is cleared.
func (as *AuthService) Logout() error {
	if err := as.store.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
