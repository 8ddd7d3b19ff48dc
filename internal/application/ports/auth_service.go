package ports

import (
	"context"

	"storage-dashboard/internal/domain/session"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Register(ctx context.Context, in RegisterInput) error
	Logout() error
}
