package auth

import (
	"context"
	"time"

	"hotelms/internal/domain"
)

// UserRepository defines the credential store operations the service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	RecordLoginFailure(ctx context.Context, id int64, attempts int, lockedUntil *time.Time) error
	ResetLoginFailures(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) error
}

// SessionRepository tracks issued tokens server-side.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByTokenID(ctx context.Context, tokenID string) (*domain.Session, error)
	Revoke(ctx context.Context, tokenID string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}
