package repositories

import (
	"context"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
)

// UserReader defines read operations for users.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail expects a normalized email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// UserWriter queues user writes.
type UserWriter interface {
	SaveUser(ctx context.Context, user *domain.User) error
	UpdateUser(ctx context.Context, user *domain.User) error
}

// UserRepository combines user reads and writes.
type UserRepository interface {
	UserReader
	UserWriter
}

// RefreshTokenRepository stores hashed refresh tokens.
type RefreshTokenRepository interface {
	// FindRefreshToken looks a token up by its hash.
	FindRefreshToken(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	SaveRefreshToken(ctx context.Context, token *domain.RefreshToken) error
	// UpdateRefreshToken only touches a token that is not revoked yet. Losing a race
	// to another revocation surfaces as ErrNotFound from SaveChanges.
	UpdateRefreshToken(ctx context.Context, token *domain.RefreshToken) error
}
