package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	"github.com/SscSPs/cuzdan_backend/internal/models"
	"github.com/SscSPs/cuzdan_backend/internal/utils/mapping"
)

const auditColumns = `created_at, updated_at, is_deleted, deleted_at`

const userColumns = `user_id, email, password_hash, first_name, last_name, phone_number, date_of_birth,
	preferred_currency, is_email_verified, last_login_at, ` + auditColumns

type pgxUserRepository struct {
	uow *unitOfWork
}

var _ portsrepo.UserRepository = (*pgxUserRepository)(nil)

func (r *pgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ` + whereLive("", "user_id = $1")
	rows, err := r.uow.conn().Query(ctx, query, userID)
	m, err := collectOne[models.User](rows, err, "user "+userID)
	if err != nil {
		return nil, err
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *pgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ` + whereLive("", "email = $1")
	rows, err := r.uow.conn().Query(ctx, query, email)
	m, err := collectOne[models.User](rows, err, "user by email")
	if err != nil {
		return nil, err
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *pgxUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users ` + whereLive("", "email = $1") + `)`
	var exists bool
	if err := r.uow.conn().QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

func (r *pgxUserRepository) SaveUser(_ context.Context, user *domain.User) error {
	m := mapping.ToModelUser(user)
	r.uow.insert("save user "+m.UserID, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		m.UserID, m.Email, m.PasswordHash, m.FirstName, m.LastName, m.PhoneNumber, m.DateOfBirth,
		m.PreferredCurrency, m.IsEmailVerified, m.LastLoginAt, m.CreatedAt, m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}

func (r *pgxUserRepository) UpdateUser(_ context.Context, user *domain.User) error {
	m := mapping.ToModelUser(user)
	r.uow.update("update user "+m.UserID, `
		UPDATE users
		SET password_hash = $2, first_name = $3, last_name = $4, phone_number = $5, date_of_birth = $6,
			preferred_currency = $7, is_email_verified = $8, last_login_at = $9, updated_at = $10,
			is_deleted = $11, deleted_at = $12
		WHERE user_id = $1 AND is_deleted = FALSE`,
		m.UserID, m.PasswordHash, m.FirstName, m.LastName, m.PhoneNumber, m.DateOfBirth,
		m.PreferredCurrency, m.IsEmailVerified, m.LastLoginAt, m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}

const refreshTokenColumns = `refresh_token_id, user_id, token, expires_at, created_by_ip, is_revoked, revoked_at,
	revoked_by_ip, replaced_by_token, ` + auditColumns

type pgxRefreshTokenRepository struct {
	uow *unitOfWork
}

var _ portsrepo.RefreshTokenRepository = (*pgxRefreshTokenRepository)(nil)

func (r *pgxRefreshTokenRepository) FindRefreshToken(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens ` + whereLive("", "token = $1")
	rows, err := r.uow.conn().Query(ctx, query, tokenHash)
	m, err := collectOne[models.RefreshToken](rows, err, "refresh token")
	if err != nil {
		return nil, err
	}
	t := mapping.ToDomainRefreshToken(*m)
	return &t, nil
}

func (r *pgxRefreshTokenRepository) SaveRefreshToken(_ context.Context, token *domain.RefreshToken) error {
	m := mapping.ToModelRefreshToken(token)
	r.uow.insert("save refresh token", `
		INSERT INTO refresh_tokens (`+refreshTokenColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.RefreshTokenID, m.UserID, m.Token, m.ExpiresAt, m.CreatedByIP, m.IsRevoked, m.RevokedAt,
		m.RevokedByIP, m.ReplacedByToken, m.CreatedAt, m.UpdatedAt, m.IsDeleted, m.DeletedAt,
	)
	return nil
}

func (r *pgxRefreshTokenRepository) UpdateRefreshToken(_ context.Context, token *domain.RefreshToken) error {
	m := mapping.ToModelRefreshToken(token)
	r.uow.update("update refresh token "+m.RefreshTokenID, `
		UPDATE refresh_tokens
		SET is_revoked = $2, revoked_at = $3, revoked_by_ip = $4, replaced_by_token = $5, updated_at = $6
		WHERE refresh_token_id = $1 AND is_revoked = FALSE`,
		m.RefreshTokenID, m.IsRevoked, m.RevokedAt, m.RevokedByIP, m.ReplacedByToken, m.UpdatedAt,
	)
	return nil
}
