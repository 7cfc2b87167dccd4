package models

import "time"

// User is a row of the users table.
type User struct {
	UserID            string     `db:"user_id"`
	Email             string     `db:"email"`
	PasswordHash      string     `db:"password_hash"`
	FirstName         string     `db:"first_name"`
	LastName          string     `db:"last_name"`
	PhoneNumber       *string    `db:"phone_number"`
	DateOfBirth       *time.Time `db:"date_of_birth"`
	PreferredCurrency string     `db:"preferred_currency"`
	IsEmailVerified   bool       `db:"is_email_verified"`
	LastLoginAt       *time.Time `db:"last_login_at"`
	AuditFields
}

// RefreshToken is a row of the refresh_tokens table. Token holds the SHA-256 hash.
type RefreshToken struct {
	RefreshTokenID  string     `db:"refresh_token_id"`
	UserID          string     `db:"user_id"`
	Token           string     `db:"token"`
	ExpiresAt       time.Time  `db:"expires_at"`
	CreatedByIP     *string    `db:"created_by_ip"`
	IsRevoked       bool       `db:"is_revoked"`
	RevokedAt       *time.Time `db:"revoked_at"`
	RevokedByIP     *string    `db:"revoked_by_ip"`
	ReplacedByToken *string    `db:"replaced_by_token"`
	AuditFields
}
