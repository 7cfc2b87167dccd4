package dto

import (
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
)

// RegisterRequest creates a user with email and password.
type RegisterRequest struct {
	Email             string `json:"email" binding:"required,email,max=255"`
	Password          string `json:"password" binding:"required,min=8,max=72"`
	FirstName         string `json:"firstName" binding:"required,max=100"`
	LastName          string `json:"lastName" binding:"required,max=100"`
	PhoneNumber       string `json:"phoneNumber" binding:"omitempty,max=32"`
	PreferredCurrency string `json:"preferredCurrency" binding:"omitempty,currency"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries the opaque refresh token for refresh and logout.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// AuthResponse is returned by every successful sign-in or refresh.
type AuthResponse struct {
	AccessToken           string       `json:"accessToken"`
	AccessTokenExpiresAt  time.Time    `json:"accessTokenExpiresAt"`
	RefreshToken          string       `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time    `json:"refreshTokenExpiresAt"`
	TokenType             string       `json:"tokenType"`
	User                  UserResponse `json:"user"`
}

// UpdateProfileRequest replaces the editable profile fields.
type UpdateProfileRequest struct {
	FirstName         string     `json:"firstName" binding:"required,max=100"`
	LastName          string     `json:"lastName" binding:"required,max=100"`
	PhoneNumber       string     `json:"phoneNumber" binding:"omitempty,max=32"`
	DateOfBirth       *time.Time `json:"dateOfBirth"`
	PreferredCurrency string     `json:"preferredCurrency" binding:"required,currency"`
}

type UserResponse struct {
	UserID            string          `json:"userID"`
	Email             string          `json:"email"`
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	FullName          string          `json:"fullName"`
	PhoneNumber       string          `json:"phoneNumber,omitempty"`
	DateOfBirth       *time.Time      `json:"dateOfBirth,omitempty"`
	PreferredCurrency domain.Currency `json:"preferredCurrency"`
	IsEmailVerified   bool            `json:"isEmailVerified"`
	LastLoginAt       *time.Time      `json:"lastLoginAt,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:            u.UserID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		FullName:          u.FullName(),
		PhoneNumber:       u.PhoneNumber,
		DateOfBirth:       u.DateOfBirth,
		PreferredCurrency: u.PreferredCurrency,
		IsEmailVerified:   u.IsEmailVerified,
		LastLoginAt:       u.LastLoginAt,
		CreatedAt:         u.CreatedAt,
	}
}
