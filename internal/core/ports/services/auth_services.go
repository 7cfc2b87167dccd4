package services

import (
	"context"

	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthSvcFacade covers registration and the token lifecycle.
type AuthSvcFacade interface {
	// Register creates the user and seeds the default categories in one transaction.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req dto.LoginRequest, ip string) (*dto.AuthResponse, error)

	// Refresh rotates a refresh token. The presented token is revoked.
	Refresh(ctx context.Context, refreshToken string, ip string) (*dto.AuthResponse, error)

	// Logout revokes the refresh token. Unknown or already revoked tokens are not an error.
	Logout(ctx context.Context, refreshToken string, ip string) error

	// LoginWithGoogle signs a user in from a validated Google ID token, registering them on first use.
	LoginWithGoogle(ctx context.Context, idToken string, ip string) (*dto.AuthResponse, error)
}

// GoogleOAuthSvcFacade wraps the Google side of the OAuth flow.
type GoogleOAuthSvcFacade interface {
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
