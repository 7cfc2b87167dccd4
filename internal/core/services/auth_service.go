package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/apperrors"
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
	"github.com/SscSPs/cuzdan_backend/internal/platform/config"
	"github.com/SscSPs/cuzdan_backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const tokenTypeBearer = "Bearer"

// oauthPasswordBytes sizes the random password given to accounts created through Google.
const oauthPasswordBytes = 32

// authService implements AuthSvcFacade.
type authService struct {
	BaseService
	uowFactory portsrepo.UnitOfWorkFactory
	seeder     portssvc.CategorySeeder
	google     portssvc.GoogleOAuthSvcFacade

	jwtSecret  string
	jwtIssuer  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// AuthServiceOption is a functional option for configuring the auth service
type AuthServiceOption func(*authService)

// WithGoogleOAuth enables Google sign-in.
func WithGoogleOAuth(google portssvc.GoogleOAuthSvcFacade) AuthServiceOption {
	return func(s *authService) {
		s.google = google
	}
}

// WithAuthClock replaces time.Now, used for token expiry checks.
func WithAuthClock(now func() time.Time) AuthServiceOption {
	return func(s *authService) {
		s.now = now
	}
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, uowFactory portsrepo.UnitOfWorkFactory, seeder portssvc.CategorySeeder, options ...AuthServiceOption) portssvc.AuthSvcFacade {
	svc := &authService{
		uowFactory: uowFactory,
		seeder:     seeder,
		jwtSecret:  cfg.JWTSecret,
		jwtIssuer:  cfg.JWTIssuer,
		accessTTL:  cfg.JWTExpiryDuration,
		refreshTTL: cfg.RefreshTokenExpiryDuration,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	var preferred domain.Currency
	if req.PreferredCurrency != "" {
		c, err := parseCurrency(req.PreferredCurrency)
		if err != nil {
			return nil, err
		}
		preferred = c
	}

	hash, err := utils.HashPassword(req.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: password must be at most 72 bytes", apperrors.ErrValidation)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(req.Email, hash, req.FirstName, req.LastName, preferred)
	user.PhoneNumber = req.PhoneNumber

	if err := s.createUser(ctx, s.uowFactory.New(), user); err != nil {
		s.logUnexpected(ctx, err, "Failed to register user", slog.String("email", user.Email))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return user, nil
}

// createUser inserts the user and the starter categories atomically.
func (s *authService) createUser(ctx context.Context, uow portsrepo.UnitOfWork, user *domain.User) error {
	exists, err := uow.Users().EmailExists(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	return runInTransaction(ctx, uow, func() error {
		if err := uow.Users().SaveUser(ctx, user); err != nil {
			return err
		}
		if err := s.seeder.SeedDefaultCategoriesForUser(ctx, uow, user.UserID); err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
		return nil
	})
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest, ip string) (*dto.AuthResponse, error) {
	uow := s.uowFactory.New()

	user, err := uow.Users().FindUserByEmail(ctx, domain.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to load user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	return s.signIn(ctx, uow, user, ip)
}

// signIn records the login and issues a fresh token pair.
func (s *authService) signIn(ctx context.Context, uow portsrepo.UnitOfWork, user *domain.User, ip string) (*dto.AuthResponse, error) {
	resp, token, err := s.issueTokens(user, ip)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue tokens", slog.String("user_id", user.UserID))
		return nil, err
	}

	user.RecordLogin()
	if err := uow.Users().UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.RefreshTokens().SaveRefreshToken(ctx, token); err != nil {
		return nil, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		s.LogError(ctx, err, "Failed to persist login", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User signed in", slog.String("user_id", user.UserID))
	resp.User = dto.ToUserResponse(user)
	return resp, nil
}

// issueTokens creates an access token and a refresh token. Only the refresh token's hash
// is kept on the returned domain object.
func (s *authService) issueTokens(user *domain.User, ip string) (*dto.AuthResponse, *domain.RefreshToken, error) {
	accessToken, accessExpiry, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.accessTTL, s.jwtIssuer)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	rawRefresh, hash, err := utils.NewRefreshToken()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshExpiry := s.now().Add(s.refreshTTL)

	resp := &dto.AuthResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiry,
		RefreshToken:          rawRefresh,
		RefreshTokenExpiresAt: refreshExpiry.UTC(),
		TokenType:             tokenTypeBearer,
	}
	return resp, domain.NewRefreshToken(user.UserID, hash, refreshExpiry, ip), nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string, ip string) (*dto.AuthResponse, error) {
	uow := s.uowFactory.New()

	current, err := uow.RefreshTokens().FindRefreshToken(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown refresh token", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to load refresh token")
		return nil, err
	}
	now := s.now()
	if current.IsExpired(now) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, apperrors.ErrRefreshTokenExpired)
	}
	if !current.IsActive(now) {
		s.LogInfo(ctx, "Revoked refresh token presented", slog.String("user_id", current.UserID))
		return nil, fmt.Errorf("%w: refresh token revoked", apperrors.ErrUnauthorized)
	}

	user, err := uow.Users().FindUserByID(ctx, current.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	resp, next, err := s.issueTokens(user, ip)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue tokens", slog.String("user_id", user.UserID))
		return nil, err
	}
	current.Revoke(ip, next.Token)

	if err := uow.RefreshTokens().UpdateRefreshToken(ctx, current); err != nil {
		return nil, err
	}
	if err := uow.RefreshTokens().SaveRefreshToken(ctx, next); err != nil {
		return nil, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Refresh token already rotated", slog.String("user_id", user.UserID))
			return nil, fmt.Errorf("%w: refresh token revoked", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to rotate refresh token", slog.String("user_id", user.UserID))
		return nil, err
	}

	resp.User = dto.ToUserResponse(user)
	return resp, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string, ip string) error {
	uow := s.uowFactory.New()

	token, err := uow.RefreshTokens().FindRefreshToken(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "Failed to load refresh token")
		return err
	}
	if token.IsRevoked {
		return nil
	}

	token.Revoke(ip, "")
	if err := uow.RefreshTokens().UpdateRefreshToken(ctx, token); err != nil {
		return err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "Failed to revoke refresh token", slog.String("user_id", token.UserID))
		return err
	}
	s.LogInfo(ctx, "User signed out", slog.String("user_id", token.UserID))
	return nil
}

func (s *authService) LoginWithGoogle(ctx context.Context, idToken string, ip string) (*dto.AuthResponse, error) {
	if s.google == nil {
		return nil, fmt.Errorf("%w: google sign-in is not configured", apperrors.ErrUnauthorized)
	}

	payload, err := s.google.ValidateGoogleIDToken(ctx, idToken)
	if err != nil {
		s.LogInfo(ctx, "Google ID token rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: invalid google id token", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: google token carries no email", apperrors.ErrUnauthorized)
	}
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	givenName, _ := payload.Claims["given_name"].(string)
	familyName, _ := payload.Claims["family_name"].(string)

	uow := s.uowFactory.New()
	user, err := uow.Users().FindUserByEmail(ctx, domain.NormalizeEmail(email))
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrNotFound):
		user, err = s.registerFromGoogle(ctx, uow, email, givenName, familyName)
		if err != nil {
			s.logUnexpected(ctx, err, "Failed to register Google user")
			return nil, err
		}
	default:
		s.LogError(ctx, err, "Failed to load user for Google sign-in")
		return nil, err
	}

	if emailVerified && !user.IsEmailVerified {
		user.VerifyEmail()
	}
	return s.signIn(ctx, s.uowFactory.New(), user, ip)
}

// registerFromGoogle creates a user whose password is random, so only Google can sign them in.
func (s *authService) registerFromGoogle(ctx context.Context, uow portsrepo.UnitOfWork, email, firstName, lastName string) (*domain.User, error) {
	password, err := utils.GenerateSecureRandomString(oauthPasswordBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(email, hash, firstName, lastName, "")
	if err := s.createUser(ctx, uow, user); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User registered through Google", slog.String("user_id", user.UserID))
	return user, nil
}
