package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/cuzdan_backend/internal/apperrors"
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/core/services"
	"github.com/SscSPs/cuzdan_backend/internal/dto"
	"github.com/SscSPs/cuzdan_backend/internal/platform/config"
	"github.com/SscSPs/cuzdan_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

type MockCategorySeeder struct {
	mock.Mock
}

func (m *MockCategorySeeder) SeedDefaultCategoriesForUser(ctx context.Context, uow portsrepo.UnitOfWork, userID string) error {
	return m.Called(ctx, uow, userID).Error(0)
}

type MockGoogleOAuth struct {
	mock.Mock
}

func (m *MockGoogleOAuth) GetGoogleLoginURL(ctx context.Context, state string) string {
	return m.Called(ctx, state).String(0)
}

func (m *MockGoogleOAuth) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuth) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

type AuthServiceTestSuite struct {
	suite.Suite
	uow     *MockUnitOfWork
	seeder  *MockCategorySeeder
	google  *MockGoogleOAuth
	clock   time.Time
	service portssvc.AuthSvcFacade
	ctx     context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.uow = newMockUnitOfWork()
	suite.seeder = new(MockCategorySeeder)
	suite.google = new(MockGoogleOAuth)
	suite.clock = time.Now()
	suite.ctx = context.Background()

	cfg := &config.Config{
		JWTSecret:                  "test-secret-with-enough-length-for-hs256",
		JWTIssuer:                  "cuzdan-test",
		JWTExpiryDuration:          15 * time.Minute,
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
	}
	suite.service = services.NewAuthService(cfg, &MockUnitOfWorkFactory{uow: suite.uow}, suite.seeder,
		services.WithGoogleOAuth(suite.google),
		services.WithAuthClock(func() time.Time { return suite.clock }),
	)
}

func (suite *AuthServiceTestSuite) registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:             "  Ayse@Example.com ",
		Password:          "correct-horse",
		FirstName:         "Ayse",
		LastName:          "Yilmaz",
		PreferredCurrency: "USD",
	}
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	suite.uow.users.On("EmailExists", suite.ctx, "ayse@example.com").Return(false, nil).Once()
	suite.uow.On("Begin", suite.ctx).Return(nil).Once()
	suite.uow.users.On("SaveUser", suite.ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()
	suite.seeder.On("SeedDefaultCategoriesForUser", suite.ctx, mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()
	suite.uow.On("Commit", suite.ctx).Return(nil).Once()

	user, err := suite.service.Register(suite.ctx, suite.registerRequest())

	suite.Require().NoError(err)
	suite.Equal("ayse@example.com", user.Email)
	suite.Equal(domain.USD, user.PreferredCurrency)
	suite.NotEqual("correct-horse", user.PasswordHash)
	suite.True(utils.CheckPasswordHash("correct-horse", user.PasswordHash))
	suite.uow.AssertExpectations(suite.T())
	suite.seeder.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_SeedFailureRollsBack() {
	suite.uow.users.On("EmailExists", suite.ctx, "ayse@example.com").Return(false, nil).Once()
	suite.uow.On("Begin", suite.ctx).Return(nil).Once()
	suite.uow.users.On("SaveUser", suite.ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()
	suite.seeder.On("SeedDefaultCategoriesForUser", suite.ctx, mock.Anything, mock.AnythingOfType("string")).
		Return(errors.New("insert failed")).Once()
	suite.uow.On("Rollback", mock.Anything).Return(nil).Once()

	user, err := suite.service.Register(suite.ctx, suite.registerRequest())

	suite.Nil(user)
	suite.ErrorContains(err, "seed categories")
	suite.uow.AssertExpectations(suite.T())
	suite.uow.AssertNotCalled(suite.T(), "Commit", mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	suite.uow.users.On("EmailExists", suite.ctx, "ayse@example.com").Return(true, nil).Once()

	_, err := suite.service.Register(suite.ctx, suite.registerRequest())

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.uow.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_MultiBytePasswordTooLong() {
	req := suite.registerRequest()
	req.Password = strings.Repeat("ğ", 72)

	_, err := suite.service.Register(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.uow.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_UnknownCurrency() {
	req := suite.registerRequest()
	req.PreferredCurrency = "XYZ"

	_, err := suite.service.Register(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, domain.ErrUnknownCurrency)
}

func (suite *AuthServiceTestSuite) storedUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return domain.NewUser("ayse@example.com", hash, "Ayse", "Yilmaz", domain.TRY)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	user := suite.storedUser("correct-horse")
	suite.uow.users.On("FindUserByEmail", suite.ctx, "ayse@example.com").Return(user, nil).Once()
	suite.uow.users.On("UpdateUser", suite.ctx, user).Return(nil).Once()
	suite.uow.tokens.On("SaveRefreshToken", suite.ctx, mock.AnythingOfType("*domain.RefreshToken")).Return(nil).Once()
	suite.uow.On("SaveChanges", suite.ctx).Return(nil).Once()

	resp, err := suite.service.Login(suite.ctx, dto.LoginRequest{Email: "Ayse@example.com", Password: "correct-horse"}, "10.0.0.1")

	suite.Require().NoError(err)
	suite.NotEmpty(resp.AccessToken)
	suite.NotEmpty(resp.RefreshToken)
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal(user.UserID, resp.User.UserID)
	suite.NotNil(user.LastLoginAt)

	claims, err := utils.ParseAndValidateJWT(resp.AccessToken, "test-secret-with-enough-length-for-hs256", "cuzdan-test")
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)

	saved := suite.uow.tokens.Calls[0].Arguments.Get(1).(*domain.RefreshToken)
	suite.Equal(utils.HashRefreshToken(resp.RefreshToken), saved.Token, "only the hash is persisted")
	suite.Equal("10.0.0.1", saved.CreatedByIP)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	user := suite.storedUser("correct-horse")
	suite.uow.users.On("FindUserByEmail", suite.ctx, "ayse@example.com").Return(user, nil).Once()

	_, err := suite.service.Login(suite.ctx, dto.LoginRequest{Email: "ayse@example.com", Password: "wrong-horse"}, "")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.uow.AssertNotCalled(suite.T(), "SaveChanges", mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	suite.uow.users.On("FindUserByEmail", suite.ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(suite.ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "x"}, "")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestRefresh_RotatesToken() {
	user := domain.NewUser("ayse@example.com", "hash", "Ayse", "Yilmaz", domain.TRY)
	raw := "presented-refresh-token"
	current := domain.NewRefreshToken(user.UserID, utils.HashRefreshToken(raw), suite.clock.Add(time.Hour), "10.0.0.1")

	suite.uow.tokens.On("FindRefreshToken", suite.ctx, utils.HashRefreshToken(raw)).Return(current, nil).Once()
	suite.uow.users.On("FindUserByID", suite.ctx, user.UserID).Return(user, nil).Once()
	suite.uow.tokens.On("UpdateRefreshToken", suite.ctx, current).Return(nil).Once()
	suite.uow.tokens.On("SaveRefreshToken", suite.ctx, mock.AnythingOfType("*domain.RefreshToken")).Return(nil).Once()
	suite.uow.On("SaveChanges", suite.ctx).Return(nil).Once()

	resp, err := suite.service.Refresh(suite.ctx, raw, "10.0.0.2")

	suite.Require().NoError(err)
	suite.NotEqual(raw, resp.RefreshToken)
	suite.True(current.IsRevoked)
	suite.Equal("10.0.0.2", current.RevokedByIP)
	suite.Equal(utils.HashRefreshToken(resp.RefreshToken), current.ReplacedByToken)
	suite.uow.tokens.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRefresh_ConcurrentRotationRejected() {
	user := domain.NewUser("ayse@example.com", "hash", "Ayse", "Yilmaz", domain.TRY)
	raw := "presented-refresh-token"
	current := domain.NewRefreshToken(user.UserID, utils.HashRefreshToken(raw), suite.clock.Add(time.Hour), "")

	suite.uow.tokens.On("FindRefreshToken", suite.ctx, utils.HashRefreshToken(raw)).Return(current, nil).Once()
	suite.uow.users.On("FindUserByID", suite.ctx, user.UserID).Return(user, nil).Once()
	suite.uow.tokens.On("UpdateRefreshToken", suite.ctx, current).Return(nil).Once()
	suite.uow.tokens.On("SaveRefreshToken", suite.ctx, mock.AnythingOfType("*domain.RefreshToken")).Return(nil).Once()
	suite.uow.On("SaveChanges", suite.ctx).
		Return(fmt.Errorf("%w: update refresh token %s", apperrors.ErrNotFound, current.RefreshTokenID)).Once()

	resp, err := suite.service.Refresh(suite.ctx, raw, "")

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestRefresh_Expired() {
	raw := "old-token"
	current := domain.NewRefreshToken("user-1", utils.HashRefreshToken(raw), suite.clock.Add(-time.Minute), "")
	suite.uow.tokens.On("FindRefreshToken", suite.ctx, utils.HashRefreshToken(raw)).Return(current, nil).Once()

	_, err := suite.service.Refresh(suite.ctx, raw, "")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
	suite.uow.tokens.AssertNotCalled(suite.T(), "SaveRefreshToken", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRefresh_RevokedTokenRejected() {
	raw := "used-token"
	current := domain.NewRefreshToken("user-1", utils.HashRefreshToken(raw), suite.clock.Add(time.Hour), "")
	current.Revoke("", "next")
	suite.uow.tokens.On("FindRefreshToken", suite.ctx, utils.HashRefreshToken(raw)).Return(current, nil).Once()

	_, err := suite.service.Refresh(suite.ctx, raw, "")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrRefreshTokenExpired)
}

func (suite *AuthServiceTestSuite) TestLogout_UnknownTokenIsNoop() {
	suite.uow.tokens.On("FindRefreshToken", suite.ctx, utils.HashRefreshToken("missing")).Return(nil, apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.Logout(suite.ctx, "missing", ""))
	suite.uow.AssertNotCalled(suite.T(), "SaveChanges", mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogout_AlreadyRevokedIsNoop() {
	current := domain.NewRefreshToken("user-1", utils.HashRefreshToken("t"), suite.clock.Add(time.Hour), "")
	current.Revoke("1.1.1.1", "")
	suite.uow.tokens.On("FindRefreshToken", suite.ctx, utils.HashRefreshToken("t")).Return(current, nil).Once()

	suite.NoError(suite.service.Logout(suite.ctx, "t", "2.2.2.2"))
	suite.Equal("1.1.1.1", current.RevokedByIP)
	suite.uow.tokens.AssertNotCalled(suite.T(), "UpdateRefreshToken", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogout_RevokesToken() {
	current := domain.NewRefreshToken("user-1", utils.HashRefreshToken("t"), suite.clock.Add(time.Hour), "")
	suite.uow.tokens.On("FindRefreshToken", suite.ctx, utils.HashRefreshToken("t")).Return(current, nil).Once()
	suite.uow.tokens.On("UpdateRefreshToken", suite.ctx, current).Return(nil).Once()
	suite.uow.On("SaveChanges", suite.ctx).Return(nil).Once()

	suite.Require().NoError(suite.service.Logout(suite.ctx, "t", "3.3.3.3"))
	suite.True(current.IsRevoked)
	suite.Empty(current.ReplacedByToken)
}

func (suite *AuthServiceTestSuite) TestLogout_LostRaceIsNoop() {
	current := domain.NewRefreshToken("user-1", utils.HashRefreshToken("t"), suite.clock.Add(time.Hour), "")
	suite.uow.tokens.On("FindRefreshToken", suite.ctx, utils.HashRefreshToken("t")).Return(current, nil).Once()
	suite.uow.tokens.On("UpdateRefreshToken", suite.ctx, current).Return(nil).Once()
	suite.uow.On("SaveChanges", suite.ctx).Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.Logout(suite.ctx, "t", ""))
}

func (suite *AuthServiceTestSuite) TestLoginWithGoogle_RegistersNewUser() {
	payload := &idtoken.Payload{Claims: map[string]interface{}{
		"email":          "new.user@gmail.com",
		"email_verified": true,
		"given_name":     "New",
		"family_name":    "User",
	}}
	suite.google.On("ValidateGoogleIDToken", suite.ctx, "id-token").Return(payload, nil).Once()
	suite.uow.users.On("FindUserByEmail", suite.ctx, "new.user@gmail.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.uow.users.On("EmailExists", suite.ctx, "new.user@gmail.com").Return(false, nil).Once()
	suite.uow.On("Begin", suite.ctx).Return(nil).Once()
	suite.uow.users.On("SaveUser", suite.ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()
	suite.seeder.On("SeedDefaultCategoriesForUser", suite.ctx, mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()
	suite.uow.On("Commit", suite.ctx).Return(nil).Once()
	suite.uow.users.On("UpdateUser", suite.ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()
	suite.uow.tokens.On("SaveRefreshToken", suite.ctx, mock.AnythingOfType("*domain.RefreshToken")).Return(nil).Once()
	suite.uow.On("SaveChanges", suite.ctx).Return(nil).Once()

	resp, err := suite.service.LoginWithGoogle(suite.ctx, "id-token", "")

	suite.Require().NoError(err)
	suite.Equal("new.user@gmail.com", resp.User.Email)
	suite.True(resp.User.IsEmailVerified)
	suite.seeder.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLoginWithGoogle_InvalidToken() {
	suite.google.On("ValidateGoogleIDToken", suite.ctx, "bad").Return(nil, errors.New("audience mismatch")).Once()

	_, err := suite.service.LoginWithGoogle(suite.ctx, "bad", "")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.uow.users.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
