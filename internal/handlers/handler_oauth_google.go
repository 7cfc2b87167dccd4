package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/cuzdan_backend/internal/apperrors"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/middleware"
	"github.com/SscSPs/cuzdan_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// oauthStateBytes sizes the random state handed out with the login URL.
const oauthStateBytes = 16

// GoogleOAuthHandler handles the authorization-code side of Google sign-in.
// Account resolution and token issuance are delegated to the auth service.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	authService        portssvc.AuthSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(googleOAuthService portssvc.GoogleOAuthSvcFacade, authService portssvc.AuthSvcFacade) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		authService:        authService,
	}
}

// ExchangeCodeRequest defines the expected JSON body for the /google/exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// LoginURLResponse carries the Google consent URL and the state the client must verify on return.
type LoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// GetLoginURL godoc
// @Summary Google consent URL
// @Description Returns the Google consent URL with a fresh random state.
// @Tags oauth
// @Produce json
// @Success 200 {object} LoginURLResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login-url [get]
func (h *GoogleOAuthHandler) GetLoginURL(c *gin.Context) {
	state, err := utils.GenerateSecureRandomString(oauthStateBytes)
	if err != nil {
		respondError(c, err, "Failed to generate OAuth state")
		return
	}
	c.JSON(http.StatusOK, LoginURLResponse{
		URL:   h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state),
		State: state,
	})
}

// ExchangeCodeGoogle handles the POST request from the frontend containing the authorization code from Google.
// It exchanges the code for Google tokens and signs the user in with the returned ID token.
// @Summary Exchange authorization code for tokens
// @Description Exchanges a Google authorization code and signs the user in.
// @Tags oauth
// @Accept  json
// @Produce  json
// @Param   code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "Invalid authorization code"
// @Failure 401 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse "Google did not answer"
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		appErr := apperrors.NewAppError(http.StatusGatewayTimeout, "Failed to communicate with Google OAuth service", err)
		lower := strings.ToLower(err.Error())
		if strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
			appErr = apperrors.NewAppError(http.StatusBadRequest, "Invalid or expired authorization code", err)
		}
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.ErrorContext(ctx, "ID token not found in Google's token response")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to retrieve ID token from Google"})
		return
	}

	resp, err := h.authService.LoginWithGoogle(ctx, idTokenString, c.ClientIP())
	if err != nil {
		respondError(c, err, "Failed to sign in with Google")
		return
	}
	logger.InfoContext(ctx, "User signed in through Google code exchange", slog.String("user_id", resp.User.UserID))
	c.JSON(http.StatusOK, resp)
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(auth *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.Auth)
	googleRoutes := auth.Group("/google")
	{
		googleRoutes.GET("/login-url", h.GetLoginURL)
		googleRoutes.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}
