package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cuzdan_backend/internal/apperrors"
	"github.com/SscSPs/cuzdan_backend/internal/core/domain"
	"github.com/SscSPs/cuzdan_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusClientClosedRequest is the non-standard code used when the caller went away.
const statusClientClosedRequest = 499

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps a service error onto an HTTP status and whether its message is safe to show.
// ErrValidation is checked before rule violations: an unknown currency wraps both.
func statusFor(err error) (int, bool) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, true
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, true
	case domain.IsRuleViolation(err):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, true
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, true
	case errors.As(err, &appErr):
		return appErr.Code, appErr.Code < http.StatusInternalServerError
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, false
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, false
	default:
		return http.StatusInternalServerError, false
	}
}

// respondError writes the JSON error for err. Server-side failures get fallback as their
// message so internals never leak.
func respondError(c *gin.Context, err error, fallback string) {
	status, expose := statusFor(err)
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	msg := fallback
	if expose {
		msg = err.Error()
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	} else {
		logger.Error(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

// bindingError answers a request whose body or query failed to bind.
func bindingError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// currentUserID reads the authenticated user, answering 401 when it is missing.
func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
