// Package handlers exposes the HTTP API surface over the core services.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerpad/ledgerpad_app/internal/apperrors"
	"github.com/ledgerpad/ledgerpad_app/internal/core/services"
	"github.com/ledgerpad/ledgerpad_app/internal/middleware"
)

// ErrorResponse is the JSON error envelope for every failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError translates service errors into HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, services.ErrConcurrentModification),
		errors.Is(err, services.ErrAlreadyReconciled),
		errors.Is(err, services.ErrNotReconciled),
		errors.Is(err, services.ErrApplicationAlreadyReversed),
		errors.Is(err, services.ErrPaymentAlreadyPosted),
		errors.Is(err, services.ErrInvalidStatusTransition):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInsufficientInvoiceBalance),
		errors.Is(err, services.ErrInsufficientPaymentBalance),
		errors.Is(err, services.ErrCurrencyMismatch),
		errors.Is(err, services.ErrInvoiceVoided),
		errors.Is(err, services.ErrInvoiceNotOpen),
		errors.Is(err, services.ErrPaymentNotPosted),
		errors.Is(err, services.ErrInvoiceHasPayments):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("request failed", "error", err)
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// requireUserID pulls the authenticated user from the context, aborting
// with 401 when the auth middleware did not run.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return "", false
	}
	return userID, true
}
