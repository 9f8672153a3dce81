package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Code is a
// stable machine-readable identifier; Error is the human-readable message.
type errorResponse struct {
	Code   string   `json:"code"`
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to deterministic HTTP status codes.
//   - Logs swallowed storage causes and unexpected errors server-side only.
//   - Renders a consistent JSON envelope with a stable error code.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, resp := resolveError(err, log, c)
		_ = c.JSON(status, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors: bind failures, unknown routes, auth middleware.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Code: codeForStatus(he.Code), Error: fmt.Sprintf("%v", he.Message)}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{Code: "VALIDATION_ERROR", Error: "invalid payload", Fields: ve.Fields}
	}

	// Storage failures carry a generic client-safe message; the real cause is
	// only logged.
	var se *domain.StorageError
	if errors.As(err, &se) {
		log.Error().
			Err(se.Unwrap()).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("storage failure")
		return http.StatusBadRequest, errorResponse{Code: "STORAGE_ERROR", Error: se.Message}
	}

	switch {
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Code: "NOT_FOUND", Error: err.Error()}
	case errors.Is(err, domain.ErrInvalidCredentials):
		// Failed logins surface as not-found so the response does not reveal
		// whether the username exists.
		return http.StatusNotFound, errorResponse{Code: "INVALID_CREDENTIALS", Error: err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, errorResponse{Code: "ALREADY_UPDATED", Error: err.Error()}
	case errors.Is(err, domain.ErrCategoryInUse):
		return http.StatusConflict, errorResponse{Code: "CATEGORY_IN_USE", Error: err.Error()}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorResponse{Code: "USER_EXISTS", Error: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Code: "INTERNAL", Error: "internal server error"}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	default:
		return "ERROR"
	}
}
