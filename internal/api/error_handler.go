package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

// errorResponse is the canonical envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Path    string `json:"path"`
}

// NewHTTPErrorHandler returns the single boundary that maps domain errors to
// HTTP statuses. Handlers and services below it never write to the response;
// they return errors and this handler renders the envelope. Unexpected errors
// are logged with full detail and surface as a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, kind, msg := resolveError(err, log, c)
		_ = c.JSON(status, errorResponse{
			Message: msg,
			Error:   kind,
			Status:  status,
			Path:    c.Request().URL.Path,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (status int, kind, msg string) {
	// Echo's own errors (bind failures, 404 from the router, guard rejections)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, http.StatusText(he.Code), fmt.Sprintf("%v", he.Message)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "Validation Error", ve.Message
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		// deliberately uniform for unknown login and wrong password
		return http.StatusUnauthorized, "Authentication Failed", "Incorrect username or password"
	case errors.Is(err, domain.ErrTooManyLoginAttempts):
		return http.StatusTooManyRequests, "Too Many Requests", "Too many failed login attempts, try again later"
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, "Conflict", "The username is already taken!"
	case errors.Is(err, domain.ErrEmailInUse):
		return http.StatusConflict, "Conflict", "Email is already in use!"
	case errors.Is(err, domain.ErrDishExists):
		return http.StatusConflict, "Conflict", "A dish with this name already exists"
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden, "Access Denied", "You do not have access to this resource"
	case errors.Is(err, domain.ErrEventNotPending):
		return http.StatusUnprocessableEntity, "Invalid State", "Only pending events can be modified or deleted"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Resource Not Found", "User not found"
	case errors.Is(err, domain.ErrDishNotFound):
		return http.StatusNotFound, "Resource Not Found", "Dish not found"
	case errors.Is(err, domain.ErrDishTypeNotFound):
		return http.StatusNotFound, "Resource Not Found", "Dish type not found"
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, "Resource Not Found", "Event not found"
	case errors.Is(err, domain.ErrEventRequestNotFound):
		return http.StatusNotFound, "Resource Not Found", "Event request not found"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred"
}
