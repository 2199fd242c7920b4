package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/broccoflower/catering-api/internal/api/metrics"
	"github.com/broccoflower/catering-api/internal/api/session"
	"github.com/broccoflower/catering-api/internal/core/domain"
	"github.com/broccoflower/catering-api/internal/core/ports"
)

// AuthHandler exposes login, logout, and registration. It owns the session
// cookie lifecycle; credential checks live in the auth service.
type AuthHandler struct {
	authService ports.AuthService
	sessions    *session.Carrier
}

func NewAuthHandler(authService ports.AuthService, sessions *session.Carrier) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// Login authenticates the caller and starts a session.
//
// @Summary      Log in with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]any
// @Failure      429   {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManyLoginAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	h.sessions.Attach(c, token)
	return c.JSON(http.StatusOK, loginResponse{
		Message: "Logged in successfully!",
		Token:   token,
	})
}

// Logout clears the session cookie. The token itself stays valid until it
// expires; there is no server-side revocation list.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully!"})
}

// Register creates a client account.
//
// @Summary      Register a new client
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.authService.Register(c.Request().Context(), ports.RegistrationInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrEmailInUse):
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "The user was registered successfully!"})
}
