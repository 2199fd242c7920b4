package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/broccoflower/catering-api/internal/api/metrics"
	"github.com/broccoflower/catering-api/internal/api/session"
	"github.com/broccoflower/catering-api/internal/core/domain"
	"github.com/broccoflower/catering-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, username, password string) (string, error)
	registerFn func(ctx context.Context, input ports.RegistrationInput) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegistrationInput) error {
	return s.registerFn(ctx, input)
}

func newAuthHandler(svc ports.AuthService) *AuthHandler {
	return NewAuthHandler(svc, session.NewCarrier("jwt-token", 24*time.Hour))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			if username != "alice" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "token123", nil
		},
	}
	h := newAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Logged in successfully!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}

	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "jwt-token" {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil || sessionCookie.Value != "token123" {
		t.Fatalf("expected session cookie with the token, got %+v", sessionCookie)
	}
	if !sessionCookie.HttpOnly || !sessionCookie.Secure {
		t.Fatal("session cookie must be HttpOnly and Secure")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := newAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","password":"bad"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	if err == nil {
		t.Fatal("expected the error to bubble to the error handler")
	}
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("no session cookie on failed login")
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()
	h := newAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Logged out successfully!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 || cookies[0].Value != "" {
		t.Fatalf("expected the session cookie to be expired, got %+v", cookies)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	var got ports.RegistrationInput
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegistrationInput) error {
			got = input
			return nil
		},
	}
	h := newAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","password":"secret","email":"a@example.com","firstName":"Alice","lastName":"Smith","phone":"555-0100"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if got.Username != "alice" || got.Email != "a@example.com" || got.Phone != "555-0100" {
		t.Fatalf("unexpected input passed to service: %+v", got)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "The user was registered successfully!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Register_FailureMetricLabels(t *testing.T) {
	e := echo.New()

	cases := []struct {
		name   string
		err    error
		result string
	}{
		{"validation error", &domain.ValidationError{Field: "email", Message: "Email is required!"}, "invalid"},
		{"username taken", domain.ErrUsernameTaken, "conflict"},
		{"email in use", domain.ErrEmailInUse, "conflict"},
		{"storage failure", errors.New("disk full"), "error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAuthService{
				registerFn: func(ctx context.Context, input ports.RegistrationInput) error {
					return tc.err
				},
			}
			h := newAuthHandler(stub)

			counter := metrics.RegistrationsTotal.WithLabelValues(tc.result)
			before := testutil.ToFloat64(counter)
			conflictBefore := testutil.ToFloat64(metrics.RegistrationsTotal.WithLabelValues("conflict"))

			body := strings.NewReader(`{"username":"alice","password":"x","email":"a@example.com","firstName":"A","lastName":"S"}`)
			req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := h.Register(c); !errors.Is(err, tc.err) {
				t.Fatalf("expected the service error to bubble up, got %v", err)
			}
			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Fatalf("expected %q counter to grow by 1, got %v -> %v", tc.result, before, got)
			}
			if tc.result != "conflict" {
				if got := testutil.ToFloat64(metrics.RegistrationsTotal.WithLabelValues("conflict")); got != conflictBefore {
					t.Fatalf("%q must not count as a conflict", tc.name)
				}
			}
		})
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegistrationInput) error {
			t.Fatal("should not be called")
			return nil
		},
	}
	h := newAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
