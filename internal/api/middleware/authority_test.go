package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

func runGuard(t *testing.T, identity *domain.Identity, required ...string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(IdentityKey, *identity)
	}

	mw := RequireAuthority(required...)
	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return handler(c)
}

func TestRequireAuthority_Anonymous(t *testing.T) {
	err := runGuard(t, nil, domain.AuthorityClient)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireAuthority_WrongAuthority(t *testing.T) {
	identity := domain.Identity{
		Username:    "alice",
		Authorities: domain.Authorities(domain.RoleClient),
	}
	err := runGuard(t, &identity, domain.AuthorityManager)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRequireAuthority_Allowed(t *testing.T) {
	identity := domain.Identity{
		Username:    "boss",
		Authorities: domain.Authorities(domain.RoleManager),
	}
	if err := runGuard(t, &identity, domain.AuthorityManager); err != nil {
		t.Fatalf("expected access, got %v", err)
	}
}

func TestRequireAuthority_AnyOfSeveral(t *testing.T) {
	identity := domain.Identity{
		Username:    "alice",
		Authorities: domain.Authorities(domain.RoleClient),
	}
	err := runGuard(t, &identity, domain.AuthorityManager, domain.AuthorityClient)
	if err != nil {
		t.Fatalf("expected access with one matching authority, got %v", err)
	}
}
