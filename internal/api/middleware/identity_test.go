package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/broccoflower/catering-api/internal/api/session"
	"github.com/broccoflower/catering-api/internal/core/domain"
)

type stubTokens struct {
	subject    string
	extractErr error
	verifyErr  error
}

func (s *stubTokens) Issue(login string) (string, error) { return "token-" + login, nil }

func (s *stubTokens) Validate(token, login string) error { return s.verifyErr }

func (s *stubTokens) ExtractSubject(token string) (string, error) {
	if s.extractErr != nil {
		return "", s.extractErr
	}
	return s.subject, nil
}

type stubAccounts struct {
	account *domain.Account
	err     error
}

func (s *stubAccounts) FindByLogin(ctx context.Context, login string) (*domain.Account, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.account, nil
}

func (s *stubAccounts) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubAccounts) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	return false, nil
}

func (s *stubAccounts) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (s *stubAccounts) CreateWithUser(ctx context.Context, account *domain.Account, user *domain.User) error {
	return nil
}

func clientAccount(login string) *domain.Account {
	return &domain.Account{
		Login:                 login,
		Enabled:               true,
		AccountNonExpired:     true,
		AccountNonLocked:      true,
		CredentialsNonExpired: true,
		User:                  &domain.User{Username: login, Role: domain.RoleClient},
	}
}

func runIdentity(t *testing.T, tokens *stubTokens, accounts *stubAccounts, decorate func(*http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	sessions := session.NewCarrier("jwt-token", time.Hour)
	mw := Identity(tokens, accounts, sessions, zerolog.Nop())
	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return c, rec
}

func TestIdentity_CookieToken(t *testing.T) {
	tokens := &stubTokens{subject: "alice"}
	accounts := &stubAccounts{account: clientAccount("alice")}

	c, _ := runIdentity(t, tokens, accounts, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "jwt-token", Value: "good-token"})
	})

	identity, ok := c.Get(IdentityKey).(domain.Identity)
	if !ok {
		t.Fatal("expected identity to be installed")
	}
	if identity.Username != "alice" {
		t.Fatalf("expected alice, got %q", identity.Username)
	}
	if !identity.HasAuthority(domain.AuthorityClient) {
		t.Fatalf("expected client authority, got %v", identity.Authorities)
	}
	if identity.HasAuthority(domain.AuthorityManager) {
		t.Fatal("client must not carry the manager authority")
	}
}

func TestIdentity_BearerHeaderWinsOverCookie(t *testing.T) {
	tokens := &stubTokens{subject: "alice"}
	accounts := &stubAccounts{account: clientAccount("alice")}

	c, _ := runIdentity(t, tokens, accounts, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer header-token")
		req.AddCookie(&http.Cookie{Name: "jwt-token", Value: "cookie-token"})
	})

	if _, ok := c.Get(IdentityKey).(domain.Identity); !ok {
		t.Fatal("expected identity to be installed")
	}
}

func TestIdentity_NoToken_StaysAnonymous(t *testing.T) {
	tokens := &stubTokens{subject: "alice"}
	accounts := &stubAccounts{account: clientAccount("alice")}

	c, rec := runIdentity(t, tokens, accounts, nil)

	if c.Get(IdentityKey) != nil {
		t.Fatal("expected no identity for an anonymous request")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous requests must pass through, got %d", rec.Code)
	}
}

func TestIdentity_BadCookieToken_ClearedAndAnonymous(t *testing.T) {
	tokens := &stubTokens{extractErr: errors.New("expired")}
	accounts := &stubAccounts{account: clientAccount("alice")}

	c, rec := runIdentity(t, tokens, accounts, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "jwt-token", Value: "stale-token"})
	})

	if c.Get(IdentityKey) != nil {
		t.Fatal("expected no identity for a stale token")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("request must still pass through, got %d", rec.Code)
	}

	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "jwt-token" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected the stale cookie to be cleared")
	}
}

func TestIdentity_BadBearerToken_DoesNotTouchCookie(t *testing.T) {
	tokens := &stubTokens{extractErr: errors.New("garbage")}
	accounts := &stubAccounts{account: clientAccount("alice")}

	_, rec := runIdentity(t, tokens, accounts, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer garbage")
	})

	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("a bad header token must not clear any cookie")
	}
}

func TestIdentity_UnknownSubject_StaysAnonymous(t *testing.T) {
	tokens := &stubTokens{subject: "ghost"}
	accounts := &stubAccounts{err: domain.ErrUserNotFound}

	c, rec := runIdentity(t, tokens, accounts, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "jwt-token", Value: "orphan-token"})
	})

	if c.Get(IdentityKey) != nil {
		t.Fatal("expected no identity for an unknown subject")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("request must still pass through, got %d", rec.Code)
	}
}

func TestIdentity_ValidationFailure_StaysAnonymous(t *testing.T) {
	tokens := &stubTokens{subject: "alice", verifyErr: errors.New("subject mismatch")}
	accounts := &stubAccounts{account: clientAccount("alice")}

	c, _ := runIdentity(t, tokens, accounts, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "jwt-token", Value: "mismatched"})
	})

	if c.Get(IdentityKey) != nil {
		t.Fatal("expected no identity when validation fails")
	}
}
