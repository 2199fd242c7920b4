package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder, *http.Request) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, req
}

func TestCarrier_Attach(t *testing.T) {
	c, rec, _ := newTestContext()
	carrier := NewCarrier("jwt-token", 24*time.Hour)

	carrier.Attach(c, "the-token")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != "jwt-token" || cookie.Value != "the-token" {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Fatal("cookie must be HttpOnly")
	}
	if !cookie.Secure {
		t.Fatal("cookie must be Secure")
	}
	if cookie.SameSite != http.SameSiteNoneMode {
		t.Fatalf("expected SameSite=None, got %v", cookie.SameSite)
	}
	if cookie.Path != "/" {
		t.Fatalf("expected path /, got %q", cookie.Path)
	}
	if cookie.MaxAge != 86400 {
		t.Fatalf("expected max-age 86400, got %d", cookie.MaxAge)
	}
}

func TestCarrier_Clear(t *testing.T) {
	c, rec, _ := newTestContext()
	carrier := NewCarrier("jwt-token", 24*time.Hour)

	carrier.Clear(c)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].Value != "" || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected an expired empty cookie, got %+v", cookies[0])
	}
}

func TestCarrier_Extract(t *testing.T) {
	c, _, req := newTestContext()
	req.AddCookie(&http.Cookie{Name: "jwt-token", Value: "the-token"})
	carrier := NewCarrier("jwt-token", time.Hour)

	token, ok := carrier.Extract(c)
	if !ok || token != "the-token" {
		t.Fatalf("expected the-token, got %q (%v)", token, ok)
	}
}

func TestCarrier_Extract_Missing(t *testing.T) {
	c, _, _ := newTestContext()
	carrier := NewCarrier("jwt-token", time.Hour)

	if _, ok := carrier.Extract(c); ok {
		t.Fatal("expected no token without a cookie")
	}
}

func TestCarrier_DefaultName(t *testing.T) {
	carrier := NewCarrier("", time.Hour)
	if carrier.name != "jwt-token" {
		t.Fatalf("expected default name jwt-token, got %q", carrier.name)
	}
}
