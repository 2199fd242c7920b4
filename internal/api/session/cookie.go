// Package session carries the identity token in an HTTP cookie. The cookie is
// HttpOnly so page script cannot read it and Secure so it only travels over
// TLS; SameSite=None keeps it usable from the separately hosted frontend.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const defaultCookieName = "jwt-token"

// Carrier reads and writes the credential-bearing session cookie.
type Carrier struct {
	name   string
	maxAge time.Duration
}

// NewCarrier returns a Carrier for the given cookie name and lifetime. An
// empty name falls back to "jwt-token".
func NewCarrier(name string, maxAge time.Duration) *Carrier {
	if name == "" {
		name = defaultCookieName
	}
	return &Carrier{name: name, maxAge: maxAge}
}

// Attach sets the session cookie on the response.
func (s *Carrier) Attach(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// Clear overwrites the session cookie with an already-expired one.
func (s *Carrier) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // serialized as Max-Age=0
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// Extract returns the token borne by the session cookie, if any.
func (s *Carrier) Extract(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(s.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
