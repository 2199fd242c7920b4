package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/broccoflower/catering-api/internal/api/session"
	"github.com/broccoflower/catering-api/internal/core/domain"
	"github.com/broccoflower/catering-api/internal/core/ports"
)

// Context keys set by the Identity middleware.
const (
	IdentityKey = "identity"
	UsernameKey = "username"
)

// Identity resolves the caller once per request and installs the resulting
// identity into the echo context. A missing or invalid token never fails the
// request here — the request simply stays anonymous and authorization is
// decided later at the route guards. A stale cookie bearing a bad token is
// cleared so the client stops sending it.
//
// Token sources, in precedence order: Authorization bearer header, then the
// session cookie.
func Identity(
	tokens ports.TokenService,
	accounts ports.AccountRepository,
	sessions *session.Carrier,
	log zerolog.Logger,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, fromCookie := requestToken(c, sessions)
			if token == "" {
				return next(c)
			}

			subject, err := tokens.ExtractSubject(token)
			if err != nil {
				log.Debug().Err(err).Msg("unreadable identity token, proceeding anonymous")
				if fromCookie {
					sessions.Clear(c)
				}
				return next(c)
			}

			// already resolved earlier in the chain
			if _, ok := c.Get(IdentityKey).(domain.Identity); ok {
				return next(c)
			}

			account, err := accounts.FindByLogin(c.Request().Context(), subject)
			if err != nil {
				log.Debug().Str("subject", subject).Msg("token subject unknown, proceeding anonymous")
				return next(c)
			}

			if err := tokens.Validate(token, account.Login); err != nil {
				log.Debug().Err(err).Msg("token validation failed, proceeding anonymous")
				return next(c)
			}

			role := ""
			if account.User != nil {
				role = account.User.Role
			}
			c.Set(IdentityKey, domain.Identity{
				Username:    account.Login,
				Authorities: domain.Authorities(role),
			})
			c.Set(UsernameKey, account.Login)

			return next(c)
		}
	}
}

// requestToken returns the identity token carried by the request, preferring
// the Authorization header over the cookie, and whether it came from the
// cookie.
func requestToken(c echo.Context, sessions *session.Carrier) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1], false
		}
	}
	if token, ok := sessions.Extract(c); ok {
		return token, true
	}
	return "", false
}
