package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/broccoflower/catering-api/internal/core/domain"
)

// RequireAuthority guards a route group: anonymous requests get 401, an
// authenticated caller without any of the listed authorities gets 403.
func RequireAuthority(authorities ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(IdentityKey).(domain.Identity)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			for _, a := range authorities {
				if identity.HasAuthority(a) {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
		}
	}
}
