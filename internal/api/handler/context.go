package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/broccoflower/catering-api/internal/api/middleware"
	"github.com/broccoflower/catering-api/internal/core/domain"
)

// ctxIdentity extracts the identity installed by the Identity middleware.
// Routes calling this sit behind RequireAuthority, so a missing identity
// means a wiring mistake rather than a normal anonymous request; it is
// still rejected with 401 instead of panicking.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || identity.Username == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return identity, nil
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (uint, error) {
	return parseUint(c.Param("id"))
}
