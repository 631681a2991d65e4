package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/husen20ab/School/internal/core/domain"
)

// RequireRoles gates a route to sessions holding one of the given roles.
// It must run after Auth, which injects the role claim; a claim outside
// the domain role vocabulary is rejected outright.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claim, _ := c.Get("role").(string)
			if !domain.ValidRole(claim) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			for _, role := range roles {
				if claim == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}
