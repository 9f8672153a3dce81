package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC restricts an endpoint to the given roles. It runs after Auth and
// trusts the role asserted in the token; a role change only takes effect when
// the user re-authenticates.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
