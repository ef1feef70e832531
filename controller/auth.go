package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware rejects any request whose raw Authorization header does not
// match the stored token. It runs before routing into the handlers, so no
// request body is read for unauthorized callers. The header carries the bare
// token, no "Bearer " prefix.
func AuthMiddleware(token func() (string, error)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			expected, err := token()
			if err != nil {
				return c.String(http.StatusInternalServerError, sysMalfunction)
			}
			if c.Request().Header.Get("Authorization") != expected {
				return c.String(http.StatusForbidden, "Unauthorized")
			}
			return next(c)
		}
	}
}
