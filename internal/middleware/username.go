package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
)

// UsernameHeader carries the authenticated username. There is no token or
// signature behind it; the header is a scoping convention, not a security
// boundary. An absent header selects the anonymous/default scope.
const UsernameHeader = "X-Username"

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// UsernameKey is the context key for the request's username scope
const UsernameKey contextKey = "username"

// Username returns an Echo middleware that copies the X-Username header into
// the request context. Requests without the header proceed with the empty
// (anonymous) scope.
func Username() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username := strings.TrimSpace(c.Request().Header.Get(UsernameHeader))
			ctx := context.WithValue(c.Request().Context(), UsernameKey, username)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetUsername extracts the username scope from the request context. The empty
// string is the anonymous scope.
func GetUsername(c echo.Context) string {
	if username, ok := c.Request().Context().Value(UsernameKey).(string); ok {
		return username
	}
	return ""
}
