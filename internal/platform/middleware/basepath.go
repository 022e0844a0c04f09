package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BasePath strips a leading UUID-shaped path segment before routing. The
// app is often deployed under an opaque per-deployment prefix
// (/<uuid>/dashboard); the same build must also serve from /, so a request
// whose first segment is not a UUID passes through untouched.
func BasePath() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if prefix, rest, ok := splitUUIDPrefix(req.URL.Path); ok {
				c.Set("base_path", prefix)
				req.URL.Path = rest
			}
			return next(c)
		}
	}
}

// splitUUIDPrefix returns the "/<uuid>" prefix and the remaining path when
// the first segment parses as a UUID.
func splitUUIDPrefix(path string) (prefix, rest string, ok bool) {
	trimmed := strings.TrimPrefix(path, "/")
	seg, remainder, _ := strings.Cut(trimmed, "/")
	if _, err := uuid.Parse(seg); err != nil {
		return "", "", false
	}
	rest = "/" + remainder
	return "/" + seg, rest, true
}
