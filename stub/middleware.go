package stub

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/net/context"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
	requestUserKey      = "requestUser"
)

// requireAuth extracts the bearer token from the Authorization header
// first, falling back to the cookie, verifies it, and puts the fresh
// user record in the request context. Missing or invalid tokens get a
// 401 with a detail message.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(authorizationHeader)

		if raw == "" {
			cookie, err := c.Cookie(authorizationHeader)
			if err == nil {
				raw = cookie.Value
			}
		}

		raw = strings.TrimPrefix(raw, bearerPrefix)
		if raw == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Not authenticated"})
		}

		claimed, err := s.parseToken(raw)
		if err != nil {
			log.Debugf("rejecting token: %v", err)
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Invalid or expired token"})
		}

		// The token's user claim is a snapshot; the store stays the
		// authority on credits and plan.
		user, err := s.state.snapshot(claimed.Email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Unknown user"})
		}

		newContext := context.WithValue(c.Request().Context(), requestUserKey, user)
		c.SetRequest(c.Request().WithContext(newContext))
		c.Set(requestUserKey, user)
		return next(c)
	}
}
