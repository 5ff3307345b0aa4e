package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lightwind/auth-service/internal/utils"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the authenticated identity into the request context. The
// secret must match the one used when issuing tokens. Handlers behind it
// read the identity via c.Get("username") and c.Get("user_id").
//
// Expired tokens are rejected here; logout intentionally bypasses this
// middleware and parses the header itself so an expired-but-authentic
// token can still end its own sessions.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.VerifyToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set("username", claims.Subject)
			c.Set("user_id", claims.UserID)
			return next(c)
		}
	}
}
