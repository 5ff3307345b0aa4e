package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lightwind/auth-service/internal/repository"
)

// SessionCookie is the name of the cookie carrying the session id in the
// session deployment variant.
const SessionCookie = "session_id"

// SessionAuth returns an Echo middleware that resolves the session cookie
// against the server-side store and injects the owner's identity into the
// request context, mirroring what JWTAuth does for bearer tokens.
func SessionAuth(sessions *repository.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing session"})
			}
			sess, ok := sessions.Get(cookie.Value)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session"})
			}
			c.Set("username", sess.Username)
			c.Set("user_id", sess.UserID)
			return next(c)
		}
	}
}
