package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lightwind/auth-service/internal/middleware"
	"github.com/lightwind/auth-service/internal/queue"
	"github.com/lightwind/auth-service/internal/repository"
	"github.com/lightwind/auth-service/internal/service"
)

// Session-mode handlers. Login state lives server-side; the client only
// holds an opaque session id in an HttpOnly cookie. Registration does not
// log the user in — the original flow sends the user back to login.

// RegisterSession creates a user account without issuing anything.
func (h *AuthHandler) RegisterSession(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	u, err := h.Auth.RegisterUser(req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	h.publish(queue.EventUserRegistered, u.ID, u.Username)
	return c.JSON(http.StatusCreated, userPart{ID: u.ID, Username: u.Username})
}

// LoginSession verifies credentials and sets the session cookie. A prior
// session of the same user is displaced and its id becomes invalid.
func (h *AuthHandler) LoginSession(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	sess, err := h.Auth.LoginSession(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.publish(queue.EventUserLoggedIn, sess.UserID, sess.Username)
	return c.JSON(http.StatusOK, userPart{ID: sess.UserID, Username: sess.Username})
}

// LogoutSession destroys the caller's session and clears the cookie.
// A missing or stale cookie is tolerated: logout is idempotent.
func (h *AuthHandler) LogoutSession(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		h.Auth.LogoutSession(cookie.Value)
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	return c.NoContent(http.StatusNoContent)
}
