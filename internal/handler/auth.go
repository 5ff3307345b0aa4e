package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lightwind/auth-service/internal/config"
	"github.com/lightwind/auth-service/internal/queue"
	"github.com/lightwind/auth-service/internal/repository"
	"github.com/lightwind/auth-service/internal/service"
	"github.com/lightwind/auth-service/internal/service/queue_publisher"
)

// AuthHandler bundles dependencies for the token-mode auth endpoints.
type AuthHandler struct {
	Cfg  config.Config
	Auth *service.AuthService
}

func NewAuthHandler(cfg config.Config, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Auth: auth}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

type userPart struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}
type authResp struct {
	User         userPart `json:"user"`
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	ExpiresIn    int      `json:"expiresIn"`
}
type refreshResp struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// Register creates a user and returns an initial token pair.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	u, pair, err := h.Auth.Register(req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	h.publish(queue.EventUserRegistered, u.ID, u.Username)

	return c.JSON(http.StatusCreated, authResp{
		User:         userPart{ID: u.ID, Username: u.Username},
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	})
}

// Login verifies credentials and returns a new token pair. The error body
// never reveals whether the username or the password was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	u, pair, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	h.publish(queue.EventUserLoggedIn, u.ID, u.Username)

	return c.JSON(http.StatusOK, authResp{
		User:         userPart{ID: u.ID, Username: u.Username},
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	})
}

// Refresh exchanges a live refresh token for a new access token without
// rotating the refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refreshToken required"})
	}

	token, expiresIn, err := h.Auth.Refresh(strings.TrimSpace(req.RefreshToken))
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "refresh failed"})
	}
	return c.JSON(http.StatusOK, refreshResp{Token: token, ExpiresIn: expiresIn})
}

// Logout revokes all refresh tokens of the caller. The Authorization
// header is parsed here rather than in the JWT middleware so that an
// expired access token — still carrying a valid signature — can log its
// owner out.
func (h *AuthHandler) Logout(c echo.Context) error {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing bearer token"})
	}
	raw := strings.TrimPrefix(auth, "Bearer ")

	u, err := h.Auth.Logout(raw)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
		case errors.Is(err, service.ErrUserNotFound):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "user not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
		}
	}

	h.publish(queue.EventUserLoggedOut, u.ID, u.Username)
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated caller's public identity.
func (h *AuthHandler) Me(c echo.Context) error {
	username, _ := c.Get("username").(string)
	info, err := h.Auth.CurrentUser(username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, info)
}

// publish fires an audit event without blocking the request; publishing
// failures are already logged inside the publisher and are ignored here.
func (h *AuthHandler) publish(eventType string, userID uint64, username string) {
	if !h.Cfg.EventsEnabled {
		return
	}
	ev := queue.AuthEvent{
		Type:     eventType,
		UserID:   userID,
		Username: username,
		At:       time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishAuthEvent(ctx, ev)
	}()
}
