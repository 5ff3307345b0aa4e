package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/lightwind/auth-service/internal/handler"
	"github.com/lightwind/auth-service/internal/middleware"
	"github.com/lightwind/auth-service/internal/repository"
)

// RegisterRoutes registers routes shared by both deployment modes.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the token-mode endpoints under /api/auth. The
// credential endpoints (register, login) sit behind the rate limiter;
// refresh and logout only ever see token material so they stay outside
// the window. Logout is deliberately not behind JWTAuth — the handler
// parses the Authorization header itself so an expired access token can
// still revoke its owner's refresh tokens.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register, limiter)
	g.POST("/login", a.Login, limiter)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	protected := e.Group("/api/auth")
	protected.Use(middleware.JWTAuth(jwtSecret))
	protected.GET("/me", a.Me)
}

// RegisterSessionAuth wires the session-mode endpoints under /auth. The
// identity endpoint sits behind the session cookie guard.
func RegisterSessionAuth(e *echo.Echo, a *handler.AuthHandler, sessions *repository.SessionStore, limiter echo.MiddlewareFunc) {
	g := e.Group("/auth")
	g.POST("/register", a.RegisterSession, limiter)
	g.POST("/login", a.LoginSession, limiter)
	g.POST("/logout", a.LogoutSession)

	protected := e.Group("/auth")
	protected.Use(middleware.SessionAuth(sessions))
	protected.GET("/me", a.Me)
}
