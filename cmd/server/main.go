package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/lightwind/auth-service/internal/config"
	"github.com/lightwind/auth-service/internal/handler"
	"github.com/lightwind/auth-service/internal/middleware"
	"github.com/lightwind/auth-service/internal/queue"
	"github.com/lightwind/auth-service/internal/repository"
	"github.com/lightwind/auth-service/internal/router"
	"github.com/lightwind/auth-service/internal/service"
	"github.com/lightwind/auth-service/internal/utils"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	// All state is in-memory by design; it does not survive a restart.
	users := repository.NewUserStore()
	ledger := repository.NewTokenLedger()
	sessions := repository.NewSessionStore()

	policy := utils.PolicyFromName(cfg.PasswordPolicy, cfg.BcryptCost)
	if cfg.PasswordPolicy == "plaintext" {
		log.Println("WARNING: plaintext password policy enabled; use only for tests")
	}

	svc := service.NewAuthService(cfg, policy, users, ledger, sessions)
	h := handler.NewAuthHandler(cfg, svc)

	limiter := middleware.NewRateLimiter(config.LoadRateLimitConfig(), config.NewRedisClient())

	e := echo.New()
	router.RegisterRoutes(e)
	switch cfg.AuthMode {
	case config.ModeSession:
		router.RegisterSessionAuth(e, h, sessions, limiter)
	default:
		router.RegisterAuth(e, h, cfg.JWTSecret, limiter)
	}

	if cfg.EventsEnabled {
		go func() {
			if err := queue.StartAuthConsumer(); err != nil {
				log.Printf("auth-consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, mode=%s)", addr, cfg.Env, cfg.AuthMode)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
