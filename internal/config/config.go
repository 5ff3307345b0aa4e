package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Auth deployment modes. Token mode hands out signed bearer tokens;
// session mode keeps login state server-side behind a cookie.
const (
	ModeToken   = "token"
	ModeSession = "session"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable, read once at process start; there is no
// hot-reload.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	JWTSecret      string // symmetric key used to sign JWTs
	AccessTTLSec   int    // access token time-to-live in seconds
	RefreshTTLSec  int    // refresh token time-to-live in seconds
	BcryptCost     int    // bcrypt cost for password hashing
	PasswordPolicy string // "bcrypt" (default) or "plaintext" (legacy/test only)
	AuthMode       string // "token" (default) or "session"
	EventsEnabled  bool   // publish auth audit events to the message broker
}

// Load reads configuration from the environment. Required variables are
// enforced by must(); missing values abort startup with a fatal log
// message rather than limping along misconfigured.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLSec:   mustInt("ACCESS_TOKEN_TTL_SEC"),
		RefreshTTLSec:  mustInt("REFRESH_TOKEN_TTL_SEC"),
		BcryptCost:     mustInt("BCRYPT_COST"),
		PasswordPolicy: envStr("PASSWORD_POLICY", "bcrypt"),
		AuthMode:       envStr("AUTH_MODE", ModeToken),
		EventsEnabled:  envBool("AUTH_EVENTS", false),
	}
}

// must retrieves the value of a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the value into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}
