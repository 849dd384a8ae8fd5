package config

import (
	"os"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	Environment   string
	JWTSigningKey string
	TokenTTL      time.Duration
	EventName     string
	SeedDemo      bool
}

// TokenTTL is the default lifetime for actor access tokens.
var TokenTTL = 8 * time.Hour

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("QUORUM_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	env := os.Getenv("QUORUM_ENV")
	if env == "" {
		env = "dev"
	}

	tokenTTL := TokenTTL
	if s := os.Getenv("QUORUM_TOKEN_TTL"); s != "" {
		if duration, err := time.ParseDuration(s); err == nil {
			tokenTTL = duration
		}
	}

	jwtSigningKey := os.Getenv("QUORUM_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	eventName := os.Getenv("QUORUM_EVENT_NAME")
	if eventName == "" {
		eventName = "Annual General Meeting 2024"
	}

	return Server{
		Addr:          addr,
		Environment:   env,
		JWTSigningKey: jwtSigningKey,
		TokenTTL:      tokenTTL,
		EventName:     eventName,
		SeedDemo:      os.Getenv("QUORUM_SEED_DEMO") != "false",
	}
}
