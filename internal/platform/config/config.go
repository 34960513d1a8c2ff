package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	DatabaseURL   string
	RedisURL      string
	CORSOrigins   []string
}

// ErrMissingSigningKey is returned when JWT_SIGNING_KEY is absent. The signing
// secret gates the delete-data route, so starting without one is a
// configuration error, not something to discover per request.
var ErrMissingSigningKey = errors.New("JWT_SIGNING_KEY is required")

// FromEnv builds a Server config from environment variables so main stays lean.
// A local .env file is honored when present.
func FromEnv() (Server, error) {
	_ = godotenv.Load()

	addr := os.Getenv("CONSENTRY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		return Server{}, ErrMissingSigningKey
	}

	var corsOrigins []string
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				corsOrigins = append(corsOrigins, origin)
			}
		}
	}

	return Server{
		Addr:          addr,
		JWTSigningKey: jwtSigningKey,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		CORSOrigins:   corsOrigins,
	}, nil
}
