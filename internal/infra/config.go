package infra

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is the process configuration, loaded once at startup and handed to
// collaborators at construction time. Nothing reads the environment after
// LoadConfig returns.
type Config struct {
	PostgresURL      string
	GatewayServerKey string
	JWTSecret        string
	Port             string
}

// LoadConfig is phase one of startup: read the environment (plus an optional
// .env for local runs) and fail fast on anything missing. Connecting to
// postgres is a separate phase so configuration errors surface before any
// network work.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := Config{
		PostgresURL:      os.Getenv("POSTGRES_URL"),
		GatewayServerKey: os.Getenv("GATEWAY_SERVER_KEY"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		Port:             os.Getenv("PORT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	for name, val := range map[string]string{
		"POSTGRES_URL":       cfg.PostgresURL,
		"GATEWAY_SERVER_KEY": cfg.GatewayServerKey,
		"JWT_SECRET":         cfg.JWTSecret,
	} {
		if val == "" {
			return Config{}, fmt.Errorf("missing required environment variable %s", name)
		}
	}

	return cfg, nil
}
