package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

type Config struct {
	DatabaseBusyTimeout       time.Duration
	DatabaseConnectRetryCount int
	DatabaseConnectRetryDelay time.Duration
	DatabaseDebug             bool
	DatabaseFilePath          string
	FrontendURL               string
	Hostname                  string
	IdentityAPIURL            string
	IdentitySecretKey         string
	ServerHost                string
	ServerPort                int
	SessionSecret             string
	WebhookSecret             string
}

const environmentENV = "ENVIRONMENT"

func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		Hostname:                  hostname,
		IdentityAPIURL:            "https://api.clerk.com/v1",
		ServerPort:                4000,
	}

	switch os.Getenv(environmentENV) {
	case "development", "":
		loadDevelopmentConfig(cfg)
	case "test":
		loadTestConfig(cfg)
	case "production":
		loadProductionConfig(cfg)
	}

	cfg.SessionSecret = envOr("SESSION_SECRET", cfg.SessionSecret)
	cfg.WebhookSecret = envOr("USER_WEBHOOK_SECRET", cfg.WebhookSecret)
	cfg.IdentityAPIURL = envOr("IDENTITY_API_URL", cfg.IdentityAPIURL)
	cfg.IdentitySecretKey = envOr("IDENTITY_SECRET_KEY", cfg.IdentitySecretKey)

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
