package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func loadDevelopmentConfig(cfg *Config) {
	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err == nil {
		cfg.ServerPort = port
	}

	cfg.DatabaseDebug = true
	cfg.DatabaseFilePath = "./tmp/data.sqlite"
	cfg.FrontendURL = "http://localhost:3000"
	cfg.ServerHost = "127.0.0.1"
	cfg.SessionSecret = "development-session-secret"
	cfg.WebhookSecret = "whsec_ZGV2ZWxvcG1lbnQtd2ViaG9vay1zZWNyZXQ="
}
