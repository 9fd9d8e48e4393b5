package config

import (
	"os"
	"strconv"
)

func loadProductionConfig(cfg *Config) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err == nil {
		cfg.ServerPort = port
	}

	cfg.DatabaseFilePath = os.Getenv("DATABASE_FILE_PATH")
	if cfg.DatabaseFilePath == "" {
		cfg.DatabaseFilePath = "/data/quotable.sqlite"
	}
	cfg.DatabaseDebug = os.Getenv("DATABASE_DEBUG") == "true"
	cfg.FrontendURL = os.Getenv("FRONTEND_URL")
	cfg.ServerHost = ""
}
