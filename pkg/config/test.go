package config

func loadTestConfig(cfg *Config) {
	cfg.DatabaseFilePath = ":memory:"
	cfg.FrontendURL = "http://localhost:3000"
	cfg.ServerHost = "127.0.0.1"
	cfg.ServerPort = 0
	cfg.SessionSecret = "test-session-secret"
	cfg.WebhookSecret = "whsec_dGVzdC13ZWJob29rLXNlY3JldA=="
}
