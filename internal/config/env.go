package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; variables already set
// in the process environment win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PHOTOVAULT_DB"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("PHOTOVAULT_SESSION_DIR"); v != "" {
		cfg.SessionDir = v
	}
}
