package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the photo vault CLI.
//
// Fields:
//   - DatabaseDSN: path to the sqlite database file holding accounts and the
//     device-wide session binding.
//   - SessionDir: directory for per-run session state files.
type Config struct {
	DatabaseDSN string
	SessionDir  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "photovault.db"
	c.SessionDir = filepath.Join(os.TempDir(), "photovault")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
