package config

import (
	"encoding/json"
	"os"

	"github.com/crestrepo/photovault/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// values are copied into the runtime Config.
type JsonConfig struct {
	DatabaseDSN string `json:"database_dsn"`
	SessionDir  string `json:"session_dir"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	configFileName := flagx.JsonConfigFlags()
	if configFileName == "" {
		return
	}
	parseJsonFile(cfg, configFileName)
}

func parseJsonFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	jc := &JsonConfig{}
	if err := json.Unmarshal(data, jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SessionDir != "" {
		cfg.SessionDir = jc.SessionDir
	}
}
