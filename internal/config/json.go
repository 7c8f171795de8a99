package config

import (
	"encoding/json"
	"os"

	"github.com/fun2learn/satvocab/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config; empty values leave the defaults alone.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	LogLevel     string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Read or unmarshal errors panic, since a config file that was explicitly
// requested but cannot be used is not recoverable.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
