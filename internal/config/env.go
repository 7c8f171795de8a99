package config

import "github.com/caarlos0/env/v11"

// envConfig mirrors Config for environment parsing. Variables left unset
// keep whatever the earlier sources produced.
type envConfig struct {
	DatabasePath string `env:"SATVOCAB_DB"`
	LogLevel     string `env:"SATVOCAB_LOG_LEVEL"`
}

// parseEnv overlays Config with values from the environment.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
