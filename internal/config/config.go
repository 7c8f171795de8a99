// Package config handles configuration for the satvocab CLI, applying
// defaults, then a JSON file, then environment variables, then command-line
// flags. Later sources take precedence.
package config

// Config holds runtime settings for the satvocab CLI.
//
// Fields:
//   - DatabasePath: path of the local SQLite file holding all persisted state.
//   - LogLevel: minimum level for diagnostic logging (debug/info/warn/error).
type Config struct {
	DatabasePath string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "satvocab.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), environment variables, and
// command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
