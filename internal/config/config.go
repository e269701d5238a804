package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	pi "github.com/hellpig/calculate-pi"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "CALCULATE_PI_CONFIG"

// Config holds the settings of the calculate-pi command.
type Config struct {
	Base     int    `toml:"base" yaml:"base"`
	Backend  string `toml:"backend" yaml:"backend"`
	Rounding string `toml:"rounding" yaml:"rounding"`
	Progress bool   `toml:"progress" yaml:"progress"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Base:     pi.DefaultBase,
		Backend:  "float",
		Rounding: pi.Truncate.String(),
		Progress: false,
		LogLevel: "warn",
	}
}

// Load reads configuration from a TOML or YAML file, chosen by extension.
// Settings missing from the file keep their default values.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the config file path: flag if set, else the value of [EnvPath].
func Path(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(EnvPath)
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Base < pi.MinBase || c.Base > pi.MaxBase {
		return fmt.Errorf("base may only vary from %d to %d, got %d", pi.MinBase, pi.MaxBase, c.Base)
	}
	if c.Backend == "" {
		return fmt.Errorf("backend is required")
	}
	if _, err := pi.ParseRoundingMode(c.Rounding); err != nil {
		return err
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
