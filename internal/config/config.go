package config

import (
	"fmt"
	"os"
	"path/filepath"

	"fourcc/internal/fourcc"

	"gopkg.in/yaml.v3"
)

// Config holds all fourcc configuration.
type Config struct {
	// Output rendering
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Extra known codes, keyed by the 4-byte code, valued by a display name.
	Codes map[string]string `yaml:"codes,omitempty"`
}

// OutputConfig configures how decoded codes are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // raw, quoted, hex
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: string(fourcc.FormatRaw),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultPath returns the config file location: $FOURCC_CONFIG if set,
// otherwise fourcc/config.yaml under the user config directory.
func DefaultPath() string {
	if path := os.Getenv("FOURCC_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fourcc", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if format := os.Getenv("FOURCC_FORMAT"); format != "" {
		c.Output.Format = format
	}
	if level := os.Getenv("FOURCC_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// OutputFormat returns the configured output format, falling back to raw.
func (c *Config) OutputFormat() fourcc.OutputFormat {
	f, err := fourcc.ParseFormat(c.Output.Format)
	if err != nil {
		return fourcc.FormatRaw
	}
	return f
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := fourcc.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	for code := range c.Codes {
		if len(code) != fourcc.Size {
			return fmt.Errorf("codes: %q must be exactly %d bytes", code, fourcc.Size)
		}
	}
	return nil
}
