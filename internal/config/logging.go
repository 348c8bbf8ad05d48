package config

import "fmt"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`                // debug, info, warn, error
	Format     string          `yaml:"format"`               // json, console
	Categories map[string]bool `yaml:"categories,omitempty"` // Per-category toggles
}

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted log encodings.
var ValidLogFormats = []string{"json", "console"}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Categories not listed are enabled.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}

// Validate checks level and format.
func (c *LoggingConfig) Validate() error {
	if !contains(ValidLevels, c.Level) {
		return fmt.Errorf("invalid logging.level: %s (valid: %v)", c.Level, ValidLevels)
	}
	if !contains(ValidLogFormats, c.Format) {
		return fmt.Errorf("invalid logging.format: %s (valid: %v)", c.Format, ValidLogFormats)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
