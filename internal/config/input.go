package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Grouper names accepted in configuration.
const (
	GrouperLocale = "locale"
	GrouperPlain  = "plain"
)

// ErrInvalidGrouper is returned for an unknown grouper name.
var ErrInvalidGrouper = errors.New("invalid grouper")

// Configuration holds the numfmt settings read from a YAML file.
type Configuration struct {
	// Locale is a BCP 47 tag or POSIX locale name. Empty means the
	// environment decides.
	Locale  string `yaml:"locale"`
	Grouper string `yaml:"grouper"`
	Format  string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Configuration {
	return &Configuration{Grouper: GrouperLocale, Format: "console"}
}

// InputParser handles parsing of configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file. Missing keys keep their
// defaults.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates YAML configuration data.
func (ip *InputParser) Parse(data []byte) (*Configuration, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	config.normalize()

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	switch config.Grouper {
	case GrouperLocale, GrouperPlain:
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidGrouper, config.Grouper, GrouperLocale, GrouperPlain)
	}
	if config.Format == "" {
		return fmt.Errorf("format is required")
	}
	return nil
}

func (c *Configuration) normalize() {
	c.Locale = strings.TrimSpace(c.Locale)
	c.Grouper = strings.ToLower(strings.TrimSpace(c.Grouper))
	c.Format = strings.TrimSpace(c.Format)
	if c.Grouper == "" {
		c.Grouper = GrouperLocale
	}
	if c.Format == "" {
		c.Format = "console"
	}
}
