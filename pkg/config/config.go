package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jirakit/jirakit/pkg/types"
)

// Config is the file-loadable form of the diagnostics and sanitization
// settings. Zero values mean "use the built-in defaults".
type Config struct {
	// DiagnosticsMode selects inline or file detail rendering.
	// Empty means inline.
	DiagnosticsMode types.DiagnosticsMode `yaml:"diagnostics_mode"`

	// SensitiveHeaders extends the built-in sensitive header deny list.
	SensitiveHeaders []string `yaml:"sensitive_headers"`

	// SensitiveKeys extends the built-in sensitive JSON key deny list.
	SensitiveKeys []string `yaml:"sensitive_keys"`

	// Mask overrides the placeholder substituted for sensitive values.
	Mask string `yaml:"mask"`
}

// ValidationResult contains the result of configuration validation
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Validate checks the configuration for values that cannot be honored
func (c *Config) Validate() ValidationResult {
	var errs []string

	if c.DiagnosticsMode != "" && !c.DiagnosticsMode.Valid() {
		errs = append(errs, fmt.Sprintf("unknown diagnostics_mode: %q", c.DiagnosticsMode))
	}

	for _, h := range c.SensitiveHeaders {
		if h == "" {
			errs = append(errs, "sensitive_headers must not contain empty names")
			break
		}
	}
	for _, k := range c.SensitiveKeys {
		if k == "" {
			errs = append(errs, "sensitive_keys must not contain empty names")
			break
		}
	}

	return ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// Diagnostics converts the configured mode into a Diagnostics value.
// CI detection still comes from the environment marker.
func (c *Config) Diagnostics() Diagnostics {
	d := FromEnv()
	if c.DiagnosticsMode != "" {
		d.Mode = c.DiagnosticsMode
	}
	return d
}

// Load parses a YAML configuration document
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if result := cfg.Validate(); !result.Valid {
		return nil, fmt.Errorf("invalid config: %v", result.Errors)
	}
	return &cfg, nil
}

// LoadFile reads and parses a YAML configuration file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Load(data)
}
