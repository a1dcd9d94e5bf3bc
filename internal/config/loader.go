package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
// Returns an error if a value cannot be parsed or validation fails.
func Load() (*Config, error) {
	return loadFrom(env.ToMap(os.Environ()))
}

// loadFrom parses configuration from an explicit environment map.
func loadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Workspace validation
	if strings.TrimSpace(c.Workspace.Root) == "" {
		errs = append(errs, "WORKSPACE_ROOT must not be empty")
	}
	if len(c.Workspace.Dirs) == 0 {
		errs = append(errs, "WORKSPACE_DIRS must list at least one directory")
	}
	if len(c.Workspace.Extensions) == 0 {
		errs = append(errs, "WORKSPACE_EXTENSIONS must list at least one extension")
	}
	for _, ext := range c.Workspace.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Sprintf("WORKSPACE_EXTENSIONS entry %q must start with '.'", ext))
		}
	}

	// Import validation
	if strings.TrimSpace(c.Import.Workbook) == "" {
		errs = append(errs, "OBRAS_WORKBOOK must not be empty")
	}
	if strings.TrimSpace(c.Import.Output) == "" {
		errs = append(errs, "OBRAS_OUTPUT must not be empty")
	}
	if c.Import.JSONOutput != "" && c.Import.JSONOutput == c.Import.Output {
		errs = append(errs, "OBRAS_JSON_OUTPUT must differ from OBRAS_OUTPUT")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Workspace: {Root: %q, Dirs: %v, Extensions: %v, DryRun: %v}, ",
		c.Workspace.Root, c.Workspace.Dirs, c.Workspace.Extensions, c.Workspace.DryRun))
	b.WriteString(fmt.Sprintf("Import: {Workbook: %q, Sheet: %q, Output: %q, JSONOutput: %q}, ",
		c.Import.Workbook, c.Import.Sheet, c.Import.Output, c.Import.JSONOutput))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
