// Package config provides centralized configuration management for obratools.
// It loads configuration from environment variables with sensible defaults and
// validates all settings before any pipeline touches the filesystem.
package config

import "path/filepath"

// Config holds all application configuration.
// All settings can be configured via environment variables and overridden by
// command-line flags.
type Config struct {
	Workspace WorkspaceConfig
	Import    ImportConfig
	Logging   LoggingConfig
}

// WorkspaceConfig holds settings for the in-place rewrite pipelines.
type WorkspaceConfig struct {
	// Root is the project directory all other paths are relative to (default: .)
	Root string `env:"WORKSPACE_ROOT" envDefault:"."`

	// Dirs are the subdirectories scanned recursively (default: components,app)
	Dirs []string `env:"WORKSPACE_DIRS" envDefault:"components,app"`

	// Extensions are the file extensions considered for rewriting (default: .tsx)
	Extensions []string `env:"WORKSPACE_EXTENSIONS" envDefault:".tsx"`

	// DryRun reports files that would change without writing them (default: false)
	DryRun bool `env:"REWRITE_DRY_RUN" envDefault:"false"`
}

// ImportConfig holds settings for the spreadsheet importer.
type ImportConfig struct {
	// Workbook is the source .xlsx file (default: geralobras.xlsx)
	Workbook string `env:"OBRAS_WORKBOOK" envDefault:"geralobras.xlsx"`

	// Sheet selects a sheet by name; empty uses the active sheet
	Sheet string `env:"OBRAS_SHEET"`

	// Output is the generated SQL file (default: database/import-obras-from-excel.sql)
	Output string `env:"OBRAS_OUTPUT" envDefault:"database/import-obras-from-excel.sql"`

	// JSONOutput optionally receives the imported records as JSON
	JSONOutput string `env:"OBRAS_JSON_OUTPUT"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Resolve joins a configured path onto the workspace root.
// Absolute paths and empty strings are returned unchanged.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Workspace.Root, path)
}

// WorkbookPath returns the resolved path of the source workbook.
func (c *Config) WorkbookPath() string {
	return c.Resolve(c.Import.Workbook)
}

// OutputPath returns the resolved path of the generated SQL file.
func (c *Config) OutputPath() string {
	return c.Resolve(c.Import.Output)
}

// JSONOutputPath returns the resolved path of the JSON export, or "" if disabled.
func (c *Config) JSONOutputPath() string {
	return c.Resolve(c.Import.JSONOutput)
}
