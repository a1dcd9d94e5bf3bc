package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if cfg.Workspace.Root != "." {
		t.Errorf("Workspace.Root = %q, want %q", cfg.Workspace.Root, ".")
	}
	if len(cfg.Workspace.Dirs) != 2 || cfg.Workspace.Dirs[0] != "components" || cfg.Workspace.Dirs[1] != "app" {
		t.Errorf("Workspace.Dirs = %v, want [components app]", cfg.Workspace.Dirs)
	}
	if len(cfg.Workspace.Extensions) != 1 || cfg.Workspace.Extensions[0] != ".tsx" {
		t.Errorf("Workspace.Extensions = %v, want [.tsx]", cfg.Workspace.Extensions)
	}
	if cfg.Workspace.DryRun {
		t.Error("Workspace.DryRun = true, want false")
	}
	if cfg.Import.Workbook != "geralobras.xlsx" {
		t.Errorf("Import.Workbook = %q, want %q", cfg.Import.Workbook, "geralobras.xlsx")
	}
	if cfg.Import.Output != "database/import-obras-from-excel.sql" {
		t.Errorf("Import.Output = %q, want %q", cfg.Import.Output, "database/import-obras-from-excel.sql")
	}
	if cfg.Import.Sheet != "" || cfg.Import.JSONOutput != "" {
		t.Errorf("Import optional fields = %q/%q, want empty", cfg.Import.Sheet, cfg.Import.JSONOutput)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text", cfg.Logging)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	cfg, err := loadFrom(map[string]string{
		"WORKSPACE_ROOT":       "/srv/site",
		"WORKSPACE_DIRS":       "src,pages",
		"WORKSPACE_EXTENSIONS": ".tsx,.jsx",
		"REWRITE_DRY_RUN":      "true",
		"OBRAS_SHEET":          "ASFALTOS",
		"LOG_LEVEL":            "debug",
	})
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if cfg.Workspace.Root != "/srv/site" {
		t.Errorf("Workspace.Root = %q, want %q", cfg.Workspace.Root, "/srv/site")
	}
	if len(cfg.Workspace.Dirs) != 2 || cfg.Workspace.Dirs[1] != "pages" {
		t.Errorf("Workspace.Dirs = %v, want [src pages]", cfg.Workspace.Dirs)
	}
	if len(cfg.Workspace.Extensions) != 2 || cfg.Workspace.Extensions[1] != ".jsx" {
		t.Errorf("Workspace.Extensions = %v, want [.tsx .jsx]", cfg.Workspace.Extensions)
	}
	if !cfg.Workspace.DryRun {
		t.Error("Workspace.DryRun = false, want true")
	}
	if cfg.Import.Sheet != "ASFALTOS" {
		t.Errorf("Import.Sheet = %q, want %q", cfg.Import.Sheet, "ASFALTOS")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	_, err := loadFrom(map[string]string{"REWRITE_DRY_RUN": "maybe"})
	if err == nil {
		t.Fatal("loadFrom() expected error for invalid boolean")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	_, err := loadFrom(map[string]string{"LOG_LEVEL": "verbose"})
	if err == nil {
		t.Fatal("loadFrom() expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "LOG_LEVEL") {
		t.Errorf("error should mention LOG_LEVEL, got: %v", err)
	}
}

func validConfig() *Config {
	return &Config{
		Workspace: WorkspaceConfig{Root: ".", Dirs: []string{"components"}, Extensions: []string{".tsx"}},
		Import:    ImportConfig{Workbook: "geralobras.xlsx", Output: "out.sql"},
		Logging:   LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_ExtensionWithoutDot(t *testing.T) {
	cfg := validConfig()
	cfg.Workspace.Extensions = []string{"tsx"}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for extension without dot")
	}
	if !strings.Contains(err.Error(), "WORKSPACE_EXTENSIONS") {
		t.Errorf("error should mention WORKSPACE_EXTENSIONS, got: %v", err)
	}
}

func TestValidate_JSONOutputCollides(t *testing.T) {
	cfg := validConfig()
	cfg.Import.JSONOutput = cfg.Import.Output

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() expected error when JSON output equals SQL output")
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{Level: "loud", Format: "xml"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for empty config")
	}

	errStr := err.Error()
	for _, want := range []string{"WORKSPACE_ROOT", "WORKSPACE_DIRS", "OBRAS_WORKBOOK", "OBRAS_OUTPUT", "LOG_LEVEL", "LOG_FORMAT"} {
		if !strings.Contains(errStr, want) {
			t.Errorf("error should mention %s, got: %v", want, errStr)
		}
	}
}

func TestResolve(t *testing.T) {
	cfg := validConfig()
	cfg.Workspace.Root = "/work"

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "relative path joins root", in: "geralobras.xlsx", want: filepath.Join("/work", "geralobras.xlsx")},
		{name: "nested relative path", in: "database/out.sql", want: filepath.Join("/work", "database", "out.sql")},
		{name: "absolute path unchanged", in: "/tmp/out.sql", want: "/tmp/out.sql"},
		{name: "empty stays empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.Resolve(tt.in); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestString_IncludesSections(t *testing.T) {
	s := validConfig().String()
	for _, want := range []string{"Workspace:", "Import:", "Logging:", "geralobras.xlsx"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
