package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfigFile writes a config.toml under the app directory in
// xdgDir, mirroring the default XDG layout.
func writeConfigFile(t *testing.T, xdgDir, content string) string {
	t.Helper()
	dir := filepath.Join(xdgDir, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, path, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want none", path)
	}
	if cfg != defaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), "seed = 42\nsize = 16\norder = \"degree\"\ndirected = true\nflow_max = 9\n")

	cfg, used, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if used != path {
		t.Errorf("used path = %q, want %q", used, path)
	}
	want := Config{Seed: 42, Size: 16, Order: "degree", Directed: true, FlowMax: 9}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	writeConfigFile(t, dir, "size = 3\n")

	cfg, used, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if used == "" {
		t.Error("default config file should have been found")
	}
	if cfg.Size != 3 {
		t.Errorf("Size = %d, want 3", cfg.Size)
	}
	// Unset fields keep their defaults.
	if cfg.Order != "fifo" {
		t.Errorf("Order = %q, want fifo", cfg.Order)
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	_, _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("loadConfig: expected error for missing explicit file")
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), "size = \"many\"\n")

	_, _, err := loadConfig(path)
	if err == nil {
		t.Fatal("loadConfig: expected parse error")
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantField string
	}{
		{name: "zero size", content: "size = 0\n", wantField: "size"},
		{name: "unknown order", content: "order = \"best\"\n", wantField: "order"},
		{name: "negative flow max", content: "flow_max = -1\n", wantField: "flow_max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, t.TempDir(), tt.content)

			_, _, err := loadConfig(path)
			if err == nil {
				t.Fatal("loadConfig: expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error %q should name field %q", err, tt.wantField)
			}
		})
	}
}

func TestConfigPathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	want := filepath.Join("/tmp/xdg", appName, "config.toml")
	if got := configPath(); got != want {
		t.Errorf("configPath = %q, want %q", got, want)
	}
}
