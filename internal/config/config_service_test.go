package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "grepc.yaml", "env: prod\nlog_level: debug\nlog_dir: /tmp/grepc\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Env != "prod" || cfg.LogLevel != "debug" || cfg.LogDir != "/tmp/grepc" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigTOMLKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "grepc.toml", "log_level = \"warn\"\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("log_level: want warn got %s", cfg.LogLevel)
	}
	if cfg.Env != "local" || cfg.LogDir != "logs" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unsupported format": writeConfig(t, "grepc.json", "{}"),
		"bad level":          writeConfig(t, "grepc.yml", "log_level: loud\n"),
		"bad yaml":           writeConfig(t, "grepc.yaml", "env: [\n"),
		"missing file":       filepath.Join(t.TempDir(), "none.yaml"),
	}
	for name, path := range cases {
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadWithoutEnv(t *testing.T) {
	t.Setenv(PathEnv, "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(PathEnv, writeConfig(t, "grepc.yaml", "env: prod\n"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Env != "prod" {
		t.Fatalf("env: want prod got %s", cfg.Env)
	}

	t.Setenv(PathEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unreadable config")
	}
}
