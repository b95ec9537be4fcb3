package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if len(cfg.Format.Extensions) == 0 {
		t.Error("Default config has no format extensions")
	}
	if cfg.Logging.Console.Level != "normal" {
		t.Errorf("Default console level = %q, want %q", cfg.Logging.Console.Level, "normal")
	}
}

func TestLoad_MergeWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	// Partial config that only overrides some values.
	partialConfig := `version: 1
logging:
  console:
    level: debug
`
	if err := os.WriteFile(configPath, []byte(partialConfig), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Console.Level != "debug" {
		t.Errorf("Console level = %q, want %q", cfg.Logging.Console.Level, "debug")
	}
	if len(cfg.Format.Extensions) == 0 {
		t.Error("Extensions should keep their default value")
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoad_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configWithUnknown := `version: 1
unknown_field: value
`
	if err := os.WriteFile(configPath, []byte(configWithUnknown), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad version", "version: 2\n"},
		{"bad level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(configPath, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(configPath); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestDump_RoundTrip(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	cfg2, err := unmarshalConfig(data, &Config{})
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Version != cfg.Version {
		t.Errorf("Version mismatch after dump/load: got %d, want %d", cfg2.Version, cfg.Version)
	}
}

func TestDiscover(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(tmpDir, DefaultName)
	if err := os.WriteFile(want, []byte("version: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got != want {
		t.Errorf("Discover(%q) = %q, want %q", nested, got, want)
	}

	// Second lookup must hit the cache and agree.
	got, err = Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("cached Discover(%q) = %q, want %q", nested, got, want)
	}
}
