package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != configVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, configVersion)
	}
	if !cfg.AutoSave.Enabled {
		t.Error("auto-save should be enabled by default")
	}
	if cfg.AutoSave.DelayMs != 2000 {
		t.Errorf("AutoSave.DelayMs = %d, want 2000", cfg.AutoSave.DelayMs)
	}
	if cfg.Export.Compress {
		t.Error("export compression should be opt-in")
	}
	if cfg.Defaults.LegalBasis == "" {
		t.Error("Defaults.LegalBasis should have a default")
	}
	if cfg.Logging.Format != "human" || cfg.Logging.Level != "info" {
		t.Errorf("unexpected logging defaults: %s/%s", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(*Config) {}, false},
		{"unsupported version", func(c *Config) { c.Version = 99 }, true},
		{"negative delay", func(c *Config) { c.AutoSave.DelayMs = -1 }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"json log format", func(c *Config) { c.Logging.Format = "json" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() should return an error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() returned unexpected error: %v", err)
			}
			if err != nil {
				if _, ok := err.(*ConfigError); !ok {
					t.Errorf("Validate() error type = %T, want *ConfigError", err)
				}
			}
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "version", Message: "unsupported config version"}
	want := "config error in field 'version': unsupported config version"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestLoadConfig_Default(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadConfig(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Version != configVersion {
		t.Errorf("Version = %d, want %d (default)", cfg.Version, configVersion)
	}
	if !cfg.AutoSave.Enabled {
		t.Error("defaults should apply when no config file exists")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	tcaDir := filepath.Join(tmpDir, ".tca")
	if err := os.MkdirAll(tcaDir, 0755); err != nil {
		t.Fatalf("Failed to create .tca dir: %v", err)
	}

	configContent := `{
		"version": 1,
		"autoSave": {"enabled": false, "delayMs": 500},
		"export": {"compress": true},
		"defaults": {"depot": "Warszawa Grochów"}
	}`
	if err := os.WriteFile(filepath.Join(tcaDir, "config.json"), []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.AutoSave.Enabled {
		t.Error("auto-save should be disabled per config")
	}
	if cfg.AutoSave.DelayMs != 500 {
		t.Errorf("AutoSave.DelayMs = %d, want 500", cfg.AutoSave.DelayMs)
	}
	if !cfg.Export.Compress {
		t.Error("compression should be enabled per config")
	}
	if cfg.Defaults.Depot != "Warszawa Grochów" {
		t.Errorf("Defaults.Depot = %q", cfg.Defaults.Depot)
	}
	// Unmentioned values keep their defaults.
	if cfg.Export.Directory != "exports" {
		t.Errorf("Export.Directory = %q, want default", cfg.Export.Directory)
	}
	if cfg.Defaults.LegalBasis == "" {
		t.Error("Defaults.LegalBasis should fall back to the default")
	}
}

func TestConfig_SaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Defaults.Depot = "Kraków Prokocim"
	cfg.AutoSave.DelayMs = 1500

	if err := cfg.Save(tmpDir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, ".tca", "config.json")); err != nil {
		t.Fatalf("config file was not created: %v", err)
	}

	loaded, err := LoadConfig(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfig() after save error = %v", err)
	}
	if loaded.Defaults.Depot != "Kraków Prokocim" {
		t.Errorf("Defaults.Depot = %q after reload", loaded.Defaults.Depot)
	}
	if loaded.AutoSave.DelayMs != 1500 {
		t.Errorf("AutoSave.DelayMs = %d after reload, want 1500", loaded.AutoSave.DelayMs)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	tcaDir := filepath.Join(tmpDir, ".tca")
	if err := os.MkdirAll(tcaDir, 0755); err != nil {
		t.Fatalf("Failed to create .tca dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tcaDir, "config.json"), []byte("{ invalid }"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(tmpDir); err == nil {
		t.Error("LoadConfig() should return error for invalid JSON")
	}
}
