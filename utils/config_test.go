package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 64, "variant": "static", "frame_rate": 1000000000}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 64 || config.Variant != VariantStatic || config.FrameRate != time.Second {
		t.Errorf("got width %d, variant %q, frame rate %s", config.Width, config.Variant, config.FrameRate)
	}
	if config.Height != DefaultConfig().Height {
		t.Errorf("Height = %d, want default %d", config.Height, DefaultConfig().Height)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsNotExist(err) {
		t.Errorf("IsNotExist(%v) = false", err)
	}
	if config != DefaultConfig() {
		t.Error("expected defaults alongside the error")
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"width": `))
	if err == nil {
		t.Fatal("expected an error")
	}
	if IsNotExist(err) {
		t.Error("invalid JSON reported as a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"static", func(c *Config) { c.Variant = VariantStatic }, false},
		{"cell", func(c *Config) { c.Variant = VariantCell }, false},
		{"unknown variant", func(c *Config) { c.Variant = "hex" }, true},
		{"negative width", func(c *Config) { c.Width = -1 }, true},
		{"empty window", func(c *Config) { c.Height = 0 }, true},
		{"empty headless", func(c *Config) { c.Height = 0; c.Headless = true }, false},
		{"zero scale", func(c *Config) { c.Scale = 0 }, true},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }, true},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			if err := config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
