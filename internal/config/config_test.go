// ABOUTME: Tests for configuration defaults and path expansion.
// ABOUTME: Covers backend selection, coach settings, and ~ handling.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("GetBackend() = %q, want badger", got)
	}

	cfg.Backend = "charm"
	if got := cfg.GetBackend(); got != "charm" {
		t.Errorf("GetBackend() = %q, want charm", got)
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "postgres"}
	if _, err := cfg.OpenStorage(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/lift-data", filepath.Join(home, "lift-data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}
	if !strings.HasSuffix(cfg.GetDataDir(), "lift") {
		t.Errorf("default data dir = %q, want a lift directory", cfg.GetDataDir())
	}

	cfg.DataDir = "/tmp/lift-test"
	if cfg.GetDataDir() != "/tmp/lift-test" {
		t.Errorf("GetDataDir() = %q", cfg.GetDataDir())
	}
}

func TestCoachConfigDefaults(t *testing.T) {
	cc := CoachConfig{}
	if cc.Timeout() != 10 {
		t.Errorf("Timeout() = %d, want 10", cc.Timeout())
	}

	t.Setenv("LIFT_API_KEY", "secret")
	if cc.APIKey() != "secret" {
		t.Errorf("APIKey() = %q, want secret", cc.APIKey())
	}

	cc.APIKeyEnv = "OTHER_KEY"
	t.Setenv("OTHER_KEY", "other")
	if cc.APIKey() != "other" {
		t.Errorf("APIKey() = %q, want other", cc.APIKey())
	}

	cc.TimeoutSeconds = 30
	if cc.Timeout() != 30 {
		t.Errorf("Timeout() = %d, want 30", cc.Timeout())
	}
}
