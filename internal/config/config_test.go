package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	def := DefaultConfig()
	if cfg.TimeoutSeconds != def.TimeoutSeconds || cfg.LogLevel != def.LogLevel {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
accessKey: file-key
accessSecret: file-secret
baseUrl: https://api.example.test/v2
timeoutSeconds: 10
logLevel: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AccessKey != "file-key" || cfg.AccessSecret != "file-secret" {
		t.Errorf("credentials not loaded: %+v", cfg)
	}
	if cfg.BaseURL != "https://api.example.test/v2" {
		t.Errorf("baseUrl = %q", cfg.BaseURL)
	}
	if cfg.TimeoutSeconds != 10 || cfg.LogLevel != "debug" {
		t.Errorf("unexpected settings: %+v", cfg)
	}
}

func TestLoad_InvalidYAMLIsAnError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "accessKey: [unterminated")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyEnv_OverridesFileValues(t *testing.T) {
	t.Setenv(EnvAccessKey, "env-key")
	t.Setenv(EnvAccessSecret, "env-secret")
	t.Setenv(EnvBaseURL, "https://env.example.test/v2")

	cfg := Config{AccessKey: "file-key", AccessSecret: "file-secret"}
	cfg.ApplyEnv()

	if cfg.AccessKey != "env-key" || cfg.AccessSecret != "env-secret" {
		t.Errorf("env did not win: %+v", cfg)
	}
	if cfg.BaseURL != "https://env.example.test/v2" {
		t.Errorf("baseUrl = %q", cfg.BaseURL)
	}
}

func TestApplyEnv_UnsetVariablesKeepFileValues(t *testing.T) {
	t.Setenv(EnvAccessKey, "")
	t.Setenv(EnvAccessSecret, "")
	t.Setenv(EnvBaseURL, "")

	cfg := Config{AccessKey: "file-key", AccessSecret: "file-secret"}
	cfg.ApplyEnv()

	if cfg.AccessKey != "file-key" || cfg.AccessSecret != "file-secret" {
		t.Errorf("unset env must not clear values: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{AccessKey: "k", AccessSecret: "s"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, c := range []Config{{}, {AccessKey: "k"}, {AccessSecret: "s"}} {
		if err := c.Validate(); err == nil {
			t.Errorf("expected error for %+v", c)
		}
	}
}
