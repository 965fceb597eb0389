package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvToken, EnvPrefix, EnvAPIURL, EnvConfig, EnvLogLevel, EnvLogPretty} {
		old, had := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, old)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadMissingToken(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "DISCORD_TOKEN=abc\nDEFAULT_PREFIX=!\nLOG_PRETTY=true\n")

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "abc" || cfg.Prefix != "!" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want default", cfg.APIURL)
	}
	if !cfg.LogPretty {
		t.Error("LOG_PRETTY=true should enable pretty logging")
	}
}

func TestLoadTOMLWithEnvOverride(t *testing.T) {
	clearEnv(t)
	tomlFile := writeFile(t, "bot.toml", `
token = "from-file"
prefix = "?"
api_url = "http://localhost:9999/api"
log_level = "debug"
`)
	os.Setenv(EnvConfig, tomlFile)
	os.Setenv(EnvToken, "from-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "from-env" {
		t.Errorf("Token = %q, environment should win", cfg.Token)
	}
	if cfg.Prefix != "?" || cfg.APIURL != "http://localhost:9999/api" || cfg.LogLevel != "debug" {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestLoadBadTOML(t *testing.T) {
	clearEnv(t)
	os.Setenv(EnvConfig, writeFile(t, "bad.toml", "token = "))
	os.Setenv(EnvToken, "x")
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Fatal("expected an error for malformed TOML")
	}
}

func TestLoadInvalidLogPretty(t *testing.T) {
	clearEnv(t)
	os.Setenv(EnvToken, "x")
	os.Setenv(EnvLogPretty, "yes")
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Fatal("expected an error for LOG_PRETTY=yes")
	}
}
