// Package config loads bot settings from an optional TOML file, a .env file and
// the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	EnvToken     = "DISCORD_TOKEN"
	EnvPrefix    = "DEFAULT_PREFIX"
	EnvAPIURL    = "DISCORD_API_URL"
	EnvConfig    = "DISCORD_CONFIG"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogPretty = "LOG_PRETTY"

	DefaultAPIURL = "https://discord.com/api/v10"
)

var ErrMissingToken = errors.New("config: " + EnvToken + " is not set")

type Config struct {
	Token     string `toml:"token"`
	Prefix    string `toml:"prefix"`
	APIURL    string `toml:"api_url"`
	LogLevel  string `toml:"log_level"`
	LogPretty bool   `toml:"log_pretty"`
}

// Load reads the given .env files (".env" when none are named; a missing file is
// not an error), then the TOML file named by DISCORD_CONFIG if set, and finally
// applies environment overrides. The token is required.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load env file: %w", err)
	}

	cfg := &Config{APIURL: DefaultAPIURL}

	if path := os.Getenv(EnvConfig); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.Token == "" {
		return nil, ErrMissingToken
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("could not decode config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvToken); v != "" {
		c.Token = v
	}
	if v := os.Getenv(EnvPrefix); v != "" {
		c.Prefix = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogPretty); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvLogPretty, v, err)
		}
		c.LogPretty = b
	}
	return nil
}
