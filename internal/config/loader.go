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

// Load reads a TOML configuration file at path over the built-in defaults,
// then applies NRR_* environment variable overrides. A missing file is not
// an error: defaults and environment still apply. The returned Config has
// NOT been validated.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	// A missing .env is fine; a malformed one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.LogLevel, "NRR_LOG_LEVEL")

	setInt(&cfg.League.WinPoints, "NRR_LEAGUE_WIN_POINTS")
	setInt(&cfg.League.Overs, "NRR_LEAGUE_OVERS")

	setStr(&cfg.Source.Kind, "NRR_SOURCE_KIND")
	setStr(&cfg.Source.Path, "NRR_SOURCE_PATH")
	setStr(&cfg.Source.DSN, "NRR_SOURCE_DSN")

	setInt(&cfg.Server.Port, "NRR_SERVER_PORT")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
