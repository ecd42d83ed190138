package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/utakatalp/nrr-simulator/internal/league"
	"github.com/utakatalp/nrr-simulator/internal/store"
)

// Config is the top-level configuration for the nrr command.
type Config struct {
	LogLevel string       `toml:"log_level"`
	League   LeagueConfig `toml:"league"`
	Source   SourceConfig `toml:"source"`
	Server   ServerConfig `toml:"server"`
}

// LeagueConfig holds the competition rules.
type LeagueConfig struct {
	// WinPoints is the points a win is worth.
	WinPoints int `toml:"win_points"`
	// Overs is the default match length offered by the shell.
	Overs int `toml:"overs"`
}

// SourceConfig selects where the standings table is loaded from.
type SourceConfig struct {
	Kind string `toml:"kind"` // builtin, toml, html, postgres, sqlite
	Path string `toml:"path"`
	DSN  string `toml:"dsn"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `toml:"port"`
}

// Defaults returns a Config with every field set to a usable value.
func Defaults() Config {
	return Config{
		LogLevel: "info",
		League: LeagueConfig{
			WinPoints: league.DefaultWinPoints,
			Overs:     20,
		},
		Source: SourceConfig{Kind: store.KindBuiltin},
		Server: ServerConfig{Port: 8080},
	}
}

// Store converts the source section into a store.Source.
func (s SourceConfig) Store() store.Source {
	return store.Source{Kind: s.Kind, Path: s.Path, DSN: s.DSN}
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level: unknown level %q", c.LogLevel))
	}

	if c.League.WinPoints <= 0 {
		errs = append(errs, fmt.Errorf("league.win_points: must be positive, got %d", c.League.WinPoints))
	}
	if c.League.Overs <= 0 || c.League.Overs > league.MaxOvers {
		errs = append(errs, fmt.Errorf("league.overs: want 1-%d, got %d", league.MaxOvers, c.League.Overs))
	}

	switch c.Source.Kind {
	case store.KindBuiltin:
	case store.KindTOML, store.KindHTML:
		if c.Source.Path == "" {
			errs = append(errs, fmt.Errorf("source.path: required for %s source", c.Source.Kind))
		}
	case store.KindPostgres, store.KindSQLite:
		if c.Source.DSN == "" {
			errs = append(errs, fmt.Errorf("source.dsn: required for %s source", c.Source.Kind))
		}
	default:
		errs = append(errs, fmt.Errorf("source.kind: unknown kind %q", c.Source.Kind))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: out of range: %d", c.Server.Port))
	}

	return errors.Join(errs...)
}
