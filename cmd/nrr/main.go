// Command nrr works out the match result a cricket team needs to climb the
// points table on net run rate.
//
// Usage:
//
//	nrr [-config nrr.toml] [ask|table|serve|seed]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/utakatalp/nrr-simulator/internal/config"
	"github.com/utakatalp/nrr-simulator/internal/league"
	"github.com/utakatalp/nrr-simulator/internal/server"
	"github.com/utakatalp/nrr-simulator/internal/shell"
	"github.com/utakatalp/nrr-simulator/internal/store"
)

func main() {
	configPath := flag.String("config", "nrr.toml", "path to configuration file")
	seedFrom := flag.String("from", "", "seed: TOML or HTML standings file (default: built-in table)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [ask|table|serve|seed]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cmd := "ask"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config",
			slog.String("path", *configPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger := newLogger(cmd, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cmd, cfg, *seedFrom, logger); err != nil {
		logger.Error("nrr failed", slog.String("command", cmd), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, cfg *config.Config, seedFrom string, logger *slog.Logger) error {
	if cmd == "seed" {
		return seed(ctx, cfg, seedFrom, logger)
	}

	table, err := store.Load(ctx, cfg.Source.Store())
	if err != nil {
		return err
	}
	logger.Debug("standings loaded",
		slog.String("source", cfg.Source.Store().String()),
		slog.Int("teams", len(table)),
	)

	switch cmd {
	case "ask":
		sh := shell.New(os.Stdin, os.Stdout, table, cfg.League.WinPoints, cfg.League.Overs, logger)
		return sh.Run(ctx)
	case "table":
		league.PrintTable(os.Stdout, "Points Table", table)
		return nil
	case "serve":
		return serve(ctx, cfg, table, logger)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func serve(ctx context.Context, cfg *config.Config, table league.Table, logger *slog.Logger) error {
	srv := server.New(cfg.Server.Port, server.NewHandler(table, cfg.League.WinPoints, logger), logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func seed(ctx context.Context, cfg *config.Config, from string, logger *slog.Logger) error {
	var (
		teams []*league.Team
		err   error
	)
	switch strings.ToLower(filepath.Ext(from)) {
	case "":
		teams = store.Builtin()
	case ".toml":
		teams, err = store.LoadTOML(from)
	case ".html", ".htm":
		teams, err = store.LoadHTML(from)
	default:
		return fmt.Errorf("seed: cannot read %s, want .toml or .html", from)
	}
	if err != nil {
		return err
	}
	// Validate before writing anything.
	if _, err := league.CalculateTable(teams); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	if err := store.Seed(ctx, cfg.Source.Store(), teams); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	logger.Info("standings seeded",
		slog.String("source", cfg.Source.Store().String()),
		slog.Int("teams", len(teams)),
	)
	return nil
}

// newLogger logs JSON to stdout for the server and text to stderr for the
// interactive commands, so prompts stay readable.
func newLogger(cmd, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if cmd == "serve" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
