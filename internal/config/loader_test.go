package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nrr.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, Defaults(), *cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[league]
overs = 50

[source]
kind = "sqlite"
dsn = "/var/lib/nrr/standings.db"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 50, cfg.League.Overs)
	assert.Equal(t, 2, cfg.League.WinPoints)
	assert.Equal(t, "sqlite", cfg.Source.Kind)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NRR_SERVER_PORT", "9090")
	t.Setenv("NRR_SOURCE_KIND", "toml")
	t.Setenv("NRR_SOURCE_PATH", "standings.toml")
	t.Setenv("NRR_LEAGUE_WIN_POINTS", "not-a-number")

	cfg, err := Load(writeConfig(t, "[server]\nport = 7000\n"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "toml", cfg.Source.Kind)
	assert.Equal(t, "standings.toml", cfg.Source.Path)
	assert.Equal(t, 2, cfg.League.WinPoints)
}

func TestLoadRejectsBadTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "log_level = \n"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("bad!key=1\n"), 0o644))
	chdir(t, dir)

	_, err := Load("")
	assert.ErrorContains(t, err, ".env")
}

func TestLoadWithoutDotEnv(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.LogLevel = "loud"
	cfg.League.WinPoints = 0
	cfg.League.Overs = 51
	cfg.Source = SourceConfig{Kind: "html"}
	cfg.Server.Port = 70000

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"log_level", "league.win_points", "league.overs", "source.path", "server.port"} {
		assert.ErrorContains(t, err, want)
	}

	cfg = Defaults()
	cfg.Source = SourceConfig{Kind: "postgres"}
	assert.ErrorContains(t, cfg.Validate(), "source.dsn")

	cfg.Source = SourceConfig{Kind: "carrier-pigeon"}
	assert.ErrorContains(t, cfg.Validate(), "source.kind")
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
