package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MATCHPAD_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Us", cfg.Match.TeamA)
	require.Equal(t, "Them", cfg.Match.TeamB)
	require.Equal(t, []int{11, 15, 21}, cfg.Match.Targets)
	require.Equal(t, 11, cfg.Match.DefaultTarget)
	require.NotEmpty(t, cfg.Database.Path)
	require.Equal(t, "02/01", cfg.UI.DateFormat)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[match]
team_a = "Sharks"
team_b = "Jets"
targets = [15]
default_target = 15

[database]
path = "/tmp/matchpad-test.db"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("MATCHPAD_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Sharks", cfg.Match.TeamA)
	require.Equal(t, "Jets", cfg.Match.TeamB)
	require.Equal(t, []int{15}, cfg.Match.Targets)
	require.Equal(t, "/tmp/matchpad-test.db", cfg.Database.Path)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MATCHPAD_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("MATCHPAD_MATCH_TEAM_A", "Visitors")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Visitors", cfg.Match.TeamA)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("MATCHPAD_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Match.TeamA = "Saved"
	require.NoError(t, Save(cfg))

	reloaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Saved", reloaded.Match.TeamA)
}
