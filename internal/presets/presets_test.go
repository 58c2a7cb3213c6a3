package presets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")

	f, err := Load(path)
	require.NoError(t, err)
	require.FileExists(t, path)
	require.Contains(t, f.Preset, "squash")
	require.Contains(t, f.Preset, "badminton")
	require.Equal(t, 21, f.Preset["badminton"].DefaultTarget)
}

func TestLoadCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	content := `version = 1

[preset.padel]
label = "Padel"
targets = [6]
default_target = 6
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"padel"}, f.Names())
	require.Equal(t, "Padel", f.Preset["padel"].Label)
}

func TestLoadRejectsBadDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	content := `version = 1

[preset.broken]
label = "Broken"
targets = [11]
default_target = 15
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "default_target")
}

func TestNamesStableOrder(t *testing.T) {
	f := File{Preset: map[string]Preset{
		"zeta":  {Targets: []int{11}, DefaultTarget: 11},
		"alpha": {Targets: []int{11}, DefaultTarget: 11},
	}}
	require.Equal(t, []string{"alpha", "zeta"}, f.Names())
}
