// Package presets loads match-type presets from TOML. A preset names a
// sport or format and pins the target scores the sheet offers for it.
package presets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const defaultPresetsTOML = `version = 1

[preset.squash]
label = "Squash"
targets = [11, 15]
default_target = 11

[preset.badminton]
label = "Badminton"
targets = [21]
default_target = 21

[preset.table-tennis]
label = "Table Tennis"
targets = [11, 21]
default_target = 11
`

// Preset describes one match type.
type Preset struct {
	Label         string `toml:"label"`
	Targets       []int  `toml:"targets"`
	DefaultTarget int    `toml:"default_target"`
}

// File is the on-disk shape.
type File struct {
	Version int               `toml:"version"`
	Preset  map[string]Preset `toml:"preset"`
}

// Load reads presets from path, writing the default file first if none
// exists.
func Load(path string) (File, error) {
	if strings.TrimSpace(path) == "" {
		return File{}, fmt.Errorf("presets path is empty")
	}
	if err := ensureFile(path, defaultPresetsTOML); err != nil {
		return File{}, err
	}
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return File{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validate(f); err != nil {
		return File{}, fmt.Errorf("validate %s: %w", path, err)
	}
	return f, nil
}

// Names returns preset keys in stable order.
func (f File) Names() []string {
	names := make([]string, 0, len(f.Preset))
	for name := range f.Preset {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validate(f File) error {
	for name, p := range f.Preset {
		if len(p.Targets) == 0 {
			return fmt.Errorf("preset %q lists no targets", name)
		}
		found := false
		for _, t := range p.Targets {
			if t < 1 {
				return fmt.Errorf("preset %q: target %d out of range", name, t)
			}
			if t == p.DefaultTarget {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("preset %q: default_target %d not among targets", name, p.DefaultTarget)
		}
	}
	return nil
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create presets dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write default presets: %w", err)
	}
	return nil
}
