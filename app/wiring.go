// Package app assembles the screens over the core runtime: the home list,
// the interactive score sheet, and the quick-entry wizard.
package app

import (
	"github.com/jask/matchpad/core"
	"github.com/jask/matchpad/internal/config"
	"github.com/jask/matchpad/internal/presets"
)

// defaultBindings feeds the footer hint line; the screens do their own key
// handling.
func defaultBindings() []core.KeyBinding {
	return []core.KeyBinding{
		{Keys: []string{"s", "enter"}, Action: "sheet", Description: "score", Scopes: []string{"screen:home"}},
		{Keys: []string{"w"}, Action: "wizard", Description: "quick entry", Scopes: []string{"screen:home"}},
		{Keys: []string{"p"}, Action: "preset", Description: "match type", Scopes: []string{"screen:home"}},
		{Keys: []string{"e"}, Action: "teams", Description: "team names", Scopes: []string{"screen:home"}},
		{Keys: []string{"d"}, Action: "delete", Description: "delete", Scopes: []string{"screen:home"}},
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"screen:home"}},
		{Keys: []string{"."}, Action: "inc-a", Description: "+us", Scopes: []string{"screen:sheet"}},
		{Keys: []string{"m"}, Action: "inc-b", Description: "+them", Scopes: []string{"screen:sheet"}},
		{Keys: []string{"a"}, Action: "add-game", Description: "add game", Scopes: []string{"screen:sheet"}},
		{Keys: []string{"x"}, Action: "remove-game", Description: "remove", Scopes: []string{"screen:sheet"}},
		{Keys: []string{"s"}, Action: "save", Description: "save", Scopes: []string{"screen:sheet"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:sheet"}},
		{Keys: []string{"w"}, Action: "win", Description: "win", Scopes: []string{"screen:wizard"}},
		{Keys: []string{"l"}, Action: "loss", Description: "loss", Scopes: []string{"screen:wizard"}},
		{Keys: []string{"q"}, Action: "discard", Description: "discard", Scopes: []string{"screen:wizard"}},
	}
}

// SetupsFrom merges the config defaults with the preset file into the
// match setups the home screen cycles through. The config's own targets
// come first.
func SetupsFrom(cfg config.Config, pf presets.File) []MatchSetup {
	setups := []MatchSetup{{
		Labels:  MatchLabels{TeamA: cfg.Match.TeamA, TeamB: cfg.Match.TeamB},
		Targets: cfg.Match.Targets,
		Default: cfg.Match.DefaultTarget,
	}}
	for _, name := range pf.Names() {
		p := pf.Preset[name]
		label := p.Label
		if label == "" {
			label = name
		}
		setups = append(setups, MatchSetup{
			Labels: MatchLabels{
				TeamA:     cfg.Match.TeamA,
				TeamB:     cfg.Match.TeamB,
				MatchType: label,
			},
			Targets: p.Targets,
			Default: p.DefaultTarget,
		})
	}
	return setups
}

// BuildApp wires the home screen into the root model. saveLabels may be nil
// when renamed teams should not be written back anywhere.
func BuildApp(store matchStore, teams teamSuggester, setups []MatchSetup, dateFormat string, saveLabels func(MatchLabels) error) core.Model {
	keys := core.NewKeyRegistry(defaultBindings())
	flash := core.NewFlasher()
	home := newHomeScreen(store, teams, setups, flash.Emitter(), dateFormat)
	home.saveLabels = saveLabels
	return core.NewModel(home, keys).WithFlash(flash)
}
