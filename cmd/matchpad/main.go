package main

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/matchpad/app"
	"github.com/jask/matchpad/internal/config"
	"github.com/jask/matchpad/internal/database"
	"github.com/jask/matchpad/internal/database/repository"
	"github.com/jask/matchpad/internal/presets"
	"github.com/jask/matchpad/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if cfg.Database.MigrationsPath != "" {
		if err := database.RunMigrationsWithDB(db, cfg.Database.MigrationsPath); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	} else if err := database.InitSchema(db); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	pf, err := presets.Load(cfg.Match.PresetsPath)
	if err != nil {
		log.Fatalf("presets: %v", err)
	}

	matches := repository.NewMatchRepo(db)
	teams := &service.Teams{Matches: matches}
	saveLabels := func(l app.MatchLabels) error {
		cfg.Match.TeamA = l.TeamA
		cfg.Match.TeamB = l.TeamB
		return config.Save(cfg)
	}
	model := app.BuildApp(matches, teams, app.SetupsFrom(cfg, pf), cfg.UI.DateFormat, saveLabels)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
