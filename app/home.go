package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/matchpad/core"
	"github.com/jask/matchpad/core/haptics"
	"github.com/jask/matchpad/core/score"
	"github.com/jask/matchpad/internal/database/repository"
)

// matchStore is the slice of MatchRepo the home screen needs.
type matchStore interface {
	Insert(ctx context.Context, m repository.Match) error
	List(ctx context.Context, limit int) ([]repository.Match, error)
	Delete(ctx context.Context, id string) error
}

// teamSuggester proposes known team names while typing.
type teamSuggester interface {
	Suggest(ctx context.Context, input string) (string, error)
}

type matchesLoadedMsg struct {
	matches []repository.Match
	err     error
}

type matchSavedMsg struct {
	err error
}

type suggestionMsg struct {
	forInput string
	name     string
}

// MatchSetup is the home screen's current sheet configuration: labels plus
// the target options a fresh session starts with.
type MatchSetup struct {
	Labels  MatchLabels
	Targets []int
	Default int
}

type homeScreen struct {
	store   matchStore
	teams   teamSuggester
	haptics haptics.Emitter

	setups   []MatchSetup
	setupIdx int

	// session survives non-destructive sheet dismissals
	session *score.Session

	matches []repository.Match
	cursor  int
	loadErr error

	editing    bool
	editTeamB  bool
	nameInput  textinput.Model
	suggestion string

	// optional, persists renamed teams back to the config file
	saveLabels func(MatchLabels) error

	dateFormat string
}

func newHomeScreen(store matchStore, teams teamSuggester, setups []MatchSetup, fb haptics.Emitter, dateFormat string) *homeScreen {
	if len(setups) == 0 {
		setups = []MatchSetup{{
			Labels:  MatchLabels{TeamA: "Us", TeamB: "Them"},
			Targets: []int{11, 15, 21},
			Default: 11,
		}}
	}
	if dateFormat == "" {
		dateFormat = "02/01"
	}
	input := textinput.New()
	input.Placeholder = "team name"
	input.CharLimit = 32
	input.Width = 24
	h := &homeScreen{
		store:      store,
		teams:      teams,
		haptics:    fb,
		setups:     setups,
		nameInput:  input,
		dateFormat: dateFormat,
	}
	h.session = newSessionFor(setups[0])
	return h
}

func newSessionFor(setup MatchSetup) *score.Session {
	if len(setup.Targets) == 1 {
		return score.NewSession(score.FixedTarget(setup.Targets[0]))
	}
	return score.NewSession(score.SelectableTarget(setup.Targets, setup.Default))
}

func (h *homeScreen) Title() string { return "Matches" }
func (h *homeScreen) Scope() string { return "screen:home" }

func (h *homeScreen) InitScreen() tea.Cmd {
	return h.loadCmd()
}

func (h *homeScreen) loadCmd() tea.Cmd {
	return func() tea.Msg {
		matches, err := h.store.List(context.Background(), 50)
		return matchesLoadedMsg{matches: matches, err: err}
	}
}

func (h *homeScreen) setup() MatchSetup { return h.setups[h.setupIdx] }

func (h *homeScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case matchesLoadedMsg:
		if msg.err != nil {
			h.loadErr = msg.err
			return h, core.ErrorCmd(msg.err), false
		}
		h.loadErr = nil
		h.matches = msg.matches
		if h.cursor >= len(h.matches) {
			h.cursor = max(0, len(h.matches)-1)
		}
		return h, nil, false
	case matchSavedMsg:
		if msg.err != nil {
			return h, core.ErrorCmd(fmt.Errorf("save match: %w", msg.err)), false
		}
		return h, tea.Batch(core.StatusCmd("Match saved"), h.loadCmd()), false
	case core.MatchRecordedMsg:
		return h, h.persistCmd(msg), false
	case core.SheetClosedMsg:
		switch {
		case msg.Cancelled:
			return h, core.StatusCmd("Sheet discarded"), false
		case msg.Saved:
			return h, nil, false
		default:
			return h, core.StatusCmd("Sheet closed, scores kept"), false
		}
	case suggestionMsg:
		// stale suggestions for superseded input are dropped
		if h.editing && msg.forInput == h.nameInput.Value() {
			h.suggestion = msg.name
		}
		return h, nil, false
	case tea.KeyMsg:
		if h.editing {
			return h.handleEditKey(msg)
		}
		return h.handleKey(msg)
	}
	return h, nil, false
}

// persistCmd writes a recorded match off the update loop.
func (h *homeScreen) persistCmd(msg core.MatchRecordedMsg) tea.Cmd {
	games := make([]repository.GameScore, len(msg.Games))
	id := uuid.NewString()
	for i, g := range msg.Games {
		games[i] = repository.GameScore{MatchID: id, Position: i + 1, TeamA: g.TeamA, TeamB: g.TeamB}
	}
	m := repository.Match{
		ID:        id,
		TeamA:     msg.TeamA,
		TeamB:     msg.TeamB,
		MatchType: msg.MatchType,
		Target:    msg.Target,
		PlayedAt:  time.Now(),
		Games:     games,
	}
	return func() tea.Msg {
		return matchSavedMsg{err: h.store.Insert(context.Background(), m)}
	}
}

func (h *homeScreen) handleKey(msg tea.KeyMsg) (core.Screen, tea.Cmd, bool) {
	switch msg.String() {
	case "up", "k":
		if h.cursor > 0 {
			h.cursor--
		}
		return h, nil, false
	case "down", "j":
		if h.cursor < len(h.matches)-1 {
			h.cursor++
		}
		return h, nil, false
	case "enter", "s":
		return h, h.openSheetCmd(), false
	case "w":
		return h, h.openWizardCmd(), false
	case "p":
		h.setupIdx = (h.setupIdx + 1) % len(h.setups)
		h.session = newSessionFor(h.setup())
		return h, core.StatusCmd(fmt.Sprintf("Match type: %s", h.setupLabel())), false
	case "d":
		return h.deleteSelected()
	case "e":
		return h.startEditing()
	case "r":
		return h, h.loadCmd(), false
	}
	return h, nil, false
}

func (h *homeScreen) startEditing() (core.Screen, tea.Cmd, bool) {
	h.editing = true
	h.editTeamB = false
	h.suggestion = ""
	h.nameInput.SetValue(h.setup().Labels.TeamA)
	h.nameInput.Focus()
	return h, textinput.Blink, false
}

func (h *homeScreen) handleEditKey(msg tea.KeyMsg) (core.Screen, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		h.editing = false
		h.nameInput.Blur()
		return h, nil, false
	case "tab":
		if h.suggestion != "" {
			h.nameInput.SetValue(h.suggestion)
			h.nameInput.CursorEnd()
			h.suggestion = ""
		}
		return h, nil, false
	case "enter":
		name := strings.TrimSpace(h.nameInput.Value())
		if name != "" {
			if h.editTeamB {
				h.setups[h.setupIdx].Labels.TeamB = name
			} else {
				h.setups[h.setupIdx].Labels.TeamA = name
			}
		}
		if h.editTeamB {
			h.editing = false
			h.nameInput.Blur()
			return h, tea.Batch(core.StatusCmd("Team names updated"), h.saveLabelsCmd()), false
		}
		h.editTeamB = true
		h.suggestion = ""
		h.nameInput.SetValue(h.setup().Labels.TeamB)
		h.nameInput.CursorEnd()
		return h, nil, false
	}
	var cmd tea.Cmd
	h.nameInput, cmd = h.nameInput.Update(msg)
	h.suggestion = ""
	return h, tea.Batch(cmd, h.suggestCmd(h.nameInput.Value())), false
}

// saveLabelsCmd persists the renamed teams off the update loop.
func (h *homeScreen) saveLabelsCmd() tea.Cmd {
	if h.saveLabels == nil {
		return nil
	}
	labels := h.setup().Labels
	return func() tea.Msg {
		if err := h.saveLabels(labels); err != nil {
			return core.StatusMsg{Text: fmt.Sprintf("save team names: %v", err), IsErr: true}
		}
		return nil
	}
}

// suggestCmd looks up the nearest known team name off the update loop.
func (h *homeScreen) suggestCmd(input string) tea.Cmd {
	if h.teams == nil || strings.TrimSpace(input) == "" {
		return nil
	}
	return func() tea.Msg {
		name, err := h.teams.Suggest(context.Background(), input)
		if err != nil || name == "" || name == input {
			return nil
		}
		return suggestionMsg{forInput: input, name: name}
	}
}

func (h *homeScreen) setupLabel() string {
	if t := h.setup().Labels.MatchType; t != "" {
		return t
	}
	return "default"
}

func (h *homeScreen) openSheetCmd() tea.Cmd {
	sheet := newSheetScreen(h.session, h.setup().Labels, h.haptics)
	return func() tea.Msg { return core.PushScreenMsg{Screen: sheet} }
}

func (h *homeScreen) openWizardCmd() tea.Cmd {
	wiz := newWizardScreen(h.setup().Labels, h.session.Target(), h.haptics)
	return func() tea.Msg { return core.PushScreenMsg{Screen: wiz} }
}

func (h *homeScreen) deleteSelected() (core.Screen, tea.Cmd, bool) {
	if h.cursor < 0 || h.cursor >= len(h.matches) {
		return h, nil, false
	}
	id := h.matches[h.cursor].ID
	return h, func() tea.Msg {
		if err := h.store.Delete(context.Background(), id); err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		matches, err := h.store.List(context.Background(), 50)
		return matchesLoadedMsg{matches: matches, err: err}
	}, false
}

func (h *homeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recent matches"))
	b.WriteString("  ")
	b.WriteString(metaStyle.Render(h.setupLabel()))
	b.WriteString("\n\n")

	if h.editing {
		prompt := "Team A"
		if h.editTeamB {
			prompt = "Team B"
		}
		b.WriteString(prompt + ": " + h.nameInput.View())
		if h.suggestion != "" {
			b.WriteString(hintStyle.Render("  tab: " + h.suggestion))
		}
		b.WriteString("\n\n")
	}

	if h.loadErr != nil {
		b.WriteString(warnStyle.Render("Could not load matches"))
		b.WriteString("\n")
	}
	if len(h.matches) == 0 && h.loadErr == nil {
		b.WriteString(listDimStyle.Render("No matches yet. Press s to score one, w for the wizard."))
		b.WriteString("\n")
	}
	rows := height - 4
	if rows < 1 {
		rows = 1
	}
	for i, m := range h.matches {
		if i >= rows {
			break
		}
		cursor := "  "
		line := h.matchLine(m)
		if i == h.cursor {
			cursor = listCursorStyle.Render("> ")
			line = scoreStyle.Render(line)
		} else {
			line = listDimStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (h *homeScreen) matchLine(m repository.Match) string {
	scores := make([]string, len(m.Games))
	for i, g := range m.Games {
		scores[i] = fmt.Sprintf("%d-%d", g.TeamA, g.TeamB)
	}
	label := m.MatchType
	if label == "" {
		label = fmt.Sprintf("to %d", m.Target)
	}
	return fmt.Sprintf("%s  %s %d-%d %s  (%s)  %s",
		m.PlayedAt.Format(h.dateFormat),
		m.TeamA, m.WinsA(), m.WinsB(), m.TeamB,
		strings.Join(scores, " "),
		label)
}
