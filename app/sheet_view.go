package app

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/matchpad/core/score"
	"github.com/jask/matchpad/core/widgets"
)

// The sheet body is a fixed grid. Column constants below describe the row
// text produced by the render functions; controlAt trusts them, so any
// layout change has to touch both sides.
const (
	sheetContentW    = 44
	sheetContentRows = 7

	rowTitle = 0
	rowChips = 1
	rowTeamA = 3
	rowTeamB = 4
	rowSave  = 6

	chipCellW = 8
	decCol    = 12
	scoreCol  = 19
	incCol    = 26
	buttonW   = 5
	saveW     = 8
)

func (s *sheetScreen) sheetRows() int { return sheetContentRows + 2 }

// offsetRows converts the dismiss travel from units into whole rows of
// downward displacement.
func (s *sheetScreen) offsetRows() int {
	return int(math.Round(s.dismiss.Offset() / unitsPerRow))
}

// sheetGeom locates the card in window coordinates. The card is drawn by
// widgets.RenderSheet inside the body region, which starts under the
// header and status bars and is two columns narrower than the window.
type sheetGeom struct {
	cardX int
	cardY int
	cardW int
	cardH int
}

func (s *sheetScreen) geom() sheetGeom {
	bodyW := max(1, s.width-2)
	bodyH := max(0, s.height-3)
	cardW := sheetContentW + 4
	cardH := s.sheetRows()
	return sheetGeom{
		cardX: max(0, (bodyW-cardW)/2),
		cardY: 2 + bodyH - cardH + s.offsetRows(),
		cardW: cardW,
		cardH: cardH,
	}
}

// controlAt maps a window cell to the control under it.
func (s *sheetScreen) controlAt(x, y int) (sheetControl, int) {
	if y < 2 || y >= s.height-1 {
		return controlNone, -1
	}
	g := s.geom()
	if x < g.cardX || x >= g.cardX+g.cardW || y < g.cardY || y >= g.cardY+g.cardH {
		return controlBackdrop, -1
	}
	cx := x - g.cardX - 2
	cy := y - g.cardY - 1
	if cx < 0 || cx >= sheetContentW || cy < 0 || cy >= sheetContentRows {
		return controlBody, -1
	}
	switch cy {
	case rowChips:
		n := len(s.session.Games())
		if cell := cx / chipCellW; cell < n && cx%chipCellW < chipCellW-1 {
			return controlChip, cell
		}
		if addCol := n * chipCellW; cx >= addCol && cx < addCol+3 {
			return controlAdd, -1
		}
	case rowTeamA:
		if ctl := scoreButtonAt(cx, controlIncA, controlDecA); ctl != controlNone {
			return ctl, -1
		}
	case rowTeamB:
		if ctl := scoreButtonAt(cx, controlIncB, controlDecB); ctl != controlNone {
			return ctl, -1
		}
	case rowSave:
		if cx < saveW {
			return controlSave, -1
		}
	}
	return controlBody, -1
}

func scoreButtonAt(cx int, inc, dec sheetControl) sheetControl {
	switch {
	case cx >= decCol && cx < decCol+buttonW:
		return dec
	case cx >= incCol && cx < incCol+buttonW:
		return inc
	}
	return controlNone
}

func (s *sheetScreen) View(width, height int) string {
	rows := make([]string, sheetContentRows)
	rows[rowTitle] = s.renderTitle()
	rows[rowChips] = s.renderChips()
	rows[rowTeamA] = s.renderScoreRow(s.labels.TeamA, true)
	rows[rowTeamB] = s.renderScoreRow(s.labels.TeamB, false)
	rows[rowSave] = s.renderSaveRow()
	for i, row := range rows {
		rows[i] = padTo(row, sheetContentW)
	}
	return strings.Join(rows, "\n")
}

func (s *sheetScreen) RenderOverlay(base string, width, height int) string {
	return widgets.RenderSheet(base, s.View(width, height), width, height,
		s.offsetRows(), s.dismiss.Opacity())
}

func (s *sheetScreen) renderTitle() string {
	left := titleStyle.Render(s.labels.TeamA + " vs " + s.labels.TeamB)
	right := metaStyle.Render(fmt.Sprintf("to %d", s.session.Target()))
	gap := sheetContentW - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		left = ansi.Truncate(left, sheetContentW-ansi.StringWidth(right)-1, "")
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *sheetScreen) renderChips() string {
	games := s.session.Games()
	target := s.session.Target()
	var b strings.Builder
	for i, g := range games {
		cell := centerIn(fmt.Sprintf("%d-%d", g.TeamA, g.TeamB), chipCellW-1)
		if shift := s.chipShift(g.ID); shift > 0 {
			if shift >= len(cell) {
				cell = strings.Repeat(" ", chipCellW-1)
			} else {
				cell = cell[shift:] + strings.Repeat(" ", shift)
			}
		}
		switch {
		case i == s.session.CurrentIndex():
			b.WriteString(selectedStyle.Render(cell))
		case g.Complete(target):
			b.WriteString(chipDoneStyle.Render(cell))
		default:
			b.WriteString(chipStyle.Render(cell))
		}
		b.WriteString(" ")
	}
	if len(games) < score.MaxGames {
		b.WriteString(buttonStyle.Render("[+]"))
	}
	return b.String()
}

// chipShift is the chip's swipe displacement in columns, toward the left.
func (s *sheetScreen) chipShift(id string) int {
	sw, ok := s.swipes[id]
	if !ok {
		return 0
	}
	return int(-sw.Offset()/unitsPerCol + 0.5)
}

func (s *sheetScreen) renderScoreRow(label string, teamA bool) string {
	game := s.session.Current()
	own, other := game.TeamA, game.TeamB
	if !teamA {
		own, other = game.TeamB, game.TeamA
	}
	target := s.session.Target()

	name := padTo(metaStyle.Render(ansi.Truncate(label, decCol-1, "")), decCol)
	dec := buttonStyle.Render("[ - ]")
	scoreText := fmt.Sprintf("%4d", own)
	if game.Complete(target) && own > other {
		scoreText = scoreWinStyle.Render(scoreText)
	} else {
		scoreText = scoreStyle.Render(scoreText)
	}
	inc := buttonStyle.Render("[ + ]")

	pad1 := strings.Repeat(" ", scoreCol-decCol-buttonW)
	pad2 := strings.Repeat(" ", incCol-scoreCol-4)
	return name + dec + pad1 + scoreText + pad2 + inc
}

func (s *sheetScreen) renderSaveRow() string {
	save := saveIdleStyle.Render("[ Save ]")
	if s.session.Savable() && !s.saving {
		save = saveReadyStyle.Render("[ Save ]")
	}
	hints := hintStyle.Render("esc close  q discard  x remove")
	gap := sheetContentW - saveW - ansi.StringWidth(hints)
	if gap < 1 {
		gap = 1
	}
	return padTo(save, saveW) + strings.Repeat(" ", gap-1) + " " + hints
}

func centerIn(text string, width int) string {
	if len(text) >= width {
		return text[:width]
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}

func padTo(text string, width int) string {
	if w := ansi.StringWidth(text); w < width {
		return text + strings.Repeat(" ", width-w)
	}
	return text
}
