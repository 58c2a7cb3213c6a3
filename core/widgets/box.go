package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box is a bordered section with an optional title.
type Box struct {
	Title    string
	Content  string
	Selected bool
}

func (b Box) Render(width, height int) string {
	if width < 4 {
		width = 4
	}
	border := lipgloss.Color("#4f5569")
	if b.Selected {
		border = lipgloss.Color("#8aadf4")
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2)
	content := b.Content
	if b.Title != "" {
		title := lipgloss.NewStyle().Bold(true).Render(b.Title)
		content = title + "\n" + content
	}
	out := style.Render(content)
	if height > 0 {
		out = clipLines(out, height)
	}
	return out
}

func clipLines(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// PadRight pads s with spaces to a display width, ANSI-aware.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
