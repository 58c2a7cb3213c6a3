package core

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/matchpad/core/haptics"
	"github.com/jask/matchpad/core/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := m.renderHeader()
	status := m.renderStatusBar()
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	body := ""
	if bodyHeight > 0 {
		body = m.home.View(max(1, m.width-2), bodyHeight)
		if top := m.screens.Top(); top != nil {
			if overlay, ok := top.(OverlayRenderer); ok {
				body = overlay.RenderOverlay(body, m.width-2, bodyHeight)
			} else {
				popup := top.View(max(20, m.width-12), max(8, bodyHeight-4))
				body = widgets.RenderPopup(body, popup, m.width-2, bodyHeight)
			}
		}
	}
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func (m Model) renderHeader() string {
	left := headerAppStyle.Render("MatchPad")
	right := headerMetaStyle.Render(m.foregroundTitle())
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func (m Model) foregroundTitle() string {
	if top := m.screens.Top(); top != nil {
		return top.Title()
	}
	return m.home.Title()
}

func (m Model) renderStatusBar() string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg, colorSurface)
	}
	if m.flash != nil {
		if p, ok := m.flash.Active(time.Now()); ok {
			style, bg := pulseBarStyle(p)
			return renderBar(style, max(1, m.width), msg, bg)
		}
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface)
}

func pulseBarStyle(p haptics.Pulse) (lipgloss.Style, lipgloss.TerminalColor) {
	switch p {
	case haptics.Medium:
		return flashMediumBarStyle, colorWarn
	case haptics.Success:
		return flashSuccessBarStyle, colorAccent
	default:
		return flashLightBarStyle, colorAccentB
	}
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
