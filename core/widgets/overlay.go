// Package widgets holds low-level rendering primitives: ANSI-aware overlay
// compositing and the framed card used by popups and the score sheet.
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup centres popup over base inside a rounded card.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(popup)
	cardLines := splitToLines(card, 0)
	cardWidth := maxLineWidth(cardLines)
	cardHeight := len(cardLines)
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-cardHeight)/2)
	return overlayAt(fitCanvas(base, width, height), card, x, y, width, height)
}

// RenderSheet composites a bottom sheet over base. offsetRows pushes the
// sheet down toward (and past) the bottom edge; opacity in [0,1] dims the
// backdrop, tracking the sheet's travel.
func RenderSheet(base, sheet string, width, height, offsetRows int, opacity float64) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := fitCanvas(dimBackdrop(base, opacity), width, height)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#4f5569")).
		Padding(0, 1).
		Render(sheet)
	cardLines := splitToLines(card, 0)
	cardWidth := maxLineWidth(cardLines)
	cardHeight := len(cardLines)
	if cardWidth <= 0 || cardHeight <= 0 {
		return canvas
	}
	x := max(0, (width-cardWidth)/2)
	y := height - cardHeight + max(0, offsetRows)
	if y < 0 {
		y = 0
	}
	return overlayAt(canvas, card, x, y, width, height)
}

// dimBackdrop fades the base view as the sheet covers it. Below half
// opacity the base shows through untouched; above it the base is redrawn
// in a muted tone.
func dimBackdrop(base string, opacity float64) string {
	if opacity < 0.5 {
		return base
	}
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#5b6078"))
	lines := strings.Split(base, "\n")
	for i, line := range lines {
		lines[i] = dim.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(overlay, 0)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		leftWidth := ansi.StringWidth(left)
		if leftWidth < x {
			left += strings.Repeat(" ", x-leftWidth)
		}

		overlayLine := padRightANSI(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := ""
		if width > 0 {
			right = dropColumns(target, pos)
			rightWidth := ansi.StringWidth(right)
			if gap := width - pos - rightWidth; gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}
		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
