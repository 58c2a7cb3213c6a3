package app

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#e6e9ef"
	colorMuted   lipgloss.Color = "#8e95a6"
	colorMantle  lipgloss.Color = "#181926"
	colorSurface lipgloss.Color = "#2a2d3d"
	colorAccent  lipgloss.Color = "#8bd5a0"
	colorAccentB lipgloss.Color = "#8aadf4"
	colorWarn    lipgloss.Color = "#eed49f"
	colorDim     lipgloss.Color = "#5b6078"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	metaStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	hintStyle     = lipgloss.NewStyle().Foreground(colorDim)
	selectedStyle = lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Bold(true)

	chipStyle     = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface)
	chipDoneStyle = lipgloss.NewStyle().Foreground(colorAccent).Background(colorSurface)

	buttonStyle   = lipgloss.NewStyle().Foreground(colorAccentB).Bold(true)
	scoreStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	scoreWinStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	saveReadyStyle = lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Bold(true)
	saveIdleStyle  = lipgloss.NewStyle().Foreground(colorDim)

	listCursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	listDimStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	warnStyle       = lipgloss.NewStyle().Foreground(colorWarn)
)
