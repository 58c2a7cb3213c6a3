package core

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#e6e9ef"
	colorMuted   lipgloss.Color = "#8e95a6"
	colorBorder  lipgloss.Color = "#4f5569"
	colorMantle  lipgloss.Color = "#181926"
	colorSurface lipgloss.Color = "#2a2d3d"
	colorAccent  lipgloss.Color = "#8bd5a0"
	colorAccentB lipgloss.Color = "#8aadf4"
	colorWarn    lipgloss.Color = "#eed49f"
	colorError   lipgloss.Color = "#ed8796"
	colorDim     lipgloss.Color = "#5b6078"
)
