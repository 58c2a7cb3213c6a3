package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorMantle)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface)
	flashLightBarStyle = lipgloss.NewStyle().
				Foreground(colorMantle).
				Background(colorAccentB)
	flashMediumBarStyle = lipgloss.NewStyle().
				Foreground(colorMantle).
				Background(colorWarn)
	flashSuccessBarStyle = lipgloss.NewStyle().
				Foreground(colorMantle).
				Background(colorAccent).
				Bold(true)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
