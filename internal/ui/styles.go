package ui

import "github.com/charmbracelet/lipgloss"

// styles is the resolved palette for one theme. The model resolves it once
// at startup from the configured theme name.
type styles struct {
	accent      lipgloss.Color
	header      lipgloss.Style
	status      lipgloss.Style
	tableHeader lipgloss.Style
	row         lipgloss.Style
	muted       lipgloss.Style
	errText     lipgloss.Style
	activeDot   lipgloss.Style
	inactiveDot lipgloss.Style
}

// newStyles resolves a theme name to a palette. Anything other than "light"
// gets the dark palette.
func newStyles(theme string) styles {
	accent := lipgloss.Color("#58a6ff")
	fg := lipgloss.Color("#c9d1d9")
	bg := lipgloss.Color("#161b22")
	mutedColor := lipgloss.Color("#8b949e")
	errColor := lipgloss.Color("#f85149")
	dimColor := lipgloss.Color("#30363d")

	if theme == "light" {
		accent = lipgloss.Color("#0969da")
		fg = lipgloss.Color("#1f2328")
		bg = lipgloss.Color("#eaeef2")
		mutedColor = lipgloss.Color("#57606a")
		errColor = lipgloss.Color("#cf222e")
		dimColor = lipgloss.Color("#d0d7de")
	}

	return styles{
		accent: accent,
		header: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Bold(true),
		status: lipgloss.NewStyle().
			Foreground(mutedColor).
			Background(bg),
		tableHeader: lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true),
		row:         lipgloss.NewStyle().Foreground(fg),
		muted:       lipgloss.NewStyle().Foreground(mutedColor),
		errText:     lipgloss.NewStyle().Foreground(errColor).Bold(true),
		activeDot:   lipgloss.NewStyle().Foreground(accent),
		inactiveDot: lipgloss.NewStyle().Foreground(dimColor),
	}
}
