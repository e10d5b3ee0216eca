package tui

import "github.com/charmbracelet/lipgloss"

// Style sheet for the questionnaire. Kept in one place so the screens
// stay visually consistent.
var (
	ColorPrimary = lipgloss.Color("42")  // emerald
	ColorDanger  = lipgloss.Color("196") // red
	ColorMuted   = lipgloss.Color("245")
	ColorBorder  = lipgloss.Color("240")

	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	UnselectedItemStyle = lipgloss.NewStyle()

	SubTextStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NoteStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	EstimateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	OwingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ResultsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 3)
)
