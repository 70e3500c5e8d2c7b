package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette for the monitor.
type Theme struct {
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Dim     lipgloss.Color
	Text    lipgloss.Color
}

// DefaultTheme is a dark palette.
var DefaultTheme = Theme{
	Accent:  lipgloss.Color("#7aa2f7"),
	Success: lipgloss.Color("#9ece6a"),
	Error:   lipgloss.Color("#f7768e"),
	Dim:     lipgloss.Color("#565f89"),
	Text:    lipgloss.Color("#c0caf5"),
}

// Styles holds the pre-built lipgloss styles used by the views.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Value    lipgloss.Style
	Error    lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	KeyHint  lipgloss.Style
}

// NewStyles builds the styles for a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Header:   lipgloss.NewStyle().Foreground(t.Dim).Bold(true),
		Row:      lipgloss.NewStyle().Foreground(t.Text),
		Selected: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Value:    lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Dim:      lipgloss.NewStyle().Foreground(t.Dim),
		Status:   lipgloss.NewStyle().Foreground(t.Dim).Italic(true),
		KeyHint:  lipgloss.NewStyle().Foreground(t.Dim),
	}
}
