// Package cli renders the regulation report as styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#4ECDC4") // Teal
	// AllowedColor marks US-allowed substances.
	AllowedColor = lipgloss.Color("#95E1D3") // Light teal
	// ProhibitedColor marks US-prohibited substances.
	ProhibitedColor = lipgloss.Color("#FF6B6B") // Red
	// NotListedColor marks substances absent from the US dataset.
	NotListedColor = lipgloss.Color("#FFE66D") // Yellow
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#333"))

	// AllowedStyle formats the Allowed status.
	AllowedStyle = lipgloss.NewStyle().
			Foreground(AllowedColor)

	// ProhibitedStyle formats the Prohibited status.
	ProhibitedStyle = lipgloss.NewStyle().
			Foreground(ProhibitedColor)

	// NotListedStyle formats the Not Listed status.
	NotListedStyle = lipgloss.NewStyle().
			Foreground(NotListedColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoxStyle is used for the key-findings box.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// Icons.
const (
	FlaskIcon = "🧪"
	ChartIcon = "📊"
	TableIcon = "📋"
)

// FormatTitle formats a section title with the flask icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(FlaskIcon + " " + title)
}

// RenderBox renders content in a styled box with a title.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	return BoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	))
}
