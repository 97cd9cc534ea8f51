package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title        *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Countdown    *lipgloss.Style
	Expiring     *lipgloss.Style
}

// expiringThreshold is the remaining-seconds value at and below which the
// countdown switches to the Expiring style.
const expiringThreshold = 3

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")),
	),
	Countdown: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Expiring: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// CountdownStyle picks the style for the given remaining seconds.
func (s *Styles) CountdownStyle(remaining int) *lipgloss.Style {
	if remaining <= expiringThreshold && s.Expiring != nil {
		return s.Expiring
	}
	return s.Countdown
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
