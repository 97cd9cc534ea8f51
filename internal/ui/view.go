package ui

import (
	"fmt"

	"github.com/atomicstack/bootmenu/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var styles = theme.Default()

// Frame is everything one screen of the menu depends on.
type Frame struct {
	Title     string
	Labels    []string
	Cursor    int
	Remaining int
}

// Render draws f centred in a width x height screen. Non-positive dimensions
// return the unplaced block.
func Render(f Frame, width, height int) string {
	lines := make([]string, 0, len(f.Labels)+4)
	lines = append(lines, styles.Title.Render(fit(f.Title, width)), "")
	for i, label := range f.Labels {
		style := styles.Item
		if i == f.Cursor {
			style = styles.SelectedItem
		}
		lines = append(lines, style.Render(fit(" "+label+" ", width)))
	}
	countdown := fmt.Sprintf("Timeout %ds", f.Remaining)
	lines = append(lines, "", styles.CountdownStyle(f.Remaining).Render(countdown))

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func fit(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
