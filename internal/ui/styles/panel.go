package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns a rounded-border panel style using the theme's border
// colors, highlighted when focused.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
