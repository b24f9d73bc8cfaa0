package view

import (
	"github.com/charmbracelet/lipgloss"

	"storefront/cmd/storefront/models"
)

var (
	colorSuccess = lipgloss.Color("#8BC34A")
	colorPending = lipgloss.Color("#FFC107")
	colorFailed  = lipgloss.Color("#e53935")
	colorNeutral = lipgloss.Color("#7a8494")
	colorMuted   = lipgloss.Color("#9aa3b2")
	colorAccent  = lipgloss.Color("#2196F3")
)

// Styles groups the lipgloss styles of the order history screen.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Row    lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Empty  lipgloss.Style
	Hint   lipgloss.Style

	badges map[string]lipgloss.Style
}

func DefaultStyles() Styles {
	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		Header: lipgloss.NewStyle().Bold(true).Foreground(colorMuted),
		Row:    lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Foreground(colorMuted),
		Error: lipgloss.NewStyle().
			Foreground(colorFailed).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFailed).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().Foreground(colorMuted).Padding(1, 0),
		Hint:  lipgloss.NewStyle().Foreground(colorMuted).Italic(true),

		badges: map[string]lipgloss.Style{
			models.CategorySuccess: badge.Foreground(colorSuccess),
			models.CategoryPending: badge.Foreground(colorPending),
			models.CategoryFailed:  badge.Foreground(colorFailed),
			models.CategoryNeutral: badge.Foreground(colorNeutral),
		},
	}
}

// Badge renders a status label as icon plus text, colored by its visual
// category. Unknown labels come out neutral, never as an error.
func (s Styles) Badge(status string) string {
	style, ok := s.badges[models.VisualCategory(status)]
	if !ok {
		style = s.badges[models.CategoryNeutral]
	}
	return style.Render(models.IconFor(status) + " " + status)
}
