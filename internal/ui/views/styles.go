package views

import (
	"github.com/charmbracelet/lipgloss"

	"coco/internal/config"
)

// Styles contains the style definitions for the selector
type Styles struct {
	Prompt  lipgloss.Style
	Query   lipgloss.Style
	Line    lipgloss.Style
	Cursor  lipgloss.Style
	Invalid lipgloss.Style
}

// NewStyles creates styles from the configured colors
func NewStyles(settings config.StyleSettings) *Styles {
	return &Styles{
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(settings.PromptFg)),
		Query: lipgloss.NewStyle(),
		Line:  lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(settings.CursorFg)).
			Background(lipgloss.Color(settings.CursorBg)).
			Reverse(settings.CursorBg == ""),
		Invalid: lipgloss.NewStyle().Foreground(lipgloss.Color(settings.ErrorFg)), // red
	}
}
