package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Theme groups the styles used for terminal output
type Theme struct {
	// Diagnostic styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Note    lipgloss.Style
	Gutter  lipgloss.Style
	Marker  lipgloss.Style
	Help    lipgloss.Style

	// Token and tree styles
	Position lipgloss.Style
	Kind     lipgloss.Style
	Literal  lipgloss.Style
	Operator lipgloss.Style
	Node     lipgloss.Style

	// Result styles
	Source lipgloss.Style
	Arrow  lipgloss.Style
	Value  lipgloss.Style
}

// DefaultTheme returns the colored theme
func DefaultTheme() Theme {
	return Theme{
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError),

		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent),

		Note: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),

		Gutter: lipgloss.NewStyle().
			Foreground(colorPrimary),

		Marker: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError),

		Help: lipgloss.NewStyle().
			Foreground(colorSecondary),

		Position: lipgloss.NewStyle().
			Foreground(colorMuted),

		Kind: lipgloss.NewStyle().
			Foreground(colorPrimary),

		Literal: lipgloss.NewStyle().
			Foreground(colorAccent),

		Operator: lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true),

		Node: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true),

		Source: lipgloss.NewStyle().
			Foreground(colorFg),

		Arrow: lipgloss.NewStyle().
			Foreground(colorMuted),

		Value: lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true),
	}
}
