package report

import "github.com/charmbracelet/lipgloss"

var (
	headingColor = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#f0f0f0"}
	successColor = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	warningColor = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	pathColor    = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
)

type styles struct {
	title   lipgloss.Style
	name    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
	path    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Foreground(headingColor).Bold(true),
		name:    r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(successColor).Bold(true),
		warning: r.NewStyle().Foreground(warningColor).Bold(true),
		muted:   r.NewStyle().Foreground(mutedColor),
		path:    r.NewStyle().Foreground(pathColor).Italic(true),
	}
}

// ErrorStyle renders fatal error messages on the command line
var ErrorStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
