package style

import "github.com/charmbracelet/lipgloss"

var (
	Text  = lipgloss.Color("#cdd6f4")
	Green = lipgloss.Color("#a6e3a1")
	Red   = lipgloss.Color("#f38ba8")

	SuccessColor = Green
	ErrorColor   = Red
)
