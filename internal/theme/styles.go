package theme

import "github.com/charmbracelet/lipgloss"

// PromptStyle renders prompt titles
var PromptStyle = lipgloss.NewStyle().
	Foreground(ColorPrompt)
