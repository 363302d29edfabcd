package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// ColorPrompt is used for the key binding hints above the device list
const ColorPrompt Color = "4" // Blue
