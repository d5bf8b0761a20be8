// Package style defines the terminal styling for stagehand's command
// output: the path inspection listing and the abort reports.
//
// Colors are adaptive so output reads well on light and dark terminals.
// Rendering degrades to plain text when stdout is not a terminal or the
// terminal reports no color support.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1a1a8c", Dark: "#8ab4ff"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#e6e6e6"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#8a8a8a"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#b00020", Dark: "#ff6b6b"}
	WarnColor    = lipgloss.AdaptiveColor{Light: "#8a6d00", Dark: "#ffd866"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#00567a", Dark: "#7adcff"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarnColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
