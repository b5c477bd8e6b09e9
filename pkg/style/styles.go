// Package style holds the lipgloss palette shared by robe's terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/robe/pkg/types"
)

// Base styles
var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(Wardrobe.Heading).
			Bold(true)

	// Text styles
	MutedStyle = lipgloss.NewStyle().
			Foreground(Wardrobe.Muted)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Wardrobe.Clean).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Wardrobe.Missing).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Wardrobe.Drift).
			Bold(true)

	// Frame around viewed files
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Wardrobe.Frame).
			Padding(0, 1)

	// List styles
	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	// Names and paths
	TargetStyle = lipgloss.NewStyle().
			Foreground(Wardrobe.Target).
			Bold(true)

	ProfileStyle = lipgloss.NewStyle().
			Foreground(Wardrobe.Profile).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(Wardrobe.Path).
			Italic(true)
)

// StateStyle returns the style used for a status state
func StateStyle(state types.TargetState) lipgloss.Style {
	switch state {
	case types.StateClean:
		return SuccessStyle
	case types.StateModified:
		return WarningStyle
	case types.StateMissing:
		return ErrorStyle
	default:
		return MutedStyle
	}
}
