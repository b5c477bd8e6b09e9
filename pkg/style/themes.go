package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette names the colours robe output uses, by what they mark
type Palette struct {
	Heading lipgloss.AdaptiveColor // titles such as "Robes for tmux:"
	Target  lipgloss.AdaptiveColor
	Profile lipgloss.AdaptiveColor
	Path    lipgloss.AdaptiveColor
	Clean   lipgloss.AdaptiveColor // real path matches the active profile
	Drift   lipgloss.AdaptiveColor // real path modified since activation
	Missing lipgloss.AdaptiveColor // real path gone, also used for errors
	Muted   lipgloss.AdaptiveColor
	Frame   lipgloss.AdaptiveColor // border around viewed files
}

// Wardrobe is the default palette: warm fabric tones on light terminals,
// brighter variants on dark ones
var Wardrobe = Palette{
	Heading: lipgloss.AdaptiveColor{Light: "#2D2A32", Dark: "#EDE7E3"},
	Target:  lipgloss.AdaptiveColor{Light: "#1F5F8B", Dark: "#6CB4EE"},
	Profile: lipgloss.AdaptiveColor{Light: "#7A3E9D", Dark: "#C39BD3"},
	Path:    lipgloss.AdaptiveColor{Light: "#5D6D7E", Dark: "#AAB7B8"},
	Clean:   lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#58D68D"},
	Drift:   lipgloss.AdaptiveColor{Light: "#B9770E", Dark: "#F5B041"},
	Missing: lipgloss.AdaptiveColor{Light: "#B03A2E", Dark: "#EC7063"},
	Muted:   lipgloss.AdaptiveColor{Light: "#808B96", Dark: "#85929E"},
	Frame:   lipgloss.AdaptiveColor{Light: "#D5D8DC", Dark: "#4D5656"},
}
