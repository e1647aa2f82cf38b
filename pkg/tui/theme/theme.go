// Package theme centralizes Lip Gloss styles and the channel palette for the
// guide UI.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Tier is the at-a-glance emphasis of a program block: live programs pop,
// past programs fade, everything else sits in between.
type Tier int

const (
	TierNormal Tier = iota
	TierLive
	TierPast
)

// channelPalette is keyed by row index modulo its size. Colors stay stable
// within a session; they are not a persisted identity.
var channelPalette = []string{
	"#2196F3", // blue
	"#00C853", // green
	"#FF1744", // red
	"#D500F9", // purple
	"#FF9100", // orange
	"#00B8D4", // cyan
	"#F91E63", // pink
	"#FA8072", // salmon
}

const background = "#1E293B"

// PaletteSize is the wraparound modulus for row-index color assignment.
var PaletteSize = len(channelPalette)

// ChannelColor derives a channel's identity color from its row index.
func ChannelColor(index int) color.Color {
	return lipgloss.Color(channelPalette[indexMod(index)])
}

// BlockStyle renders a program block in the channel color at the given tier.
// Tiers are produced by blending toward the grid background, the terminal
// stand-in for background opacity.
func BlockStyle(index int, tier Tier) lipgloss.Style {
	base, err := colorful.Hex(channelPalette[indexMod(index)])
	if err != nil {
		return lipgloss.NewStyle()
	}
	bg, _ := colorful.Hex(background)
	switch tier {
	case TierLive:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(base.Hex())).Bold(true)
	case TierPast:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(base.BlendLab(bg, 0.7).Hex()))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(base.BlendLab(bg, 0.35).Hex()))
	}
}

func indexMod(index int) int {
	if index < 0 {
		index = -index
	}
	return index % len(channelPalette)
}

// Theme groups the remaining UI styles.
type Theme struct {
	Grid     GridTheme
	Banner   BannerTheme
	Selector SelectorTheme
	Overlay  OverlayTheme
}

// GridTheme styles the grid chrome around the program blocks.
type GridTheme struct {
	Header      lipgloss.Style
	ChannelCell lipgloss.Style
	NowLine     lipgloss.Style
	Selected    lipgloss.Style
	JumpHint    lipgloss.Style
	Empty       lipgloss.Style
}

// BannerTheme styles the collapsing banner strip.
type BannerTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// SelectorTheme styles the day and category strips.
type SelectorTheme struct {
	Item     lipgloss.Style
	Selected lipgloss.Style
}

// OverlayTheme styles the program detail overlay.
type OverlayTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Time  lipgloss.Style
	Body  lipgloss.Style
	Live  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Grid: GridTheme{
			Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
			ChannelCell: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
			NowLine:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336")),
			Selected:    lipgloss.NewStyle().Reverse(true),
			JumpHint:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336")).Bold(true),
			Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		},
		Banner: BannerTheme{
			Frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Body:  lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		},
		Selector: SelectorTheme{
			Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Padding(0, 1).Reverse(true),
		},
		Overlay: OverlayTheme{
			Frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Time:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Body:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Live:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336")).Bold(true),
		},
	}
}
