// Package banner renders the collapsing promotional strip above the grid.
// Visibility is decided by the grid's vertical scroll state; this model only
// owns the carousel rotation.
package banner

import (
	"sort"
	"time"

	"tableflip.dev/guiatv/pkg/guide"
	"tableflip.dev/guiatv/pkg/tui/theme"
)

// RotateInterval paces the carousel.
const RotateInterval = 8 * time.Second

// Model cycles through the active banners.
type Model struct {
	theme   theme.Theme
	banners []guide.Banner
	index   int
	width   int
}

// New returns an empty carousel.
func New(t theme.Theme) Model {
	return Model{theme: t}
}

// SetWidth fits the strip to the viewport.
func (m *Model) SetWidth(width int) { m.width = width }

// SetBanners replaces the banner set, ordered by display order. The current
// index is kept when possible so a background refresh does not visibly jump.
func (m *Model) SetBanners(banners []guide.Banner) {
	sorted := append([]guide.Banner(nil), banners...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DisplayOrder < sorted[j].DisplayOrder
	})
	m.banners = sorted
	if m.index >= len(sorted) {
		m.index = 0
	}
}

// Empty reports whether there is anything to show.
func (m Model) Empty() bool { return len(m.banners) == 0 }

// Rotate advances the carousel one banner.
func (m Model) Rotate() Model {
	if len(m.banners) > 1 {
		m.index = (m.index + 1) % len(m.banners)
	}
	return m
}

// View renders the current banner, or nothing when the set is empty.
func (m Model) View() string {
	if len(m.banners) == 0 {
		return ""
	}
	b := m.banners[m.index]
	line := m.theme.Banner.Title.Render(b.Title)
	if b.Description != "" {
		line += "  " + m.theme.Banner.Body.Render(b.Description)
	}
	frame := m.theme.Banner.Frame
	if m.width > 4 {
		frame = frame.Width(m.width - 2)
	}
	return frame.Render(line)
}
