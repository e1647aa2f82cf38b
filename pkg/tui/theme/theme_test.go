package theme

import (
	"image/color"
	"testing"
)

func TestChannelColorCyclesThroughPalette(t *testing.T) {
	// The palette is keyed by row index modulo its size; wrapping must land
	// back on the same color.
	if ChannelColor(0) != ChannelColor(PaletteSize) {
		t.Fatalf("index %d should wrap to index 0", PaletteSize)
	}
	if ChannelColor(0) == ChannelColor(1) {
		t.Fatalf("adjacent rows should not share a color")
	}
	// Negative indexes must not panic.
	_ = ChannelColor(-1)
}

func TestChannelColorSatisfiesColorInterface(t *testing.T) {
	var c color.Color = ChannelColor(3)
	if c == nil {
		t.Fatalf("palette color should never be nil")
	}
	r, g, b, _ := c.RGBA()
	if r == 0 && g == 0 && b == 0 {
		t.Fatalf("palette color should not resolve to black")
	}
}
