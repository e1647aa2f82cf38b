// Package grid renders the channels × time-of-day schedule grid and owns the
// coupled scroll state: the horizontal time axis shared by header and rows,
// the vertical row axis shared by the channel column and the program area,
// banner collapse, and the jump-to-now affordance.
package grid

import (
	"time"

	"tableflip.dev/guiatv/pkg/guide"
)

// DefaultPixelsPerMinute is the horizontal density of the time axis in
// terminal cells.
const DefaultPixelsPerMinute = 2

// BlockGeometry computes a schedule block's horizontal placement: left edge
// at start-minutes × ppm, width of duration × ppm minus one cell of visual
// separation, floored at one. Midnight wraparound is resolved by guide.Span.
// Malformed time fields yield a zero-width block so the grid keeps rendering;
// callers skip width zero.
func BlockGeometry(start, end string, ppm int) (left, width int) {
	startMin, duration := guide.Span(start, end)
	if duration == 0 {
		return startMin * ppm, 0
	}
	width = duration*ppm - 1
	if width < 1 {
		width = 1
	}
	return startMin * ppm, width
}

// NowOffset is the horizontal position of the given minutes-since-midnight.
func NowOffset(minutes, ppm int) int {
	return minutes * ppm
}

// IdealOffset is the scroll position that centers "now" in the visible
// program area, clamped to the left edge.
func IdealOffset(nowOffset, visibleWidth int) int {
	offset := nowOffset - visibleWidth/2
	if offset < 0 {
		return 0
	}
	return offset
}

// JumpVisible reports whether the jump-to-now affordance should show: the
// view has drifted more than half the visible width away from centered now.
func JumpVisible(offsetX, nowOffset, visibleWidth int) bool {
	if visibleWidth <= 0 {
		return false
	}
	delta := offsetX - IdealOffset(nowOffset, visibleWidth)
	if delta < 0 {
		delta = -delta
	}
	return delta > visibleWidth/2
}

// MinutesOf extracts minutes-since-midnight from a wall-clock instant.
func MinutesOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
