package grid

import (
	"testing"
	"time"
)

func TestNowOffset(t *testing.T) {
	// 14:05 at two cells per minute.
	at := time.Date(2026, time.August, 24, 14, 5, 0, 0, time.UTC)
	got := NowOffset(MinutesOf(at), 2)
	if got != 1690 {
		t.Fatalf("NowOffset = %d, want 1690", got)
	}
}

func TestBlockGeometryMidnightWraparound(t *testing.T) {
	left, width := BlockGeometry("23:30:00", "00:30:00", 2)
	if left != (23*60+30)*2 {
		t.Fatalf("left = %d, want %d", left, (23*60+30)*2)
	}
	// 60 minutes × 2 cells, minus one separation cell.
	if width != 119 {
		t.Fatalf("width = %d, want 119", width)
	}
}

func TestBlockGeometryFloor(t *testing.T) {
	// A one-minute program at one cell per minute still gets one cell.
	_, width := BlockGeometry("10:00:00", "10:01:00", 1)
	if width != 1 {
		t.Fatalf("width = %d, want 1", width)
	}
}

func TestBlockGeometryMalformedIsDegenerate(t *testing.T) {
	if _, width := BlockGeometry("garbage", "10:00:00", 2); width != 0 {
		t.Fatalf("malformed start should produce a zero-width block, got %d", width)
	}
	if _, width := BlockGeometry("10:00:00", "", 2); width != 0 {
		t.Fatalf("malformed end should produce a zero-width block, got %d", width)
	}
}

func TestIdealOffsetClampsToLeftEdge(t *testing.T) {
	if got := IdealOffset(10, 100); got != 0 {
		t.Fatalf("early-morning ideal offset should clamp to 0, got %d", got)
	}
	if got := IdealOffset(1690, 100); got != 1640 {
		t.Fatalf("IdealOffset = %d, want 1640", got)
	}
}

func TestJumpVisible(t *testing.T) {
	const visibleWidth = 100
	nowOffset := 1690
	ideal := IdealOffset(nowOffset, visibleWidth)

	cases := []struct {
		offsetX int
		want    bool
	}{
		{ideal, false},
		{ideal + visibleWidth/2, false},
		{ideal + visibleWidth/2 + 1, true},
		{ideal - visibleWidth/2, false},
		{ideal - visibleWidth/2 - 1, true},
		{0, true},
	}
	for _, tc := range cases {
		if got := JumpVisible(tc.offsetX, nowOffset, visibleWidth); got != tc.want {
			t.Errorf("JumpVisible(%d) = %v, want %v", tc.offsetX, got, tc.want)
		}
	}
}
