package grid

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/guiatv/pkg/guide"
	"tableflip.dev/guiatv/pkg/tui/theme"
)

func testChannels() []guide.ChannelWithSchedules {
	mk := func(id int, name string, schedules ...guide.Schedule) guide.ChannelWithSchedules {
		return guide.ChannelWithSchedules{
			Channel:   guide.Channel{ID: id, Name: name},
			Schedules: schedules,
		}
	}
	sched := func(id int, name, start, end string, live bool) guide.Schedule {
		return guide.Schedule{
			ID:        id,
			DayOfWeek: guide.Monday,
			StartTime: start,
			EndTime:   end,
			Program:   guide.Program{ID: id, Name: name, IsLive: live},
		}
	}
	return []guide.ChannelWithSchedules{
		mk(1, "luzu", sched(1, "news", "00:00:00", "01:00:00", false), sched(2, "magazine", "01:00:00", "03:00:00", true)),
		mk(2, "olga", sched(3, "morning", "00:30:00", "02:00:00", false)),
		mk(3, "vorterix", sched(4, "rock", "02:00:00", "04:00:00", false)),
		mk(4, "blender", sched(5, "stream", "00:00:00", "02:00:00", false)),
	}
}

func newTestGrid(t *testing.T) Model {
	t.Helper()
	m := New(theme.Default())
	m.SetSize(60, 4) // header + 3 rows visible
	m.SetNow(0)
	m.SetChannels(testChannels())
	return m
}

func press(m Model, key string) Model {
	var msg tea.KeyPressMsg
	switch key {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		msg = tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		msg = tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		msg = tea.KeyPressMsg{Code: tea.KeyRight}
	default:
		msg = tea.KeyPressMsg{Text: key, Code: rune(key[0])}
	}
	next, _ := m.Update(msg)
	return next
}

func TestBannerCollapseIsBinaryAndReversible(t *testing.T) {
	m := newTestGrid(t)
	if !m.BannerVisible() {
		t.Fatalf("banner should be visible at the top")
	}

	// Scroll far enough that the viewport actually moves.
	m = press(m, "down")
	m = press(m, "down")
	m = press(m, "down")
	if m.BannerVisible() {
		t.Fatalf("banner should collapse once the view leaves the top")
	}

	m = press(m, "up")
	m = press(m, "up")
	m = press(m, "up")
	if !m.BannerVisible() {
		t.Fatalf("banner should re-expand when the view returns to the top")
	}
}

func TestChannelColumnTracksCursorRow(t *testing.T) {
	m := newTestGrid(t)
	// Cursor past the viewport: both the channel column and the program
	// area render from the same offsetY, so the last visible row must be
	// the cursor row.
	m = press(m, "down")
	m = press(m, "down")
	m = press(m, "down")

	view := m.View()
	if !strings.Contains(view, "blender") {
		t.Fatalf("scrolled view should show the cursor row's channel:\n%s", view)
	}
	if strings.Contains(view, "luzu") {
		t.Fatalf("top row should have scrolled out with the channel column:\n%s", view)
	}
}

func TestInitialScrollToNowHappensOnce(t *testing.T) {
	m := New(theme.Default())
	m.SetSize(60, 4)
	m.SetNow(14*60 + 5)

	m.SetChannels(testChannels())
	want := IdealOffset(NowOffset(14*60+5, m.ppm), m.visibleWidth())
	if m.offsetX != want {
		t.Fatalf("initial load should center now: offsetX = %d, want %d", m.offsetX, want)
	}

	// A manual scroll followed by a data refresh must not re-center.
	m = press(m, "h")
	moved := m.offsetX
	m.SetChannels(testChannels())
	if m.offsetX != moved {
		t.Fatalf("data refresh moved the scroll position: %d -> %d", moved, m.offsetX)
	}
}

func TestJumpVisibilityFollowsHorizontalScroll(t *testing.T) {
	m := newTestGrid(t)
	m.SetNow(12 * 60)
	m.ScrollToNow()
	if m.JumpToNowVisible() {
		t.Fatalf("jump affordance should hide when centered on now")
	}

	for i := 0; i < 20; i++ {
		m = press(m, "h")
	}
	if !m.JumpToNowVisible() {
		t.Fatalf("jump affordance should show after drifting from now")
	}

	m = press(m, "n")
	if m.JumpToNowVisible() {
		t.Fatalf("jump-to-now should clear the affordance")
	}
}

func TestViewRendersProgramsAndNowLine(t *testing.T) {
	m := newTestGrid(t)
	view := m.View()
	if !strings.Contains(view, "NEWS") {
		t.Fatalf("expected program name in view:\n%s", view)
	}
	if !strings.Contains(view, "CANAL") {
		t.Fatalf("expected channel column header in view:\n%s", view)
	}
	if !strings.Contains(view, "│") {
		t.Fatalf("expected now line in view:\n%s", view)
	}
	// The now line sits at offset zero here, overwriting the first rune of
	// the midnight marker.
	if !strings.Contains(view, "0:00") {
		t.Fatalf("expected hour marker in view:\n%s", view)
	}
}

func TestMalformedScheduleDoesNotCrashRendering(t *testing.T) {
	m := New(theme.Default())
	m.SetSize(60, 4)
	m.SetNow(0)
	m.SetChannels([]guide.ChannelWithSchedules{
		{
			Channel: guide.Channel{ID: 1, Name: "broken"},
			Schedules: []guide.Schedule{
				{ID: 1, StartTime: "not-a-time", EndTime: "??", Program: guide.Program{Name: "ghost"}},
				{ID: 2, StartTime: "10:00:00", EndTime: "11:00:00", Program: guide.Program{Name: "fine"}},
			},
		},
	})
	view := m.View()
	if strings.Contains(view, "GHOST") {
		t.Fatalf("zero-width block should not render:\n%s", view)
	}
	if !strings.Contains(view, "broken") {
		t.Fatalf("channel row should still render:\n%s", view)
	}
}

func TestOverlayOpensOnSelectedBlock(t *testing.T) {
	m := newTestGrid(t)
	m = press(m, "enter")
	if !m.OverlayOpen() {
		t.Fatalf("enter should open the detail overlay")
	}
	view := m.View()
	if !strings.Contains(view, "NEWS") || !strings.Contains(view, "00:00 - 01:00") {
		t.Fatalf("overlay should show program name and time range:\n%s", view)
	}
	m = press(m, "esc")
	if m.OverlayOpen() {
		t.Fatalf("esc should close the overlay")
	}
}

func TestBlockSelectionFollowsIntoView(t *testing.T) {
	m := newTestGrid(t)
	// Second block on row 0 runs 01:00–03:00; selecting it must scroll it
	// into the viewport.
	m = press(m, "right")
	s := m.SelectedSchedule()
	if s == nil || s.Program.Name != "magazine" {
		t.Fatalf("expected magazine selected, got %+v", s)
	}
	left, _ := BlockGeometry(s.StartTime, s.EndTime, m.ppm)
	if left < m.offsetX {
		t.Fatalf("selected block left %d is before viewport %d", left, m.offsetX)
	}
}
