package grid

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/guiatv/pkg/guide"
	"tableflip.dev/guiatv/pkg/tui/theme"
)

const (
	channelColWidth = 14
	scrollStep      = 10

	// bannerThreshold is the vertical offset past which the banner strip
	// collapses; at or below it the banner re-expands. Binary, not
	// proportional.
	bannerThreshold = 0
)

// cell paint classes for the track buffers.
const (
	classEmpty uint8 = iota
	classNormal
	classLive
	classPast
	classNow
	classSelected
	classHeader
)

type row struct {
	channel   guide.Channel
	schedules []guide.Schedule // sorted by start for selection order
}

// Model is the grid coordinator. The time header and the program tracks are
// rendered from the one offsetX, and the channel column and program rows
// from the one offsetY, so the coupled surfaces cannot diverge, not even for
// a frame.
type Model struct {
	theme theme.Theme

	rows []row

	width, height int
	ppm           int

	offsetX  int
	offsetY  int
	cursor   int
	selBlock int

	now int // minutes since midnight

	bannerVisible     bool
	jumpVisible       bool
	initialScrollDone bool

	overlay *guide.Schedule
}

// New returns an empty grid at the default density.
func New(t theme.Theme) Model {
	return Model{
		theme:         t,
		ppm:           DefaultPixelsPerMinute,
		bannerVisible: true,
	}
}

// SetSize updates the viewport and re-clamps scroll state.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clamp()
}

// SetChannels replaces the rendered channel set. The first non-empty set
// triggers the one-time scroll-to-now centering; later data refreshes leave
// the user's scroll position alone.
func (m *Model) SetChannels(channels []guide.ChannelWithSchedules) {
	rows := make([]row, 0, len(channels))
	for _, ch := range channels {
		sorted := append([]guide.Schedule(nil), ch.Schedules...)
		sort.SliceStable(sorted, func(i, j int) bool {
			a, _ := guide.Span(sorted[i].StartTime, sorted[i].EndTime)
			b, _ := guide.Span(sorted[j].StartTime, sorted[j].EndTime)
			return a < b
		})
		rows = append(rows, row{channel: ch.Channel, schedules: sorted})
	}
	m.rows = rows
	m.clamp()

	if !m.initialScrollDone && len(rows) > 0 {
		m.ScrollToNow()
		m.initialScrollDone = true
	}
}

// SetNow updates the now marker (driven by the app's minute tick, not by
// renders) and recomputes jump visibility.
func (m *Model) SetNow(minutes int) {
	m.now = minutes
	m.refreshJump()
}

// BannerVisible reports whether the banner strip should currently show.
func (m *Model) BannerVisible() bool { return m.bannerVisible }

// JumpToNowVisible reports whether the jump-to-now affordance should show.
func (m *Model) JumpToNowVisible() bool { return m.jumpVisible }

// OverlayOpen reports whether the program detail overlay is up.
func (m *Model) OverlayOpen() bool { return m.overlay != nil }

// SelectedSchedule returns the schedule under the cursor, or nil.
func (m *Model) SelectedSchedule() *guide.Schedule {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	r := m.rows[m.cursor]
	if m.selBlock < 0 || m.selBlock >= len(r.schedules) {
		return nil
	}
	s := r.schedules[m.selBlock]
	return &s
}

// ScrollToNow centers the current time in the visible program area.
func (m *Model) ScrollToNow() {
	m.offsetX = IdealOffset(NowOffset(m.now, m.ppm), m.visibleWidth())
	m.clampX()
	m.refreshJump()
}

// Update handles navigation keys. Everything else passes through untouched.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	if m.overlay != nil {
		switch key.String() {
		case "esc", "enter", "q":
			m.overlay = nil
		}
		return m, nil
	}

	switch key.String() {
	case "h":
		m.offsetX -= scrollStep
		m.clampX()
		m.refreshJump()
	case "l":
		m.offsetX += scrollStep
		m.clampX()
		m.refreshJump()
	case "left":
		m.selBlock--
		m.clampSelection()
		m.followSelection()
	case "right":
		m.selBlock++
		m.clampSelection()
		m.followSelection()
	case "up", "k":
		m.cursor--
		m.clamp()
	case "down", "j":
		m.cursor++
		m.clamp()
	case "pgup":
		m.cursor -= m.visibleRows()
		m.clamp()
	case "pgdown":
		m.cursor += m.visibleRows()
		m.clamp()
	case "n":
		m.ScrollToNow()
	case "enter":
		if s := m.SelectedSchedule(); s != nil {
			m.overlay = s
		}
	}
	return m, nil
}

func (m *Model) visibleWidth() int {
	w := m.width - channelColWidth
	if w < 0 {
		return 0
	}
	return w
}

func (m *Model) visibleRows() int {
	// One line goes to the time header.
	h := m.height - 1
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) totalWidth() int {
	return guide.MinutesPerDay * m.ppm
}

func (m *Model) clamp() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampSelection()

	// Keep the cursor row inside the viewport; the channel column shares
	// offsetY by construction.
	if m.cursor < m.offsetY {
		m.offsetY = m.cursor
	}
	if m.cursor >= m.offsetY+m.visibleRows() {
		m.offsetY = m.cursor - m.visibleRows() + 1
	}
	if m.offsetY < 0 {
		m.offsetY = 0
	}
	m.bannerVisible = m.offsetY <= bannerThreshold
	m.clampX()
}

func (m *Model) clampSelection() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		m.selBlock = 0
		return
	}
	limit := len(m.rows[m.cursor].schedules) - 1
	if m.selBlock > limit {
		m.selBlock = limit
	}
	if m.selBlock < 0 {
		m.selBlock = 0
	}
}

func (m *Model) clampX() {
	max := m.totalWidth() - m.visibleWidth()
	if max < 0 {
		max = 0
	}
	if m.offsetX > max {
		m.offsetX = max
	}
	if m.offsetX < 0 {
		m.offsetX = 0
	}
}

// followSelection scrolls horizontally so the selected block stays visible.
func (m *Model) followSelection() {
	s := m.SelectedSchedule()
	if s == nil {
		return
	}
	left, width := BlockGeometry(s.StartTime, s.EndTime, m.ppm)
	if width == 0 {
		return
	}
	if right := left + width; right > m.offsetX+m.visibleWidth() {
		m.offsetX = right - m.visibleWidth()
	}
	// For blocks wider than the viewport the start edge wins.
	if left < m.offsetX {
		m.offsetX = left
	}
	m.clampX()
	m.refreshJump()
}

func (m *Model) refreshJump() {
	m.jumpVisible = JumpVisible(m.offsetX, NowOffset(m.now, m.ppm), m.visibleWidth())
}

// View renders the header plus the visible rows; the detail overlay replaces
// the grid when open.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.overlay != nil {
		return m.renderOverlay()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())

	visRows := m.visibleRows()
	for i := 0; i < visRows; i++ {
		idx := m.offsetY + i
		b.WriteString("\n")
		if idx >= len(m.rows) {
			continue
		}
		b.WriteString(m.renderRow(idx))
	}

	if m.jumpVisible {
		b.WriteString("\n")
		b.WriteString(m.theme.Grid.JumpHint.Render("● EN VIVO · press n"))
	}
	return b.String()
}

func (m Model) renderHeader() string {
	label := padCell("CANAL", channelColWidth)
	runes, classes := m.headerTrack()
	return m.theme.Grid.Header.Render(label) + m.renderSlice(runes, classes, -1)
}

func (m Model) renderRow(idx int) string {
	r := m.rows[idx]
	name := padCell(r.channel.Name, channelColWidth)
	cell := m.theme.Grid.ChannelCell.Foreground(theme.ChannelColor(idx)).Render(name)
	if idx == m.cursor {
		cell = m.theme.Grid.Selected.Render(name)
	}
	runes, classes := m.rowTrack(idx)
	return cell + m.renderSlice(runes, classes, idx)
}

// headerTrack paints hour markers into a full-width buffer.
func (m Model) headerTrack() ([]rune, []uint8) {
	total := m.totalWidth()
	runes := blankTrack(total)
	classes := make([]uint8, total)
	hourWidth := 60 * m.ppm
	for h := 0; h < 24; h++ {
		label := []rune{rune('0' + h/10), rune('0' + h%10), ':', '0', '0'}
		pos := h * hourWidth
		for i, c := range label {
			if pos+i >= total {
				break
			}
			runes[pos+i] = c
			classes[pos+i] = classHeader
		}
	}
	m.paintNow(runes, classes)
	return runes, classes
}

// rowTrack paints one channel's program blocks into a full-width buffer.
func (m Model) rowTrack(idx int) ([]rune, []uint8) {
	total := m.totalWidth()
	runes := blankTrack(total)
	classes := make([]uint8, total)

	r := m.rows[idx]
	for si, s := range r.schedules {
		left, width := BlockGeometry(s.StartTime, s.EndTime, m.ppm)
		if width == 0 || left >= total {
			continue
		}
		end := left + width
		if end > total {
			end = total
		}

		class := classNormal
		startMin, duration := guide.Span(s.StartTime, s.EndTime)
		switch {
		case s.Program.IsLive:
			class = classLive
		case startMin+duration < m.now:
			class = classPast
		}
		if idx == m.cursor && si == m.selBlock {
			class = classSelected
		}

		label := []rune(" " + strings.ToUpper(s.Program.Name))
		for i := left; i < end; i++ {
			if li := i - left; li < len(label) {
				runes[i] = label[li]
			} else {
				runes[i] = ' '
			}
			classes[i] = class
		}
	}

	m.paintNow(runes, classes)
	return runes, classes
}

func (m Model) paintNow(runes []rune, classes []uint8) {
	pos := NowOffset(m.now, m.ppm)
	if pos >= 0 && pos < len(runes) {
		runes[pos] = '│'
		classes[pos] = classNow
	}
}

// renderSlice styles the visible window of a track buffer, grouping runs of
// equal paint class so styling cost stays proportional to the blocks on
// screen.
func (m Model) renderSlice(runes []rune, classes []uint8, rowIdx int) string {
	visW := m.visibleWidth()
	if visW <= 0 {
		return ""
	}
	var b strings.Builder
	start := m.offsetX
	for start < m.offsetX+visW && start < len(runes) {
		class := classes[start]
		end := start
		for end < m.offsetX+visW && end < len(runes) && classes[end] == class {
			end++
		}
		segment := string(runes[start:end])
		b.WriteString(m.styleFor(class, rowIdx).Render(segment))
		start = end
	}
	// Pad past the end of the track.
	if rendered := len(runes) - m.offsetX; rendered < visW {
		if rendered < 0 {
			rendered = 0
		}
		b.WriteString(strings.Repeat(" ", visW-rendered))
	}
	return b.String()
}

func (m Model) styleFor(class uint8, rowIdx int) lipgloss.Style {
	switch class {
	case classNormal:
		return theme.BlockStyle(rowIdx, theme.TierNormal)
	case classLive:
		return theme.BlockStyle(rowIdx, theme.TierLive)
	case classPast:
		return theme.BlockStyle(rowIdx, theme.TierPast)
	case classNow:
		return m.theme.Grid.NowLine
	case classSelected:
		return m.theme.Grid.Selected
	case classHeader:
		return m.theme.Grid.Header
	default:
		return m.theme.Grid.Empty
	}
}

func (m Model) renderOverlay() string {
	s := m.overlay
	t := m.theme.Overlay

	width := m.width - 8
	if width > 64 {
		width = 64
	}
	if width < 20 {
		width = 20
	}

	var parts []string
	title := strings.ToUpper(s.Program.Name)
	if s.Program.IsLive {
		title += " " + t.Live.Render("● LIVE")
	}
	parts = append(parts, t.Title.Render(title))
	parts = append(parts, t.Time.Render(clockRange(s.StartTime, s.EndTime)))
	if s.Program.Description != "" {
		parts = append(parts, "", t.Body.Render(wordwrap.String(s.Program.Description, width)))
	}
	if len(s.Program.Panelists) > 0 {
		names := make([]string, 0, len(s.Program.Panelists))
		for _, p := range s.Program.Panelists {
			names = append(names, p.Name)
		}
		parts = append(parts, "", t.Time.Render(strings.Join(names, ", ")))
	}

	panel := t.Frame.Width(width).Render(strings.Join(parts, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

func clockRange(start, end string) string {
	return shortClock(start) + " - " + shortClock(end)
}

func shortClock(s string) string {
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}

func blankTrack(total int) []rune {
	runes := make([]rune, total)
	for i := range runes {
		runes[i] = ' '
	}
	return runes
}

func padCell(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width-1]) + " "
	}
	return s + strings.Repeat(" ", width-len(r))
}
