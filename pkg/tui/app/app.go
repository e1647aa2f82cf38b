// Package app hosts the Bubble Tea program for the guide TUI. The model is
// the load orchestrator: it reads caches first, then fires independent
// network fetches that each update the screen as they resolve, and it folds
// in live-event refreshes and the minute tick.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/spinner"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/guiatv/pkg/guide"
	"tableflip.dev/guiatv/pkg/live"
	"tableflip.dev/guiatv/pkg/schedule"
	"tableflip.dev/guiatv/pkg/tui/components/banner"
	"tableflip.dev/guiatv/pkg/tui/components/categoryselector"
	"tableflip.dev/guiatv/pkg/tui/components/dayselector"
	"tableflip.dev/guiatv/pkg/tui/components/grid"
	"tableflip.dev/guiatv/pkg/tui/theme"
)

// chromeHeight is the vertical space reserved around the grid: banner strip
// (3 lines), selector line, status line.
const chromeHeight = 5

// Model contains UI state.
type Model struct {
	repo     *schedule.Repository
	listener *live.Listener
	clock    func() time.Time
	theme    theme.Theme

	week       []guide.ChannelWithSchedules
	categories []guide.Category

	grid    grid.Model
	banner  banner.Model
	days    dayselector.Model
	cats    categoryselector.Model
	spinner spinner.Model

	loading    bool
	refreshing bool
	closed     bool

	termWidth  int
	termHeight int

	liveCh chan struct{}
}

// New creates the orchestrator. The listener may be nil; the clock defaults
// to time.Now.
func New(repo *schedule.Repository, listener *live.Listener, clock func() time.Time) *Model {
	if clock == nil {
		clock = time.Now
	}
	th := theme.Default()
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	m := &Model{
		repo:     repo,
		listener: listener,
		clock:    clock,
		theme:    th,
		grid:     grid.New(th),
		banner:   banner.New(th),
		days:     dayselector.New(th, guide.DayFor(clock())),
		cats:     categoryselector.New(th),
		spinner:  sp,
		liveCh:   make(chan struct{}, 1),
	}
	m.grid.SetNow(grid.MinutesOf(clock()))
	return m
}

// NotifyLive is the refresh callback handed to the live listener. Bursts of
// events coalesce into a single pending reload.
func (m *Model) NotifyLive() {
	select {
	case m.liveCh <- struct{}{}:
	default:
	}
}

// Init reads the caches and kicks off the initial fetches alongside the
// live-event wait and the timers.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.startLoad(true),
		m.waitForLive(),
		m.tickNow(),
		m.tickBanner(),
		m.spinner.Tick,
	)
}

// Update drives the load state machine.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.closed {
		// The program is quitting; late results must not act.
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.banner.SetWidth(msg.Width)
		m.grid.SetSize(msg.Width, m.gridHeight())
		return m, nil

	case tea.FocusMsg:
		if m.listener != nil {
			m.listener.Foreground()
		}
		return m, nil

	case tea.BlurMsg:
		if m.listener != nil {
			m.listener.Background()
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case todayMsg:
		if msg.err == nil {
			m.week = schedule.MergeTodayIntoWeek(m.week, msg.data, guide.DayFor(m.clock()))
			m.syncGrid()
		}
		// Today gates the loading flag, success or failure. Whatever is on
		// screen stays either way.
		m.loading = false
		m.refreshing = false
		return m, nil

	case weekMsg:
		if msg.err == nil {
			m.week = msg.data
			m.syncGrid()
		}
		return m, nil

	case categoriesMsg:
		if msg.err == nil {
			m.categories = msg.data
			m.cats.SetCategories(msg.data)
			m.syncGrid()
		}
		return m, nil

	case bannersMsg:
		if msg.err == nil {
			m.banner.SetBanners(msg.data)
		}
		return m, nil

	case liveRefreshMsg:
		// The listener already invalidated the schedule caches; reload
		// without a spinner and re-arm the wait.
		return m, tea.Batch(m.startLoad(false), m.waitForLive())

	case nowTickMsg:
		m.grid.SetNow(grid.MinutesOf(m.clock()))
		return m, m.tickNow()

	case rotateBannerMsg:
		m.banner = m.banner.Rotate()
		return m, m.tickBanner()

	case spinner.TickMsg:
		if !m.loading && !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.grid.OverlayOpen() {
		m.grid, _ = m.grid.Update(msg)
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.closed = true
		if m.listener != nil {
			m.listener.Stop()
		}
		return m, tea.Quit

	case "r":
		// Pull to refresh: drop the schedule caches first, keep showing
		// current data while fresh results load.
		m.repo.InvalidateScheduleCache()
		m.refreshing = true
		return m, m.startLoad(false)

	case "tab", "]":
		m.days = m.days.Next()
		m.syncGrid()
		return m, nil

	case "shift+tab", "[":
		m.days = m.days.Prev()
		m.syncGrid()
		return m, nil

	case "c":
		m.cats = m.cats.Cycle()
		m.syncGrid()
		return m, nil
	}

	m.grid, _ = m.grid.Update(msg)
	return m, nil
}

// syncGrid pushes the filtered channel set into the grid. Day and category
// switches are in-memory filters over the week dataset, so they are
// instantaneous.
func (m *Model) syncGrid() {
	filtered := guide.FilterDay(m.week, m.days.Selected())
	filtered = guide.FilterCategory(filtered, m.cats.SelectedID())
	m.grid.SetChannels(filtered)
}

func (m *Model) gridHeight() int {
	h := m.termHeight - chromeHeight
	if h < 2 {
		h = 2
	}
	return h
}

// View composes banner, selector line, grid, and status line. While the
// first load is in flight with nothing cached only the spinner shows.
func (m *Model) View() string {
	if m.termWidth <= 0 || m.termHeight <= 0 {
		return ""
	}
	if m.loading && len(m.week) == 0 {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Cargando programación…")
	}

	sections := make([]string, 0, 4)
	if m.grid.BannerVisible() && !m.banner.Empty() {
		sections = append(sections, m.banner.View())
	}
	line := m.days.View()
	if cats := m.cats.View(); cats != "" {
		line += "  " + cats
	}
	sections = append(sections, line)
	sections = append(sections, m.grid.View())
	sections = append(sections, m.statusLine())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) statusLine() string {
	help := "←/→ programa · h/l scroll · ↑/↓ canal · tab día · c categoría · n ahora · r actualizar · q salir"
	if m.refreshing {
		help = m.spinner.View() + " actualizando… · " + help
	}
	return m.theme.Grid.Header.Render(help)
}
