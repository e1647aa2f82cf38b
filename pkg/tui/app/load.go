package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/guiatv/pkg/guide"
	"tableflip.dev/guiatv/pkg/schedule"
	"tableflip.dev/guiatv/pkg/tui/components/banner"
)

// messages
type todayMsg struct {
	data []guide.ChannelWithSchedules
	err  error
}
type weekMsg struct {
	data []guide.ChannelWithSchedules
	err  error
}
type categoriesMsg struct {
	data []guide.Category
	err  error
}
type bannersMsg struct {
	data []guide.Banner
	err  error
}
type liveRefreshMsg struct{}
type nowTickMsg time.Time
type rotateBannerMsg time.Time

// startLoad runs phase 1 synchronously (cache reads are local disk) and
// returns the phase 2 batch. The four fetches are independent and apply in
// whatever order they resolve.
func (m *Model) startLoad(showSpinner bool) tea.Cmd {
	cacheHit := false
	if cached, ok := m.repo.CachedWeekSchedules(); ok {
		m.week = cached
		cacheHit = true
	}
	if cached, ok := m.repo.PeekTodaySchedules(); ok {
		m.week = schedule.MergeTodayIntoWeek(m.week, cached, guide.DayFor(m.clock()))
		cacheHit = true
	}
	if cached, ok := m.repo.CachedCategories(); ok {
		m.categories = cached
		m.cats.SetCategories(cached)
		cacheHit = true
	}
	if cacheHit {
		m.loading = false
	} else if showSpinner {
		m.loading = true
	}
	m.syncGrid()

	return tea.Batch(
		m.fetchToday(),
		m.fetchWeek(),
		m.fetchCategories(),
		m.fetchBanners(),
	)
}

func (m *Model) fetchToday() tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		data, err := repo.RefreshTodaySchedules(context.Background())
		return todayMsg{data: data, err: err}
	}
}

func (m *Model) fetchWeek() tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		data, err := repo.RefreshWeekSchedules(context.Background())
		return weekMsg{data: data, err: err}
	}
}

func (m *Model) fetchCategories() tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		data, err := repo.RefreshCategories(context.Background())
		return categoriesMsg{data: data, err: err}
	}
}

func (m *Model) fetchBanners() tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		data, err := repo.Banners(context.Background())
		return bannersMsg{data: data, err: err}
	}
}

// waitForLive blocks on the listener channel and surfaces the next
// qualifying event as a message. Re-armed from Update after each delivery.
func (m *Model) waitForLive() tea.Cmd {
	ch := m.liveCh
	return func() tea.Msg {
		<-ch
		return liveRefreshMsg{}
	}
}

// tickNow fires on the next minute boundary so the now line never lags the
// wall clock by more than a frame.
func (m *Model) tickNow() tea.Cmd {
	now := m.clock()
	next := now.Truncate(time.Minute).Add(time.Minute)
	return tea.Tick(next.Sub(now), func(t time.Time) tea.Msg {
		return nowTickMsg(t)
	})
}

func (m *Model) tickBanner() tea.Cmd {
	return tea.Tick(banner.RotateInterval, func(t time.Time) tea.Msg {
		return rotateBannerMsg(t)
	})
}
