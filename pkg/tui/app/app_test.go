package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/guiatv/pkg/api"
	"tableflip.dev/guiatv/pkg/cache"
	"tableflip.dev/guiatv/pkg/guide"
	"tableflip.dev/guiatv/pkg/schedule"
)

type staticConfig struct {
	base string
	path string
}

func (s staticConfig) BaseURL() string   { return s.base }
func (s staticConfig) EventsURL() string { return s.base + "/youtube/live-events" }
func (s staticConfig) BasePath() string  { return s.path }

// fixedClock pins the app to a Monday mid-morning so day anchoring and the
// now line are deterministic.
func fixedClock() time.Time {
	return time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
}

func newTestModel(t *testing.T) (*Model, *cache.Store) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	path := t.TempDir()
	client, err := api.New(staticConfig{base: srv.URL, path: path})
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}
	store := cache.New(path)
	repo := schedule.NewRepository(client, store)
	m := New(repo, nil, fixedClock)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, store
}

func channelSet(names ...string) []guide.ChannelWithSchedules {
	out := make([]guide.ChannelWithSchedules, 0, len(names))
	for i, name := range names {
		out = append(out, guide.ChannelWithSchedules{
			Channel: guide.Channel{ID: i + 1, Name: name},
			Schedules: []guide.Schedule{{
				ID:        i*10 + 1,
				DayOfWeek: guide.Monday,
				StartTime: "09:00",
				EndTime:   "11:00",
				Program:   guide.Program{ID: i + 1, Name: strings.ToUpper(name)},
			}},
		})
	}
	return out
}

func TestColdStartShowsSpinnerUntilToday(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()

	if !m.loading {
		t.Fatalf("expected loading on cold start")
	}
	if v := m.View(); !strings.Contains(v, "Cargando") {
		t.Fatalf("expected loading view, got %q", v)
	}

	m.Update(todayMsg{data: channelSet("luzu", "olga", "vorterix")})

	if m.loading {
		t.Fatalf("loading should clear when today resolves")
	}
	v := m.View()
	for _, want := range []string{"luzu", "olga", "vorterix"} {
		if !strings.Contains(v, want) {
			t.Fatalf("view missing channel %q:\n%s", want, v)
		}
	}
}

func TestWeekReplacesTodayDataset(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()
	m.Update(todayMsg{data: channelSet("luzu", "olga", "vorterix")})

	week := channelSet("luzu", "olga", "vorterix", "blender", "gelatina")
	// Week data carries additional days. The Tuesday block sits at the same
	// hour as the now line so it lands inside the preserved scroll window.
	week[0].Schedules = append(week[0].Schedules, guide.Schedule{
		ID:        901,
		DayOfWeek: guide.Tuesday,
		StartTime: "10:00",
		EndTime:   "11:00",
		Program:   guide.Program{ID: 901, Name: "MARTES SHOW"},
	})
	m.Update(weekMsg{data: week})

	v := m.View()
	for _, want := range []string{"blender", "gelatina"} {
		if !strings.Contains(v, want) {
			t.Fatalf("view missing week channel %q:\n%s", want, v)
		}
	}

	// Switching day filters in memory; the Tuesday program appears without
	// any further messages.
	model, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	m = model.(*Model)
	if m.days.Selected() != guide.Tuesday {
		t.Fatalf("day = %v, want tuesday", m.days.Selected())
	}
	if v := m.View(); !strings.Contains(v, "MARTES SHOW") {
		t.Fatalf("tuesday program missing after day switch:\n%s", v)
	}
}

func TestWeekFailureKeepsScreen(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()
	m.Update(todayMsg{data: channelSet("luzu")})

	m.Update(weekMsg{err: http.ErrHandlerTimeout})

	if v := m.View(); !strings.Contains(v, "luzu") {
		t.Fatalf("failed week fetch must not clear the grid:\n%s", v)
	}
}

func TestTodayFailureStillClearsLoading(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()

	m.Update(todayMsg{err: http.ErrHandlerTimeout})

	if m.loading {
		t.Fatalf("loading must clear even when today fails")
	}
}

func TestLiveEventTriggersReload(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()
	m.Update(todayMsg{data: channelSet("luzu")})

	m.NotifyLive()
	// A second notification while one is pending coalesces silently.
	m.NotifyLive()

	_, cmd := m.Update(liveRefreshMsg{})
	if cmd == nil {
		t.Fatalf("live refresh must schedule a reload")
	}
	if m.loading {
		t.Fatalf("live-event reload must not show the cold-start spinner")
	}
}

func TestRefreshKeyInvalidatesAndReloads(t *testing.T) {
	m, store := newTestModel(t)
	m.Init()
	m.Update(todayMsg{data: channelSet("luzu")})
	m.Update(weekMsg{data: channelSet("luzu", "olga")})
	store.Set("week-schedules", channelSet("luzu", "olga"), schedule.ScheduleTTL)

	model, cmd := m.Update(tea.KeyPressMsg{Text: "r", Code: 'r'})
	m = model.(*Model)
	if cmd == nil {
		t.Fatalf("refresh must schedule fetches")
	}
	if !m.refreshing {
		t.Fatalf("refresh indicator should be on")
	}
	if v := m.View(); !strings.Contains(v, "olga") {
		t.Fatalf("refresh must keep current data on screen:\n%s", v)
	}

	// The schedule caches are gone, categories survive.
	if _, ok := m.repo.CachedWeekSchedules(); ok {
		t.Fatalf("week cache should be invalidated by refresh")
	}

	m.Update(todayMsg{data: channelSet("luzu")})
	if m.refreshing {
		t.Fatalf("refresh indicator should clear when today resolves")
	}
}

func TestWarmStartSkipsSpinner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	path := t.TempDir()
	client, err := api.New(staticConfig{base: srv.URL, path: path})
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}
	store := cache.New(path)
	repo := schedule.NewRepository(client, store)
	store.Set("week-schedules", channelSet("luzu", "olga"), schedule.ScheduleTTL)
	store.Set("today-schedules", channelSet("luzu", "olga", "vorterix"), schedule.ScheduleTTL)

	m := New(repo, nil, fixedClock)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Init()

	if m.loading {
		t.Fatalf("cached week data must suppress the spinner")
	}
	// Cached today merges like a fresh result: the today-only channel shows.
	v := m.View()
	for _, want := range []string{"olga", "vorterix"} {
		if !strings.Contains(v, want) {
			t.Fatalf("cached channel %q missing from warm start:\n%s", want, v)
		}
	}
}

func TestWarmCategoriesAloneSkipSpinner(t *testing.T) {
	m, store := newTestModel(t)
	store.Set("categories", []guide.Category{{ID: 1, Name: "Streaming"}}, schedule.CategoriesTTL)

	m.Init()

	// Any cache hit, categories included, is enough to skip the spinner.
	if m.loading {
		t.Fatalf("cached categories must suppress the spinner")
	}
}

func TestQuitStopsAcceptingMessages(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()
	m.Update(todayMsg{data: channelSet("luzu")})

	_, cmd := m.Update(tea.KeyPressMsg{Text: "q", Code: 'q'})
	if cmd == nil {
		t.Fatalf("q must quit")
	}

	// Late fetch results are dropped after quit.
	m.Update(weekMsg{data: channelSet("luzu", "olga", "vorterix")})
	if len(m.week) != 1 {
		t.Fatalf("messages after quit must not act, week len = %d", len(m.week))
	}
}

func TestDaySelectorWrapsAndReturnsToToday(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()
	m.Update(todayMsg{data: channelSet("luzu")})

	for i := 0; i < 7; i++ {
		model, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		m = model.(*Model)
	}
	if !m.days.IsToday() {
		t.Fatalf("seven day steps should wrap back to today")
	}
	if m.days.Selected() != guide.Monday {
		t.Fatalf("today = %v, want monday", m.days.Selected())
	}
}
