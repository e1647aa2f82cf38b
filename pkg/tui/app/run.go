package app

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/guiatv/pkg/live"
	"tableflip.dev/guiatv/pkg/schedule"
)

// Run wires the model to a live listener and blocks until the UI exits. The
// listener invalidates the schedule caches itself; the model only hears the
// follow-up refresh nudge.
func Run(repo *schedule.Repository, eventsURL string) error {
	m := New(repo, nil, nil)
	if eventsURL != "" {
		m.listener = live.New(eventsURL, repo.InvalidateScheduleCache, m.NotifyLive)
		m.listener.Start()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}
