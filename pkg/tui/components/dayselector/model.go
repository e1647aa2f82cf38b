// Package dayselector renders the seven-day strip used for client-side day
// switching. Selection filters the in-memory week dataset; it never fetches.
package dayselector

import (
	"strings"

	"tableflip.dev/guiatv/pkg/guide"
	"tableflip.dev/guiatv/pkg/tui/theme"
)

// Model shows seven days starting at today, today selected by default.
type Model struct {
	theme    theme.Theme
	days     []guide.Weekday
	selected int
}

// New builds the strip anchored at the given day.
func New(t theme.Theme, today guide.Weekday) Model {
	start := 0
	for i, d := range guide.Week {
		if d == today {
			start = i
			break
		}
	}
	days := make([]guide.Weekday, 0, len(guide.Week))
	for i := 0; i < len(guide.Week); i++ {
		days = append(days, guide.Week[(start+i)%len(guide.Week)])
	}
	return Model{theme: t, days: days}
}

// Selected is the day currently filtering the grid.
func (m Model) Selected() guide.Weekday { return m.days[m.selected] }

// IsToday reports whether the strip is back on its anchor day.
func (m Model) IsToday() bool { return m.selected == 0 }

// Next advances the selection, wrapping at the end of the strip.
func (m Model) Next() Model {
	m.selected = (m.selected + 1) % len(m.days)
	return m
}

// Prev moves the selection back, wrapping at the start.
func (m Model) Prev() Model {
	m.selected = (m.selected + len(m.days) - 1) % len(m.days)
	return m
}

// View renders the strip with the selected day highlighted.
func (m Model) View() string {
	var b strings.Builder
	for i, d := range m.days {
		label := d.Label()
		if i == 0 {
			label = "HOY"
		}
		if i == m.selected {
			b.WriteString(m.theme.Selector.Selected.Render(label))
		} else {
			b.WriteString(m.theme.Selector.Item.Render(label))
		}
	}
	return b.String()
}
