// Package categoryselector renders the category filter strip.
package categoryselector

import (
	"sort"
	"strings"

	"tableflip.dev/guiatv/pkg/guide"
	"tableflip.dev/guiatv/pkg/tui/theme"
)

// Model cycles through "all channels" plus each category.
type Model struct {
	theme      theme.Theme
	categories []guide.Category
	selected   int // 0 = all, otherwise 1-based index into categories
}

// New returns an empty selector (renders nothing until categories arrive).
func New(t theme.Theme) Model {
	return Model{theme: t}
}

// SetCategories replaces the category set, ordered by the backend's ordering
// field. An active selection is kept when the category survives the refresh.
func (m *Model) SetCategories(categories []guide.Category) {
	selectedID := m.SelectedID()
	sorted := append([]guide.Category(nil), categories...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	m.categories = sorted
	m.selected = 0
	if selectedID != 0 {
		for i, c := range sorted {
			if c.ID == selectedID {
				m.selected = i + 1
				break
			}
		}
	}
}

// SelectedID is the active category filter; zero means no filtering.
func (m Model) SelectedID() int {
	if m.selected == 0 || m.selected > len(m.categories) {
		return 0
	}
	return m.categories[m.selected-1].ID
}

// Cycle advances the filter: all → each category → all.
func (m Model) Cycle() Model {
	if len(m.categories) == 0 {
		return m
	}
	m.selected = (m.selected + 1) % (len(m.categories) + 1)
	return m
}

// View renders the strip; empty when no categories are loaded.
func (m Model) View() string {
	if len(m.categories) == 0 {
		return ""
	}
	var b strings.Builder
	if m.selected == 0 {
		b.WriteString(m.theme.Selector.Selected.Render("TODOS"))
	} else {
		b.WriteString(m.theme.Selector.Item.Render("TODOS"))
	}
	for i, c := range m.categories {
		if i+1 == m.selected {
			b.WriteString(m.theme.Selector.Selected.Render(c.Name))
		} else {
			b.WriteString(m.theme.Selector.Item.Render(c.Name))
		}
	}
	return b.String()
}
