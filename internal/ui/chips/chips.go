// Package chips renders the category filter bar: one chip per category with
// its operation count, e.g. "ENCODE (8)".
package chips

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/ui/styles"
)

// ChangedMsg is sent when a chip is clicked.
type ChangedMsg struct {
	Category operation.Category
}

// Model holds the chip bar state.
type Model struct {
	categories []operation.Category
	counts     map[operation.Category]int
	active     int
}

// New builds the bar from catalog counts. ALL is active.
func New(catalog *operation.Catalog) Model {
	cats := operation.Categories()
	counts := make(map[operation.Category]int, len(cats))
	for _, c := range cats {
		counts[c] = catalog.Count(c)
	}
	return Model{categories: cats, counts: counts}
}

// Active returns the selected category.
func (m Model) Active() operation.Category {
	return m.categories[m.active]
}

// Next cycles forward, wrapping around.
func (m Model) Next() Model {
	m.active = (m.active + 1) % len(m.categories)
	return m
}

// Prev cycles backward, wrapping around.
func (m Model) Prev() Model {
	m.active = (m.active - 1 + len(m.categories)) % len(m.categories)
	return m
}

// SetActive selects cat if it is on the bar.
func (m Model) SetActive(cat operation.Category) Model {
	for i, c := range m.categories {
		if c == cat {
			m.active = i
		}
	}
	return m
}

// Label returns the chip text for cat.
func (m Model) Label(cat operation.Category) string {
	return fmt.Sprintf("%s (%d)", cat.Label(), m.counts[cat])
}

// Update handles chip clicks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || mouse.Action != tea.MouseActionRelease || mouse.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for i, c := range m.categories {
		if z := zone.Get(ZoneID(c)); z != nil && z.InBounds(mouse) {
			m.active = i
			return m, func() tea.Msg { return ChangedMsg{Category: c} }
		}
	}
	return m, nil
}

// ZoneID is the bubblezone ID of a chip.
func ZoneID(cat operation.Category) string {
	return "chip:" + string(cat)
}

// View renders the chips left to right.
func (m Model) View() string {
	rendered := make([]string, len(m.categories))
	for i, c := range m.categories {
		style := styles.ChipInactiveStyle
		if i == m.active {
			style = styles.ChipActiveStyle
		}
		rendered[i] = zone.Mark(ZoneID(c), style.Render(m.Label(c)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
