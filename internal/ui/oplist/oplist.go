// Package oplist provides the searchable, scrollable operations list of the
// panel. Rows are mouse clickable via bubblezone.
package oplist

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/xroot/internal/keys"
	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/ui/styles"
)

const zonePrefix = "op:"

// SelectMsg is sent when an operation is chosen with enter or a click.
type SelectMsg struct {
	Operation operation.Descriptor
}

// Model holds the list state. The search input is owned here so the query
// and the filtered rows never drift apart.
type Model struct {
	catalog  *operation.Catalog
	category operation.Category
	search   textinput.Model

	filtered     []operation.Descriptor
	cursor       int
	scrollOffset int
	selectedID   string

	width            int
	height           int
	focused          bool
	showDescriptions bool
}

// New creates a list over catalog showing every category.
func New(catalog *operation.Catalog) Model {
	ti := textinput.New()
	ti.Placeholder = "search operations..."
	ti.Prompt = "> "
	ti.CharLimit = 64

	m := Model{
		catalog:          catalog,
		category:         operation.CategoryAll,
		search:           ti,
		showDescriptions: true,
	}
	return m.refilter()
}

// SetCategory restricts the list to cat.
func (m Model) SetCategory(cat operation.Category) Model {
	m.category = cat
	return m.refilter()
}

// Category returns the active category.
func (m Model) Category() operation.Category {
	return m.category
}

// SetQuery replaces the search text.
func (m Model) SetQuery(q string) Model {
	m.search.SetValue(q)
	return m.refilter()
}

// Query returns the search text.
func (m Model) Query() string {
	return m.search.Value()
}

// SetShowDescriptions toggles the description column.
func (m Model) SetShowDescriptions(show bool) Model {
	m.showDescriptions = show
	return m
}

// SetSize sets the area available to the list, search line included.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.search.Width = max(width-4, 1)
	return m.ensureCursorVisible()
}

// FocusSearch moves keyboard input to the search line.
func (m Model) FocusSearch() (Model, tea.Cmd) {
	m.focused = true
	return m, m.search.Focus()
}

// Focus gives the list keyboard focus without the search line.
func (m Model) Focus() Model {
	m.focused = true
	m.search.Blur()
	return m
}

// Blur drops keyboard focus.
func (m Model) Blur() Model {
	m.focused = false
	m.search.Blur()
	return m
}

// SearchFocused reports whether typing goes to the search line.
func (m Model) SearchFocused() bool {
	return m.search.Focused()
}

// Focused reports whether the list or its search line has focus.
func (m Model) Focused() bool {
	return m.focused
}

// Items returns the rows currently shown.
func (m Model) Items() []operation.Descriptor {
	return m.filtered
}

// Cursor returns the highlighted row index.
func (m Model) Cursor() int {
	return m.cursor
}

// Highlighted returns the descriptor under the cursor.
func (m Model) Highlighted() (operation.Descriptor, bool) {
	if m.cursor >= 0 && m.cursor < len(m.filtered) {
		return m.filtered[m.cursor], true
	}
	return operation.Descriptor{}, false
}

// SetSelected marks id as the chosen operation ("" clears it).
func (m Model) SetSelected(id string) Model {
	m.selectedID = id
	return m
}

// Selected returns the chosen operation ID.
func (m Model) Selected() string {
	return m.selectedID
}

// Update handles keys while focused and clicks/wheel always.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	searching := m.search.Focused()

	switch {
	case msg.Type == tea.KeyDown, !searching && key.Matches(msg, keys.Panel.Down):
		m = m.moveCursor(1)
		return m, nil
	case msg.Type == tea.KeyUp, !searching && key.Matches(msg, keys.Panel.Up):
		m = m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, keys.Panel.Select):
		return m, m.selectCmd()
	case searching && msg.Type == tea.KeyCtrlU:
		return m.SetQuery(""), nil
	case searching:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m.refilter(), cmd
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollOffset = max(m.scrollOffset-1, 0)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollOffset = min(m.scrollOffset+1, max(len(m.filtered)-m.visibleRows(), 0))
		return m, nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for i, d := range m.filtered {
		if z := zone.Get(ZoneID(d.ID)); z != nil && z.InBounds(msg) {
			m.cursor = i
			return m, m.selectCmd()
		}
	}
	return m, nil
}

// ZoneID is the bubblezone ID of an operation row.
func ZoneID(id string) string {
	return zonePrefix + id
}

func (m Model) moveCursor(delta int) Model {
	if len(m.filtered) == 0 {
		return m
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.filtered)-1)
	return m.ensureCursorVisible()
}

func (m Model) selectCmd() tea.Cmd {
	d, ok := m.Highlighted()
	if !ok {
		return nil
	}
	return func() tea.Msg { return SelectMsg{Operation: d} }
}

// refilter applies category then query. ID matches come before
// description-only matches; each group keeps catalog order.
func (m Model) refilter() Model {
	base := m.catalog.FilterByCategory(m.category)
	q := strings.ToLower(strings.TrimSpace(m.search.Value()))

	if q == "" {
		m.filtered = base
	} else {
		var byName, byDesc []operation.Descriptor
		for _, d := range base {
			switch {
			case strings.Contains(strings.ToLower(d.ID), q):
				byName = append(byName, d)
			case strings.Contains(strings.ToLower(d.Description), q):
				byDesc = append(byDesc, d)
			}
		}
		m.filtered = append(byName, byDesc...)
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
		m.scrollOffset = 0
	}
	return m.ensureCursorVisible()
}

// visibleRows is the number of operation rows that fit below the search line.
func (m Model) visibleRows() int {
	if m.height <= 0 {
		return len(m.filtered)
	}
	return max(m.height-1, 1)
}

func (m Model) ensureCursorVisible() Model {
	rows := m.visibleRows()
	if m.cursor >= m.scrollOffset+rows {
		m.scrollOffset = m.cursor - rows + 1
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	return m
}

// View renders the search line followed by the visible rows.
func (m Model) View() string {
	lines := []string{m.search.View()}

	if len(m.filtered) == 0 {
		lines = append(lines, styles.MutedStyle.Italic(true).Render("no matching operations"))
		return strings.Join(lines, "\n")
	}

	end := min(m.scrollOffset+m.visibleRows(), len(m.filtered))
	for i := m.scrollOffset; i < end; i++ {
		lines = append(lines, zone.Mark(ZoneID(m.filtered[i].ID), m.renderRow(m.filtered[i], i == m.cursor)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(d operation.Descriptor, highlighted bool) string {
	indicator := "  "
	if highlighted && m.focused {
		indicator = styles.SelectionIndicatorStyle.Render(">") + " "
	}

	width := m.width
	if width <= 0 {
		width = 80
	}
	nameWidth := 15
	nameStyle := styles.OperationNameStyle
	if d.ID == m.selectedID {
		nameStyle = styles.SelectedOperationStyle
	}

	name := styles.PadRight(styles.TruncateString(d.ID, nameWidth), nameWidth)
	row := indicator + nameStyle.Render(name)

	if descWidth := width - 2 - nameWidth - 1; m.showDescriptions && descWidth > 3 {
		row += " " + styles.OperationDescStyle.Render(styles.TruncateString(d.Description, descWidth))
	}
	return row
}
