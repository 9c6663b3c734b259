package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/zjrosen/xroot/internal/keys"
	"github.com/zjrosen/xroot/internal/ui/overlay"
	"github.com/zjrosen/xroot/internal/ui/styles"
)

const (
	headerHeight = 1
	chipsHeight  = 2
	footerHeight = 1
	minBodyRows  = 6
)

type layout struct {
	listWidth   int
	rightWidth  int
	bodyHeight  int
	inputHeight int
	outHeight   int
}

func (m Model) layout() layout {
	body := max(m.height-headerHeight-chipsHeight-footerHeight, minBodyRows)
	listWidth := min(max(m.width*2/5, 30), 60)
	if m.width < 60 {
		listWidth = m.width / 2
	}
	input := body / 2
	return layout{
		listWidth:   listWidth,
		rightWidth:  max(m.width-listWidth, 10),
		bodyHeight:  body,
		inputHeight: input,
		outHeight:   body - input,
	}
}

func (m Model) resize() Model {
	l := m.layout()
	m.list = m.list.SetSize(l.listWidth-2, l.bodyHeight-2)
	m.input.SetWidth(l.rightWidth - 2)
	m.input.SetHeight(max(l.inputHeight-2, 1))
	m.output.Width = l.rightWidth - 2
	m.output.Height = max(l.outHeight-2, 1)
	m.help.Width = m.width
	return m.setOutput(m.outputText)
}

// setOutput replaces the output text, wrapping it to the panel when
// ui.wrap_output is on.
func (m Model) setOutput(text string) Model {
	m.outputText = text
	content := text
	if m.svc.Config.UI.WrapOutput && m.output.Width > 0 {
		content = wrap.String(wordwrap.String(text, m.output.Width), m.output.Width)
	}
	m.output.SetContent(content)
	m.output.GotoTop()
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	l := m.layout()

	listPanel := styles.Panel{
		Title:   "OPERATIONS",
		Badge:   styles.MutedStyle.Render(m.list.Category().Label()),
		Width:   l.listWidth,
		Height:  l.bodyHeight,
		Focused: m.focus != focusInput,
	}
	inputPanel := styles.Panel{
		Title:   "INPUT",
		Badge:   styles.MutedStyle.Render(byteBadge(len(m.input.Value()))),
		Width:   l.rightWidth,
		Height:  l.inputHeight,
		Focused: m.focus == focusInput,
	}
	outputPanel := styles.Panel{
		Title:  "OUTPUT",
		Badge:  m.statusBadge(),
		Width:  l.rightWidth,
		Height: l.outHeight,
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listPanel.Render(m.list.View()),
		lipgloss.JoinVertical(lipgloss.Left,
			inputPanel.Render(m.input.View()),
			outputPanel.Render(m.output.View()),
		),
	)

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.chips.View(),
		body,
		styles.StatusBarStyle.Render(m.help.View(keys.Panel)),
	)

	view = m.toaster.Overlay(view, m.width, m.height)
	if m.showReference {
		box := overlay.Box("OPERATION REFERENCE", m.reference.View(), "j/k scroll • esc close", m.width-4, m.height-2)
		view = overlay.Place(overlay.Config{Width: m.width, Height: m.height, Position: overlay.Center}, box, view)
	}
	view = m.logOverlay.Overlay(view)

	return zone.Scan(view)
}

func (m Model) renderHeader() string {
	name := "NONE"
	if m.selected != nil {
		name = strings.ToUpper(m.selected.ID)
	}
	left := styles.TitleStyle.Render("XROOT") +
		styles.MutedStyle.Render(" // text utility panel  ") +
		styles.OperationNameStyle.Render("OP: "+name)

	indicator := tickerStates[m.tickerIdx]
	if m.running {
		indicator = "◑ PROC"
	}
	mode := m.svc.Config.Theme.Mode
	if mode == "" {
		mode = styles.ModeDark
	}
	right := styles.TickerStyle.Render(indicator) + styles.MutedStyle.Render("  "+strings.ToUpper(mode))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) statusBadge() string {
	switch m.status {
	case StatusSuccess:
		return styles.StatusSuccessStyle.Render(m.status.Label())
	case StatusError:
		return styles.StatusErrorStyle.Render(m.status.Label())
	default:
		return styles.StatusEmptyStyle.Render(m.status.Label())
	}
}

func byteBadge(n int) string {
	if n == 1 {
		return "1 byte"
	}
	return strconv.Itoa(n) + " bytes"
}
