// Package toaster provides the transient status notification shown in the
// panel's top-right corner.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/xroot/internal/ui/overlay"
	"github.com/zjrosen/xroot/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleSuccess Style = iota // ✓ with accent border
	StyleError                // ✗ with error border
	StyleInfo
)

// Model holds the toaster state. Each Show bumps seq so a dismiss timer
// scheduled for an older toast leaves the current one alone.
type Model struct {
	message string
	style   Style
	visible bool
	seq     int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays message and returns the command that dismisses it after
// DefaultDuration.
func (m Model) Show(message string, style Style) (Model, tea.Cmd) {
	m.message = message
	m.style = style
	m.visible = true
	m.seq++
	return m, ScheduleDismiss(m.seq, DefaultDuration)
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Update handles DismissMsg.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.Seq == m.seq {
		return m.Hide()
	}
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the current text, empty when hidden.
func (m Model) Message() string {
	return m.message
}

// Style returns the current style.
func (m Model) Style() Style {
	return m.style
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	box := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var icon string
	switch m.style {
	case StyleError:
		box = box.BorderForeground(styles.ToastBorderErrorColor)
		icon = styles.StatusErrorStyle.Render("✗")
	case StyleInfo:
		box = box.BorderForeground(styles.ToastBorderInfoColor)
		icon = lipgloss.NewStyle().Foreground(styles.ToastBorderInfoColor).Render("•")
	default:
		box = box.BorderForeground(styles.ToastBorderSuccessColor)
		icon = styles.StatusSuccessStyle.Render("✓")
	}

	return box.Render(icon + " " + m.message)
}

// Overlay renders the toast on top of bg in the top-right corner.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.TopRight,
		PadX:     1,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg signals that the toast with sequence Seq has expired.
type DismissMsg struct {
	Seq int
}

// ScheduleDismiss returns a command that expires toast seq after d.
func ScheduleDismiss(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return DismissMsg{Seq: seq}
	})
}
