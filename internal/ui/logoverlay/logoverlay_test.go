package logoverlay

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/xroot/internal/log"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized() Model {
	m := New()
	m.SetSize(100, 40)
	return m
}

func TestAppend_Bounded(t *testing.T) {
	m := New()
	for i := range MaxEntries + 10 {
		m.Append(fmt.Sprintf("2026-01-01T00:00:00 [INFO] [ui] entry %d\n", i))
	}
	entries := m.Entries()
	require.Len(t, entries, MaxEntries)
	require.Contains(t, entries[0], "entry 10")
	require.False(t, strings.HasSuffix(entries[0], "\n"))
}

func TestLevelFilter(t *testing.T) {
	m := sized()
	m.Append("t [DEBUG] [cache] miss")
	m.Append("t [INFO] [pipeline] ok")
	m.Append("t [WARN] [pipeline] failed")
	m.Append("t [ERROR] [history] boom")
	m.Toggle()

	m, _ = m.Update(key("w"))
	require.Equal(t, log.LevelWarn, m.MinLevel())
	require.Len(t, m.Entries(), 2)

	m, _ = m.Update(key("e"))
	require.Equal(t, []string{"t [ERROR] [history] boom"}, m.Entries())

	m, _ = m.Update(key("d"))
	require.Len(t, m.Entries(), 4)
}

func TestKeysIgnoredWhenHidden(t *testing.T) {
	m := sized()
	m.Append("t [DEBUG] [ui] x")
	m, _ = m.Update(key("e"))
	require.Equal(t, log.LevelDebug, m.MinLevel())
}

func TestClear(t *testing.T) {
	m := sized()
	m.Append("t [INFO] [ui] x")
	m.Toggle()
	m, _ = m.Update(key("c"))
	require.Empty(t, m.Entries())
	require.Contains(t, m.View(), "No logs to display")
}

func TestClose(t *testing.T) {
	for _, k := range []string{"esc", "ctrl+x"} {
		m := sized()
		m.Toggle()
		require.True(t, m.Visible())

		m, cmd := m.Update(key(k))
		require.False(t, m.Visible())
		require.NotNil(t, cmd)
		require.IsType(t, CloseMsg{}, cmd())
	}
}

func TestView(t *testing.T) {
	m := sized()
	m.Append("t [INFO] [transform] executed op=ROT13")
	require.Empty(t, m.View())

	m.Toggle()
	view := m.View()
	require.Contains(t, view, "Logs")
	require.Contains(t, view, "executed op=ROT13")
	require.Contains(t, view, "[w] Warn")

	bg := strings.Repeat(strings.Repeat(" ", 100)+"\n", 39) + strings.Repeat(" ", 100)
	require.Contains(t, m.Overlay(bg), "executed op=ROT13")
}

func TestLevelOf(t *testing.T) {
	require.Equal(t, log.LevelInfo, levelOf("x [INFO] y"))
	require.Equal(t, log.LevelError, levelOf("no tag"))
}
