package oplist

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/xroot/internal/operation"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	zone.NewGlobal()
	m.Run()
}

func ids(descs []operation.Descriptor) []string {
	out := make([]string, len(descs))
	for i, d := range descs {
		out[i] = d.ID
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_ShowsWholeCatalog(t *testing.T) {
	m := New(operation.Default())
	require.Len(t, m.Items(), 20)
	require.Equal(t, operation.CategoryAll, m.Category())
}

func TestSetCategory(t *testing.T) {
	m := New(operation.Default()).SetCategory(operation.CategoryCrypto)
	require.Equal(t, []string{operation.CaesarCipher, operation.ROT13, operation.XORCipher}, ids(m.Items()))
}

func TestQuery_NameMatchesFirst(t *testing.T) {
	// "hex" is in the ID of To/From Hex and only in the description of MD5/SHA256
	m := New(operation.Default()).SetQuery("hex")
	require.Equal(t, []string{
		operation.ToHex, operation.FromHex,
		operation.MD5, operation.SHA256,
	}, ids(m.Items()))
}

func TestQuery_CombinedWithCategory(t *testing.T) {
	m := New(operation.Default()).SetCategory(operation.CategoryEncoding).SetQuery("decode")
	require.Equal(t, []string{operation.URLDecode, operation.HTMLDecode, operation.FromBase64}, ids(m.Items()))
}

func TestQuery_NoMatch(t *testing.T) {
	m := New(operation.Default()).SetQuery("zzz")
	require.Empty(t, m.Items())
	require.Contains(t, m.View(), "no matching operations")
	_, ok := m.Highlighted()
	require.False(t, ok)
}

func TestTypingFiltersWhenSearchFocused(t *testing.T) {
	m, _ := New(operation.Default()).FocusSearch()
	for _, r := range "rot" {
		m, _ = m.Update(runes(string(r)))
	}
	require.Equal(t, "rot", m.Query())
	require.Equal(t, []string{operation.ROT13}, ids(m.Items()))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	require.Empty(t, m.Query())
	require.Len(t, m.Items(), 20)
}

func TestKeysIgnoredWhenBlurred(t *testing.T) {
	m := New(operation.Default())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 0, m.Cursor())
}

func TestCursorAndSelect(t *testing.T) {
	m := New(operation.Default()).Focus()

	m, _ = m.Update(runes("j"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(runes("k"))
	require.Equal(t, 1, m.Cursor())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(SelectMsg)
	require.True(t, ok)
	require.Equal(t, operation.FromBase64, msg.Operation.ID)
}

func TestCursorClamped(t *testing.T) {
	m := New(operation.Default()).SetCategory(operation.CategoryFormat).Focus()
	for range 5 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, 1, m.Cursor())
	for range 5 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	require.Equal(t, 0, m.Cursor())
}

func TestCursorResetWhenFilterShrinks(t *testing.T) {
	m := New(operation.Default()).Focus()
	for range 10 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	m = m.SetCategory(operation.CategoryFormat)
	require.Equal(t, 0, m.Cursor())
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	m := New(operation.Default()).SetSize(60, 6).Focus() // search line + 5 rows
	for range 7 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	view := zone.Scan(m.View())
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 6)
	require.Contains(t, view, operation.HTMLDecode)
	require.NotContains(t, view, operation.ToBase64)
}

func TestView_SelectedAndDescriptions(t *testing.T) {
	m := New(operation.Default()).SetSize(70, 30).SetSelected(operation.ROT13)
	require.Equal(t, operation.ROT13, m.Selected())

	view := zone.Scan(m.View())
	require.Contains(t, view, "Simple letter substitution")

	m = m.SetShowDescriptions(false)
	view = zone.Scan(m.View())
	require.NotContains(t, view, "Simple letter substitution")
	require.Contains(t, view, operation.ROT13)
}

func TestClickSelectsRow(t *testing.T) {
	m := New(operation.Default()).SetSize(70, 30)
	_ = zone.Scan(m.View())

	var z *zone.ZoneInfo
	require.Eventually(t, func() bool {
		_ = zone.Scan(m.View())
		z = zone.Get(ZoneID(operation.CRC32))
		return z != nil && !z.IsZero()
	}, time.Second, 5*time.Millisecond)

	_, cmd := m.Update(tea.MouseMsg{
		X:      z.StartX + 1,
		Y:      z.StartY,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	})
	require.NotNil(t, cmd)
	require.Equal(t, operation.CRC32, cmd().(SelectMsg).Operation.ID)
}
