package chips

import (
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

func TestLabels(t *testing.T) {
	m := New(operation.Default())
	view := zone.Scan(m.View())

	for _, want := range []string{"ALL (20)", "ENCODE (8)", "HASH (3)", "CRYPTO (3)", "TRANSFORM (4)", "FORMAT (2)"} {
		require.Contains(t, view, want)
	}
}

func TestCycle(t *testing.T) {
	m := New(operation.Default())
	require.Equal(t, operation.CategoryAll, m.Active())

	m = m.Next()
	require.Equal(t, operation.CategoryEncoding, m.Active())

	m = m.Prev().Prev()
	require.Equal(t, operation.CategoryFormat, m.Active(), "prev wraps to the last chip")

	m = m.Next()
	require.Equal(t, operation.CategoryAll, m.Active(), "next wraps to ALL")
}

func TestSetActive(t *testing.T) {
	m := New(operation.Default()).SetActive(operation.CategoryHashing)
	require.Equal(t, operation.CategoryHashing, m.Active())

	m = m.SetActive("bogus")
	require.Equal(t, operation.CategoryHashing, m.Active())
}

func TestEmptyCatalogCounts(t *testing.T) {
	m := New(operation.MustNew())
	require.Equal(t, "ALL (0)", m.Label(operation.CategoryAll))
}

func TestClick(t *testing.T) {
	m := New(operation.Default())

	var z *zone.ZoneInfo
	require.Eventually(t, func() bool {
		_ = zone.Scan(m.View())
		z = zone.Get(ZoneID(operation.CategoryCrypto))
		return z != nil && !z.IsZero()
	}, time.Second, 5*time.Millisecond)

	m, cmd := m.Update(tea.MouseMsg{X: z.StartX + 1, Y: z.StartY, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	require.NotNil(t, cmd)
	require.Equal(t, ChangedMsg{Category: operation.CategoryCrypto}, cmd())
	require.Equal(t, operation.CategoryCrypto, m.Active())

	// presses are ignored, only releases count
	_, cmd = m.Update(tea.MouseMsg{X: z.StartX + 1, Y: z.StartY, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	require.Nil(t, cmd)
}
