package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func TestPanel_Dimensions(t *testing.T) {
	p := Panel{Title: "INPUT", Badge: "[EMPTY]", Width: 30, Height: 5}
	out := p.Render("hello\nworld")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for i, line := range lines {
		require.Equal(t, 30, lipgloss.Width(line), "line %d: %q", i, line)
	}
	require.True(t, strings.HasPrefix(lines[0], "╭─ INPUT "))
	require.True(t, strings.HasSuffix(lines[0], " [EMPTY] ─╮"))
	require.Contains(t, lines[1], "hello")
	require.Contains(t, lines[2], "world")
	require.True(t, strings.HasPrefix(lines[4], "╰"))
}

func TestPanel_ClipsOverflow(t *testing.T) {
	p := Panel{Title: "OUT", Width: 12, Height: 4}
	out := p.Render("a\nb\nc\nd\ne")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	require.NotContains(t, out, "c")
}

func TestPanel_DropsBadgeWhenNarrow(t *testing.T) {
	p := Panel{Title: "OPERATIONS", Badge: "[SUCCESS]", Width: 18, Height: 3}
	top := strings.Split(p.Render(""), "\n")[0]

	require.Equal(t, 18, lipgloss.Width(top))
	require.NotContains(t, top, "SUCCESS")
	require.Contains(t, top, "OPERATIONS")
}

func TestPanel_InnerSize(t *testing.T) {
	p := Panel{Width: 40, Height: 10}
	require.Equal(t, 38, p.InnerWidth())
	require.Equal(t, 8, p.InnerHeight())
	require.Equal(t, 1, Panel{}.InnerWidth())
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncate me", 8, "trunc..."},
		{"abc", 0, ""},
		{"abcdef", 2, ".."},
		{"日本語テキスト", 7, "日本..."},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, TruncateString(tt.in, tt.width), "%q/%d", tt.in, tt.width)
	}
}

func TestPadRight(t *testing.T) {
	require.Equal(t, "ab   ", PadRight("ab", 5))
	require.Equal(t, "日  ", PadRight("日", 4))
}
