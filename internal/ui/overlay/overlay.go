// Package overlay composites floating content (toasts, the operation
// reference, the log view) on top of the rendered panel.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/xroot/internal/ui/styles"
)

// Position specifies where to place the overlay content.
type Position int

const (
	Center Position = iota
	Top
	Bottom
	TopRight    // toast corner
	BottomRight // used when the header is too short for a top-right toast
)

// Config controls overlay rendering behavior.
type Config struct {
	Width    int // total viewport width
	Height   int // total viewport height
	Position Position
	PadX     int // horizontal gap from the edge (right-aligned positions only)
	PadY     int // vertical gap from the edge (non-centered positions)
}

// Place renders fg on top of bg. Both may carry ANSI styling; cells outside
// the foreground keep the background untouched.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	x, y := origin(cfg, lipgloss.Width(fg), len(fgLines))

	for i, fgLine := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], fgLine, x)
	}
	return strings.Join(bgLines, "\n")
}

// splice writes fgLine into bgLine starting at column x.
func splice(bgLine, fgLine string, x int) string {
	left := ansi.Truncate(bgLine, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	end := x + ansi.StringWidth(fgLine)
	var right string
	if end < ansi.StringWidth(bgLine) {
		right = ansi.TruncateLeft(bgLine, end, "")
	}
	return left + fgLine + right
}

func origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	centerX := (cfg.Width - fgWidth) / 2
	rightX := cfg.Width - fgWidth - cfg.PadX

	switch cfg.Position {
	case Top:
		x, y = centerX, cfg.PadY
	case Bottom:
		x, y = centerX, cfg.Height-fgHeight-cfg.PadY
	case TopRight:
		x, y = rightX, cfg.PadY
	case BottomRight:
		x, y = rightX, cfg.Height-fgHeight-cfg.PadY
	default:
		x, y = centerX, (cfg.Height-fgHeight)/2
	}
	return max(x, 0), max(y, 0)
}

// Box frames content in a rounded border with a title line, sized to at
// most maxWidth x maxHeight cells. Longer content is cut and a hint line is
// shown in its place.
func Box(title, content, hint string, maxWidth, maxHeight int) string {
	innerWidth := max(maxWidth-4, 10)
	bodyHeight := max(maxHeight-4, 1) // border + title + hint

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) > bodyHeight {
		lines = lines[:bodyHeight]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, innerWidth, "…")
	}

	titleLine := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).Render(title)
	parts := []string{titleLine}
	parts = append(parts, lines...)
	if hint != "" {
		parts = append(parts, styles.MutedStyle.Render(hint))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(0, 1).
		Render(strings.Join(parts, "\n"))
}
