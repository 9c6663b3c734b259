package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Border characters (rounded)
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// Panel describes one bordered section of the screen.
// Title sits at the left of the top border and Badge (already styled) at the
// right: ╭─ INPUT ───────── [EMPTY] ─╮
type Panel struct {
	Title   string
	Badge   string
	Width   int
	Height  int
	Focused bool
}

// Render draws content inside the panel border. Content is clipped to the
// inner area and padded so the right border lines up.
func (p Panel) Render(content string) string {
	borderColor := BorderDefaultColor
	if p.Focused {
		borderColor = BorderFocusColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(p.Focused).Foreground(OverlayTitleColor)

	innerWidth := max(p.Width-2, 1)
	contentHeight := max(p.Height-2, 1)

	constrained := lipgloss.NewStyle().
		Width(innerWidth).
		MaxWidth(innerWidth).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)
	lines := strings.Split(constrained, "\n")

	var b strings.Builder
	b.WriteString(topBorder(p.Title, p.Badge, innerWidth, borderStyle, titleStyle))
	for i := range contentHeight {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		b.WriteString("\n")
		b.WriteString(borderStyle.Render(borderVertical) + line + borderStyle.Render(borderVertical))
	}
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight))
	return b.String()
}

// InnerWidth is the usable content width.
func (p Panel) InnerWidth() int { return max(p.Width-2, 1) }

// InnerHeight is the usable content height.
func (p Panel) InnerHeight() int { return max(p.Height-2, 1) }

// topBorder builds ╭─ Title ─── Badge ─╮. The badge is dropped first when
// space runs out, then the title is truncated.
func topBorder(title, badge string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	plain := borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	if title == "" && badge == "" {
		return plain
	}
	// "─ " + title + " " ... " " + badge + " ─"
	if innerWidth < 4 {
		return plain
	}

	badgeWidth := 0
	if badge != "" {
		badgeWidth = lipgloss.Width(badge) + 3
	}
	available := innerWidth - 3
	if badgeWidth > 0 && available-badgeWidth < lipgloss.Width(title) {
		badge, badgeWidth = "", 0
	}

	displayTitle := TruncateString(title, available-badgeWidth)
	dashes := max(innerWidth-3-lipgloss.Width(displayTitle)-badgeWidth, 0)

	var b strings.Builder
	b.WriteString(borderStyle.Render(borderTopLeft + borderHorizontal + " "))
	b.WriteString(titleStyle.Render(displayTitle))
	b.WriteString(borderStyle.Render(" " + strings.Repeat(borderHorizontal, dashes)))
	if badge != "" {
		b.WriteString(borderStyle.Render(" "))
		b.WriteString(badge)
		b.WriteString(borderStyle.Render(" " + borderHorizontal))
	}
	b.WriteString(borderStyle.Render(borderTopRight))
	return b.String()
}
