package styles

import "github.com/charmbracelet/lipgloss"

// Colors are plain variables so ApplyTheme can swap them at startup and on
// ctrl+t. Values here are the dark palette.
var (
	AccentPrimaryColor   lipgloss.TerminalColor = lipgloss.Color("#00FF41")
	AccentSecondaryColor lipgloss.TerminalColor = lipgloss.Color("#00B8D4")

	TextPrimaryColor     lipgloss.TerminalColor = lipgloss.Color("#D0FFD8")
	TextMutedColor       lipgloss.TerminalColor = lipgloss.Color("#4F6F55") // hints, help text, footers
	TextDescriptionColor lipgloss.TerminalColor = lipgloss.Color("#8FBF98")
	TextPlaceholderColor lipgloss.TerminalColor = lipgloss.Color("#5F7F65")

	BorderDefaultColor lipgloss.TerminalColor = lipgloss.Color("#2E4D34")
	BorderFocusColor   lipgloss.TerminalColor = lipgloss.Color("#00FF41")

	StatusSuccessColor lipgloss.TerminalColor = lipgloss.Color("#00FF41")
	StatusWarningColor lipgloss.TerminalColor = lipgloss.Color("#FECA57")
	StatusErrorColor   lipgloss.TerminalColor = lipgloss.Color("#FF3860")

	SelectionIndicatorColor  lipgloss.TerminalColor = lipgloss.Color("#00FF41")
	SelectionBackgroundColor lipgloss.TerminalColor = lipgloss.Color("#12301A")

	ChipActiveColor   lipgloss.TerminalColor = lipgloss.Color("#00FF41")
	ChipInactiveColor lipgloss.TerminalColor = lipgloss.Color("#4F6F55")

	OverlayTitleColor  lipgloss.TerminalColor = lipgloss.Color("#00FF41")
	OverlayBorderColor lipgloss.TerminalColor = lipgloss.Color("#2E4D34")

	ToastBorderSuccessColor lipgloss.TerminalColor = lipgloss.Color("#00FF41")
	ToastBorderErrorColor   lipgloss.TerminalColor = lipgloss.Color("#FF3860")
	ToastBorderInfoColor    lipgloss.TerminalColor = lipgloss.Color("#00B8D4")
)

// Styles are rebuilt by ApplyTheme because lipgloss.Style captures colors at
// creation time.
var (
	TitleStyle              lipgloss.Style
	TickerStyle             lipgloss.Style
	ChipActiveStyle         lipgloss.Style
	ChipInactiveStyle       lipgloss.Style
	OperationNameStyle      lipgloss.Style
	OperationDescStyle      lipgloss.Style
	SelectedOperationStyle  lipgloss.Style
	SelectionIndicatorStyle lipgloss.Style
	StatusSuccessStyle      lipgloss.Style
	StatusErrorStyle        lipgloss.Style
	StatusEmptyStyle        lipgloss.Style
	StatusBarStyle          lipgloss.Style
	MutedStyle              lipgloss.Style
	ErrorStyle              lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles recreates all Style objects from the current colors.
func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentPrimaryColor)
	TickerStyle = lipgloss.NewStyle().Foreground(AccentSecondaryColor)

	ChipActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ChipActiveColor).
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(ChipActiveColor)
	ChipInactiveStyle = lipgloss.NewStyle().
		Foreground(ChipInactiveColor).
		Padding(0, 1).
		Border(lipgloss.HiddenBorder(), false, false, true, false)

	OperationNameStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	OperationDescStyle = lipgloss.NewStyle().Foreground(TextDescriptionColor)
	SelectedOperationStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(AccentPrimaryColor).
		Background(SelectionBackgroundColor)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	StatusSuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(StatusSuccessColor)
	StatusErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(StatusErrorColor)
	StatusEmptyStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextMutedColor).
		Padding(0, 1)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(1, 2)
}
