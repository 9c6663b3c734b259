package styles

// Preset represents a complete color palette for one theme mode.
type Preset struct {
	Name   string
	Colors map[ColorToken]string
}

// Mode names accepted by ApplyTheme.
const (
	ModeDark  = "dark"
	ModeLight = "light"
)

// Presets maps a theme mode to its palette.
var Presets = map[string]Preset{
	ModeDark:  DarkPreset,
	ModeLight: LightPreset,
}

// DarkPreset is the terminal-green default.
var DarkPreset = Preset{
	Name: ModeDark,
	Colors: map[ColorToken]string{
		TokenAccentPrimary:   "#00FF41",
		TokenAccentSecondary: "#00B8D4",

		TokenTextPrimary:     "#D0FFD8",
		TokenTextMuted:       "#4F6F55",
		TokenTextDescription: "#8FBF98",
		TokenTextPlaceholder: "#5F7F65",

		TokenBorderDefault: "#2E4D34",
		TokenBorderFocus:   "#00FF41",

		TokenStatusSuccess: "#00FF41",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF3860",

		TokenSelectionIndicator:  "#00FF41",
		TokenSelectionBackground: "#12301A",

		TokenChipActive:   "#00FF41",
		TokenChipInactive: "#4F6F55",

		TokenOverlayTitle:  "#00FF41",
		TokenOverlayBorder: "#2E4D34",

		TokenToastSuccess: "#00FF41",
		TokenToastError:   "#FF3860",
		TokenToastInfo:    "#00B8D4",
	},
}

// LightPreset trades the glow for contrast on pale backgrounds.
var LightPreset = Preset{
	Name: ModeLight,
	Colors: map[ColorToken]string{
		TokenAccentPrimary:   "#0A7E2E",
		TokenAccentSecondary: "#00708A",

		TokenTextPrimary:     "#1B2B1F",
		TokenTextMuted:       "#7A8A7D",
		TokenTextDescription: "#4A5D4E",
		TokenTextPlaceholder: "#8A9A8D",

		TokenBorderDefault: "#B7C7BA",
		TokenBorderFocus:   "#0A7E2E",

		TokenStatusSuccess: "#0A7E2E",
		TokenStatusWarning: "#B7791F",
		TokenStatusError:   "#C81E3A",

		TokenSelectionIndicator:  "#0A7E2E",
		TokenSelectionBackground: "#DCEFE0",

		TokenChipActive:   "#0A7E2E",
		TokenChipInactive: "#7A8A7D",

		TokenOverlayTitle:  "#0A7E2E",
		TokenOverlayBorder: "#B7C7BA",

		TokenToastSuccess: "#0A7E2E",
		TokenToastError:   "#C81E3A",
		TokenToastInfo:    "#00708A",
	},
}
