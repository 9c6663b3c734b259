package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Mode   string
	Colors map[string]string
}

// ApplyTheme loads the preset for cfg.Mode (dark when empty), layers the
// color overrides on top and rebuilds the shared styles. Components read the
// color vars at render time, so the next View picks the change up.
func ApplyTheme(cfg ThemeConfig) error {
	mode := strings.ToLower(cfg.Mode)
	if mode == "" {
		mode = ModeDark
	}
	preset, ok := Presets[mode]
	if !ok {
		return fmt.Errorf("unknown theme mode: %s", cfg.Mode)
	}
	colors := maps.Clone(preset.Colors)

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

// ToggleMode returns the other theme mode.
func ToggleMode(mode string) string {
	if strings.EqualFold(mode, ModeLight) {
		return ModeDark
	}
	return ModeLight
}

func applyColors(colors map[ColorToken]string) {
	targets := map[ColorToken]*lipgloss.TerminalColor{
		TokenAccentPrimary:       &AccentPrimaryColor,
		TokenAccentSecondary:     &AccentSecondaryColor,
		TokenTextPrimary:         &TextPrimaryColor,
		TokenTextMuted:           &TextMutedColor,
		TokenTextDescription:     &TextDescriptionColor,
		TokenTextPlaceholder:     &TextPlaceholderColor,
		TokenBorderDefault:       &BorderDefaultColor,
		TokenBorderFocus:         &BorderFocusColor,
		TokenStatusSuccess:       &StatusSuccessColor,
		TokenStatusWarning:       &StatusWarningColor,
		TokenStatusError:         &StatusErrorColor,
		TokenSelectionIndicator:  &SelectionIndicatorColor,
		TokenSelectionBackground: &SelectionBackgroundColor,
		TokenChipActive:          &ChipActiveColor,
		TokenChipInactive:        &ChipInactiveColor,
		TokenOverlayTitle:        &OverlayTitleColor,
		TokenOverlayBorder:       &OverlayBorderColor,
		TokenToastSuccess:        &ToastBorderSuccessColor,
		TokenToastError:          &ToastBorderErrorColor,
		TokenToastInfo:           &ToastBorderInfoColor,
	}
	for token, hex := range colors {
		if target, ok := targets[token]; ok {
			*target = lipgloss.Color(hex)
		}
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
