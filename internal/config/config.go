// Package config provides configuration types, defaults and validation for
// xroot.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zjrosen/xroot/internal/log"
	"github.com/zjrosen/xroot/internal/tracing"
	"github.com/zjrosen/xroot/internal/transform"
)

// Theme modes.
const (
	ModeDark  = "dark"
	ModeLight = "light"
)

// Config holds all configuration options for xroot.
type Config struct {
	UI         UIConfig         `mapstructure:"ui"`
	Theme      ThemeConfig      `mapstructure:"theme"`
	Transforms TransformsConfig `mapstructure:"transforms"`
	Cache      CacheConfig      `mapstructure:"cache"`
	History    HistoryConfig    `mapstructure:"history"`
	Output     OutputConfig     `mapstructure:"output"`
	Tracing    tracing.Config   `mapstructure:"tracing"`
}

// UIConfig holds panel options.
type UIConfig struct {
	ShowDescriptions bool   `mapstructure:"show_descriptions"` // Show descriptions next to operation names
	WrapOutput       bool   `mapstructure:"wrap_output"`       // Word-wrap long output lines
	StatusTicker     bool   `mapstructure:"status_ticker"`     // Rotate the header status indicator
	MarkdownStyle    string `mapstructure:"markdown_style"`    // "dark" (default) or "light"
}

// ThemeConfig holds theme options.
type ThemeConfig struct {
	// Mode selects the base palette: "dark" (default) or "light".
	// Toggled from the panel with ctrl+t and saved back here.
	Mode string `mapstructure:"mode"`

	// Colors overrides individual color tokens, nested or dot notation:
	//   colors:
	//     accent:
	//       primary: "#FF00FF"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns Colors flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				if s, ok := mk.(string); ok {
					converted[s] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// TransformsConfig tunes the parameterised ciphers.
type TransformsConfig struct {
	CaesarShift int    `mapstructure:"caesar_shift"`
	XORKey      string `mapstructure:"xor_key"`
}

// Options converts to dispatcher options.
func (t TransformsConfig) Options() transform.Options {
	return transform.Options{CaesarShift: t.CaesarShift, XORKey: t.XORKey}
}

// CacheConfig controls the result cache.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// HistoryConfig controls the execution history database.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// OutputConfig controls where downloaded output files go.
type OutputConfig struct {
	Dir string `mapstructure:"dir"` // Default: current directory
}

// DefaultConfigDir returns ~/.config/xroot, or "" if the home directory is
// unavailable.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "xroot")
}

// DefaultConfigPath returns the user-level config file path.
func DefaultConfigPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// DefaultHistoryPath returns ~/.config/xroot/history.db.
func DefaultHistoryPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "history.db")
}

// DefaultTracesFilePath returns ~/.config/xroot/traces/traces.jsonl.
func DefaultTracesFilePath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// Defaults returns a Config with default values.
func Defaults() Config {
	opts := transform.DefaultOptions()

	tr := tracing.DefaultConfig()
	tr.FilePath = DefaultTracesFilePath()

	return Config{
		UI: UIConfig{
			ShowDescriptions: true,
			WrapOutput:       true,
			StatusTicker:     true,
			MarkdownStyle:    ModeDark,
		},
		Theme: ThemeConfig{
			Mode: ModeDark,
		},
		Transforms: TransformsConfig{
			CaesarShift: opts.CaesarShift,
			XORKey:      opts.XORKey,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		History: HistoryConfig{
			Enabled: false,
			Path:    DefaultHistoryPath(),
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Tracing: tr,
	}
}

// Validate checks every section.
func Validate(c Config) error {
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	if err := ValidateTransforms(c.Transforms); err != nil {
		return err
	}
	if err := ValidateCache(c.Cache); err != nil {
		return err
	}
	if err := ValidateHistory(c.History); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// ValidateUI checks panel options.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", ModeDark, ModeLight:
		return nil
	default:
		return fmt.Errorf("ui.markdown_style must be %q or %q, got %q", ModeDark, ModeLight, ui.MarkdownStyle)
	}
}

// ValidateTheme checks the theme mode. Color tokens are validated when the
// theme is applied.
func ValidateTheme(theme ThemeConfig) error {
	switch strings.ToLower(theme.Mode) {
	case "", ModeDark, ModeLight:
		return nil
	default:
		return fmt.Errorf("theme.mode must be %q or %q, got %q", ModeDark, ModeLight, theme.Mode)
	}
}

// ValidateTransforms checks cipher parameters.
func ValidateTransforms(t TransformsConfig) error {
	if t.XORKey == "" {
		return fmt.Errorf("transforms.xor_key must not be empty")
	}
	return nil
}

// ValidateCache checks the cache TTL.
func ValidateCache(c CacheConfig) error {
	if c.Enabled && c.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.TTL)
	}
	return nil
}

// ValidateHistory checks history options.
func ValidateHistory(h HistoryConfig) error {
	if h.Enabled && h.Path == "" {
		return fmt.Errorf("history.path is required when history is enabled")
	}
	return nil
}

// ValidateTracing checks tracing options.
func ValidateTracing(tr tracing.Config) error {
	if tr.SampleRate < 0 || tr.SampleRate > 1 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tr.SampleRate)
	}

	switch tr.Exporter {
	case "", tracing.ExporterNone, tracing.ExporterFile, tracing.ExporterStdout, tracing.ExporterOTLP:
	default:
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tr.Exporter)
	}

	if tr.Enabled {
		if tr.Exporter == tracing.ExporterFile && tr.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tr.Exporter == tracing.ExporterOTLP && tr.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}
	return nil
}

// DefaultConfigTemplate returns the default config as commented YAML.
func DefaultConfigTemplate() string {
	return `# xroot configuration

# Panel settings
ui:
  show_descriptions: true   # Show operation descriptions in the list
  wrap_output: true         # Word-wrap long output lines
  status_ticker: true       # Rotate the header status indicator
  # markdown_style: dark    # Operation reference style: "dark" (default) or "light"

# Theme
theme:
  mode: dark                # "dark" or "light" (ctrl+t toggles and saves this)
  #
  # Override individual colors:
  # colors:
  #   accent.primary: "#00FFFF"
  #   status.error: "#FF0055"

# Cipher parameters
transforms:
  caesar_shift: 3           # Caesar Cipher shift
  xor_key: XrooT            # XOR Cipher key

# Result cache for repeated executions
cache:
  enabled: true
  ttl: 10m

# Execution history (operation, sizes and timing only; never the text)
history:
  enabled: false
  # path: ~/.config/xroot/history.db

# Downloaded output files (ctrl+s)
output:
  dir: .

# Tracing
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # none, file, stdout, otlp (default: file)
#   file_path: ~/.config/xroot/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig writes the commented template to configPath, creating
// the parent directory.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "created default config", "path", configPath)
	return nil
}
