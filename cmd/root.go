package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/xroot/internal/app"
	"github.com/zjrosen/xroot/internal/config"
	"github.com/zjrosen/xroot/internal/log"
	"github.com/zjrosen/xroot/internal/ui/styles"
)

func init() {
	// Query the terminal background before any Bubble Tea program starts so
	// the OSC 11 response cannot race with the input loop.
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".xroot/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	cfg       config.Config
	v         *viper.Viper
	logCloser func()
)

var rootCmd = &cobra.Command{
	Use:   "xroot",
	Short: "A terminal text utility panel",
	Long: `xroot encodes, decodes, hashes, ciphers and reformats text.

Run without a subcommand to open the panel: pick an operation on the left,
type or load input, and press ctrl+r. Subcommands expose the same
operations to scripts.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logCloser != nil {
			logCloser()
			logCloser = nil
		}
	},
	RunE: runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .xroot/config.yaml, then ~/.config/xroot/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false,
		"write debug logs to debug.log (also XROOT_DEBUG=1)")
	rootCmd.Flags().StringP("file", "f", "",
		"preload input from a file and reload it when it changes")
}

func initConfig() {
	// "::" keeps dotted color tokens like "status.error" as single keys.
	v = viper.NewWithOptions(viper.KeyDelimiter("::"))
	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	// Config lookup order:
	// 1. --config
	// 2. .xroot/config.yaml (current directory)
	// 3. ~/.config/xroot/config.yaml (user config)
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			path = localConfigPath
		} else {
			path = config.DefaultConfigPath()
		}
	}

	cfg = config.Defaults()
	if path == "" {
		return
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		// If write fails, just continue with defaults (no config file)
		if writeErr := config.WriteDefaultConfig(path); writeErr != nil {
			return
		}
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: reading config %s: %v\n", path, err)
		return
	}
	if err := v.Unmarshal(&cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: parsing config %s: %v\n", path, err)
		cfg = config.Defaults()
	}
}

// configPath is where the panel persists theme changes.
func configPath() string {
	if v != nil && v.ConfigFileUsed() != "" {
		return v.ConfigFileUsed()
	}
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

func debugEnabled() bool {
	if os.Getenv("XROOT_DEBUG") != "" {
		return true
	}
	return v != nil && v.GetBool("debug")
}

func setupLogging(*cobra.Command, []string) error {
	if !debugEnabled() {
		return nil
	}
	closer, err := log.InitWithTeaLog("debug.log", "xroot")
	if err != nil {
		return fmt.Errorf("initializing debug log: %w", err)
	}
	logCloser = closer
	log.Info(log.CatConfig, "config loaded", "path", configPath(), "version", version)
	return nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	zone.NewGlobal()
	if err := styles.ApplyTheme(styles.ThemeConfig{
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	st, err := newStack(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	inputFile, _ := cmd.Flags().GetString("file")
	model := app.New(app.Services{
		Catalog:    st.catalog,
		Executor:   st.executor,
		Config:     cfg,
		ConfigPath: configPath(),
	}, app.Options{
		InputFile: inputFile,
		Debug:     debugEnabled(),
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// shutdownTimeout bounds trace flushing on exit.
const shutdownTimeout = 5 * time.Second

func shutdownContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), shutdownTimeout)
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(ver string) {
	version = ver
	rootCmd.Version = ver
}
