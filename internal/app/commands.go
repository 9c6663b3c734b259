package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/xroot/internal/config"
	"github.com/zjrosen/xroot/internal/log"
	"github.com/zjrosen/xroot/internal/pipeline"
)

// TickerInterval is the header indicator rotation period.
const TickerInterval = 2 * time.Second

// tickerStates rotate in the header while the panel is idle.
var tickerStates = []string{"● ONLINE", "◐ SYNC", "◑ PROC", "◒ READY"}

type executedMsg struct {
	seq    int
	id     string
	output string
	err    error
}

type fileLoadedMsg struct {
	name    string
	size    int
	content string
	err     error
}

type savedMsg struct {
	path string
	err  error
}

type themeSavedMsg struct {
	mode string
	err  error
}

type tickMsg struct{}

func executeCmd(exec pipeline.Executor, seq int, id, input string) tea.Cmd {
	return func() tea.Msg {
		out, err := exec.Execute(context.Background(), id, input)
		return executedMsg{seq: seq, id: id, output: out, err: err}
	}
}

func loadFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from --file
		if err != nil {
			return fileLoadedMsg{name: filepath.Base(path), err: err}
		}
		return fileLoadedMsg{name: filepath.Base(path), size: len(data), content: string(data)}
	}
}

// OutputFileName is the download name for output written at t.
func OutputFileName(t time.Time) string {
	return fmt.Sprintf("xroot_output_%d.txt", t.UnixMilli())
}

func saveOutputCmd(dir string, now time.Time, output string) tea.Cmd {
	return func() tea.Msg {
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return savedMsg{err: fmt.Errorf("creating output dir: %w", err)}
		}
		path := filepath.Join(dir, OutputFileName(now))
		if err := os.WriteFile(path, []byte(output), 0o600); err != nil {
			return savedMsg{path: path, err: err}
		}
		log.Info(log.CatUI, "output saved", "path", path, "bytes", len(output))
		return savedMsg{path: path}
	}
}

func saveThemeCmd(configPath, mode string) tea.Cmd {
	return func() tea.Msg {
		return themeSavedMsg{mode: mode, err: config.SaveThemeMode(configPath, mode)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(TickerInterval, func(time.Time) tea.Msg { return tickMsg{} })
}
