package app

import (
	"github.com/atotto/clipboard"

	"github.com/zjrosen/xroot/internal/config"
	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/pipeline"
)

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// Copy copies text to the system clipboard.
func (SystemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// Services holds the panel's collaborators.
type Services struct {
	Catalog    *operation.Catalog
	Executor   pipeline.Executor
	Config     config.Config
	ConfigPath string // where ctrl+t persists theme.mode; empty disables saving
	Clipboard  Clipboard
	Clock      pipeline.Clock
}

// Options are the per-launch settings from the command line.
type Options struct {
	InputFile string // preload and watch this file
	Debug     bool   // enables the ctrl+x log overlay
}
