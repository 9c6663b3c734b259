// Package app contains the root panel model: category chips and the
// operations list on the left, input and output on the right.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/xroot/internal/keys"
	"github.com/zjrosen/xroot/internal/log"
	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/pipeline"
	"github.com/zjrosen/xroot/internal/presentation"
	"github.com/zjrosen/xroot/internal/pubsub"
	"github.com/zjrosen/xroot/internal/transform"
	"github.com/zjrosen/xroot/internal/ui/chips"
	"github.com/zjrosen/xroot/internal/ui/logoverlay"
	"github.com/zjrosen/xroot/internal/ui/markdown"
	"github.com/zjrosen/xroot/internal/ui/oplist"
	"github.com/zjrosen/xroot/internal/ui/styles"
	"github.com/zjrosen/xroot/internal/ui/toaster"
	"github.com/zjrosen/xroot/internal/watcher"
)

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusInput
)

// Status is the output state shown on the output panel.
type Status int

const (
	StatusEmpty Status = iota
	StatusSuccess
	StatusError
)

// Label returns the bracketed badge text.
func (s Status) Label() string {
	switch s {
	case StatusSuccess:
		return "[SUCCESS]"
	case StatusError:
		return "[ERROR]"
	default:
		return "[EMPTY]"
	}
}

// Model is the root panel state.
type Model struct {
	svc  Services
	opts Options

	width  int
	height int
	focus  focusArea

	chips    chips.Model
	list     oplist.Model
	input    textarea.Model
	output   viewport.Model
	help     help.Model
	toaster  toaster.Model
	selected *operation.Descriptor

	outputText string
	status     Status
	execSeq    int
	running    bool
	tickerIdx  int

	showReference bool
	reference     viewport.Model

	logOverlay  logoverlay.Model
	logListener *log.LogListener

	ctx           context.Context
	cancel        context.CancelFunc
	watcher       *watcher.Watcher
	watchListener *pubsub.Listener[string]
}

// New creates the panel. When opts.InputFile is set the file is watched and
// reloaded on change; watcher failures are logged and the panel runs
// without auto-reload.
func New(svc Services, opts Options) Model {
	if svc.Catalog == nil {
		svc.Catalog = operation.Default()
	}
	if svc.Clipboard == nil {
		svc.Clipboard = SystemClipboard{}
	}
	if svc.Clock == nil {
		svc.Clock = pipeline.RealClock{}
	}
	if svc.Executor == nil {
		svc.Executor = pipeline.FromDispatcher(transform.Default())
	}

	ctx, cancel := context.WithCancel(context.Background())

	ta := textarea.New()
	ta.Placeholder = "Enter text to transform..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0

	m := Model{
		svc:        svc,
		opts:       opts,
		chips:      chips.New(svc.Catalog),
		list:       oplist.New(svc.Catalog).SetShowDescriptions(svc.Config.UI.ShowDescriptions).Focus(),
		input:      ta,
		output:     viewport.New(0, 0),
		help:       help.New(),
		toaster:    toaster.New(),
		logOverlay: logoverlay.New(),
		ctx:        ctx,
		cancel:     cancel,
	}

	if opts.Debug {
		m.logListener = log.NewListener(ctx)
	}

	if opts.InputFile != "" {
		w, err := watcher.New(watcher.DefaultConfig(opts.InputFile))
		if err == nil {
			if _, err = w.Start(); err != nil {
				_ = w.Stop()
			} else {
				m.watcher = w
				m.watchListener = pubsub.Listen[string](ctx, w)
			}
		}
		if err != nil {
			log.Warn(log.CatWatcher, "input file watch disabled", "path", opts.InputFile, "error", err)
		}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.svc.Config.UI.StatusTicker {
		cmds = append(cmds, tickCmd())
	}
	if m.opts.InputFile != "" {
		cmds = append(cmds, loadFileCmd(m.opts.InputFile))
	}
	if m.watchListener != nil {
		cmds = append(cmds, m.watchListener.Next())
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Next())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m = m.resize()
		m.logOverlay.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case pubsub.Event[string]:
		return m.handleEvent(msg)

	case oplist.SelectMsg:
		return m.selectOperation(msg.Operation)

	case chips.ChangedMsg:
		m.list = m.list.SetCategory(msg.Category)
		return m, nil

	case executedMsg:
		return m.handleExecuted(msg)

	case fileLoadedMsg:
		return m.handleFileLoaded(msg)

	case savedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatUI, "saving output failed", msg.err, "path", msg.path)
			return m.toast("Save failed: "+msg.err.Error(), toaster.StyleError)
		}
		return m.toast("Output saved to "+msg.path, toaster.StyleSuccess)

	case themeSavedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatConfig, "saving theme mode failed", msg.err, "mode", msg.mode)
			return m.toast("Theme not saved: "+msg.err.Error(), toaster.StyleError)
		}
		return m, nil

	case tickMsg:
		m.tickerIdx = (m.tickerIdx + 1) % len(tickerStates)
		return m, tickCmd()

	case logoverlay.CloseMsg:
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}
	if m.opts.Debug && key.Matches(msg, keys.Panel.ToggleLogs) {
		m.logOverlay.Toggle()
		return m, nil
	}
	if m.showReference {
		return m.handleReferenceKey(msg)
	}

	// Letter bindings belong to the text fields while one is focused.
	typing := m.focus != focusList && msg.Type == tea.KeyRunes

	switch {
	case key.Matches(msg, keys.Panel.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Panel.Execute):
		return m.execute()
	case key.Matches(msg, keys.Panel.Copy):
		return m.copyOutput()
	case key.Matches(msg, keys.Panel.Save):
		return m.saveOutput()
	case key.Matches(msg, keys.Panel.Clear):
		return m.clearAll()
	case key.Matches(msg, keys.Panel.ToggleTheme):
		return m.toggleTheme()
	case key.Matches(msg, keys.Panel.NextCategory):
		m.chips = m.chips.Next()
		m.list = m.list.SetCategory(m.chips.Active())
		return m, nil
	case key.Matches(msg, keys.Panel.PrevCategory):
		m.chips = m.chips.Prev()
		m.list = m.list.SetCategory(m.chips.Active())
		return m, nil
	case key.Matches(msg, keys.Panel.ScrollUp):
		m.output.SetYOffset(m.output.YOffset - max(m.output.Height/2, 1))
		return m, nil
	case key.Matches(msg, keys.Panel.ScrollDown):
		m.output.SetYOffset(m.output.YOffset + max(m.output.Height/2, 1))
		return m, nil
	case key.Matches(msg, keys.Panel.FocusList):
		return m.setFocus(focusList)
	case !typing && key.Matches(msg, keys.Panel.FocusSearch):
		return m.setFocus(focusSearch)
	case !typing && key.Matches(msg, keys.Panel.FocusInput):
		return m.setFocus(focusInput)
	case key.Matches(msg, keys.Panel.Escape):
		if m.focus != focusList {
			return m.setFocus(focusList)
		}
		return m, tea.Quit
	case !typing && key.Matches(msg, keys.Panel.Help):
		return m.openReference()
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.logOverlay.Visible() || m.showReference {
		return m, nil
	}
	var chipCmd, listCmd tea.Cmd
	m.chips, chipCmd = m.chips.Update(msg)
	m.list, listCmd = m.list.Update(msg)
	return m, tea.Batch(chipCmd, listCmd)
}

func (m Model) setFocus(f focusArea) (tea.Model, tea.Cmd) {
	m.focus = f
	m.input.Blur()
	var cmd tea.Cmd
	switch f {
	case focusSearch:
		m.list, cmd = m.list.FocusSearch()
	case focusInput:
		m.list = m.list.Blur()
		cmd = m.input.Focus()
	default:
		m.list = m.list.Focus()
	}
	return m, cmd
}

func (m Model) toast(message string, style toaster.Style) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(message, style)
	return m, cmd
}

func (m Model) selectOperation(d operation.Descriptor) (tea.Model, tea.Cmd) {
	m.selected = &d
	m.list = m.list.SetSelected(d.ID)
	log.Debug(log.CatUI, "operation selected", "op", d.ID)

	next, focusCmd := m.setFocus(focusInput)
	m = next.(Model)
	next, toastCmd := m.toast("Operation selected: "+d.ID, toaster.StyleSuccess)
	return next, tea.Batch(focusCmd, toastCmd)
}

func (m Model) execute() (tea.Model, tea.Cmd) {
	if m.selected == nil {
		return m.toast("No operation selected", toaster.StyleError)
	}
	input := m.input.Value()
	if strings.TrimSpace(input) == "" {
		return m.toast("No input data provided", toaster.StyleError)
	}
	m.execSeq++
	m.running = true
	return m, executeCmd(m.svc.Executor, m.execSeq, m.selected.ID, input)
}

func (m Model) handleExecuted(msg executedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.execSeq {
		return m, nil
	}
	m.running = false
	if msg.err != nil {
		text := transform.Message(msg.err)
		m.status = StatusError
		m = m.setOutput("ERROR: " + text)
		return m.toast("Operation failed: "+text, toaster.StyleError)
	}
	m.status = StatusSuccess
	m = m.setOutput(msg.output)
	return m.toast("Operation completed: "+msg.id, toaster.StyleSuccess)
}

func (m Model) copyOutput() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.outputText) == "" {
		return m.toast("No output to copy", toaster.StyleError)
	}
	if err := m.svc.Clipboard.Copy(m.outputText); err != nil {
		log.ErrorErr(log.CatUI, "clipboard copy failed", err)
		return m.toast("Copy failed: "+err.Error(), toaster.StyleError)
	}
	return m.toast("Output copied to clipboard", toaster.StyleSuccess)
}

func (m Model) saveOutput() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.outputText) == "" {
		return m.toast("No output to download", toaster.StyleError)
	}
	return m, saveOutputCmd(m.svc.Config.Output.Dir, m.svc.Clock.Now(), m.outputText)
}

func (m Model) clearAll() (tea.Model, tea.Cmd) {
	m.input.Reset()
	m = m.setOutput("")
	m.status = StatusEmpty
	m.selected = nil
	m.list = m.list.SetSelected("")
	m.execSeq++ // drop any result still in flight
	m.running = false
	return m.toast("All data cleared", toaster.StyleSuccess)
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	mode := styles.ToggleMode(m.svc.Config.Theme.Mode)
	if err := styles.ApplyTheme(styles.ThemeConfig{Mode: mode, Colors: m.svc.Config.Theme.FlattenedColors()}); err != nil {
		return m.toast("Theme error: "+err.Error(), toaster.StyleError)
	}
	m.svc.Config.Theme.Mode = mode
	log.Info(log.CatConfig, "theme toggled", "mode", mode)

	next, cmd := m.toast("Switched to "+mode+" mode", toaster.StyleInfo)
	if m.svc.ConfigPath != "" {
		cmd = tea.Batch(cmd, saveThemeCmd(m.svc.ConfigPath, mode))
	}
	return next, cmd
}

func (m Model) handleFileLoaded(msg fileLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.ErrorErr(log.CatUI, "loading input file failed", msg.err, "file", msg.name)
		return m.toast("File load failed: "+msg.err.Error(), toaster.StyleError)
	}
	m.input.SetValue(msg.content)
	return m.toast(fmt.Sprintf("File loaded: %s (%d bytes)", msg.name, msg.size), toaster.StyleSuccess)
}

func (m Model) handleEvent(ev pubsub.Event[string]) (tea.Model, tea.Cmd) {
	switch ev.Type {
	case pubsub.LoggedEvent:
		m.logOverlay.Append(ev.Payload)
		return m, m.logListener.Next()
	case pubsub.ChangedEvent:
		return m, tea.Batch(loadFileCmd(m.opts.InputFile), m.watchListener.Next())
	case pubsub.ErrorEvent:
		log.Warn(log.CatWatcher, "watcher error", "error", ev.Payload)
		return m, m.watchListener.Next()
	}
	return m, nil
}

func (m Model) openReference() (tea.Model, tea.Cmd) {
	width := max(min(m.width-8, 100), 30)
	style := m.svc.Config.UI.MarkdownStyle
	if style == "" {
		style = m.svc.Config.Theme.Mode
	}
	r, err := markdown.New(width, style)
	if err != nil {
		return m.toast("Reference unavailable: "+err.Error(), toaster.StyleError)
	}
	doc := presentation.ReferenceMarkdown(presentation.FromDescriptors(m.svc.Catalog.List()))
	rendered, err := r.Render(doc)
	if err != nil {
		return m.toast("Reference unavailable: "+err.Error(), toaster.StyleError)
	}

	m.reference = viewport.New(width, max(m.height-8, 5))
	m.reference.SetContent(strings.TrimRight(rendered, "\n"))
	m.showReference = true
	return m, nil
}

func (m Model) handleReferenceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Panel.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Panel.Escape), key.Matches(msg, keys.Panel.Help):
		m.showReference = false
		return m, nil
	}
	var cmd tea.Cmd
	m.reference, cmd = m.reference.Update(msg)
	return m, cmd
}

// Close releases the watcher and listeners.
func (m *Model) Close() error {
	if m.cancel != nil {
		m.cancel()
	}
	if m.watcher != nil {
		return m.watcher.Stop()
	}
	return nil
}

// Output returns the text currently in the output panel.
func (m Model) Output() string { return m.outputText }

// Input returns the text currently in the input panel.
func (m Model) Input() string { return m.input.Value() }

// Status returns the output status.
func (m Model) Status() Status { return m.status }

// Selected returns the selected operation ID, empty when none.
func (m Model) Selected() string {
	if m.selected == nil {
		return ""
	}
	return m.selected.ID
}

// Toast returns the visible toast text, empty when none.
func (m Model) Toast() string { return m.toaster.Message() }
