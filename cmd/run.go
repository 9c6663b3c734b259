package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zjrosen/xroot/internal/log"
	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/pipeline"
	"github.com/zjrosen/xroot/internal/pubsub"
	"github.com/zjrosen/xroot/internal/transform"
	"github.com/zjrosen/xroot/internal/watcher"
)

var runCmd = &cobra.Command{
	Use:   "run <operation> [text...]",
	Short: "Run one operation and print the result",
	Long: `Run one operation over text and print the result.

The text comes from the remaining arguments, else from --file, else from
stdin (one trailing newline is dropped). Operation names match
case-insensitively; quote names that contain spaces.

On failure the command prints "<kind>: <message>" and exits non-zero.

Examples:
  xroot run "To Base64" hello world
  echo '{"a": 1}' | xroot run "JSON Pretty"
  xroot run rot13 --file notes.txt --out notes.rot13

  # Show what changed
  xroot run "Remove Spaces" "a b c" --diff

  # Re-run whenever the file is saved
  xroot run "JSON Minify" --file data.json --watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOperation,
}

func init() {
	runCmd.Flags().StringP("file", "f", "", "Read input from a file")
	runCmd.Flags().StringP("out", "o", "", "Write the result to a file instead of stdout")
	runCmd.Flags().BoolP("watch", "w", false, "Re-run when --file changes, until interrupted")
	runCmd.Flags().Bool("diff", false, "Print a character diff of input and result")
	rootCmd.AddCommand(runCmd)
}

type runOptions struct {
	id     string
	file   string
	out    string
	diff   bool
	stdout io.Writer
	stderr io.Writer
}

func runOperation(cmd *cobra.Command, args []string) error {
	opts := runOptions{
		id:     resolveOperation(operation.Default(), args[0]),
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
	}
	opts.file, _ = cmd.Flags().GetString("file")
	opts.out, _ = cmd.Flags().GetString("out")
	opts.diff, _ = cmd.Flags().GetBool("diff")
	watch, _ := cmd.Flags().GetBool("watch")

	if watch && opts.file == "" {
		return errors.New("--watch requires --file")
	}
	if len(args) > 1 && opts.file != "" {
		return errors.New("give input as arguments or --file, not both")
	}

	st, err := newStack(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if watch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchAndRun(ctx, st.executor, opts)
	}

	input, err := readInput(cmd, args[1:], opts.file)
	if err != nil {
		return err
	}
	return runOnce(cmd.Context(), st.executor, opts, input)
}

// resolveOperation maps a case-insensitive name to its catalog ID. Unknown
// names pass through so the dispatcher reports them.
func resolveOperation(catalog *operation.Catalog, name string) string {
	if _, ok := catalog.Lookup(name); ok {
		return name
	}
	for _, d := range catalog.List() {
		if strings.EqualFold(d.ID, strings.TrimSpace(name)) {
			return d.ID
		}
	}
	return name
}

func readInput(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case file != "":
		data, err := os.ReadFile(file) //nolint:gosec // G304: path comes from --file
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		s := strings.TrimSuffix(string(data), "\n")
		return strings.TrimSuffix(s, "\r"), nil
	}
}

func runOnce(ctx context.Context, exec pipeline.Executor, opts runOptions, input string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out, err := exec.Execute(ctx, opts.id, input)
	if err != nil {
		return fmt.Errorf("%s: %s", transform.KindOf(err), transform.Message(err))
	}

	if opts.diff {
		_, _ = fmt.Fprintln(opts.stdout, renderDiff(input, out))
		return nil
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, []byte(out), 0o600); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		_, _ = fmt.Fprintf(opts.stderr, "wrote %d bytes to %s\n", len(out), opts.out)
		return nil
	}

	_, err = fmt.Fprintln(opts.stdout, out)
	return err
}

// renderDiff marks deletions as [-text-] and insertions as {+text+}.
func renderDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func watchAndRun(ctx context.Context, exec pipeline.Executor, opts runOptions) error {
	w, err := watcher.New(watcher.DefaultConfig(opts.file))
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if _, err := w.Start(); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = w.Stop() }()
	events := w.Subscribe(ctx)

	rerun := func() {
		data, err := os.ReadFile(opts.file) //nolint:gosec // G304: path comes from --file
		if err != nil {
			_, _ = fmt.Fprintf(opts.stderr, "reading input: %v\n", err)
			return
		}
		if err := runOnce(ctx, exec, opts, string(data)); err != nil {
			_, _ = fmt.Fprintln(opts.stderr, err)
		}
	}

	rerun()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Type {
			case pubsub.ChangedEvent:
				log.Debug(log.CatWatcher, "input changed, re-running", "file", opts.file, "op", opts.id)
				_, _ = fmt.Fprintf(opts.stderr, "--- %s changed at %s\n", opts.file, time.Now().Format(time.TimeOnly))
				rerun()
			case pubsub.ErrorEvent:
				_, _ = fmt.Fprintf(opts.stderr, "watch error: %s\n", ev.Payload)
			}
		}
	}
}
