package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/xroot/internal/history"
	"github.com/zjrosen/xroot/internal/presentation"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded executions",
	Long: `Show recent executions from the history database.

Only metadata is recorded (operation, sizes, outcome and timing), never the
text itself. Recording is off by default; enable it with
history.enabled: true in the config file.

Examples:
  xroot history
  xroot history --limit 50
  xroot history --stats
  xroot history --stats --json
  xroot history --clear`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		stats, _ := cmd.Flags().GetBool("stats")
		clearAll, _ := cmd.Flags().GetBool("clear")
		asJSON, _ := cmd.Flags().GetBool("json")

		out := cmd.OutOrStdout()
		if !cfg.History.Enabled {
			if _, err := os.Stat(cfg.History.Path); errors.Is(err, os.ErrNotExist) {
				_, _ = fmt.Fprintln(out, "History is disabled. Set history.enabled: true in the config file.")
				return nil
			}
		}

		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer func() { _ = store.Close() }()

		ctx := cmd.Context()
		formatter := presentation.NewFormatter(out)

		switch {
		case clearAll:
			n, err := store.Clear(ctx)
			if err != nil {
				return fmt.Errorf("clearing history: %w", err)
			}
			_, err = fmt.Fprintf(out, "Cleared %d entries.\n", n)
			return err

		case stats:
			rows, err := store.Stats(ctx)
			if err != nil {
				return fmt.Errorf("reading stats: %w", err)
			}
			dtos := make([]presentation.StatsDTO, len(rows))
			for i, r := range rows {
				dtos[i] = presentation.FromStats(r)
			}
			if asJSON {
				return formatter.JSON(dtos)
			}
			return formatter.Stats(dtos)

		default:
			entries, err := store.Recent(ctx, limit)
			if err != nil {
				return fmt.Errorf("reading history: %w", err)
			}
			dtos := make([]presentation.ExecutionDTO, len(entries))
			for i, e := range entries {
				dtos[i] = presentation.FromEntry(e)
			}
			if asJSON {
				return formatter.JSON(dtos)
			}
			return formatter.Executions(dtos)
		}
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of entries to show")
	historyCmd.Flags().Bool("stats", false, "Show per-operation totals instead of entries")
	historyCmd.Flags().Bool("clear", false, "Delete all recorded entries")
	historyCmd.Flags().Bool("json", false, "Output as JSON")
	historyCmd.MarkFlagsMutuallyExclusive("stats", "clear")
	rootCmd.AddCommand(historyCmd)
}
