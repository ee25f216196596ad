package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"movierec/internal/adapter/store"
)

var errHistoryDisabled = errors.New("history is disabled: set history.enabled: true in movierec.yaml")

var (
	historyLimit int
	historyJSON  bool
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past recommendations",
	Long: `List past recommendations, newest first.

Examples:
  movierec history --limit 5
  movierec history --json
  movierec history --clear`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "show at most this many entries (default from config)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete every stored entry")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if !cfg.History.Enabled {
		return errHistoryDisabled
	}

	history, err := store.OpenBoltHistory(historyPath())
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer history.Close()

	if historyClear {
		return clearHistory(history)
	}

	limit := cfg.History.Limit
	if historyLimit > 0 {
		limit = historyLimit
	}
	entries, err := history.List(limit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	return printer.PrintHistory(entries, historyJSON)
}

func clearHistory(history *store.BoltHistory) error {
	n, err := history.Count()
	if err != nil {
		return fmt.Errorf("failed to count history: %w", err)
	}
	if err := history.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	printer.Info("Cleared %d history entries.", n)
	return nil
}
