package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"backup-merger/core/config"
	"backup-merger/core/database"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// errLedgerDisabled is returned by history when no ledger is configured.
var errLedgerDisabled = errors.New("merge history is disabled; set DATABASE_ENABLED=true")

var (
	historyLimit int
	historyJSON  bool
)

// historyCmd lists recorded merge runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded merge runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", database.DefaultHistoryLimit, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output runs as JSON")

	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Database.Enabled {
		return errLedgerDisabled
	}

	db, err := openLedger(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	runs, err := database.ListRuns(cmd.Context(), db, historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal runs: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No merge runs recorded.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("WHEN", "BACKUP SET", "TYPE", "FILES", "READ", "DUPES", "COUNT", "OUTPUT")
	for _, r := range runs {
		t.Row(
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.BackupSet,
			r.BackupType,
			strconv.Itoa(r.InputFiles),
			strconv.Itoa(r.RecordsRead),
			strconv.Itoa(r.Duplicates),
			strconv.Itoa(r.Count),
			r.OutputFile,
		)
	}
	fmt.Fprintln(out, t.Render())
	return nil
}
