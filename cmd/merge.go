package cmd

import (
	"fmt"

	"backup-merger/core/config"
	"backup-merger/core/database"
	"backup-merger/core/logger"
	"backup-merger/core/storage"
	"backup-merger/feature/merge"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the merge command
	inputDir     string
	outputDir    string
	contactsFile string
	dryRunMerge  bool
	uploadMerge  bool
)

// mergeCmd merges every export in a directory.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge backup exports into one file per backup type",
	Long: `Reads every calls-*.xml and sms-*.xml file in the input directory,
drops duplicate records, fills in unknown contact names and writes one merged
file per type into the output directory.

Examples:
  # Merge a folder of exports
  merge -i ./exports -o ./merged

  # Use a vCard export to name numbers no backup knows
  merge -i ./exports -o ./merged --contacts contacts.vcf

  # Report counts without writing anything
  merge -i ./exports -o ./merged --dry-run

  # Publish the merged files to the configured bucket
  merge -i ./exports -o ./merged --upload`,
	Args: cobra.NoArgs,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&inputDir, "input-dir", "i", "", "Directory containing calls-*.xml and sms-*.xml exports")
	mergeCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory the merged files are written to")
	mergeCmd.Flags().StringVar(&contactsFile, "contacts", "", "Optional .vcf export used to name unknown numbers")
	mergeCmd.Flags().BoolVar(&dryRunMerge, "dry-run", false, "Reconcile and report without writing files")
	mergeCmd.Flags().BoolVar(&uploadMerge, "upload", false, "Upload merged files to object storage")
	_ = mergeCmd.MarkFlagRequired("input-dir")
	_ = mergeCmd.MarkFlagRequired("output-dir")

	RootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	svc := merge.NewService(l, cmd.OutOrStdout())

	if uploadMerge {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		svc.WithStorage(client, cfg.Storage)
	}

	if cfg.Database.Enabled && !dryRunMerge {
		db, err := openLedger(cfg.Database)
		if err != nil {
			l.Warn("Optional ledger unavailable, run will not be recorded", zap.Error(err))
		} else {
			defer database.Close(db)
			svc.WithLedger(db)
		}
	}

	report, err := svc.Run(ctx, merge.Options{
		InputDir:     inputDir,
		OutputDir:    outputDir,
		ContactsFile: contactsFile,
		DryRun:       dryRunMerge,
		Upload:       uploadMerge,
	})
	if err != nil {
		return err
	}

	l.Info("Merge complete",
		zap.String("backup_set", report.BackupSet),
		zap.Bool("dry_run", dryRunMerge),
	)
	return nil
}
