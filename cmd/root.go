package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"backup-merger/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "backup-merger",
	Short: "Merge SMS Backup & Restore exports",
	Long: `Backup Merger combines many SMS Backup & Restore XML exports into one
de-duplicated, chronologically ordered file per backup type (calls, sms).
Unknown contact names are filled in from other records of the same number.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Console format with debug level gives ISO8601 timestamps for CLI errors.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
