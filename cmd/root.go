package cmd

import (
	"fmt"
	"os"

	"fleet-ledger/core/logger"
	"fleet-ledger/feature/roster"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd writes the single-fleet contribution report when called without a
// subcommand.
var RootCmd = &cobra.Command{
	Use:   "fleet-ledger <input> <fleet> <output>",
	Short: "Fleet contribution roster reports",
	Long: `Fleet Ledger turns captured fleet holdings and roster payloads into ranked
CSV reports: per-fleet contribution totals, promotion lists across several
fleets, and the growth between two report snapshots.

Inputs are raw payloads or HAR archives recorded by the browser.`,
	Args:          threeArgs,
	RunE:          runContribution,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Debug level selects the development config, which prints ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// threeArgs requires the <input> <fleet> <output> triple shared by the
// single-fleet commands.
func threeArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: %s", cmd.UseLine())
	}
	return nil
}

func runContribution(cmd *cobra.Command, args []string) error {
	sess, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer sess.close()

	svc := roster.NewService(sess.fs, sess.cfg.Capture, sess.cfg.Report.DuplicateSeparator, sess.logger)
	summary, err := svc.WriteContributionReport(args[0], args[1], args[2])
	if err != nil {
		return fmt.Errorf("contribution report failed: %w", err)
	}
	printSummary(cmd, summary)
	return nil
}
