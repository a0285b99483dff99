package cmd

import (
	"fmt"

	"fleet-ledger/feature/roster"

	"github.com/spf13/cobra"
)

// holdingsCmd represents the holdings command
var holdingsCmd = &cobra.Command{
	Use:   "holdings <input> <fleet> <output>",
	Short: "Break down each account's contributions per holding",
	Args:  threeArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer sess.close()

		svc := roster.NewService(sess.fs, sess.cfg.Capture, sess.cfg.Report.DuplicateSeparator, sess.logger)
		summary, err := svc.WriteHoldingsReport(args[0], args[1], args[2])
		if err != nil {
			return fmt.Errorf("holdings report failed: %w", err)
		}
		printSummary(cmd, summary)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(holdingsCmd)
}
