package cmd

import (
	"fmt"
	"time"

	"fleet-ledger/feature/roster"

	"github.com/spf13/cobra"
)

var activityDays int

// activityCmd represents the activity command
var activityCmd = &cobra.Command{
	Use:   "activity <members-input> <fleet> <output>",
	Short: "List accounts that logged out recently",
	Long: `Reads a roster capture and writes (account, rank, last logout) rows for the
accounts whose most recent logout falls within the last --days days.`,
	Args: threeArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer sess.close()

		days := activityDays
		if !cmd.Flags().Changed("days") {
			days = sess.cfg.Report.ActivityDays
		}
		if days < 0 {
			return fmt.Errorf("--days must not be negative, got %d", days)
		}
		cutoff := time.Now().UTC().AddDate(0, 0, -days)

		svc := roster.NewService(sess.fs, sess.cfg.Capture, sess.cfg.Report.DuplicateSeparator, sess.logger)
		summary, err := svc.WriteActivityReport(args[0], args[1], args[2], cutoff)
		if err != nil {
			return fmt.Errorf("activity report failed: %w", err)
		}
		printSummary(cmd, summary)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(activityCmd)

	activityCmd.Flags().IntVar(&activityDays, "days", 0, "Activity window in days (defaults to report.activity_days)")
}
