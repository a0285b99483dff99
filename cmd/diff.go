package cmd

import (
	"fmt"
	"time"

	"fleet-ledger/feature/snapshot"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <earlier.csv> <later.csv> <output.csv>",
	Short: "Report each account's growth between two contribution reports",
	Long: `Compares two (account, total) reports and writes (account, growth) rows for
the accounts of the later report whose total increased, largest growth first.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer sess.close()

		result, err := snapshot.NewService(sess.fs, sess.logger).WriteDiffReport(args[0], args[1], args[2])
		if err != nil {
			return fmt.Errorf("diff report failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s rows to %s (%s total growth) in %s\n",
			humanize.Comma(int64(len(result.Deltas))),
			result.Output,
			humanize.Comma(result.Total),
			result.Elapsed.Round(time.Millisecond),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(diffCmd)
}
