package cmd

import (
	"fmt"
	"strings"

	"fleet-ledger/feature/roster"

	"github.com/spf13/cobra"
)

var (
	grandName    string
	fleetSources []string
)

// promotionCmd represents the promotion command
var promotionCmd = &cobra.Command{
	Use:   "promotion --fleet <roster>,<contributions>,<label> ... <output>",
	Short: "Rank accounts across several fleets merged into one",
	Long: `Loads every fleet given with --fleet, merges them into a single grand fleet
and writes (account, rank, total) rows ranked by total contribution.

Fleets are merged in the order given. When two fleets list the same character
under the same account, the later one is kept under "<name><separator><label>".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := parseFleetSources(fleetSources)
		if err != nil {
			return err
		}

		sess, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer sess.close()

		name := grandName
		if !cmd.Flags().Changed("name") {
			name = sess.cfg.Report.GrandFleetName
		}

		svc := roster.NewService(sess.fs, sess.cfg.Capture, sess.cfg.Report.DuplicateSeparator, sess.logger)
		summary, err := svc.WritePromotionReport(sources, name, args[0])
		if err != nil {
			return fmt.Errorf("promotion report failed: %w", err)
		}
		printSummary(cmd, summary)
		return nil
	},
}

// parseFleetSources parses "<roster>,<contributions>,<label>" triples. The
// label is everything after the second comma.
func parseFleetSources(values []string) ([]roster.FleetSource, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one --fleet is required")
	}
	sources := make([]roster.FleetSource, 0, len(values))
	for _, v := range values {
		parts := strings.SplitN(v, ",", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid --fleet %q: want <roster>,<contributions>,<label>", v)
		}
		src := roster.FleetSource{
			Roster:        strings.TrimSpace(parts[0]),
			Contributions: strings.TrimSpace(parts[1]),
			Name:          strings.TrimSpace(parts[2]),
		}
		if src.Roster == "" || src.Contributions == "" {
			return nil, fmt.Errorf("invalid --fleet %q: empty path", v)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func init() {
	RootCmd.AddCommand(promotionCmd)

	promotionCmd.Flags().StringVar(&grandName, "name", "", "Name of the merged fleet (defaults to report.grand_fleet_name)")
	promotionCmd.Flags().StringArrayVar(&fleetSources, "fleet", nil, "Fleet as <roster>,<contributions>,<label>; repeat per fleet")
}
