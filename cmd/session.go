package cmd

import (
	"fmt"
	"time"

	"fleet-ledger/core/config"
	"fleet-ledger/core/logger"
	"fleet-ledger/core/storage"
	"fleet-ledger/feature/roster"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session is the per-invocation state shared by the report commands.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	fs     afero.Fs
}

func bootstrap(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logg = logger.WithRunID(logg, logger.NewRunID()).With(zap.String("command", cmd.Name()))

	fsys, err := storage.NewFS(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	return &session{cfg: cfg, logger: logg, fs: fsys}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

func printSummary(cmd *cobra.Command, s *roster.Summary) {
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s rows to %s (%s accounts, %s characters, %s total) in %s\n",
		humanize.Comma(int64(s.Rows)),
		s.Output,
		humanize.Comma(int64(s.Accounts)),
		humanize.Comma(int64(s.Characters)),
		humanize.Comma(s.Total),
		s.Elapsed.Round(time.Millisecond),
	)
}
