package snapshot

import (
	"strconv"
	"time"

	"fleet-ledger/core/tabular"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Result describes a written diff report.
type Result struct {
	Output  string
	Deltas  []Delta
	Total   int64
	Elapsed time.Duration
}

// Service reads contribution snapshots and writes diff reports.
type Service struct {
	fs     afero.Fs
	logger *zap.Logger
}

// NewService creates a new snapshot service.
func NewService(fsys afero.Fs, logger *zap.Logger) *Service {
	return &Service{fs: fsys, logger: logger}
}

// WriteDiffReport writes (account, growth) rows for the accounts that grew
// between the earlier and later snapshots.
func (s *Service) WriteDiffReport(earlier, later, output string) (*Result, error) {
	start := time.Now()

	before, err := tabular.ReadTotals(s.fs, earlier)
	if err != nil {
		return nil, err
	}
	after, err := tabular.ReadTotals(s.fs, later)
	if err != nil {
		return nil, err
	}

	deltas := Diff(before, after)
	if err := tabular.WriteRows(s.fs, output, Rows(deltas)); err != nil {
		return nil, err
	}

	result := &Result{Output: output, Deltas: deltas, Elapsed: time.Since(start)}
	for _, d := range deltas {
		result.Total += d.Amount
	}

	s.logger.Info("Diff written",
		zap.String("earlier", earlier),
		zap.String("later", later),
		zap.String("output", output),
		zap.Int("before", len(before)),
		zap.Int("after", len(after)),
		zap.Int("rows", len(deltas)),
		zap.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

// Rows renders deltas as (account, growth) rows.
func Rows(deltas []Delta) []tabular.Row {
	rows := make([]tabular.Row, 0, len(deltas))
	for _, d := range deltas {
		rows = append(rows, tabular.Row{d.Account, strconv.FormatInt(d.Amount, 10)})
	}
	return rows
}
