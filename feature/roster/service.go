package roster

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"time"

	"fleet-ledger/core/capture"
	"fleet-ledger/core/storage"
	"fleet-ledger/core/tabular"
	"fleet-ledger/feature/roster/models"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// FleetSource names the two captures describing one fleet.
type FleetSource struct {
	// Roster is the membership capture (ranks, logout times).
	Roster string
	// Contributions is the holdings capture.
	Contributions string
	// Name labels the fleet.
	Name string
}

// Summary describes a written report.
type Summary struct {
	Output     string
	Rows       int
	Accounts   int
	Characters int
	Total      int64
	Elapsed    time.Duration
}

// Service loads fleets from captures and writes roster reports.
type Service struct {
	fs        afero.Fs
	prefixes  capture.Prefixes
	separator string
	logger    *zap.Logger
}

// NewService creates a new roster service.
func NewService(fsys afero.Fs, prefixes capture.Prefixes, separator string, logger *zap.Logger) *Service {
	return &Service{
		fs:        fsys,
		prefixes:  prefixes,
		separator: separator,
		logger:    logger,
	}
}

func (s *Service) document(path string, kind capture.Kind) ([]byte, error) {
	raw, err := storage.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}
	doc, err := capture.Extract(raw, path, kind, s.prefixes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadHoldingsInto adds the contributions recorded in the capture at path.
func (s *Service) LoadHoldingsInto(f *models.Fleet, path string) error {
	doc, err := s.document(path, capture.Holdings)
	if err != nil {
		return err
	}
	states, err := DecodeHoldings(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := LoadHoldings(f, states); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	s.logger.Debug("Loaded holdings",
		zap.String("fleet", f.Name),
		zap.String("path", path),
		zap.Int("holdings", len(states)),
		zap.Int("accounts", f.Len()),
	)
	return nil
}

// LoadRosterInto applies the roster recorded in the capture at path.
func (s *Service) LoadRosterInto(f *models.Fleet, path string) error {
	doc, err := s.document(path, capture.Members)
	if err != nil {
		return err
	}
	members, err := DecodeMembers(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := LoadMembers(f, members); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	s.logger.Debug("Loaded roster",
		zap.String("fleet", f.Name),
		zap.String("path", path),
		zap.Int("members", len(members)),
		zap.Int("accounts", f.Len()),
	)
	return nil
}

// LoadFleet builds one fleet from its contributions and roster captures.
func (s *Service) LoadFleet(src FleetSource) (*models.Fleet, error) {
	f := models.NewFleet(src.Name)
	if err := s.LoadHoldingsInto(f, src.Contributions); err != nil {
		return nil, err
	}
	if err := s.LoadRosterInto(f, src.Roster); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteContributionReport writes (account, total) rows for one fleet, ranked
// by total contribution.
func (s *Service) WriteContributionReport(input, fleetName, output string) (*Summary, error) {
	start := time.Now()
	f := models.NewFleet(fleetName)
	if err := s.LoadHoldingsInto(f, input); err != nil {
		return nil, err
	}

	f.SortByContribution()
	rows := ContributionRows(f)
	return s.write(output, rows, f, start)
}

// WritePromotionReport merges several fleets and writes (account, rank,
// total) rows ranked by total contribution.
func (s *Service) WritePromotionReport(sources []FleetSource, grandName, output string) (*Summary, error) {
	start := time.Now()
	if len(sources) == 0 {
		return nil, fmt.Errorf("promotion report needs at least one fleet")
	}

	fleets := make([]*models.Fleet, 0, len(sources))
	for _, src := range sources {
		f, err := s.LoadFleet(src)
		if err != nil {
			return nil, err
		}
		fleets = append(fleets, f)
	}

	grand := MergeFleets(grandName, fleets, s.separator)
	for _, p := range grand.Provenance() {
		if p.Disambiguated {
			s.logger.Warn("Duplicate character name in grand fleet",
				zap.String("account", p.Account),
				zap.String("key", p.Key),
				zap.String("fleet", p.Fleet),
			)
		}
	}

	grand.SortByContribution()
	s.logger.Debug("Merged grand fleet",
		zap.String("fleet", grand.Name),
		zap.Int("fleets", len(fleets)),
		zap.Strings("accounts", grand.AccountNames()),
	)
	rows := PromotionRows(grand.Fleet)
	return s.write(output, rows, grand.Fleet, start)
}

// WriteHoldingsReport writes (account, holding, amount) rows for one fleet.
func (s *Service) WriteHoldingsReport(input, fleetName, output string) (*Summary, error) {
	start := time.Now()
	f := models.NewFleet(fleetName)
	if err := s.LoadHoldingsInto(f, input); err != nil {
		return nil, err
	}

	f.SortByContribution()
	rows := HoldingRows(f)
	return s.write(output, rows, f, start)
}

// WriteActivityReport writes (account, rank, last logout) rows for accounts
// that logged out at or after cutoff, most recent first.
func (s *Service) WriteActivityReport(input, fleetName, output string, cutoff time.Time) (*Summary, error) {
	start := time.Now()
	f := models.NewFleet(fleetName)
	if err := s.LoadRosterInto(f, input); err != nil {
		return nil, err
	}

	rows := ActivityRows(f.ActiveSince(cutoff))
	return s.write(output, rows, f, start)
}

func (s *Service) write(output string, rows []tabular.Row, f *models.Fleet, start time.Time) (*Summary, error) {
	if err := tabular.WriteRows(s.fs, output, rows); err != nil {
		return nil, err
	}

	summary := &Summary{
		Output:     output,
		Rows:       len(rows),
		Accounts:   f.Len(),
		Characters: f.CharacterCount(),
		Elapsed:    time.Since(start),
	}
	for _, a := range f.Accounts() {
		summary.Total += a.Total()
	}

	s.logger.Info("Report written",
		zap.String("fleet", f.Name),
		zap.String("output", output),
		zap.Int("rows", summary.Rows),
		zap.Int("accounts", summary.Accounts),
		zap.Int("characters", summary.Characters),
		zap.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

// ContributionRows renders (account, total) in fleet order.
func ContributionRows(f *models.Fleet) []tabular.Row {
	rows := make([]tabular.Row, 0, f.Len())
	for _, a := range f.Accounts() {
		rows = append(rows, tabular.Row{a.Name, strconv.FormatInt(a.Total(), 10)})
	}
	return rows
}

// PromotionRows renders (account, rank, total) in fleet order.
func PromotionRows(f *models.Fleet) []tabular.Row {
	rows := make([]tabular.Row, 0, f.Len())
	for _, a := range f.Accounts() {
		rows = append(rows, tabular.Row{a.Name, a.Rank(), strconv.FormatInt(a.Total(), 10)})
	}
	return rows
}

// HoldingRows renders (account, holding, amount) in fleet order. Within an
// account, holdings are listed by amount, largest first, then by name.
func HoldingRows(f *models.Fleet) []tabular.Row {
	var rows []tabular.Row
	for _, a := range f.Accounts() {
		totals := a.TotalsByHolding()
		holdings := totals.Holdings()
		amounts := make(map[string]int64, len(holdings))
		for _, h := range holdings {
			amounts[h] = a.TotalFor(h)
		}
		slices.SortStableFunc(holdings, func(x, y string) int {
			return cmp.Compare(amounts[y], amounts[x])
		})
		for _, h := range holdings {
			rows = append(rows, tabular.Row{a.Name, h, strconv.FormatInt(amounts[h], 10)})
		}
	}
	return rows
}

// ActivityRows renders (account, rank, last logout) for accounts.
func ActivityRows(accounts []*models.Account) []tabular.Row {
	rows := make([]tabular.Row, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, tabular.Row{a.Name, a.Rank(), a.LastLogout().UTC().Format(time.RFC3339)})
	}
	return rows
}
