package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fleet-ledger/core/storage"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMalformedRow is returned when a totals row has a non-integer value.
var ErrMalformedRow = errors.New("malformed totals row")

// Row is one header-less CSV record.
type Row []string

// Encode renders rows as CSV in memory.
func Encode(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return nil, fmt.Errorf("failed to encode row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode rows: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteRows encodes rows and writes them to path in a single step.
func WriteRows(fsys afero.Fs, path string, rows []Row) error {
	data, err := Encode(rows)
	if err != nil {
		return err
	}
	return storage.WriteFile(fsys, path, data)
}

// ReadTotals reads a two-column (name, integer total) report.
//
// Rows with fewer than two columns are skipped and both columns are trimmed.
// A leading byte order mark is ignored. When a name repeats, the last row wins.
func ReadTotals(fsys afero.Fs, path string) (map[string]int64, error) {
	data, err := storage.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	totals, err := DecodeTotals(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return totals, nil
}

// DecodeTotals parses two-column totals from r.
func DecodeTotals(r io.Reader) (map[string]int64, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	totals := make(map[string]int64)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		if len(record) < 2 {
			continue
		}

		line, _ := cr.FieldPos(0)
		value := strings.TrimSpace(record[1])
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedRow, line, value)
		}
		totals[strings.TrimSpace(record[0])] = n
	}
	return totals, nil
}
