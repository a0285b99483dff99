// Package tabular reads and writes the header-less CSV reports.
//
// Reports are encoded fully in memory before anything touches the
// filesystem, so a report is either written completely or not at all.
// Snapshot reading is lenient about the things spreadsheets do to CSV files
// (byte order marks, ragged rows, stray quotes) and strict about the numbers.
package tabular
