// Package snapshot compares two contribution reports taken at different
// times and reports how much each account contributed in between.
//
// Only accounts present in the later report with a strictly positive growth
// are listed. Accounts that left the fleet, or whose totals did not move, are
// dropped.
package snapshot
