package snapshot

import (
	"cmp"
	"slices"
)

// Delta is the growth of one account's total between two snapshots.
type Delta struct {
	Account string
	Amount  int64
}

// Diff returns the accounts of later whose total grew relative to earlier,
// largest growth first. Accounts missing from earlier count from zero. Equal
// growth is ordered by account name.
func Diff(earlier, later map[string]int64) []Delta {
	var out []Delta
	for account, total := range later {
		if d := total - earlier[account]; d > 0 {
			out = append(out, Delta{Account: account, Amount: d})
		}
	}
	slices.SortFunc(out, func(a, b Delta) int {
		if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.Account, b.Account)
	})
	return out
}
