package models

import (
	"cmp"
	"time"
)

// Fleet is a named roster of accounts.
type Fleet struct {
	// Name labels the fleet in reports and merge keys.
	Name string

	accounts Index[*Account]
}

// NewFleet creates an empty fleet.
func NewFleet(name string) *Fleet {
	return &Fleet{Name: name}
}

// GetOrCreateAccount returns the account called name, creating it on first
// sight.
func (f *Fleet) GetOrCreateAccount(name string) *Account {
	a, _ := f.accounts.GetOrInsert(name, func() *Account {
		return NewAccount(name)
	})
	return a
}

// AddAccount stores a under its name. It returns false if the name is taken.
func (f *Fleet) AddAccount(a *Account) bool {
	return f.accounts.Insert(a.Name, a)
}

// Account looks up an account of this fleet by name.
func (f *Fleet) Account(name string) (*Account, bool) {
	return f.accounts.Get(name)
}

// Accounts returns the accounts in their current order.
func (f *Fleet) Accounts() []*Account {
	return f.accounts.Values()
}

// AccountNames returns the account names in their current order.
func (f *Fleet) AccountNames() []string {
	return f.accounts.Keys()
}

// Len returns the number of accounts.
func (f *Fleet) Len() int {
	return f.accounts.Len()
}

// CharacterCount returns the number of characters across all accounts.
func (f *Fleet) CharacterCount() int {
	n := 0
	f.accounts.Each(func(_ string, a *Account) {
		n += a.CharacterCount()
	})
	return n
}

// SortByContribution orders accounts by total contribution, largest first.
// Equal totals keep their previous relative order.
func (f *Fleet) SortByContribution() {
	f.accounts.SortStableFunc(func(a, b *Account) int {
		return cmp.Compare(b.Total(), a.Total())
	})
}

// SortByLastLogout orders accounts by most recent logout first.
func (f *Fleet) SortByLastLogout() {
	f.accounts.SortStableFunc(func(a, b *Account) int {
		return b.LastLogout().Compare(a.LastLogout())
	})
}

// ActiveSince returns the accounts whose last logout is at or after cutoff,
// most recent first. The fleet is left sorted by last logout.
func (f *Fleet) ActiveSince(cutoff time.Time) []*Account {
	f.SortByLastLogout()
	var out []*Account
	for _, a := range f.accounts.Values() {
		if a.LastLogout().Before(cutoff) {
			break
		}
		out = append(out, a)
	}
	return out
}
