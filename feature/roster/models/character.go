package models

import "time"

// NeverLoggedOut stands in for a missing logout time when comparing recency.
// It is older than any timestamp the game can report.
var NeverLoggedOut = time.Date(1999, time.January, 1, 1, 1, 1, 0, time.UTC)

// Character is one playable avatar under an account.
type Character struct {
	// Name is the in-game character name.
	Name string
	// AccountName refers back to the owning account by name only.
	AccountName string
	// Holdings accumulates contributions per holding.
	Holdings Tally[int64]
	// LastLogout is nil until a roster record has been seen.
	LastLogout *time.Time
	// Rank is the officer rank label from the roster.
	Rank string
}

// NewCharacter creates a character with no contributions and no rank.
func NewCharacter(name, accountName string) *Character {
	return &Character{Name: name, AccountName: accountName}
}

// Total returns the character's contribution summed over all holdings.
func (c *Character) Total() int64 {
	return c.Holdings.Total()
}

// Contribute adds amount to the character's total for holding.
func (c *Character) Contribute(holding string, amount int64) {
	c.Holdings.Add(holding, amount)
}

// SetRoster replaces rank and last logout with the values of a roster record.
// A nil lastLogout marks the logout as unknown.
func (c *Character) SetRoster(rank string, lastLogout *time.Time) {
	c.Rank = rank
	if lastLogout == nil {
		c.LastLogout = nil
		return
	}
	t := *lastLogout
	c.LastLogout = &t
}

// LastLogoutOrNever returns LastLogout, or NeverLoggedOut when unknown.
func (c *Character) LastLogoutOrNever() time.Time {
	if c.LastLogout == nil {
		return NeverLoggedOut
	}
	return *c.LastLogout
}

// Clone returns a deep copy.
func (c *Character) Clone() *Character {
	out := &Character{
		Name:        c.Name,
		AccountName: c.AccountName,
		Holdings:    c.Holdings.Clone(),
		Rank:        c.Rank,
	}
	if c.LastLogout != nil {
		t := *c.LastLogout
		out.LastLogout = &t
	}
	return out
}
