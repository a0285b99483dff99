package models

import "time"

// Account is a player login owning one or more characters.
type Account struct {
	// Name is the account handle, unique within a fleet.
	Name string

	characters Index[*Character]
}

// NewAccount creates an account with no characters.
func NewAccount(name string) *Account {
	return &Account{Name: name}
}

// GetOrCreateCharacter returns the character called name, creating it on
// first sight.
func (a *Account) GetOrCreateCharacter(name string) *Character {
	c, _ := a.characters.GetOrInsert(name, func() *Character {
		return NewCharacter(name, a.Name)
	})
	return c
}

// AddCharacter stores c under key. It returns false if key is already taken.
// The key is normally the character name; merged rosters may use another.
func (a *Account) AddCharacter(key string, c *Character) bool {
	return a.characters.Insert(key, c)
}

// Character returns the character stored under key.
func (a *Account) Character(key string) (*Character, bool) {
	return a.characters.Get(key)
}

// HasCharacter reports whether key is taken.
func (a *Account) HasCharacter(key string) bool {
	return a.characters.Has(key)
}

// Characters returns the characters in first-seen order.
func (a *Account) Characters() []*Character {
	return a.characters.Values()
}

// CharacterKeys returns the index keys in first-seen order.
func (a *Account) CharacterKeys() []string {
	return a.characters.Keys()
}

// CharacterCount returns the number of characters.
func (a *Account) CharacterCount() int {
	return a.characters.Len()
}

// Total returns the contribution of all characters.
func (a *Account) Total() int64 {
	var sum int64
	a.characters.Each(func(_ string, c *Character) {
		sum += c.Total()
	})
	return sum
}

// TotalFor returns the contribution of all characters to one holding.
func (a *Account) TotalFor(holding string) int64 {
	var sum int64
	a.characters.Each(func(_ string, c *Character) {
		sum += c.Holdings.Get(holding)
	})
	return sum
}

// TotalsByHolding sums the characters' contributions per holding.
func (a *Account) TotalsByHolding() Tally[int64] {
	var out Tally[int64]
	a.characters.Each(func(_ string, c *Character) {
		out.AddAll(&c.Holdings)
	})
	return out
}

// Rank returns the rank of the first character seen.
// This is a policy choice rather than an aggregate: officers rank alts
// independently and the oldest entry is taken as representative.
func (a *Account) Rank() string {
	chars := a.characters.Values()
	if len(chars) == 0 {
		return ""
	}
	return chars[0].Rank
}

// LastLogout returns the most recent logout among the characters, treating
// unknown logouts as NeverLoggedOut.
func (a *Account) LastLogout() time.Time {
	latest := NeverLoggedOut
	a.characters.Each(func(_ string, c *Character) {
		if t := c.LastLogoutOrNever(); t.After(latest) {
			latest = t
		}
	})
	return latest
}

// Clone returns a deep copy of the account and all its characters.
func (a *Account) Clone() *Account {
	return &Account{
		Name:       a.Name,
		characters: a.characters.Clone((*Character).Clone),
	}
}
