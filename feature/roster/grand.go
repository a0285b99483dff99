package roster

import (
	"fmt"

	"fleet-ledger/feature/roster/models"
)

// DefaultSeparator joins a colliding character name and its source fleet.
const DefaultSeparator = "|"

// Ownership records how a merged character relates to its source fleet.
type Ownership int

const (
	// Copied characters belong to a deep copy of their source account and
	// are independent of the source fleet.
	Copied Ownership = iota
	// Aliased characters are the source fleet's own objects, shared with the
	// grand fleet. Mutating one mutates the other.
	Aliased
)

func (o Ownership) String() string {
	switch o {
	case Copied:
		return "copied"
	case Aliased:
		return "aliased"
	default:
		return fmt.Sprintf("Ownership(%d)", int(o))
	}
}

// Provenance describes where one character of a grand fleet came from.
type Provenance struct {
	// Fleet is the source fleet name.
	Fleet string
	// Account is the account name in both source and grand fleet.
	Account string
	// Key is the character's index key in the grand fleet account.
	Key string
	// Ownership tells whether the character was copied or aliased.
	Ownership Ownership
	// Disambiguated is set when Key differs from the character name because
	// the name was already taken by an earlier fleet.
	Disambiguated bool
}

type provenanceKey struct {
	account string
	key     string
}

// GrandFleet is a roster merged from several fleets by account name.
type GrandFleet struct {
	*models.Fleet

	separator  string
	provenance []Provenance
	byKey      map[provenanceKey]int
}

// NewGrandFleet creates an empty grand fleet. An empty separator selects
// DefaultSeparator.
func NewGrandFleet(name, separator string) *GrandFleet {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &GrandFleet{
		Fleet:     models.NewFleet(name),
		separator: separator,
		byKey:     make(map[provenanceKey]int),
	}
}

// MergeFleets merges fleets, in order, into a new grand fleet.
func MergeFleets(name string, fleets []*models.Fleet, separator string) *GrandFleet {
	g := NewGrandFleet(name, separator)
	for _, f := range fleets {
		g.Merge(f)
	}
	return g
}

// Merge folds one more fleet into the grand fleet.
//
// An account seen for the first time is deep-copied. An account already
// present receives the incoming characters themselves, without copying; a
// character whose name is taken is stored under "name<sep>fleet" instead.
// Contribution values are never re-summed: this is a union of rosters, not an
// aggregation of totals.
func (g *GrandFleet) Merge(f *models.Fleet) {
	for _, source := range f.Accounts() {
		target, ok := g.Account(source.Name)
		if !ok {
			clone := source.Clone()
			g.AddAccount(clone)
			for _, key := range clone.CharacterKeys() {
				g.record(Provenance{Fleet: f.Name, Account: clone.Name, Key: key, Ownership: Copied})
			}
			continue
		}

		for _, c := range source.Characters() {
			key := c.Name
			disambiguated := false
			if target.HasCharacter(key) {
				key = g.freeKey(target, c.Name+g.separator+f.Name)
				disambiguated = true
			}
			target.AddCharacter(key, c)
			g.record(Provenance{Fleet: f.Name, Account: target.Name, Key: key, Ownership: Aliased, Disambiguated: disambiguated})
		}
	}
}

// freeKey returns key, or key with the smallest "#n" suffix not yet taken.
func (g *GrandFleet) freeKey(a *models.Account, key string) string {
	if !a.HasCharacter(key) {
		return key
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s#%d", key, n)
		if !a.HasCharacter(candidate) {
			return candidate
		}
	}
}

func (g *GrandFleet) record(p Provenance) {
	g.byKey[provenanceKey{p.Account, p.Key}] = len(g.provenance)
	g.provenance = append(g.provenance, p)
}

// Provenance returns the origin of every merged character in merge order.
func (g *GrandFleet) Provenance() []Provenance {
	out := make([]Provenance, len(g.provenance))
	copy(out, g.provenance)
	return out
}

// Origin returns the provenance of the character stored under key in account.
func (g *GrandFleet) Origin(account, key string) (Provenance, bool) {
	i, ok := g.byKey[provenanceKey{account, key}]
	if !ok {
		return Provenance{}, false
	}
	return g.provenance[i], true
}
