package roster

import (
	"sort"
	"testing"

	"fleet-ledger/feature/roster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fleetOf builds a fleet from "character@account" -> amount pairs, in order.
func fleetOf(name string, donations ...any) *models.Fleet {
	f := models.NewFleet(name)
	for i := 0; i < len(donations); i += 2 {
		character, account := models.ParseDisplayName(donations[i].(string))
		f.GetOrCreateAccount(account).GetOrCreateCharacter(character).Contribute("Dilithium", int64(donations[i+1].(int)))
	}
	return f
}

func TestMergeFleets(t *testing.T) {
	coa := fleetOf("COA", "Kirk@Enterprise", 100, "Sisko@Defiant", 40)
	hoa := fleetOf("HOA", "Worf@Enterprise", 30, "Kirk@Enterprise", 50, "Martok@Negh'Var", 70)

	g := MergeFleets("Athena", []*models.Fleet{coa, hoa}, "")

	assert.Equal(t, "Athena", g.Name)
	assert.Equal(t, []string{"Enterprise", "Defiant", "Negh'Var"}, g.AccountNames())

	enterprise, ok := g.Account("Enterprise")
	require.True(t, ok)
	assert.Equal(t, []string{"Kirk", "Worf", "Kirk|HOA"}, enterprise.CharacterKeys())

	kirk, _ := enterprise.Character("Kirk")
	assert.Equal(t, int64(100), kirk.Total(), "characters are not re-summed across fleets")
	otherKirk, _ := enterprise.Character("Kirk|HOA")
	assert.Equal(t, int64(50), otherKirk.Total())
	assert.Equal(t, int64(180), enterprise.Total())
	assert.Equal(t, 5, g.CharacterCount())
	assertConsistent(t, g.Fleet)
}

func TestMergeOwnership(t *testing.T) {
	coa := fleetOf("COA", "Kirk@Enterprise", 100)
	hoa := fleetOf("HOA", "Worf@Enterprise", 30, "Martok@Negh'Var", 70)

	g := MergeFleets("Athena", []*models.Fleet{coa, hoa}, "|")

	t.Run("First Sight Is Copied", func(t *testing.T) {
		source, _ := coa.Account("Enterprise")
		sourceKirk, _ := source.Character("Kirk")
		sourceKirk.Contribute("Dilithium", 1)

		merged, _ := g.Account("Enterprise")
		kirk, _ := merged.Character("Kirk")
		assert.NotSame(t, sourceKirk, kirk)
		assert.Equal(t, int64(100), kirk.Total())

		p, ok := g.Origin("Enterprise", "Kirk")
		require.True(t, ok)
		assert.Equal(t, Copied, p.Ownership)
		assert.Equal(t, "COA", p.Fleet)
	})

	t.Run("Joining Characters Are Aliased", func(t *testing.T) {
		source, _ := hoa.Account("Enterprise")
		sourceWorf, _ := source.Character("Worf")

		merged, _ := g.Account("Enterprise")
		worf, _ := merged.Character("Worf")
		assert.Same(t, sourceWorf, worf)

		sourceWorf.Contribute("Dilithium", 5)
		assert.Equal(t, int64(35), worf.Total())

		p, ok := g.Origin("Enterprise", "Worf")
		require.True(t, ok)
		assert.Equal(t, Aliased, p.Ownership)
		assert.False(t, p.Disambiguated)
	})

	t.Run("Unknown Key", func(t *testing.T) {
		_, ok := g.Origin("Enterprise", "Picard")
		assert.False(t, ok)
	})

	assert.Len(t, g.Provenance(), 3)
	assert.Equal(t, "copied", Copied.String())
	assert.Equal(t, "aliased", Aliased.String())
}

func TestMergeRepeatedFleetLabel(t *testing.T) {
	a := fleetOf("COA", "Kirk@Enterprise", 1)
	b := fleetOf("COA", "Kirk@Enterprise", 2)
	c := fleetOf("COA", "Kirk@Enterprise", 3)

	g := MergeFleets("Athena", []*models.Fleet{a, b, c}, "/")
	enterprise, _ := g.Account("Enterprise")
	assert.Equal(t, []string{"Kirk", "Kirk/COA", "Kirk/COA#2"}, enterprise.CharacterKeys())
	assert.Equal(t, int64(6), enterprise.Total())

	p, ok := g.Origin("Enterprise", "Kirk/COA#2")
	require.True(t, ok)
	assert.True(t, p.Disambiguated)
}

func TestMergeAccountSetIsAssociative(t *testing.T) {
	a := fleetOf("A", "x@One", 1, "y@Two", 2)
	b := fleetOf("B", "z@Three", 3, "x@Two", 4)
	c := fleetOf("C", "w@Four", 5, "x@One", 6)

	oneShot := MergeFleets("G", []*models.Fleet{a, b, c}, "")

	stepwise := MergeFleets("G", []*models.Fleet{a, b}, "")
	stepwise.Merge(c)

	nested := MergeFleets("G", []*models.Fleet{MergeFleets("AB", []*models.Fleet{a, b}, "").Fleet, c}, "")

	names := func(f *models.Fleet) []string {
		out := f.AccountNames()
		sort.Strings(out)
		return out
	}
	assert.Equal(t, names(oneShot.Fleet), names(stepwise.Fleet))
	assert.Equal(t, names(oneShot.Fleet), names(nested.Fleet))
}

func TestMergeEmpty(t *testing.T) {
	g := MergeFleets("Empty", nil, "")
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Provenance())
}
