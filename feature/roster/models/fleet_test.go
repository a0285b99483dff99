package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFleetGetOrCreate(t *testing.T) {
	f := NewFleet("COA")
	a := f.GetOrCreateAccount("Enterprise")
	assert.Same(t, a, f.GetOrCreateAccount("Enterprise"))
	f.GetOrCreateAccount("Defiant")
	f.GetOrCreateAccount("")

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, []string{"Enterprise", "Defiant", ""}, f.AccountNames())
	assertInSync(t, &f.accounts)

	got, ok := f.Account("Defiant")
	require.True(t, ok)
	assert.Equal(t, "Defiant", got.Name)
	_, ok = f.Account("Voyager")
	assert.False(t, ok)

	assert.True(t, f.AddAccount(NewAccount("Voyager")))
	assert.False(t, f.AddAccount(NewAccount("Voyager")))
}

func TestFleetCharacterCount(t *testing.T) {
	f := NewFleet("COA")
	f.GetOrCreateAccount("Enterprise").GetOrCreateCharacter("Kirk")
	f.GetOrCreateAccount("Enterprise").GetOrCreateCharacter("Spock")
	f.GetOrCreateAccount("Defiant").GetOrCreateCharacter("Sisko")
	assert.Equal(t, 3, f.CharacterCount())
}

func TestFleetSortByContribution(t *testing.T) {
	f := NewFleet("COA")
	for _, tc := range []struct {
		account string
		amount  int64
	}{
		{"A", 10}, {"B", 30}, {"C", 10}, {"D", 20},
	} {
		f.GetOrCreateAccount(tc.account).GetOrCreateCharacter("x").Contribute("Dilithium", tc.amount)
	}

	f.SortByContribution()
	assert.Equal(t, []string{"B", "D", "A", "C"}, f.AccountNames())
	assertInSync(t, &f.accounts)

	a, ok := f.Account("A")
	require.True(t, ok)
	assert.Equal(t, int64(10), a.Total())
}

func TestFleetActiveSince(t *testing.T) {
	now := time.Date(2014, 1, 20, 0, 0, 0, 0, time.UTC)
	f := NewFleet("COA")
	f.GetOrCreateAccount("Old").GetOrCreateCharacter("o").SetRoster("", at(now.Add(-40*24*time.Hour)))
	f.GetOrCreateAccount("Unknown").GetOrCreateCharacter("u")
	f.GetOrCreateAccount("Recent").GetOrCreateCharacter("r").SetRoster("", at(now.Add(-time.Hour)))
	f.GetOrCreateAccount("Edge").GetOrCreateCharacter("e").SetRoster("", at(now.Add(-30*24*time.Hour)))

	active := f.ActiveSince(now.Add(-30 * 24 * time.Hour))
	var names []string
	for _, a := range active {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Recent", "Edge"}, names)
	assert.Equal(t, []string{"Recent", "Edge", "Old", "Unknown"}, f.AccountNames())
}
