package roster

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"fleet-ledger/feature/roster/models"

	"github.com/spf13/cast"
)

// ErrMalformedTimestamp is returned when a roster logout time cannot be parsed.
var ErrMalformedTimestamp = errors.New("malformed logout timestamp")

// LoadHoldings adds every donation of states to the fleet.
//
// Contributions accumulate: loading the same record twice counts it twice.
// Amounts are validated before the fleet is touched, so an error leaves the
// fleet unchanged.
func LoadHoldings(f *models.Fleet, states []HoldingState) error {
	amounts := make([][]int64, len(states))
	for i, state := range states {
		amounts[i] = make([]int64, len(state.DonationStats))
		for j, donor := range state.DonationStats {
			n, err := donor.Amount()
			if err != nil {
				return fmt.Errorf("holding %q: %w", state.TypeName, err)
			}
			amounts[i][j] = n
		}
	}

	for i, state := range states {
		for j, donor := range state.DonationStats {
			characterName, accountName := models.ParseDisplayName(donor.DisplayName)
			character := f.GetOrCreateAccount(accountName).GetOrCreateCharacter(characterName)
			character.Contribute(state.TypeName, amounts[i][j])
		}
	}
	return nil
}

// LoadMembers applies roster records to the fleet.
//
// Rank and last logout are replaced rather than merged, so a later record for
// the same character wins. Timestamps are parsed before the fleet is touched;
// an unparsable one fails the whole load.
func LoadMembers(f *models.Fleet, members []Member) error {
	logouts := make([]*time.Time, len(members))
	for i, m := range members {
		t, err := ParseLogoutTime(string(m.LogoutTime))
		if err != nil {
			return fmt.Errorf("member %q: %w", m.Name, err)
		}
		logouts[i] = t
	}

	for i, m := range members {
		character := f.GetOrCreateAccount(AccountHandle(m.PublicAccountName)).GetOrCreateCharacter(m.Name)
		character.SetRoster(string(m.OfficerRank), logouts[i])
	}
	return nil
}

// AccountHandle strips the sigil the game puts in front of public account
// names ("@name" becomes "name").
func AccountHandle(public string) string {
	if public == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(public)
	return public[size:]
}

// ParseLogoutTime parses a roster logout time. Times without a zone are taken
// as UTC. An empty value means the logout is unknown and yields nil.
func ParseLogoutTime(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := cast.ToTimeInDefaultLocationE(value, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTimestamp, value)
	}
	return &t, nil
}
