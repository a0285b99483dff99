package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrStructureNotFound is returned when the expected holdings or members array
// is missing from a payload, which usually means the upstream format changed
// or the wrong capture was supplied.
var ErrStructureNotFound = errors.New("expected structure not found in payload")

// Donor is one contribution record of a holding.
type Donor struct {
	DisplayName  string      `json:"displayname"`
	Contribution json.Number `json:"contribution"`
}

// Amount returns the contribution as an integer. Missing amounts count as
// zero and fractional amounts are truncated. Amounts outside the int64 range
// are rejected.
func (d Donor) Amount() (int64, error) {
	if d.Contribution == "" {
		return 0, nil
	}
	if n, err := d.Contribution.Int64(); err == nil {
		return n, nil
	}
	f, err := d.Contribution.Float64()
	if err == nil && (math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64) {
		err = errors.New("out of int64 range")
	}
	if err != nil {
		return 0, fmt.Errorf("invalid contribution %q for %q: %w", d.Contribution, d.DisplayName, err)
	}
	return int64(f), nil
}

// HoldingState is one holding and the donations made toward it.
type HoldingState struct {
	TypeName      string  `json:"typename"`
	DonationStats []Donor `json:"donationstats"`
}

// Member is one record of the fleet roster.
type Member struct {
	Name              string `json:"name"`
	PublicAccountName string `json:"publicaccountname"`
	OfficerRank       Label  `json:"officerrank"`
	LogoutTime        Label  `json:"logouttime"`
}

// Label is a text field the game sometimes sends as a number.
type Label string

// UnmarshalJSON accepts a JSON string, number, boolean or null.
func (l *Label) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*l = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Label(s)
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		return fmt.Errorf("label must be a scalar, got %s", data)
	default:
		*l = Label(data)
	}
	return nil
}

// DecodeHoldings locates args[0].container.states in a holdings payload.
func DecodeHoldings(doc []byte) ([]HoldingState, error) {
	raw, err := locateArray(doc, "states")
	if err != nil {
		return nil, err
	}
	var states []HoldingState
	if err := json.Unmarshal(raw, &states); err != nil {
		return nil, fmt.Errorf("failed to decode holdings: %w", err)
	}
	return states, nil
}

// DecodeMembers locates args[0].container.members in a roster payload.
func DecodeMembers(doc []byte) ([]Member, error) {
	raw, err := locateArray(doc, "members")
	if err != nil {
		return nil, err
	}
	var members []Member
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("failed to decode members: %w", err)
	}
	return members, nil
}

// locateArray walks args[0].container.<field> and returns the raw array.
func locateArray(doc []byte, field string) (json.RawMessage, error) {
	notFound := fmt.Errorf("%w: args[0].container.%s", ErrStructureNotFound, field)

	var root map[string]json.RawMessage
	if err := json.Unmarshal(doc, &root); err != nil {
		if isTypeError(err) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	var args []json.RawMessage
	if err := json.Unmarshal(root["args"], &args); err != nil || len(args) == 0 {
		return nil, notFound
	}

	var arg struct {
		Container map[string]json.RawMessage `json:"container"`
	}
	if err := json.Unmarshal(args[0], &arg); err != nil {
		return nil, notFound
	}

	raw := bytes.TrimSpace(arg.Container[field])
	if len(raw) == 0 || raw[0] != '[' {
		return nil, notFound
	}
	return raw, nil
}

func isTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}
