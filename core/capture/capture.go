package capture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrDocumentNotFound is returned when the input contains no JSON object.
var ErrDocumentNotFound = errors.New("no JSON document found in input")

// Kind identifies the payload a caller is looking for.
type Kind int

const (
	// Holdings is the fleet holdings contribution payload.
	Holdings Kind = iota
	// Members is the fleet membership roster payload.
	Members
)

func (k Kind) String() string {
	switch k {
	case Holdings:
		return "holdings"
	case Members:
		return "members"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Prefixes holds the sentinel prefixes identifying each payload kind in a
// recorded response body.
type Prefixes struct {
	// Holdings marks the fleet holdings (group project) response.
	Holdings string `mapstructure:"holdings" default:"5:::{\"name\":\"Proxy_GroupProject\""`
	// Members marks the guild roster response.
	Members string `mapstructure:"members" default:"5:::{\"name\":\"Proxy_Guild"`
}

// DefaultPrefixes returns the prefixes used by the game client's web gateway,
// as declared by the default tags of Prefixes.
func DefaultPrefixes() Prefixes {
	var p Prefixes
	v := reflect.ValueOf(&p).Elem()
	for i := 0; i < v.NumField(); i++ {
		v.Field(i).SetString(v.Type().Field(i).Tag.Get("default"))
	}
	return p
}

// For returns the sentinel prefix for kind. An unset prefix falls back to
// its default.
func (p Prefixes) For(kind Kind) string {
	if kind == Members {
		if p.Members == "" {
			return DefaultPrefixes().Members
		}
		return p.Members
	}
	if p.Holdings == "" {
		return DefaultPrefixes().Holdings
	}
	return p.Holdings
}

// har is the subset of the HTTP Archive format we read.
type har struct {
	Log struct {
		Entries []struct {
			Response struct {
				Content struct {
					Text string `json:"text"`
				} `json:"content"`
			} `json:"response"`
		} `json:"entries"`
	} `json:"log"`
}

// IsArchive reports whether filename names a HAR capture.
func IsArchive(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".har")
}

// Extract returns the JSON document of the given kind from raw input bytes.
//
// When filename names a HAR archive, the first recorded response whose body
// starts with the kind's sentinel prefix is used. If no entry matches, the raw
// bytes are used as-is. Leading framing before the first '{' is skipped.
func Extract(raw []byte, filename string, kind Kind, prefixes Prefixes) ([]byte, error) {
	data := raw

	if IsArchive(filename) {
		var archive har
		if err := json.Unmarshal(raw, &archive); err != nil {
			return nil, fmt.Errorf("failed to decode HAR archive %s: %w", filename, err)
		}
		prefix := prefixes.For(kind)
		for _, e := range archive.Log.Entries {
			text := e.Response.Content.Text
			if text != "" && strings.HasPrefix(text, prefix) {
				data = []byte(text)
				break
			}
		}
	}

	return skipToObject(data)
}

// skipToObject drops protocol framing (e.g. "5:::") preceding the JSON object.
func skipToObject(data []byte) ([]byte, error) {
	if len(data) > 0 && data[0] == '{' {
		return data, nil
	}
	i := bytes.IndexByte(data, '{')
	if i < 0 {
		return nil, ErrDocumentNotFound
	}
	return data[i:], nil
}
