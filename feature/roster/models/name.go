package models

import "strings"

// ParseDisplayName splits a "character@account" display name.
//
// Surrounding whitespace is trimmed first. Anything after a second '@' is
// dropped. A name without '@' yields two empty strings.
func ParseDisplayName(s string) (character, account string) {
	parts := strings.Split(strings.TrimSpace(s), "@")
	if len(parts) < 2 {
		return "", ""
	}
	return parts[0], parts[1]
}
