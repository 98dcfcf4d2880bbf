package profile

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeName trims surrounding whitespace and rejects names that are
// empty or carry control characters. Case is preserved.
func NormalizeName(raw string) (string, error) {
	name, reason := normalizeName(raw)
	if reason != "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidName, reason)
	}
	return name, nil
}

func normalizeName(raw string) (string, string) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", "name must not be empty"
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return "", fmt.Sprintf("name contains control character %U", r)
		}
	}
	return name, ""
}
