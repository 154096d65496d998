// Package slugify derives URL-safe, unique short identifiers from display
// names. Uniqueness is resolved against a caller-supplied lookup so the same
// code serves the team registry and the player profiles.
package slugify

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// MaxLength bounds a slug before suffix resolution so numeric suffixes
// always fit without exceeding it.
const MaxLength = 60

// maxSuffix bounds the -2, -3, ... probing.
const maxSuffix = 1000

// Slugify normalizes a display name into slug form: lowercase, diacritics
// stripped, runs of anything outside [a-z0-9] collapsed to single hyphens.
// When nothing survives normalization the fallback token is returned.
func Slugify(input, fallback string) string {
	decomposed := norm.NFD.String(strings.ToLower(input))

	var b strings.Builder
	b.Grow(len(decomposed))
	hyphen := false
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		default:
			hyphen = true
		}
	}

	slug := b.String()
	if slug == "" {
		return fallback
	}
	return slug
}

// EnsureUnique resolves base against the slugs already taken. The taken
// lookup receives a prefix and returns every existing slug starting with it;
// a single query covers the candidate and all its suffixed variants.
//
// Safe for concurrent use with distinct names. Callers resolving the same
// name repeatedly must serialize; in-batch correctness is on them.
func EnsureUnique(base string, taken func(prefix string) ([]string, error)) (string, error) {
	candidate := truncate(base, MaxLength)

	existing, err := taken(candidate)
	if err != nil {
		return "", fmt.Errorf("slug lookup failed: %w", err)
	}

	used := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		used[s] = struct{}{}
	}

	if _, ok := used[candidate]; !ok {
		return candidate, nil
	}

	for n := 2; n < maxSuffix; n++ {
		suffix := fmt.Sprintf("-%d", n)
		next := truncate(candidate, MaxLength-len(suffix)) + suffix
		if _, ok := used[next]; !ok {
			return next, nil
		}
	}

	return "", fmt.Errorf("no available slug for %q", base)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimRight(s[:max], "-")
}
