package generator

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/orayew2002/usergen/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSuffix bounds the numeric suffix tried when a username is taken.
const MaxSuffix = 1000

// FallbackUsername is used when a name sanitizes to nothing.
const FallbackUsername = "user"

// Sanitize lowercases s, folds accented letters to ASCII and drops every
// rune outside a-z (apostrophes, hyphens, spaces, punctuation).
func Sanitize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UsernameSet hands out usernames that are unique within one run.
type UsernameSet struct {
	used map[string]struct{}
}

// NewUsernameSet returns an empty set.
func NewUsernameSet() *UsernameSet {
	return &UsernameSet{used: make(map[string]struct{})}
}

// Claim reserves base, or base followed by the smallest integer >= 2 that is
// still free. It fails with domain.ErrExhausted once MaxSuffix is passed.
func (s *UsernameSet) Claim(base string) (string, error) {
	if base == "" {
		base = FallbackUsername
	}

	if _, taken := s.used[base]; !taken {
		s.used[base] = struct{}{}
		return base, nil
	}

	for n := 2; n <= MaxSuffix; n++ {
		candidate := base + strconv.Itoa(n)
		if _, taken := s.used[candidate]; taken {
			continue
		}
		s.used[candidate] = struct{}{}
		return candidate, nil
	}

	return "", domain.NewExhausted("no free username for %q after %d attempts", base, MaxSuffix-1)
}

// Len returns the number of claimed usernames.
func (s *UsernameSet) Len() int {
	return len(s.used)
}
