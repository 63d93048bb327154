// Package account builds system account records: a username derived from
// the person's name, a corporate email, department groups and an expiry date.
package account

import (
	"fmt"
	"slices"
	"time"

	"github.com/orayew2002/usergen/domain"
	"github.com/orayew2002/usergen/generator"
)

const (
	DefaultCount  = 50
	DefaultOutput = "../input/test_users.csv"
	DefaultSeed   = 42

	maxGroups = 2
)

// ExpiryWindow returns the inclusive range account expiry dates are drawn
// from: six months to two years after today.
func ExpiryWindow(today time.Time) (from, to time.Time) {
	return today.AddDate(0, 6, 0), today.AddDate(2, 0, 0)
}

// Username returns the base username for a person: first initial followed by
// the last name, lowercased, with apostrophes and hyphens removed.
func Username(first, last string) string {
	first, last = generator.Sanitize(first), generator.Sanitize(last)
	if first == "" {
		return last
	}
	return first[:1] + last
}

// Email returns the corporate address of username.
func Email(username, domain string) string {
	return username + "@" + domain
}

// SelectGroups picks one or two groups of the department without repetition
// and returns them sorted.
func SelectGroups(g *generator.Generator, groups []string) []string {
	n := 1 + g.IntN(min(maxGroups, len(groups)))
	selected := generator.Sample(g, groups, n)
	slices.Sort(selected)
	return selected
}

// Generate creates count accounts drawn from vocab.
// Usernames are unique within the returned slice.
func Generate(g *generator.Generator, vocab domain.Vocabulary, count int) ([]domain.Account, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidCount, count)
	}
	if err := vocab.ValidateForAccounts(); err != nil {
		return nil, err
	}

	usernames := generator.NewUsernameSet()
	from, to := ExpiryWindow(g.Today())
	names := g.Names()

	accounts := make([]domain.Account, count)
	for i := range count {
		first, last := names.FirstName(), names.LastName()

		username, err := usernames.Claim(Username(first, last))
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i+1, err)
		}

		department := generator.Choice(g, vocab.Departments)
		accounts[i] = domain.Account{
			Username:      username,
			FullName:      first + " " + last,
			Email:         Email(username, vocab.Domain),
			Department:    department,
			Groups:        SelectGroups(g, vocab.Groups[department]),
			AccountExpiry: g.DateBetween(from, to),
		}
		g.Progress(i+1, count)
	}

	return accounts, nil
}
