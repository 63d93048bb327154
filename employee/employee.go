// Package employee builds roster records: people with a role, a phone number,
// a start date and a unique six-digit employee id.
package employee

import (
	"fmt"
	"time"

	"github.com/orayew2002/usergen/domain"
	"github.com/orayew2002/usergen/generator"
)

const (
	// DefaultCount and DefaultOutput are the roster run defaults.
	DefaultCount  = 50
	DefaultOutput = "test_users.csv"

	idDigits = 6
)

// StartWindow returns the inclusive range start dates are drawn from:
// the two years up to and including today.
func StartWindow(today time.Time) (from, to time.Time) {
	return today.AddDate(-2, 0, 0), today
}

// usernameFormat derives a username from sanitized first and last names.
type usernameFormat func(first, last string) string

var usernameFormats = []usernameFormat{
	func(first, last string) string { return first + last },
	func(first, last string) string { return first + "." + last },
	func(first, last string) string { return initial(first) + last },
}

// Generate creates count employees drawn from vocab.
// Usernames and employee ids are unique within the returned slice.
func Generate(g *generator.Generator, vocab domain.Vocabulary, count int) ([]domain.Employee, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidCount, count)
	}
	if err := vocab.ValidateForRoster(); err != nil {
		return nil, err
	}

	ids := generator.NewNumberPool(idDigits)
	if count > ids.Size() {
		return nil, domain.NewExhausted("cannot issue %d unique employee ids from %d", count, ids.Size())
	}

	usernames := generator.NewUsernameSet()
	from, to := StartWindow(g.Today())

	employees := make([]domain.Employee, count)
	for i := range count {
		emp, err := newEmployee(g, vocab, usernames, ids)
		if err != nil {
			return nil, fmt.Errorf("employee %d: %w", i+1, err)
		}
		emp.StartDate = g.DateBetween(from, to)
		employees[i] = emp
		g.Progress(i+1, count)
	}

	return employees, nil
}

func newEmployee(g *generator.Generator, vocab domain.Vocabulary, usernames *generator.UsernameSet, ids *generator.NumberPool) (domain.Employee, error) {
	names := g.Names()
	first, last := names.FirstName(), names.LastName()

	format := generator.Choice(g, usernameFormats)
	username, err := usernames.Claim(format(generator.Sanitize(first), generator.Sanitize(last)))
	if err != nil {
		return domain.Employee{}, err
	}

	id, err := ids.Draw(g)
	if err != nil {
		return domain.Employee{}, err
	}

	return domain.Employee{
		Username:   username,
		FirstName:  first,
		LastName:   last,
		FullName:   first + " " + last,
		Email:      names.CompanyEmail(),
		Phone:      names.Phone(),
		Department: generator.Choice(g, vocab.Departments),
		Role:       generator.Choice(g, vocab.Roles),
		EmployeeID: id,
	}, nil
}

func initial(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}
