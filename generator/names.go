package generator

import (
	mathrand "math/rand"
	"math/rand/v2"

	bxfaker "github.com/bxcodec/faker/v4"
	"github.com/jaswdr/faker"
)

// NameSource supplies synthesized personal data.
type NameSource interface {
	FirstName() string
	LastName() string
	Phone() string
	CompanyEmail() string
}

// seededNames draws from a faker instance with its own seeded source.
type seededNames struct {
	f faker.Faker
}

// NewSeededNames returns a deterministic NameSource: two sources built with
// the same seed yield the same sequence.
func NewSeededNames(seed int64) NameSource {
	return &seededNames{f: faker.NewWithSeed(mathrand.NewSource(seed))}
}

func (s *seededNames) FirstName() string    { return s.f.Person().FirstName() }
func (s *seededNames) LastName() string     { return s.f.Person().LastName() }
func (s *seededNames) Phone() string        { return s.f.Phone().Number() }
func (s *seededNames) CompanyEmail() string { return s.f.Internet().CompanyEmail() }

// globalNames uses the package-level faker functions, which share one
// process-wide random source and cannot be seeded per run.
type globalNames struct{}

// GlobalNames returns the non-deterministic NameSource.
func GlobalNames() NameSource {
	return globalNames{}
}

func (globalNames) FirstName() string { return bxfaker.FirstName() }
func (globalNames) LastName() string  { return bxfaker.LastName() }
func (globalNames) Phone() string     { return bxfaker.Phonenumber() }

// CompanyEmail builds first.last@company.tld from faker names. bxfaker.Email
// draws random letters for both parts.
func (globalNames) CompanyEmail() string {
	first := sanitizeOr(bxfaker.FirstName(), FallbackUsername)
	last := sanitizeOr(bxfaker.LastName(), FallbackUsername)
	company := sanitizeOr(bxfaker.LastName(), "example")
	return first + "." + last + "@" + company + "." + companyTLDs[rand.IntN(len(companyTLDs))]
}

var companyTLDs = []string{"com", "net", "org", "biz", "info"}

func sanitizeOr(s, fallback string) string {
	if s = Sanitize(s); s == "" {
		return fallback
	}
	return s
}
