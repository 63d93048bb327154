package account_test

import (
	"errors"
	"regexp"
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/orayew2002/usergen/account"
	"github.com/orayew2002/usergen/domain"
	"github.com/orayew2002/usergen/generator"
)

// stubNames repeats a fixed list of people, so collisions are guaranteed.
type stubNames struct {
	first, last []string
	n           int
}

func (s *stubNames) FirstName() string { return s.first[s.n%len(s.first)] }

func (s *stubNames) LastName() string {
	v := s.last[s.n%len(s.last)]
	s.n++
	return v
}

func (s *stubNames) Phone() string        { return "555-0100" }
func (s *stubNames) CompanyEmail() string { return "someone@example.com" }

var (
	today      = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	usernameRe = regexp.MustCompile(`^[a-z]+([2-9]|[1-9][0-9]+)?$`)
	fixedClock = func() time.Time { return today }
	defaultVoc = domain.AccountVocabulary()
	colliding  = func() generator.NameSource {
		return &stubNames{first: []string{"John", "Jane"}, last: []string{"Smith", "Smith"}}
	}
)

var _ = Describe("Username", func() {
	DescribeTable("uses the first initial and the last name",
		func(first, last, want string) {
			Expect(account.Username(first, last)).To(Equal(want))
		},
		Entry("plain", "John", "Smith", "jsmith"),
		Entry("apostrophe", "Liam", "O'Neil", "loneil"),
		Entry("hyphens", "Mary-Kate", "Smith-Jones", "msmithjones"),
		Entry("accents", "Élodie", "Durán", "eduran"),
		Entry("no first name", "", "Smith", "smith"),
	)
})

var _ = Describe("Email", func() {
	It("joins username and domain", func() {
		Expect(account.Email("jsmith", "techcorp.com")).To(Equal("jsmith@techcorp.com"))
	})
})

var _ = Describe("SelectGroups", func() {
	It("picks one or two sorted groups of the department", func() {
		g := generator.New(generator.WithSeed(42))
		vocab := defaultVoc.Groups["IT"]

		sizes := map[int]bool{}
		for range 200 {
			groups := account.SelectGroups(g, vocab)
			Expect(len(groups)).To(BeNumerically(">=", 1))
			Expect(len(groups)).To(BeNumerically("<=", 2))
			Expect(slices.IsSorted(groups)).To(BeTrue())
			Expect(vocab).To(ContainElements(groups))
			if len(groups) == 2 {
				Expect(groups[0]).NotTo(Equal(groups[1]))
			}
			sizes[len(groups)] = true
		}
		Expect(sizes).To(HaveKey(1))
		Expect(sizes).To(HaveKey(2))
	})

	It("picks exactly one group from a single-group department", func() {
		g := generator.New(generator.WithSeed(42))
		for range 20 {
			Expect(account.SelectGroups(g, []string{"legal"})).To(Equal([]string{"legal"}))
		}
	})
})

var _ = Describe("Generate", func() {
	newGen := func(names generator.NameSource) *generator.Generator {
		opts := []generator.Option{generator.WithSeed(42), generator.WithClock(fixedClock)}
		if names != nil {
			opts = append(opts, generator.WithNameSource(names))
		}
		return generator.New(opts...)
	}

	It("returns no records for a zero count", func() {
		accounts, err := account.Generate(newGen(nil), defaultVoc, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(accounts).To(BeEmpty())
	})

	It("rejects a negative count", func() {
		_, err := account.Generate(newGen(nil), defaultVoc, -1)
		Expect(errors.Is(err, domain.ErrInvalidCount)).To(BeTrue())
		Expect(errors.Is(err, domain.ErrInvalidVocabulary)).To(BeFalse())
	})

	It("rejects a department without groups", func() {
		vocab := defaultVoc
		vocab.Departments = append(slices.Clone(vocab.Departments), "Facilities")

		_, err := account.Generate(newGen(nil), vocab, 1)
		Expect(errors.Is(err, domain.ErrInvalidVocabulary)).To(BeTrue())
		Expect(errors.Is(err, domain.ErrInvalidCount)).To(BeFalse())
	})

	It("disambiguates colliding usernames with numeric suffixes", func() {
		accounts, err := account.Generate(newGen(colliding()), defaultVoc, 12)
		Expect(err).NotTo(HaveOccurred())

		usernames := make([]string, len(accounts))
		for i, a := range accounts {
			usernames[i] = a.Username
		}
		Expect(usernames[:4]).To(Equal([]string{"jsmith", "jsmith2", "jsmith3", "jsmith4"}))
		Expect(usernames).To(ContainElement("jsmith10"))

		slices.Sort(usernames)
		Expect(slices.Compact(slices.Clone(usernames))).To(HaveLen(12))
		for _, u := range usernames {
			Expect(u).To(MatchRegexp(usernameRe.String()))
		}
	})

	It("fills every field consistently", func() {
		accounts, err := account.Generate(newGen(nil), defaultVoc, 50)
		Expect(err).NotTo(HaveOccurred())
		Expect(accounts).To(HaveLen(50))

		from, to := account.ExpiryWindow(today)
		seen := map[string]bool{}
		for _, a := range accounts {
			Expect(seen).NotTo(HaveKey(a.Username))
			seen[a.Username] = true

			Expect(a.Username).To(MatchRegexp(usernameRe.String()))
			Expect(a.Email).To(Equal(a.Username + "@techcorp.com"))
			Expect(a.FullName).To(ContainSubstring(" "))
			Expect(defaultVoc.Departments).To(ContainElement(a.Department))

			Expect(len(a.Groups)).To(BeNumerically(">=", 1))
			Expect(len(a.Groups)).To(BeNumerically("<=", 2))
			Expect(slices.IsSorted(a.Groups)).To(BeTrue())
			Expect(defaultVoc.Groups[a.Department]).To(ContainElements(a.Groups))

			Expect(a.AccountExpiry).To(BeTemporally(">=", from))
			Expect(a.AccountExpiry).To(BeTemporally("<=", to))
		}
	})

	It("produces identical records for the same seed and clock", func() {
		first, err := account.Generate(newGen(nil), defaultVoc, 30)
		Expect(err).NotTo(HaveOccurred())
		second, err := account.Generate(newGen(nil), defaultVoc, 30)
		Expect(err).NotTo(HaveOccurred())

		Expect(second).To(Equal(first))
	})

	It("uses a custom mail domain", func() {
		vocab := defaultVoc
		vocab.Domain = "example.org"

		accounts, err := account.Generate(newGen(nil), vocab, 3)
		Expect(err).NotTo(HaveOccurred())
		for _, a := range accounts {
			Expect(a.Email).To(HaveSuffix("@example.org"))
		}
	})
})
