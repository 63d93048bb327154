package domain

import (
	"fmt"
	"slices"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Vocabulary is the closed set of values a generation run may draw from.
type Vocabulary struct {
	Departments []string            `yaml:"departments"`
	Roles       []string            `yaml:"roles"`
	Groups      map[string][]string `yaml:"groups"`
	Domain      string              `yaml:"domain"`
}

// RosterVocabulary returns the default vocabulary for roster (employee) runs.
func RosterVocabulary() Vocabulary {
	return Vocabulary{
		Departments: []string{"Engineering", "Sales", "Marketing", "HR", "Finance", "Operations", "IT", "Support"},
		Roles:       []string{"Developer", "Manager", "Analyst", "Engineer", "Specialist", "Coordinator", "Director"},
	}
}

// AccountVocabulary returns the default vocabulary for account runs.
func AccountVocabulary() Vocabulary {
	return Vocabulary{
		Departments: []string{"IT", "Sales", "Marketing", "Finance", "HR", "Operations", "Legal"},
		Groups: map[string][]string{
			"IT":         {"developers", "sysadmins", "devops", "support"},
			"Sales":      {"sales", "account_managers", "business_dev"},
			"Marketing":  {"marketing", "content", "social_media"},
			"Finance":    {"finance", "accounting", "analysts"},
			"HR":         {"hr", "recruiters", "training"},
			"Operations": {"operations", "logistics", "facilities"},
			"Legal":      {"legal", "compliance"},
		},
		Domain: "techcorp.com",
	}
}

// LoadVocabulary reads a YAML vocabulary file and overlays it on base.
// Only keys present in the file replace the corresponding base values.
func LoadVocabulary(fs afero.Fs, path string, base Vocabulary) (Vocabulary, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Vocabulary{}, NewIOFailure(fmt.Sprintf("read vocabulary %s", path), err)
	}

	var file Vocabulary
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Vocabulary{}, &Error{
			Code:    ErrCodeInvalidArgument,
			Message: fmt.Sprintf("parse vocabulary %s", path),
			Cause:   err,
		}
	}

	if len(file.Departments) > 0 {
		base.Departments = file.Departments
	}
	if len(file.Roles) > 0 {
		base.Roles = file.Roles
	}
	if len(file.Groups) > 0 {
		base.Groups = file.Groups
	}
	if file.Domain != "" {
		base.Domain = file.Domain
	}

	return base, nil
}

// ValidateForRoster checks that every field a roster run samples is non-empty.
func (v Vocabulary) ValidateForRoster() error {
	if len(v.Departments) == 0 {
		return vocabularyError("no departments")
	}
	if len(v.Roles) == 0 {
		return vocabularyError("no roles")
	}
	return nil
}

// ValidateForAccounts checks that every department has at least one group
// and that a mail domain is set.
func (v Vocabulary) ValidateForAccounts() error {
	if len(v.Departments) == 0 {
		return vocabularyError("no departments")
	}
	if v.Domain == "" {
		return vocabularyError("no mail domain")
	}
	for _, dept := range v.Departments {
		groups := v.Groups[dept]
		if len(groups) == 0 {
			return vocabularyError(fmt.Sprintf("department %q has no groups", dept))
		}
		if hasDuplicates(groups) {
			return vocabularyError(fmt.Sprintf("department %q lists a group twice", dept))
		}
	}
	return nil
}

func vocabularyError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidVocabulary, reason)
}

func hasDuplicates(values []string) bool {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return len(slices.Compact(sorted)) != len(values)
}
