package cmd

import (
	"github.com/orayew2002/usergen/config"
	"github.com/orayew2002/usergen/domain"
	"github.com/orayew2002/usergen/employee"
	"github.com/orayew2002/usergen/processor"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRosterCmd(fs afero.Fs) *cobra.Command {
	c := &cobra.Command{
		Use:   "roster",
		Short: "Generate employee roster records",
		Long: `Generates employees with a phone number, role, start date within the last
two years and a unique six-digit employee id. Output differs between runs
unless a non-zero --seed is given.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runJob(c, fs, processor.VariantRoster, domain.RosterVocabulary(), "User Data Generator",
				func(o config.Options) bool { return o.Seed != 0 })
		},
	}
	addOutputFlags(c, employee.DefaultCount, employee.DefaultOutput, 0)
	return c
}
