package cmd

import (
	"github.com/orayew2002/usergen/account"
	"github.com/orayew2002/usergen/config"
	"github.com/orayew2002/usergen/domain"
	"github.com/orayew2002/usergen/processor"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newAccountsCmd(fs afero.Fs) *cobra.Command {
	c := &cobra.Command{
		Use:   "accounts",
		Short: "Generate account records with groups and expiry dates",
		Long: `Generates accounts with a first-initial + last-name username, a corporate
email, one or two department groups and an expiry 6 to 24 months ahead.
Runs are reproducible: the same seed, count and --today give identical output.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runJob(c, fs, processor.VariantAccounts, domain.AccountVocabulary(), "",
				func(config.Options) bool { return true })
		},
	}
	addOutputFlags(c, account.DefaultCount, account.DefaultOutput, account.DefaultSeed)
	return c
}
