package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/orayew2002/usergen/config"
	"github.com/orayew2002/usergen/domain"
	"github.com/orayew2002/usergen/export"
	"github.com/orayew2002/usergen/generator"
	"github.com/orayew2002/usergen/logger"
	"github.com/orayew2002/usergen/processor"
	"github.com/orayew2002/usergen/report"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Execute runs the CLI against the real filesystem and exits non-zero on error.
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).ExecuteContext(context.Background()); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("run failed")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Output files are written through fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	root := &cobra.Command{
		Use:           "usergen",
		Short:         "Generate synthetic user records",
		Long:          `Generates fake user records as CSV or XLSX fixtures for system administration automation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "warn", "diagnostic log level: trace, debug, info, warn, error")
	root.PersistentFlags().Bool("pretty", false, "human-friendly diagnostic logs instead of JSON")

	root.AddCommand(newAccountsCmd(fs))
	root.AddCommand(newRosterCmd(fs))

	return root
}

// addOutputFlags registers the flags shared by every generating command.
func addOutputFlags(c *cobra.Command, count int, output string, seed int64) {
	c.Flags().IntP("count", "c", count, "number of users to generate")
	c.Flags().StringP("output", "o", output, "output file path")
	c.Flags().String("format", "", "output format: csv or xlsx (default: from the output extension)")
	c.Flags().Int64("seed", seed, "random seed")
	c.Flags().String("domain", "", "mail domain override")
	c.Flags().String("vocab", "", "YAML file overriding departments, roles and groups")
	c.Flags().String("today", "", "anchor date YYYY-MM-DD for relative date windows (default: today)")
}

// runJob resolves options for c and runs one generation job. A non-empty
// title frames the report with a banner, printed once the options are valid,
// and a closing line after a successful run.
func runJob(c *cobra.Command, fs afero.Fs, variant processor.Variant, base domain.Vocabulary, title string, seeded func(config.Options) bool) error {
	v := config.NewViper()
	if err := v.BindPFlags(c.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	opts, err := config.Load(v)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{Level: opts.LogLevel, Pretty: opts.Pretty}).
		With().
		Str("run_id", uuid.NewString()).
		Logger()

	vocab := base
	if opts.VocabFile != "" {
		if vocab, err = domain.LoadVocabulary(fs, opts.VocabFile, base); err != nil {
			return err
		}
		log.Debug().Str("vocab", opts.VocabFile).Msg("vocabulary loaded")
	}
	if opts.Domain != "" {
		vocab.Domain = opts.Domain
	}

	clock, err := opts.Clock()
	if err != nil {
		return err
	}

	genOpts := []generator.Option{generator.WithClock(clock)}
	if seeded(opts) {
		genOpts = append(genOpts, generator.WithSeed(opts.Seed))
	}

	reporter := report.New(c.OutOrStdout())
	p := processor.New(fs, export.NewDefault(), reporter, log)

	if title != "" {
		reporter.Banner(title)
	}
	_, err = p.Run(c.Context(), processor.Job{
		Variant:    variant,
		Count:      opts.Count,
		Output:     opts.Output,
		Format:     opts.Format,
		Vocabulary: vocab,
		Generator:  genOpts,
	})
	if err != nil {
		return err
	}

	if title != "" {
		reporter.Done()
	}
	return nil
}
