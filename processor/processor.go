package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/orayew2002/usergen/account"
	"github.com/orayew2002/usergen/domain"
	"github.com/orayew2002/usergen/employee"
	"github.com/orayew2002/usergen/export"
	"github.com/orayew2002/usergen/generator"
	"github.com/orayew2002/usergen/report"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Variant selects which record type a job produces.
type Variant string

const (
	VariantAccounts Variant = "accounts"
	VariantRoster   Variant = "roster"
)

// Job describes one generation run.
type Job struct {
	Variant Variant
	Count   int
	Output  string
	// Format overrides the format implied by the Output extension.
	Format     string
	Vocabulary domain.Vocabulary
	Generator  []generator.Option
}

// Result summarizes a finished run.
type Result struct {
	Path    string
	Format  string
	Records int
}

// Processor runs the generate → serialize → sample pipeline.
type Processor struct {
	fs       afero.Fs
	registry *export.Registry
	reporter *report.Reporter
	log      zerolog.Logger
}

// New creates a Processor writing through fs with the writers in registry.
func New(fs afero.Fs, registry *export.Registry, reporter *report.Reporter, log zerolog.Logger) *Processor {
	return &Processor{fs: fs, registry: registry, reporter: reporter, log: log}
}

// Run generates job.Count records, writes them to job.Output and echoes a
// sample. Arguments are validated before any file is touched.
func (p *Processor) Run(ctx context.Context, job Job) (Result, error) {
	if job.Count < 0 {
		return Result{}, fmt.Errorf("%w: got %d", domain.ErrInvalidCount, job.Count)
	}

	format := p.registry.FormatFor(job.Output, job.Format)
	if _, err := p.registry.Lookup(format); err != nil {
		return Result{}, &domain.Error{Code: domain.ErrCodeInvalidArgument, Message: "output format", Cause: err}
	}

	log := p.log.With().
		Str("variant", string(job.Variant)).
		Str("output", job.Output).
		Str("format", format).
		Int("count", job.Count).
		Logger()

	p.reporter.Start(job.Count)
	opts := append([]generator.Option{generator.WithProgress(p.reporter.Progress)}, job.Generator...)
	g := generator.New(opts...)
	log.Debug().Bool("seeded", g.Seeded()).Msg("generator ready")

	table, employees, err := p.generate(g, job)
	if err != nil {
		return Result{}, fmt.Errorf("generate: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := p.registry.WriteFile(p.fs, job.Output, format, table); err != nil {
		return Result{}, err
	}
	log.Info().Int("records", table.Len()).Msg("output written")

	p.reporter.Written(job.Output, table.Len())
	if err := p.sample(job, format, table, employees); err != nil {
		return Result{}, err
	}

	return Result{Path: job.Output, Format: format, Records: table.Len()}, nil
}

func (p *Processor) generate(g *generator.Generator, job Job) (export.Table, []domain.Employee, error) {
	switch job.Variant {
	case VariantAccounts:
		accounts, err := account.Generate(g, job.Vocabulary, job.Count)
		if err != nil {
			return export.Table{}, nil, err
		}
		return export.FromAccounts(accounts), nil, nil
	case VariantRoster:
		employees, err := employee.Generate(g, job.Vocabulary, job.Count)
		if err != nil {
			return export.Table{}, nil, err
		}
		return export.FromEmployees(employees), employees, nil
	default:
		return export.Table{}, nil, domain.NewInvalidArgument("unknown variant %q", job.Variant)
	}
}

// sample echoes the head of the output: the roster as a short table, account
// csv files by re-reading their first lines.
func (p *Processor) sample(job Job, format string, table export.Table, employees []domain.Employee) error {
	if job.Variant == VariantRoster {
		p.reporter.Employees(employees)
		return nil
	}

	if format == export.FormatCSV {
		lines, err := export.Head(p.fs, job.Output, report.SampleLines)
		if err != nil {
			return err
		}
		p.reporter.Lines(lines)
		return nil
	}

	lines := []string{strings.Join(table.Header, ",")}
	for _, row := range table.Rows[:min(report.SampleLines-1, table.Len())] {
		lines = append(lines, strings.Join(row, ","))
	}
	p.reporter.Lines(lines)
	return nil
}
