package processor_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/orayew2002/usergen/domain"
	"github.com/orayew2002/usergen/export"
	"github.com/orayew2002/usergen/generator"
	"github.com/orayew2002/usergen/processor"
	"github.com/orayew2002/usergen/report"
)

var today = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

func seeded() []generator.Option {
	return []generator.Option{
		generator.WithSeed(42),
		generator.WithClock(func() time.Time { return today }),
	}
}

var _ = Describe("Processor", func() {
	var (
		fs  afero.Fs
		out *bytes.Buffer
		p   *processor.Processor
	)

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		out = &bytes.Buffer{}
		p = processor.New(fs, export.NewDefault(), report.New(out), zerolog.Nop())
	})

	accountsJob := func(count int, output string) processor.Job {
		return processor.Job{
			Variant:    processor.VariantAccounts,
			Count:      count,
			Output:     output,
			Vocabulary: domain.AccountVocabulary(),
			Generator:  seeded(),
		}
	}

	readCSV := func(path string) [][]string {
		data, err := afero.ReadFile(fs, path)
		Expect(err).NotTo(HaveOccurred())
		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		return records
	}

	It("writes three accounts end to end", func() {
		res, err := p.Run(context.Background(), accountsJob(3, "/input/test_users.csv"))
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(Equal(processor.Result{Path: "/input/test_users.csv", Format: "csv", Records: 3}))

		data, err := afero.ReadFile(fs, "/input/test_users.csv")
		Expect(err).NotTo(HaveOccurred())
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		Expect(lines).To(HaveLen(4))
		Expect(lines[0]).To(Equal("username,fullname,email,department,groups,account_expiry"))

		for _, record := range readCSV("/input/test_users.csv")[1:] {
			Expect(record).To(HaveLen(len(domain.AccountHeader)))
		}

		Expect(out.String()).To(ContainSubstring("Generating 3 test users..."))
		Expect(out.String()).To(ContainSubstring("  ✓ Generated 3/3 users..."))
		Expect(out.String()).To(ContainSubstring("  " + lines[0]))
		Expect(out.String()).To(ContainSubstring("  " + lines[3]))
	})

	It("writes a header-only file for zero records", func() {
		_, err := p.Run(context.Background(), accountsJob(0, "/empty.csv"))
		Expect(err).NotTo(HaveOccurred())
		Expect(readCSV("/empty.csv")).To(Equal([][]string{domain.AccountHeader}))
	})

	It("produces byte-identical files for identical seeded runs", func() {
		_, err := p.Run(context.Background(), accountsJob(50, "/a.csv"))
		Expect(err).NotTo(HaveOccurred())
		_, err = p.Run(context.Background(), accountsJob(50, "/b.csv"))
		Expect(err).NotTo(HaveOccurred())

		a, _ := afero.ReadFile(fs, "/a.csv")
		b, _ := afero.ReadFile(fs, "/b.csv")
		Expect(a).To(Equal(b))
		Expect(readCSV("/a.csv")).To(HaveLen(51))
	})

	It("rejects a negative count before touching the filesystem", func() {
		_, err := p.Run(context.Background(), accountsJob(-1, "/neg/users.csv"))
		Expect(errors.Is(err, domain.ErrInvalidCount)).To(BeTrue())

		exists, _ := afero.DirExists(fs, "/neg")
		Expect(exists).To(BeFalse())
		Expect(out.String()).To(BeEmpty())
	})

	It("rejects an unknown format before generating", func() {
		job := accountsJob(3, "/users.csv")
		job.Format = "json"

		_, err := p.Run(context.Background(), job)
		Expect(errors.Is(err, domain.ErrInvalidArgument)).To(BeTrue())
		Expect(out.String()).To(BeEmpty())
	})

	It("stops before writing when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.Run(ctx, accountsJob(3, "/cancelled.csv"))
		Expect(err).To(MatchError(context.Canceled))

		exists, _ := afero.Exists(fs, "/cancelled.csv")
		Expect(exists).To(BeFalse())
	})

	It("writes a roster with the employee header and a table sample", func() {
		res, err := p.Run(context.Background(), processor.Job{
			Variant:    processor.VariantRoster,
			Count:      12,
			Output:     "/test_users.csv",
			Vocabulary: domain.RosterVocabulary(),
			Generator:  seeded(),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Records).To(Equal(12))

		records := readCSV("/test_users.csv")
		Expect(records).To(HaveLen(13))
		Expect(records[0]).To(Equal(domain.EmployeeHeader))

		Expect(out.String()).To(ContainSubstring("Generated 10/12"))
		Expect(out.String()).To(ContainSubstring("Generated 12/12"))
		Expect(out.String()).To(ContainSubstring(records[1][0]))
	})

	It("writes xlsx when the extension asks for it", func() {
		res, err := p.Run(context.Background(), accountsJob(5, "/users.xlsx"))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Format).To(Equal(export.FormatXLSX))

		data, err := afero.ReadFile(fs, "/users.xlsx")
		Expect(err).NotTo(HaveOccurred())
		Expect(data[:2]).To(Equal([]byte("PK")))
		Expect(out.String()).To(ContainSubstring("username,fullname,email"))
	})

	It("rejects an unknown variant", func() {
		job := accountsJob(1, "/x.csv")
		job.Variant = "contractors"

		_, err := p.Run(context.Background(), job)
		Expect(errors.Is(err, domain.ErrInvalidArgument)).To(BeTrue())
	})
})
