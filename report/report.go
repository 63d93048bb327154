// Package report prints the human-readable status of a generation run.
// None of its output is part of the data contract.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/orayew2002/usergen/domain"
)

const (
	// SampleLines is how many leading file lines are echoed after writing
	// (the header plus three records).
	SampleLines = 4
	// SampleEmployees is how many roster records are shown in the summary table.
	SampleEmployees = 5

	ruleWidth = 60
)

// Reporter writes run status lines to an output stream.
type Reporter struct {
	out io.Writer
}

// New returns a Reporter writing to out. A nil out discards everything.
func New(out io.Writer) *Reporter {
	if out == nil {
		out = io.Discard
	}
	return &Reporter{out: out}
}

// Banner prints a framed title.
func (r *Reporter) Banner(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(r.out, "%s\n %s\n%s\n", rule, title, rule)
}

// Start announces how many records will be generated.
func (r *Reporter) Start(count int) {
	fmt.Fprintf(r.out, "Generating %d test users...\n", count)
}

// Progress prints a status line for done of total records.
func (r *Reporter) Progress(done, total int) {
	fmt.Fprintf(r.out, "  ✓ Generated %d/%d users...\n", done, total)
}

// Written confirms that count records were saved to path.
func (r *Reporter) Written(path string, count int) {
	fmt.Fprintf(r.out, "\n✓ Successfully generated %d users in %s\n", count, path)
}

// Lines echoes raw file lines as a sanity sample.
func (r *Reporter) Lines(lines []string) {
	fmt.Fprintln(r.out, "\nSample of generated data:")
	for _, line := range lines {
		fmt.Fprintf(r.out, "  %s\n", line)
	}
}

// Employees prints the first SampleEmployees roster records as a table.
func (r *Reporter) Employees(employees []domain.Employee) {
	fmt.Fprintln(r.out, "\nSample users:")
	fmt.Fprintln(r.out, strings.Repeat("-", ruleWidth))
	for _, e := range employees[:min(SampleEmployees, len(employees))] {
		fmt.Fprintf(r.out, "  %-20s | %-20s | %s\n", e.Username, e.FullName, e.Department)
	}
}

// Done closes the run output.
func (r *Reporter) Done() {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(r.out, "\n%s\nData generation complete!\n%s\n", rule, rule)
}
