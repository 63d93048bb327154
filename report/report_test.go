package report_test

import (
	"bytes"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/orayew2002/usergen/domain"
	"github.com/orayew2002/usergen/report"
)

var _ = Describe("Reporter", func() {
	var (
		buf *bytes.Buffer
		r   *report.Reporter
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		r = report.New(buf)
	})

	It("prints progress lines", func() {
		r.Start(20)
		r.Progress(10, 20)
		r.Progress(20, 20)

		Expect(buf.String()).To(Equal(
			"Generating 20 test users...\n" +
				"  ✓ Generated 10/20 users...\n" +
				"  ✓ Generated 20/20 users...\n"))
	})

	It("echoes sample lines indented", func() {
		r.Lines([]string{"username,fullname", "jsmith,John Smith"})
		Expect(buf.String()).To(ContainSubstring("\n  username,fullname\n  jsmith,John Smith\n"))
	})

	It("shows at most five employees", func() {
		employees := make([]domain.Employee, 8)
		for i := range employees {
			employees[i] = domain.Employee{Username: fmt.Sprintf("user%d", i), FullName: "Some One", Department: "IT"}
		}

		r.Employees(employees)
		Expect(strings.Count(buf.String(), "| IT")).To(Equal(report.SampleEmployees))
		Expect(buf.String()).NotTo(ContainSubstring("user5"))
	})

	It("handles fewer employees than the sample size", func() {
		r.Employees([]domain.Employee{{Username: "solo", Department: "HR"}})
		Expect(buf.String()).To(ContainSubstring("solo"))
	})

	It("discards output when built without a writer", func() {
		Expect(func() { report.New(nil).Done() }).NotTo(Panic())
	})
})
