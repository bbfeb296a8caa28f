package parsing

import (
	"bytes"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResolveDate", func() {
	var (
		parser   *Parser
		text     string
		filename string
		date     string
	)

	BeforeEach(func() {
		parser = New(testLogger())
		filename = ""
	})

	JustBeforeEach(func() {
		date = parser.ResolveDate(text, filename)
	})

	When("the text carries an Invoice header date", func() {
		BeforeEach(func() {
			text = "Rejsekort\nInvoice – 05 Jan 2024\nYour journeys\n"
		})

		It("resolves it", func() {
			Expect(date).To(Equal("2024-01-05"))
		})
	})

	When("the Invoice header uses a plain hyphen", func() {
		BeforeEach(func() {
			text = "Invoice - 05 Jan 2024\n"
		})

		It("resolves it", func() {
			Expect(date).To(Equal("2024-01-05"))
		})
	})

	When("the day carries a trailing period", func() {
		BeforeEach(func() {
			text = "Invoice – 05. Jan 2024\n"
		})

		It("resolves it", func() {
			Expect(date).To(Equal("2024-01-05"))
		})
	})

	When("the month is written out in full", func() {
		BeforeEach(func() {
			text = "Invoice – 05 January 2024\n"
		})

		It("resolves it", func() {
			Expect(date).To(Equal("2024-01-05"))
		})
	})

	When("only the Overview line carries a date", func() {
		BeforeEach(func() {
			text = "Rejsekort\nOverview 12 Feb 2023\nYour journeys\n"
		})

		It("resolves it", func() {
			Expect(date).To(Equal("2023-02-12"))
		})
	})

	When("only a Danish-month date is present", func() {
		BeforeEach(func() {
			text = "Rejsekort\n15 mar 2023\nDine rejser\n"
		})

		It("maps the abbreviation to a month number", func() {
			Expect(date).To(Equal("2023-03-15"))
		})
	})

	When("the Danish month is one without an English twin", func() {
		BeforeEach(func() {
			text = "Faktura 3. maj 2024\n"
		})

		It("resolves it", func() {
			Expect(date).To(Equal("2024-05-03"))
		})
	})

	When("only the filename carries a date", func() {
		BeforeEach(func() {
			text = "no recognizable date in here"
			filename = "REJSEKORT_2022-11-01.pdf"
		})

		It("falls back to the filename", func() {
			Expect(date).To(Equal("2022-11-01"))
		})
	})

	When("nothing matches", func() {
		BeforeEach(func() {
			text = "no recognizable date in here"
			filename = "receipt.pdf"
		})

		It("returns the unknown sentinel", func() {
			Expect(date).To(Equal(UnknownDate))
		})
	})

	When("the Invoice date has an impossible day", func() {
		BeforeEach(func() {
			text = "Invoice – 31 Feb 2024\n"
			filename = "REJSEKORT_2024-02-15.pdf"
		})

		It("falls through to the next resolver step", func() {
			Expect(date).To(Equal("2024-02-15"))
		})
	})
})

var _ = Describe("year plausibility", func() {
	var (
		logBuf *bytes.Buffer
		parser *Parser
	)

	BeforeEach(func() {
		logBuf = &bytes.Buffer{}
		parser = New(slog.New(slog.NewTextHandler(logBuf, nil)))
		parser.now = func() time.Time {
			return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		}
	})

	When("the year is before the plausibility floor", func() {
		It("warns but still returns the date", func() {
			date := parser.ResolveDate("Invoice – 05 Jan 2019\n", "")

			Expect(date).To(Equal("2019-01-05"))
			Expect(logBuf.String()).To(ContainSubstring("implausible"))
		})
	})

	When("the year is more than one past the current year", func() {
		It("warns but still returns the date", func() {
			date := parser.ResolveDate("Invoice – 05 Jan 2026\n", "")

			Expect(date).To(Equal("2026-01-05"))
			Expect(logBuf.String()).To(ContainSubstring("implausible"))
		})
	})

	When("the year is within range", func() {
		It("does not warn", func() {
			date := parser.ResolveDate("Invoice – 05 Jan 2024\n", "")

			Expect(date).To(Equal("2024-01-05"))
			Expect(logBuf.String()).NotTo(ContainSubstring("implausible"))
		})
	})
})
