package journey

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/michaelloftdk/rejsekort-parser/internal/parsing"
)

var _ = Describe("RenderTable", func() {
	var (
		journeys []parsing.Journey
		buf      *bytes.Buffer
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		journeys = []parsing.Journey{
			{
				Date:          "2024-01-05",
				DepartureTime: "08:15",
				ArrivalTime:   "08:45",
				Origin:        "Copenhagen H",
				Destination:   "Roskilde St",
				TravellerName: "Mike Wheeler",
				TravellerType: "Young person",
				Price:         24.00,
				Route:         "Copenhagen H → Roskilde St",
			},
			{
				Date:          "2024-02-02",
				DepartureTime: "07:30",
				ArrivalTime:   "07:55",
				Origin:        "Roskilde St",
				Destination:   "Valby",
				TravellerName: "N/A",
				TravellerType: "Unknown",
				Price:         24.50,
				Route:         "Roskilde St → Valby",
			},
		}
	})

	JustBeforeEach(func() {
		RenderTable(buf, journeys)
	})

	It("renders one row per journey", func() {
		Expect(buf.String()).To(ContainSubstring("Copenhagen H → Roskilde St"))
		Expect(buf.String()).To(ContainSubstring("08:15-08:45"))
		Expect(buf.String()).To(ContainSubstring("DKK 24.00"))
	})

	It("appends a total line", func() {
		Expect(buf.String()).To(ContainSubstring("Total: 2 journey(s), total cost: DKK 48.50"))
	})

	When("a route is too wide for the column", func() {
		BeforeEach(func() {
			journeys[0].Route = strings.Repeat("x", 60)
		})

		It("truncates it with an ellipsis", func() {
			Expect(buf.String()).To(ContainSubstring(strings.Repeat("x", 37) + "..."))
			Expect(buf.String()).NotTo(ContainSubstring(strings.Repeat("x", 38)))
		})
	})

	When("there are no journeys", func() {
		BeforeEach(func() {
			journeys = nil
		})

		It("prints a placeholder instead of a table", func() {
			Expect(buf.String()).To(Equal("No journeys found.\n"))
		})
	})
})
