package journey

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/michaelloftdk/rejsekort-parser/internal/parsing"
)

const (
	maxRouteWidth = 40
	maxTypeWidth  = 20
)

// RenderTable prints the journeys as a console table with a total line.
func RenderTable(w io.Writer, journeys []parsing.Journey) {
	if len(journeys) == 0 {
		fmt.Fprintln(w, "No journeys found.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Time", "Route", "Traveller", "Type", "Price"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	var total float64
	for _, j := range journeys {
		table.Append([]string{
			j.Date,
			fmt.Sprintf("%s-%s", j.DepartureTime, j.ArrivalTime),
			truncate(j.Route, maxRouteWidth),
			j.TravellerName,
			truncate(j.TravellerType, maxTypeWidth),
			fmt.Sprintf("DKK %.2f", j.Price),
		})
		total += j.Price
	}
	table.Render()

	fmt.Fprintf(w, "Total: %d journey(s), total cost: DKK %.2f\n", len(journeys), total)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
