package journey

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/michaelloftdk/rejsekort-parser/internal/parsing"
)

// csvHeader is the exact column set and order downstream spreadsheets expect.
var csvHeader = []string{
	"date",
	"departure_time",
	"arrival_time",
	"origin",
	"destination",
	"traveller_name",
	"traveller_type",
	"price",
}

// utf8BOM makes spreadsheet applications pick up the UTF-8 encoding.
const utf8BOM = "\uFEFF"

// WriteCSV renders the journeys as semicolon-delimited CSV with a UTF-8 BOM.
// Prices use a comma decimal separator, the Danish spreadsheet convention.
func WriteCSV(w io.Writer, journeys []parsing.Journey) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("writing byte order mark: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, j := range journeys {
		row := []string{
			j.Date,
			j.DepartureTime,
			j.ArrivalTime,
			j.Origin,
			j.Destination,
			j.TravellerName,
			j.TravellerType,
			formatPrice(j.Price),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the journeys to a file, creating or truncating it.
func SaveCSV(path string, journeys []parsing.Journey) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}

	if err := WriteCSV(f, journeys); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing csv file: %w", err)
	}
	return nil
}

func formatPrice(price float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(price, 'f', 2, 64), ".", ",")
}
