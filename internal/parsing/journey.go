package parsing

import "sort"

// UnknownDate is the sentinel date for invoices whose date could not be
// resolved from the text or the filename.
const UnknownDate = "Unknown"

// Journey is one completed trip extracted from an invoice. Values are
// whitespace-normalized display strings; Price is in DKK. A Journey is
// constructed once by the pairing engine and never mutated afterwards.
type Journey struct {
	Date          string  `json:"date"`           // YYYY-MM-DD or "Unknown"
	DepartureTime string  `json:"departure_time"` // HH:MM
	ArrivalTime   string  `json:"arrival_time"`   // HH:MM
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	TravellerName string  `json:"traveller_name"` // "N/A" if absent, " + "-joined if several
	TravellerType string  `json:"traveller_type"` // category name, "Unknown" if absent
	Price         float64 `json:"price"`
	Route         string  `json:"route"` // always Origin + " → " + Destination
}

// newJourney builds a Journey and derives Route from origin and destination.
// Route is never set independently anywhere else.
func newJourney(date, departure, arrival, origin, destination, travellerName, travellerType string, price float64) Journey {
	return Journey{
		Date:          date,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Origin:        origin,
		Destination:   destination,
		TravellerName: travellerName,
		TravellerType: travellerType,
		Price:         price,
		Route:         origin + routeArrow + destination,
	}
}

// SortJourneys orders journeys ascending by (date, departure time), compared
// as strings. The sort is stable so journeys from the same invoice keep
// their document order on ties.
func SortJourneys(journeys []Journey) {
	sort.SliceStable(journeys, func(i, j int) bool {
		if journeys[i].Date != journeys[j].Date {
			return journeys[i].Date < journeys[j].Date
		}
		return journeys[i].DepartureTime < journeys[j].DepartureTime
	})
}
