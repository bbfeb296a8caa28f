package parsing

import "regexp"

// Compiled patterns shared by the resolver and the pairing engine. The
// invoice text is PDF-extracted, so whitespace is irregular and lines bleed
// into each other; every pattern here tolerates that.
var (
	// journeysSection marks the start of the journey listing. Text before it
	// is overview/header material that can contain stray times and amounts.
	journeysSection = NewMatcher(`(?i)journeys`)

	// priceAnchor is one trip's cost line: "Standard DKK 24.00".
	priceAnchor = NewMatcher(`Standard\s+DKK\s+(\d+(?:\.\d+)?)`)

	// journeyDescription is "<HH:MM> <origin> → <destination> <HH:MM>". The
	// destination must not start with "S" so the lazy capture cannot swallow
	// the "Standard" token of the price line that follows it. Known
	// limitation: a genuine destination beginning with "S" will misparse.
	journeyDescription = NewMatcher(`(\d{2}:\d{2})\s+([^→]+?)\s*→\s*([^S\s][^→]*?)(\d{2}:\d{2})`)

	// nextJourneyStart delimits a traveller block: a newline followed by a
	// time and a non-space signals the next journey line.
	nextJourneyStart = NewMatcher(`\n\d{2}:\d{2}\s+\S`)

	// travellersMarker captures everything after the "Travellers" heading,
	// newlines included.
	travellersMarker = NewMatcher(`(?s)Travellers\s+(.+)`)

	// strayTimePrefix is an adjacent-line artifact: the next departure time
	// glued onto the front of a destination capture.
	strayTimePrefix = regexp.MustCompile(`^\d{2}:\d{2}\s+`)

	whitespaceRun = regexp.MustCompile(`\s+`)

	// Date resolver patterns, tried in order; see ResolveDate.
	invoiceDate  = NewMatcher(`(?i)Invoice\s*[–-]\s*(\d{2})\.?\s+(\p{L}{3,})\s+(\d{4})`)
	overviewDate = NewMatcher(`(?i)Overview\s+(\d{2})\.?\s+(\p{L}{3,})\s+(\d{4})`)
	danishDate   = NewMatcher(`(?i)\b(\d{1,2})\.?\s+(jan|feb|mar|apr|maj|jun|jul|aug|sep|okt|nov|dec)\.?\s+(\d{4})\b`)
	filenameDate = NewMatcher(`\d{4}-\d{2}-\d{2}`)
)

// danishMonths maps the Danish month abbreviations to month numbers. Most
// overlap with English; "maj" and "okt" are the locals.
var danishMonths = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4,
	"maj": 5, "jun": 6, "jul": 7, "aug": 8,
	"sep": 9, "okt": 10, "nov": 11, "dec": 12,
}

const (
	// Subtotal ends the last traveller block of a section when no further
	// journey line follows.
	subtotalToken = "Subtotal"

	// routeArrow joins origin and destination in the derived route string.
	routeArrow = " → "
)
