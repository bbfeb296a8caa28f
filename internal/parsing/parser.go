package parsing

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Config carries the empirical tuning constants of the pairing heuristics.
type Config struct {
	// MaxPairingDistance is how many characters a journey description may
	// sit before its price anchor before the pairing is flagged as
	// suspicious.
	MaxPairingDistance int

	// MinPlausibleYear is the lowest invoice year accepted without a
	// plausibility warning.
	MinPlausibleYear int
}

// DefaultConfig returns the tuning values the heuristics were calibrated
// with.
func DefaultConfig() Config {
	return Config{
		MaxPairingDistance: 500,
		MinPlausibleYear:   2020,
	}
}

// Parser extracts journey records from the plain text of one Rejsekort
// invoice. It holds no per-document state; parsing the same text twice
// yields identical results.
type Parser struct {
	cfg       Config
	log       *slog.Logger
	validator LocationValidator
	now       func() time.Time
}

// New creates a Parser with the default configuration.
func New(log *slog.Logger) *Parser {
	return NewWithConfig(DefaultConfig(), log)
}

// NewWithConfig creates a Parser with explicit tuning values.
func NewWithConfig(cfg Config, log *slog.Logger) *Parser {
	if log == nil {
		log = slog.Default()
	}
	return &Parser{
		cfg:       cfg,
		log:       log,
		validator: NewLocationValidator(),
		now:       time.Now,
	}
}

// Parse resolves the invoice date and extracts one journey per recognized
// price entry, in document order. Unparseable entries are skipped with a
// diagnostic; Parse never fails as a whole.
func (p *Parser) Parse(text, filenameHint string) []Journey {
	date := p.ResolveDate(text, filenameHint)
	return p.pairJourneys(text, date)
}

// pairJourneys walks the price anchors and pairs each with the nearest
// preceding journey description and the traveller block that follows it.
func (p *Parser) pairJourneys(text, date string) []Journey {
	sectionStart := 0
	if matches := journeysSection.FindAll(text); len(matches) > 0 {
		sectionStart = matches[0].Start
	} else {
		p.log.Debug("no journeys section marker found, searching the whole text")
	}

	var journeys []Journey
	for _, anchor := range priceAnchor.FindAll(text) {
		if anchor.Start < sectionStart {
			continue
		}

		journey, ok := p.journeyForAnchor(text, sectionStart, anchor, date)
		if !ok {
			continue
		}
		journeys = append(journeys, journey)
	}

	p.log.Debug("paired price anchors with journeys", "journeys", len(journeys))
	return journeys
}

// journeyForAnchor assembles the record for one price anchor.
func (p *Parser) journeyForAnchor(text string, sectionStart int, anchor Match, date string) (Journey, bool) {
	span := text[sectionStart:anchor.Start]
	desc, found := journeyDescription.FindLastBefore(span, len(span))
	if !found {
		p.log.Warn("no journey description found before price entry",
			"price", anchor.Groups[1], "offset", anchor.Start)
		return Journey{}, false
	}

	// desc offsets are relative to the section span.
	distance := len(span) - desc.End
	if distance > p.cfg.MaxPairingDistance {
		p.log.Warn("journey description is suspiciously far from its price entry",
			"distance", distance, "max", p.cfg.MaxPairingDistance)
	}

	price, err := strconv.ParseFloat(anchor.Groups[1], 64)
	if err != nil {
		p.log.Error("unparseable price, skipping entry",
			"price", anchor.Groups[1], "error", err)
		return Journey{}, false
	}

	departure := desc.Groups[1]
	arrival := desc.Groups[4]
	origin := cleanLocation(desc.Groups[2])
	destination := cleanLocation(strayTimePrefix.ReplaceAllString(strings.TrimSpace(desc.Groups[3]), ""))

	for _, place := range []string{origin, destination} {
		if verdict := p.validator.Validate(place); !verdict.Valid {
			p.log.Warn("extracted location looks implausible",
				"location", place, "reason", verdict.Reason)
		}
	}

	name, category := p.travellersForAnchor(text, anchor)

	return newJourney(date, departure, arrival, origin, destination, name, category, price), true
}

// travellersForAnchor delimits the traveller block that follows the anchor
// and folds its travellers into the record's display fields. The block runs
// to the next journey line, else to "Subtotal", else to end of text.
func (p *Parser) travellersForAnchor(text string, anchor Match) (name, category string) {
	block := text[anchor.End:]
	if next, ok := firstMatch(nextJourneyStart, block); ok {
		block = block[:next.Start]
	} else if subtotal := strings.Index(block, subtotalToken); subtotal >= 0 {
		block = block[:subtotal]
	}

	marker, ok := firstMatch(travellersMarker, block)
	if !ok {
		p.log.Debug("no traveller block after price entry", "offset", anchor.End)
		return "N/A", CategoryUnknown.String()
	}

	return foldTravellers(ParseTravellerSection(marker.Groups[1]))
}

func firstMatch(m PatternMatcher, text string) (Match, bool) {
	matches := m.FindAll(text)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

func cleanLocation(s string) string {
	return strings.TrimSpace(collapseWhitespace(s))
}
