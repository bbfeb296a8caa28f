package parsing

import (
	"strconv"
	"strings"
	"time"
)

// ResolveDate extracts the invoice date from the document text and returns
// it as YYYY-MM-DD, or UnknownDate when nothing matches. The fallbacks are
// tried in order: the English "Invoice – DD Mon YYYY" header, the same date
// after "Overview", a bare Danish-month date anywhere in the text, and
// finally an embedded YYYY-MM-DD in the filename hint.
func (p *Parser) ResolveDate(text, filenameHint string) string {
	for _, matcher := range []PatternMatcher{invoiceDate, overviewDate} {
		matches := matcher.FindAll(text)
		if len(matches) == 0 {
			continue
		}
		if date, ok := p.englishDate(matches[0]); ok {
			return date
		}
	}

	if matches := danishDate.FindAll(text); len(matches) > 0 {
		if date, ok := p.danishDate(matches[0]); ok {
			return date
		}
	}

	if filenameHint != "" {
		if matches := filenameDate.FindAll(filenameHint); len(matches) > 0 {
			candidate := matches[0].Groups[0]
			if parsed, err := time.Parse("2006-01-02", candidate); err == nil {
				p.log.Warn("invoice date taken from filename, not document text",
					"filename", filenameHint, "date", candidate)
				p.checkYearPlausibility(parsed)
				return candidate
			}
		}
	}

	p.log.Error("no invoice date found in document text or filename",
		"filename", filenameHint)
	return UnknownDate
}

// englishDate parses a (day, month-name, year) capture using English month
// names, long or abbreviated, in any letter case.
func (p *Parser) englishDate(m Match) (string, bool) {
	day, _ := strconv.Atoi(m.Groups[1])
	year, _ := strconv.Atoi(m.Groups[3])
	month, ok := parseMonthName(m.Groups[2])
	if !ok {
		p.log.Debug("unrecognized month name in date candidate", "text", m.Groups[0])
		return "", false
	}
	return p.calendarDate(year, month, day)
}

// danishDate maps a Danish month abbreviation capture to a calendar date.
func (p *Parser) danishDate(m Match) (string, bool) {
	day, _ := strconv.Atoi(m.Groups[1])
	year, _ := strconv.Atoi(m.Groups[3])
	month, ok := danishMonths[strings.ToLower(m.Groups[2])]
	if !ok {
		return "", false
	}
	return p.calendarDate(year, time.Month(month), day)
}

// calendarDate builds YYYY-MM-DD, rejecting impossible days (time.Date would
// silently normalize "32 Jan" into February).
func (p *Parser) calendarDate(year int, month time.Month, day int) (string, bool) {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != month || date.Year() != year {
		p.log.Debug("date candidate has an impossible day",
			"year", year, "month", int(month), "day", day)
		return "", false
	}
	p.checkYearPlausibility(date)
	return date.Format("2006-01-02"), true
}

// checkYearPlausibility warns about years outside [MinPlausibleYear, next
// year]. Soft validation: the date is still used.
func (p *Parser) checkYearPlausibility(date time.Time) {
	year := date.Year()
	if year < p.cfg.MinPlausibleYear || year > p.now().Year()+1 {
		p.log.Warn("invoice date year looks implausible",
			"date", date.Format("2006-01-02"),
			"min_year", p.cfg.MinPlausibleYear)
	}
}

func parseMonthName(name string) (time.Month, bool) {
	if name == "" {
		return 0, false
	}
	name = strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
	for _, layout := range []string{"Jan", "January"} {
		if t, err := time.Parse(layout, name); err == nil {
			return t.Month(), true
		}
	}
	return 0, false
}
