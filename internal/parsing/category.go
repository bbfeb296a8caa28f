package parsing

import "strings"

// Category is a traveller's fare class.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryAdult
	CategoryChild
	CategorySenior
	CategoryYoungPerson
)

// String returns the display name used in output and CSV export.
func (c Category) String() string {
	switch c {
	case CategoryAdult:
		return "Adult"
	case CategoryChild:
		return "Child"
	case CategorySenior:
		return "Senior"
	case CategoryYoungPerson:
		return "Young person"
	default:
		return "Unknown"
	}
}

// categoryKeywords maps the keywords the invoices use (English and Danish)
// to categories. Matching walks the table in order, so the multi-word
// "young person" is tried before the single-word keywords.
var categoryKeywords = []struct {
	keyword  string
	category Category
}{
	{"young person", CategoryYoungPerson},
	{"voksen", CategoryAdult},
	{"adult", CategoryAdult},
	{"child", CategoryChild},
	{"barn", CategoryChild},
	{"senior", CategorySenior},
	{"pensionist", CategorySenior},
}

// matchCategory looks for a category keyword in the line, case-insensitively.
// On a match it returns the category and the line with the keyword removed
// and whitespace re-collapsed (the traveller name, possibly empty).
func matchCategory(line string) (Category, string, bool) {
	lower := strings.ToLower(line)
	for _, entry := range categoryKeywords {
		idx := strings.Index(lower, entry.keyword)
		if idx < 0 {
			continue
		}
		remainder := line[:idx] + line[idx+len(entry.keyword):]
		remainder = strings.TrimSpace(collapseWhitespace(remainder))
		return entry.category, remainder, true
	}
	return CategoryUnknown, line, false
}

// collapseWhitespace folds runs of whitespace (including newlines left by
// the PDF extraction) into single spaces.
func collapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(s, " ")
}
