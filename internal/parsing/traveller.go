package parsing

import "strings"

// Traveller is one (name, category) pair from a traveller block. It is
// transient: travellers are folded into the journey's display fields and
// never persisted on their own.
type Traveller struct {
	Name     string
	Category Category
}

// travellerStopTokens mark the start of the next accounting block; a line
// containing any of them ends the traveller listing.
var travellerStopTokens = []string{"Standard", "DKK", subtotalToken, "Amount"}

// ParseTravellerSection splits the raw text following the "Travellers"
// marker into travellers, in source order. Two line layouts are supported:
// name and category on one line ("Mike Wheeler Young person"), and the name
// on one line with the bare category on the next. Empty input yields an
// empty slice.
func ParseTravellerSection(text string) []Traveller {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	var travellers []Traveller
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if isAccountingLine(line) {
			break
		}

		category, name, ok := matchCategory(line)
		if !ok {
			// No keyword on this line; it may be a bare name whose
			// category sits alone on the following line.
			category = CategoryUnknown
			name = line
			if i+1 < len(lines) && !isAccountingLine(lines[i+1]) {
				if next, remainder, nextOK := matchCategory(lines[i+1]); nextOK && remainder == "" {
					category = next
					i++
				}
			}
		}

		if name == "" {
			name = "N/A"
		}
		travellers = append(travellers, Traveller{Name: name, Category: category})
	}
	return travellers
}

func isAccountingLine(line string) bool {
	for _, token := range travellerStopTokens {
		if strings.Contains(line, token) {
			return true
		}
	}
	return false
}

// foldTravellers collapses zero or more travellers into the journey's
// display pair. Several travellers are joined with " + ", skipping blank or
// "N/A" names; if every name is skipped the joined name is "N/A".
func foldTravellers(travellers []Traveller) (name, category string) {
	switch len(travellers) {
	case 0:
		return "N/A", CategoryUnknown.String()
	case 1:
		return travellers[0].Name, travellers[0].Category.String()
	}

	var names, categories []string
	for _, t := range travellers {
		if t.Name != "" && t.Name != "N/A" {
			names = append(names, t.Name)
		}
		categories = append(categories, t.Category.String())
	}
	name = "N/A"
	if len(names) > 0 {
		name = strings.Join(names, " + ")
	}
	return name, strings.Join(categories, " + ")
}
