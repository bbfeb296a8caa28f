package parsing

import "regexp"

// Match is one located occurrence of a pattern within a text. Offsets are
// byte offsets into the searched string. Groups[0] is the full match,
// Groups[1:] are the capture groups (empty string for a non-participating
// group).
type Match struct {
	Start  int
	End    int
	Groups []string
}

// PatternMatcher locates occurrences of a single pattern in a text. The
// pairing engine is written against this interface so the positional
// heuristics can be tested independently of the regexp primitives.
type PatternMatcher interface {
	// FindAll returns every non-overlapping match in document order.
	FindAll(text string) []Match

	// FindLastBefore returns the match closest to (and ending at or before)
	// the given byte offset, or false if no match exists in that span.
	FindLastBefore(text string, offset int) (Match, bool)
}

// regexpMatcher implements PatternMatcher on top of a compiled regexp.
type regexpMatcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles the expression into a PatternMatcher. It panics on an
// invalid expression, so it is only for package-level pattern definitions.
func NewMatcher(expr string) PatternMatcher {
	return &regexpMatcher{re: regexp.MustCompile(expr)}
}

func (m *regexpMatcher) FindAll(text string) []Match {
	idx := m.re.FindAllStringSubmatchIndex(text, -1)
	matches := make([]Match, 0, len(idx))
	for _, loc := range idx {
		matches = append(matches, newMatch(text, loc))
	}
	return matches
}

func (m *regexpMatcher) FindLastBefore(text string, offset int) (Match, bool) {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		return Match{}, false
	}
	var (
		last  Match
		found bool
	)
	for _, match := range m.FindAll(text[:offset]) {
		last = match
		found = true
	}
	return last, found
}

func newMatch(text string, loc []int) Match {
	groups := make([]string, 0, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, text[loc[i]:loc[i+1]])
	}
	return Match{Start: loc[0], End: loc[1], Groups: groups}
}
