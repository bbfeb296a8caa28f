package parsing

import (
	"strings"
	"unicode"
)

// Verdict is the advisory result of validating an extracted place name. It
// only ever feeds diagnostics; an invalid location never blocks a journey.
type Verdict struct {
	Valid  bool
	Reason string
}

// LocationValidator heuristically judges whether an extracted place name is
// plausible. The thresholds are empirical tuning values, exported so callers
// can adjust them.
type LocationValidator struct {
	// MinLength and MaxLength bound the plausible name length in runes.
	MinLength int
	MaxLength int

	// MaxSymbolRatio is the tolerated fraction of characters outside
	// letters, digits, whitespace and the Danish punctuation set.
	MaxSymbolRatio float64
}

// NewLocationValidator returns a validator with the default thresholds.
func NewLocationValidator() LocationValidator {
	return LocationValidator{
		MinLength:      3,
		MaxLength:      100,
		MaxSymbolRatio: 0.3,
	}
}

// allowedPunctuation are non-alphanumeric characters that legitimately occur
// in Danish place names.
const allowedPunctuation = `()-/,æøåÆØÅ`

// Validate applies the heuristics in order; the first failing rule wins.
func (v LocationValidator) Validate(name string) Verdict {
	runes := []rune(name)
	if len(runes) < v.MinLength {
		return Verdict{Reason: "too short"}
	}
	if len(runes) > v.MaxLength {
		return Verdict{Reason: "too long"}
	}

	var special int
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			continue
		}
		if strings.ContainsRune(allowedPunctuation, r) {
			continue
		}
		special++
	}
	if float64(special) > v.MaxSymbolRatio*float64(len(runes)) {
		return Verdict{Reason: "too many special characters"}
	}

	return Verdict{Valid: true}
}
