package scanner

import "unicode"

// A CharFilter is a predicate over a single Unicode codepoint, paired with a
// human-readable description used when composing "required at least N
// characters matching D" messages. Filters must be pure and cheap to call;
// the scanner may invoke one many times per character while probing ahead.
type CharFilter struct {
	Match       func(r rune) bool
	Description string
}

// Test reports whether r satisfies the filter.
func (f *CharFilter) Test(r rune) bool {
	if f == nil || f.Match == nil {
		return false
	}
	return f.Match(r)
}

func (f *CharFilter) String() string {
	if f == nil || f.Description == "" {
		return "<filter>"
	}
	return f.Description
}

// And returns a filter that matches only when both f and other match.
func (f *CharFilter) And(other *CharFilter) *CharFilter {
	return &CharFilter{
		Match:       func(r rune) bool { return f.Test(r) && other.Test(r) },
		Description: f.String() + " and " + other.String(),
	}
}

// Or returns a filter that matches when either f or other matches.
func (f *CharFilter) Or(other *CharFilter) *CharFilter {
	return &CharFilter{
		Match:       func(r rune) bool { return f.Test(r) || other.Test(r) },
		Description: f.String() + " or " + other.String(),
	}
}

// Not returns a filter that matches exactly when f does not.
func (f *CharFilter) Not() *CharFilter {
	return &CharFilter{
		Match:       func(r rune) bool { return !f.Test(r) },
		Description: "not " + f.String(),
	}
}

// Built-in filters, matching the required set named in the scanner's
// character-filter component: Latin digit, Latin letter, whitespace,
// newline, octal digit, "any", and single-quote.
var (
	Digit = &CharFilter{
		Match:       func(r rune) bool { return r >= '0' && r <= '9' },
		Description: "digit",
	}
	Letter = &CharFilter{
		Match:       func(r rune) bool { return unicode.IsLetter(r) && unicode.Is(unicode.Latin, r) },
		Description: "letter",
	}
	Whitespace = &CharFilter{
		Match:       unicode.IsSpace,
		Description: "whitespace",
	}
	NewLine = &CharFilter{
		Match:       func(r rune) bool { return r == '\n' || r == '\r' },
		Description: "newline",
	}
	OctalDigit = &CharFilter{
		Match:       func(r rune) bool { return r >= '0' && r <= '7' },
		Description: "octal digit",
	}
	Any = &CharFilter{
		Match:       func(r rune) bool { return true },
		Description: "any character",
	}
	SingleQuote = &CharFilter{
		Match:       func(r rune) bool { return r == '\'' },
		Description: "single quote",
	}
)
