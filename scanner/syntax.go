package scanner

import "github.com/pkg/errors"

// noChar marks a Syntax field as "not configured": none of the printable
// codepoints readUntil deals with can be a valid rune value of -1.
const noChar rune = -1

// An EntityResolver maps the text between a Syntax's entity delimiters
// (exclusive) to its replacement text. The default resolver returns
// ErrUnknownEntity for any name it does not recognize.
type EntityResolver func(name string) (string, error)

// A Syntax configures how the syntax-driven ReadUntil overload treats
// escape sequences, quoted regions, and entities. Fields that NewSyntax
// leaves unconfigured hold noChar, meaning "this feature is disabled"; a
// zero rune counts as a configured character, so build one with NewSyntax
// and SyntaxOptions.
//
// Fields are unexported: a Syntax is immutable once constructed, built up
// via small explicit constructors rather than assembled field by field on an
// exported mutable struct.
type Syntax struct {
	escape rune

	quoteStart      rune
	quoteEnd        rune
	quoteEscape     rune
	quoteEscapeLazy bool

	altQuoteStart      rune
	altQuoteEnd        rune
	altQuoteEscape     rune
	altQuoteEscapeLazy bool

	entityStart rune
	entityEnd   rune
	resolve     EntityResolver
}

// A SyntaxOption configures a Syntax under construction.
type SyntaxOption func(*Syntax)

// WithEscape sets the character that escapes the next character during a
// syntax-driven scan (outside any quotation).
func WithEscape(c rune) SyntaxOption {
	return func(s *Syntax) { s.escape = c }
}

// WithQuote configures the primary quotation delimiters. lazy is recorded
// (see quoteIsLazy, which holds only when start, end, and escape are all
// equal) but the syntax-driven scan does not consult it: a delimiter outside
// a quotation always opens one, and a doubled delimiter inside a quotation
// always yields one literal delimiter.
func WithQuote(start, end, escape rune, lazy bool) SyntaxOption {
	return func(s *Syntax) {
		s.quoteStart = start
		s.quoteEnd = end
		s.quoteEscape = escape
		s.quoteEscapeLazy = lazy
	}
}

// WithAltQuote configures the secondary quotation delimiters, symmetric to
// WithQuote.
func WithAltQuote(start, end, escape rune, lazy bool) SyntaxOption {
	return func(s *Syntax) {
		s.altQuoteStart = start
		s.altQuoteEnd = end
		s.altQuoteEscape = escape
		s.altQuoteEscapeLazy = lazy
	}
}

// WithEntity configures entity delimiters and the resolver invoked with the
// text between them.
func WithEntity(start, end rune, resolve EntityResolver) SyntaxOption {
	return func(s *Syntax) {
		s.entityStart = start
		s.entityEnd = end
		s.resolve = resolve
	}
}

// NewSyntax builds a Syntax from the given options. Any feature left
// unconfigured is treated as disabled.
func NewSyntax(opts ...SyntaxOption) *Syntax {
	s := &Syntax{
		escape:         noChar,
		quoteStart:     noChar,
		quoteEnd:       noChar,
		quoteEscape:    noChar,
		altQuoteStart:  noChar,
		altQuoteEnd:    noChar,
		altQuoteEscape: noChar,
		entityStart:    noChar,
		entityEnd:      noChar,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Syntax) hasEscape() bool     { return s.escape != noChar }
func (s *Syntax) hasQuote() bool      { return s.quoteStart != noChar }
func (s *Syntax) hasAltQuote() bool   { return s.altQuoteStart != noChar }
func (s *Syntax) hasEntity() bool     { return s.entityStart != noChar }
func (s *Syntax) quoteIsLazy() bool {
	return s.quoteEscapeLazy && s.quoteStart == s.quoteEnd && s.quoteEnd == s.quoteEscape
}
func (s *Syntax) altQuoteIsLazy() bool {
	return s.altQuoteEscapeLazy && s.altQuoteStart == s.altQuoteEnd && s.altQuoteEnd == s.altQuoteEscape
}

func (s *Syntax) resolveEntity(name string) (string, error) {
	if s.resolve != nil {
		return s.resolve(name)
	}
	return "", errors.Wrapf(ErrUnknownEntity, "entity %q", name)
}
