package scanner

import "strings"

// ReadUntilOptions configures the general ReadUntil method. Exactly one of
// Syntax, StopString, or Escape should be set; the zero value (none set)
// selects the plain scalar-stop scan.
type ReadUntilOptions struct {
	AcceptEOT  bool
	Escape     rune   // overload 2: doubles as "next char is literal"
	StopString string // overload 3: stop on this literal substring too
	IgnoreCase bool
	Trim       bool
	Syntax     *Syntax // overload 4: syntax-driven quote/escape/entity scan
}

func eotResult(out []rune, acceptEOT bool) (string, bool) {
	if acceptEOT {
		return string(out), true
	}
	return "", false
}

// ReadUntil is the general entry point behind the four read-until
// overloads named in the scanner's operation catalogue. Most callers want
// one of the convenience wrappers: ReadUntilChar, ReadUntilEscaped, or
// ReadUntilStop.
func (s *Scanner) ReadUntil(stop *CharFilter, opts ReadUntilOptions) (string, bool) {
	s.checkClosed()
	switch {
	case opts.Syntax != nil:
		return s.readUntilSyntax(stop, opts.AcceptEOT, opts.Syntax)
	case opts.StopString != "":
		return s.readUntilFilterOrString(stop, opts.AcceptEOT, opts.StopString, opts.IgnoreCase, opts.Trim)
	case opts.Escape != 0:
		r, _ := singleRune(stop)
		return s.readUntilEscaped(r, opts.AcceptEOT, opts.Escape)
	default:
		r, _ := singleRune(stop)
		return s.readUntilPlain(r, opts.AcceptEOT)
	}
}

// CharEquals returns a CharFilter that matches exactly c, for callers that
// want to pass a single stop character to ReadUntil or ReadUntilStop.
func CharEquals(c rune) *CharFilter {
	return &CharFilter{Match: func(r rune) bool { return r == c }, Description: "'" + string(c) + "'"}
}

// singleRune extracts the rune a charFilter-style stop filter was built
// from, for the overloads that still need to name the stop character
// explicitly (the escaped and plain single-character scans).
func singleRune(f *CharFilter) (rune, bool) {
	for r := rune(0); r < 256; r++ {
		if f.Test(r) {
			return r, true
		}
	}
	return 0, false
}

// ReadUntilChar scans for a single stop character, consuming it.
func (s *Scanner) ReadUntilChar(stopChar rune, acceptEOT bool) (string, bool) {
	s.checkClosed()
	return s.readUntilPlain(stopChar, acceptEOT)
}

func (s *Scanner) readUntilPlain(stop rune, acceptEOT bool) (string, bool) {
	if !s.HasNext() {
		return eotResult(nil, acceptEOT)
	}
	var out []rune
	for {
		r, ok := s.Next()
		if !ok {
			return eotResult(out, acceptEOT)
		}
		if r == stop {
			return string(out), true
		}
		out = append(out, r)
	}
}

// ReadUntilEscaped scans for stopChar, treating escape as "the following
// character is literal". If escape equals stopChar, a lone occurrence of
// it followed by a non-stop character terminates the scan (matching the
// "lone escape that isn't doubled ends the literal" reading).
func (s *Scanner) ReadUntilEscaped(stopChar rune, acceptEOT bool, escape rune) (string, bool) {
	s.checkClosed()
	return s.readUntilEscaped(stopChar, acceptEOT, escape)
}

func (s *Scanner) readUntilEscaped(stop rune, acceptEOT bool, escape rune) (string, bool) {
	if !s.HasNext() {
		return eotResult(nil, acceptEOT)
	}
	var out []rune
	for {
		r, ok := s.Next()
		if !ok {
			return eotResult(out, acceptEOT)
		}
		if r == escape {
			next, ok := s.Peek()
			if !ok {
				return eotResult(out, acceptEOT)
			}
			if escape == stop && next != stop {
				return string(out), true
			}
			s.Next()
			out = append(out, next)
			continue
		}
		if r == stop {
			return string(out), true
		}
		out = append(out, r)
	}
}

// readUntilFilterOrString implements overload 3: stop on either a filter
// match (left unconsumed) or a full match of stop (consumed). When trim is
// set, surrounding spaces are stripped from the result without affecting
// how much input was consumed.
func (s *Scanner) readUntilFilterOrString(filter *CharFilter, acceptEOT bool, stop string, ignoreCase, trim bool) (string, bool) {
	if stop == "" {
		return "", true
	}
	s.checkLookahead(len([]rune(stop)))
	if !s.HasNext() {
		return eotResult(nil, acceptEOT)
	}
	if trim {
		s.SkipWhile(spaceFilter, -1)
	}
	var out []rune
	for {
		r, ok := s.Peek()
		if !ok {
			return finishTrim(out, acceptEOT, trim)
		}
		if filter != nil && filter.Test(r) {
			return finishTrim(out, true, trim)
		}
		if s.Expect(stop, ignoreCase) {
			return finishTrim(out, true, trim)
		}
		s.Next()
		out = append(out, r)
	}
}

var spaceFilter = &CharFilter{Match: func(r rune) bool { return r == ' ' }, Description: "space"}

func finishTrim(out []rune, ok bool, trim bool) (string, bool) {
	if !ok {
		return "", false
	}
	text := string(out)
	if trim {
		text = strings.TrimRight(text, " ")
	}
	return text, true
}

// scanState enumerates the syntax-driven scan's states, collapsing the
// dozen interlocking boolean flags into one value.
type scanState int

const (
	stateScan scanState = iota
	stateEscape
	stateQuote
	stateQuoteEscape
	stateAltQuote
	stateAltQuoteEscape
	stateEntity
	stateDone
)

// ReadUntilStop runs the syntax-driven scan: quoted regions have their
// delimiters stripped, escape sequences are unescaped, and entities are
// replaced by their resolver's output. The stop character or filter is
// consumed, matching the character-based overload's resolved behavior.
func (s *Scanner) ReadUntilStop(stop *CharFilter, acceptEOT bool, syntax *Syntax) (string, bool) {
	s.checkClosed()
	return s.readUntilSyntax(stop, acceptEOT, syntax)
}

func (s *Scanner) readUntilSyntax(stop *CharFilter, acceptEOT bool, syntax *Syntax) (string, bool) {
	if !s.HasNext() {
		return eotResult(nil, acceptEOT)
	}
	state := stateScan
	var out []rune
	var entity []rune
	for {
		r, ok := s.Next()
		if !ok {
			return eotResult(out, acceptEOT)
		}
		var done bool
		state, done = s.syntaxStep(state, r, stop, syntax, &out, &entity)
		if done {
			return string(out), true
		}
	}
}

// syntaxStep advances the syntax-driven state machine by one consumed
// character, appending to out (or entity, while inside an entity body) as
// needed, and reports whether the scan is complete.
func (s *Scanner) syntaxStep(state scanState, r rune, stop *CharFilter, syntax *Syntax, out, entity *[]rune) (scanState, bool) {
	switch state {
	case stateScan:
		switch {
		case stop.Test(r):
			return stateDone, true
		case syntax.hasEscape() && r == syntax.escape:
			return stateEscape, false
		case syntax.hasEntity() && r == syntax.entityStart:
			*entity = nil
			return stateEntity, false
		case syntax.hasQuote() && r == syntax.quoteStart:
			return stateQuote, false
		case syntax.hasAltQuote() && r == syntax.altQuoteStart:
			return stateAltQuote, false
		default:
			*out = append(*out, r)
			return stateScan, false
		}
	case stateEscape:
		*out = append(*out, r)
		return stateScan, false
	case stateQuote:
		switch {
		case r == syntax.quoteEscape:
			return stateQuoteEscape, false
		case r == syntax.quoteEnd:
			return stateScan, false
		default:
			*out = append(*out, r)
			return stateQuote, false
		}
	case stateQuoteEscape:
		switch {
		case r == syntax.quoteEnd:
			*out = append(*out, r)
			return stateQuote, false
		case syntax.quoteEscape == syntax.quoteEnd:
			return s.syntaxStep(stateScan, r, stop, syntax, out, entity)
		default:
			*out = append(*out, r)
			return stateQuote, false
		}
	case stateAltQuote:
		switch {
		case r == syntax.altQuoteEscape:
			return stateAltQuoteEscape, false
		case r == syntax.altQuoteEnd:
			return stateScan, false
		default:
			*out = append(*out, r)
			return stateAltQuote, false
		}
	case stateAltQuoteEscape:
		switch {
		case r == syntax.altQuoteEnd:
			*out = append(*out, r)
			return stateAltQuote, false
		case syntax.altQuoteEscape == syntax.altQuoteEnd:
			return s.syntaxStep(stateScan, r, stop, syntax, out, entity)
		default:
			*out = append(*out, r)
			return stateAltQuote, false
		}
	case stateEntity:
		if r == syntax.entityEnd {
			resolved, err := syntax.resolveEntity(string(*entity))
			if err != nil {
				s.report(SeverityWarning, err.Error())
			} else {
				*out = append(*out, []rune(resolved)...)
			}
			return stateScan, false
		}
		*entity = append(*entity, r)
		return stateEntity, false
	}
	return stateDone, true
}
