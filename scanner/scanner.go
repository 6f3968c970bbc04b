package scanner

import (
	"io"
	"unicode"
)

// A Scanner is a cursor over a character stream, backed either by an
// in-memory string (NewFromString) or a streaming io.Reader (NewFromReader).
// It is not safe for concurrent use; instances are single-threaded by
// design.
type Scanner struct {
	src     source
	buf     []rune
	pos     int // index into buf of the next rune to consume
	eot     bool

	capacity int // 0 means unbounded (memorySource)

	position int // absolute count of runes consumed before buf[0]
	line     int
	column   int

	handler MessageHandler
	closed  bool
}

// An Option configures a Scanner at construction time.
type Option func(*Scanner)

// WithCapacity sets the buffer/lookahead capacity for a reader-backed
// Scanner. Ignored by NewFromString, whose buffer already holds the whole
// input. Defaults to 4096.
func WithCapacity(capacity int) Option {
	return func(s *Scanner) { s.capacity = capacity }
}

// WithMessageHandler overrides the default logging MessageHandler.
func WithMessageHandler(h MessageHandler) Option {
	return func(s *Scanner) { s.handler = h }
}

func newScanner(src source, capacity int, opts []Option) *Scanner {
	s := &Scanner{
		src:      src,
		capacity: capacity,
		line:     1,
		column:   1,
		handler:  NewDefaultMessageHandler(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromString creates a Scanner over an already fully-materialized
// string. Per the in-memory source contract, EOS is immediately true: there
// is no backing reader to refill from, and no lookahead capacity limit
// applies since the whole text is already buffered.
func NewFromString(text string, opts ...Option) *Scanner {
	return newScanner(newMemorySource(text), 0, opts)
}

// NewFromReader creates a Scanner over a streaming character source. Pass
// WithCapacity to override the default buffer/lookahead capacity of 4096.
func NewFromReader(r io.Reader, opts ...Option) *Scanner {
	s := newScanner(nil, defaultCapacity, opts)
	s.src = newReaderSource(r, s.capacity)
	s.capacity = s.src.capacity()
	return s
}

// Close releases the backing source. It is idempotent; operations performed
// after Close panic with ErrClosed.
func (s *Scanner) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.src.close()
}

func (s *Scanner) checkClosed() {
	if s.closed {
		panic(ErrClosed)
	}
}

// Position returns the number of runes consumed since construction.
func (s *Scanner) Position() int { return s.position + s.pos }

// Line returns the 1-based line number of the character at the cursor.
func (s *Scanner) Line() int { return s.line }

// Column returns the 1-based column number of the character at the cursor.
func (s *Scanner) Column() int { return s.column }

// fill discards the consumed prefix of buf and pulls in the next chunk from
// the backing source. Returns true iff at least one more rune became
// available.
func (s *Scanner) fill() bool {
	if s.eot {
		return false
	}
	s.position += s.pos
	s.buf = s.buf[s.pos:]
	s.pos = 0
	chunk, ok := s.src.refill(s.effectiveCapacity())
	if !ok {
		if len(s.buf) == 0 {
			s.eot = true
		}
		return false
	}
	s.buf = append(s.buf, chunk...)
	return true
}

func (s *Scanner) effectiveCapacity() int {
	if s.capacity <= 0 {
		return defaultCapacity
	}
	return s.capacity
}

// ensure guarantees that at least n runes are available starting at pos,
// refilling as needed, short of EOS. Returns the number actually available
// (which may be less than n at EOT).
func (s *Scanner) ensure(n int) int {
	for len(s.buf)-s.pos < n {
		if !s.fill() {
			break
		}
	}
	avail := len(s.buf) - s.pos
	if avail < 0 {
		avail = 0
	}
	return avail
}

// checkLookahead raises a ConfigurationError when a caller requests more
// lookahead than the source's configured capacity permits, before any
// state change — matching CharReaderScanner.verifyLookahead.
func (s *Scanner) checkLookahead(n int) {
	cap := s.src.capacity()
	if cap > 0 && n > cap {
		panic(newConfigError("lookahead size of %d characters exceeds the configured buffer size of %d", n, cap))
	}
}

// HasNext reports whether at least one more rune is reachable, refilling if
// necessary.
func (s *Scanner) HasNext() bool {
	s.checkClosed()
	return s.ensure(1) > 0
}

// IsEOT reports whether the scanner has no more characters to expose: the
// backing source is exhausted and the buffer is empty.
func (s *Scanner) IsEOT() bool {
	s.checkClosed()
	return !s.HasNext()
}

// Peek returns the rune at the cursor without consuming it, and false if
// the scanner is at EOT.
func (s *Scanner) Peek() (rune, bool) {
	return s.PeekAt(0)
}

// PeekAt returns the rune k positions ahead of the cursor without consuming
// anything. PeekAt panics with a ConfigurationError if k is not less than
// the source's configured lookahead capacity (k+1 runes of lookahead).
func (s *Scanner) PeekAt(k int) (rune, bool) {
	s.checkClosed()
	s.checkLookahead(k + 1)
	if s.ensure(k+1) <= k {
		return 0, false
	}
	return s.buf[s.pos+k], true
}

// PeekString returns up to count runes ahead of the cursor without
// consuming them. The returned string may be shorter than count at EOT.
func (s *Scanner) PeekString(count int) string {
	s.checkClosed()
	s.checkLookahead(count)
	avail := s.ensure(count)
	if avail > count {
		avail = count
	}
	return string(s.buf[s.pos : s.pos+avail])
}

// Next consumes and returns the rune at the cursor.
func (s *Scanner) Next() (rune, bool) {
	s.checkClosed()
	if s.ensure(1) == 0 {
		return 0, false
	}
	r := s.buf[s.pos]
	s.advanceOne(r)
	return r, true
}

func (s *Scanner) advanceOne(r rune) {
	s.pos++
	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
}

// setOffset advances the cursor to newPos (an index into buf), one rune at
// a time, so line/column bookkeeping stays correct. Callers that bulk-move
// the cursor (ExpectAt) must go through this.
func (s *Scanner) setOffset(newPos int) {
	for s.pos < newPos && s.pos < len(s.buf) {
		s.advanceOne(s.buf[s.pos])
	}
}

// Skip consumes up to n runes and returns the number actually consumed.
func (s *Scanner) Skip(n int) int {
	s.checkClosed()
	count := 0
	for count < n {
		if s.ensure(1) == 0 {
			break
		}
		s.advanceOne(s.buf[s.pos])
		count++
	}
	return count
}

// SkipNewLine consumes one logical newline at the cursor (\n, \r\n, or a
// lone \r) and returns how many runes were consumed: 0 if the cursor is not
// at a newline, 1 for \n or a lone \r, 2 for \r\n.
func (s *Scanner) SkipNewLine() int {
	s.checkClosed()
	r, ok := s.Peek()
	if !ok {
		return 0
	}
	switch r {
	case '\n':
		s.Next()
		return 1
	case '\r':
		s.Next()
		if r2, ok := s.Peek(); ok && r2 == '\n' {
			s.Next()
			return 2
		}
		return 1
	default:
		return 0
	}
}

// ExpectAt is the atomic expectation primitive: if the full string matches
// starting at offset runes past the cursor, it either advances past it
// (lookahead=false) or leaves state unchanged (lookahead=true); on
// mismatch, state is always unchanged.
func (s *Scanner) ExpectAt(expected string, ignoreCase, lookahead bool, offset int) bool {
	s.checkClosed()
	runes := []rune(expected)
	if len(runes) == 0 {
		return true
	}
	s.checkLookahead(offset + len(runes))
	if s.ensure(offset+len(runes)) < offset+len(runes) {
		return false
	}
	for i, want := range runes {
		got := s.buf[s.pos+offset+i]
		if got != want && (!ignoreCase || unicode.ToLower(got) != unicode.ToLower(want)) {
			return false
		}
	}
	if !lookahead {
		s.setOffset(s.pos + offset + len(runes))
	}
	return true
}

// Expect is ExpectAt with no lookahead offset and immediate consumption on
// match.
func (s *Scanner) Expect(expected string, ignoreCase bool) bool {
	return s.ExpectAt(expected, ignoreCase, false, 0)
}

// ExpectUnsafe consumes the longest common prefix of expected at the
// cursor and returns false on the first mismatch; unlike Expect, it leaves
// the matched prefix consumed even when the whole string does not match.
func (s *Scanner) ExpectUnsafe(expected string, ignoreCase bool) bool {
	s.checkClosed()
	for _, want := range []rune(expected) {
		got, ok := s.Peek()
		if !ok {
			return false
		}
		if got != want && (!ignoreCase || unicode.ToLower(got) != unicode.ToLower(want)) {
			return false
		}
		s.Next()
	}
	return true
}

// ExpectOne consumes the rune at the cursor if it equals c.
func (s *Scanner) ExpectOne(c rune) bool {
	s.checkClosed()
	r, ok := s.Peek()
	if !ok || r != c {
		return false
	}
	s.Next()
	return true
}

// ExpectOneFilter consumes the rune at the cursor if f accepts it.
func (s *Scanner) ExpectOneFilter(f *CharFilter) bool {
	s.checkClosed()
	r, ok := s.Peek()
	if !ok || !f.Test(r) {
		return false
	}
	s.Next()
	return true
}

// Require behaves like Expect but returns a formatted ExpectationError on
// mismatch instead of a boolean.
func (s *Scanner) Require(expected string, ignoreCase bool) error {
	if s.Expect(expected, ignoreCase) {
		return nil
	}
	found := s.PeekString(len([]rune(expected)))
	if found == "" {
		found = "EOT"
	}
	return errExpectingButFound(expected, found)
}

// SkipWhile advances while f matches, up to max runes (max<0 means
// unbounded), and returns the number of runes skipped.
func (s *Scanner) SkipWhile(f *CharFilter, max int) int {
	s.checkClosed()
	count := 0
	for max < 0 || count < max {
		r, ok := s.Peek()
		if !ok || !f.Test(r) {
			break
		}
		s.Next()
		count++
	}
	return count
}

// ReadWhile accumulates runes while f matches, up to max (max<0 means
// unbounded), and returns the accumulated text. If fewer than min runes
// matched, it returns an ExpectationError and leaves the matched prefix
// consumed: a partial, already-observed read is never rolled back. It panics
// with a ConfigurationError, before reading anything, when max >= 0 and
// min > max.
func (s *Scanner) ReadWhile(f *CharFilter, min, max int) (string, error) {
	s.checkClosed()
	if max >= 0 && min > max {
		panic(newConfigError("min of %d characters exceeds max of %d", min, max))
	}
	var out []rune
	for max < 0 || len(out) < max {
		r, ok := s.Peek()
		if !ok || !f.Test(r) {
			break
		}
		s.Next()
		out = append(out, r)
	}
	if len(out) < min {
		return string(out), errRequireCount(min, max, len(out), f.String())
	}
	return string(out), nil
}

// PeekWhile is the non-consuming variant of ReadWhile, bounded by maxLen
// and by the source's lookahead capacity.
func (s *Scanner) PeekWhile(f *CharFilter, maxLen int) string {
	s.checkClosed()
	s.checkLookahead(maxLen)
	avail := s.ensure(maxLen)
	if avail > maxLen {
		avail = maxLen
	}
	n := 0
	for n < avail && f.Test(s.buf[s.pos+n]) {
		n++
	}
	return string(s.buf[s.pos : s.pos+n])
}

// SkipOver scans forward until substr appears (consuming it) or stop
// accepts a character (left unconsumed) or EOT. It returns true iff substr
// was found.
func (s *Scanner) SkipOver(substr string, ignoreCase bool, stop *CharFilter) bool {
	s.checkClosed()
	if substr == "" {
		return true
	}
	first := []rune(substr)[0]
	for {
		r, ok := s.Peek()
		if !ok {
			return false
		}
		if stop != nil && stop.Test(r) {
			return false
		}
		matchesFirst := r == first || (ignoreCase && unicode.ToLower(r) == unicode.ToLower(first))
		if matchesFirst && s.Expect(substr, ignoreCase) {
			return true
		}
		s.Next()
	}
}
