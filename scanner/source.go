package scanner

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// defaultCapacity is the buffer/lookahead capacity used by NewFromReader
// when the caller does not specify one, matching CharReaderScanner's
// default of 4096.
const defaultCapacity = 4096

// A source supplies the runes a Scanner buffers and consumes. Two concrete
// buffered-source implementations (in-memory vs. reader-backed) are
// collapsed behind one interface: the state that differs between them (how
// to get more runes) is tiny, so rather than duplicating offset/limit/
// line/column bookkeeping in two structs, that bookkeeping lives once on
// Scanner and each source only answers "give me more".
type source interface {
	// refill returns up to capHint additional runes, or ok=false when the
	// backing source is exhausted. The caller (Scanner) may call it again
	// after a false result; both implementations keep returning ok=false.
	refill(capHint int) (buf []rune, ok bool)
	// refillLookahead is like refill but for a secondary lookahead window.
	// memorySource always returns ok=false; readerSource reads the next
	// chunk on every call exactly as refill does, so repeated calls are not
	// idempotent. Scanner does not call it.
	refillLookahead(capHint int) (buf []rune, ok bool)
	// isEos reports whether the backing source has been exhausted (for
	// in-memory sources, always true).
	isEos() bool
	// capacity returns the configured lookahead/buffer capacity, or 0 if
	// the source has no meaningful limit (memorySource: the whole text is
	// already buffered, so no lookahead request can ever exceed it).
	capacity() int
	close() error
}

// memorySource backs NewFromString: the entire input is already resident,
// so fill is a single-shot handoff of the whole rune slice and lookahead is
// never needed.
type memorySource struct {
	text []rune
	done bool
}

func newMemorySource(text string) *memorySource {
	return &memorySource{text: []rune(text)}
}

func (m *memorySource) refill(int) ([]rune, bool) {
	if m.done {
		return nil, false
	}
	m.done = true
	if len(m.text) == 0 {
		return nil, false
	}
	return m.text, true
}

func (m *memorySource) refillLookahead(int) ([]rune, bool) { return nil, false }
func (m *memorySource) isEos() bool                        { return true }
func (m *memorySource) capacity() int                       { return 0 }
func (m *memorySource) close() error                        { return nil }

// readerSource backs NewFromReader. When r does not already implement
// io.RuneReader, it is wrapped in a bufio.Reader, matching the shim
// anon55555/mt uses to adapt a plain io.Reader for rune-at-a-time reads.
type readerSource struct {
	reader io.RuneReader
	cap    int
	closer io.Closer
	eos    bool
}

func newReaderSource(r io.Reader, capacity int) *readerSource {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReaderSize(r, capacity)
	}
	closer, _ := r.(io.Closer)
	return &readerSource{reader: rr, cap: capacity, closer: closer}
}

func (r *readerSource) readChunk(capHint int) ([]rune, bool) {
	if r.eos {
		return nil, false
	}
	buf := make([]rune, 0, capHint)
	for len(buf) < capHint {
		ch, _, err := r.reader.ReadRune()
		if err != nil {
			r.eos = true
			break
		}
		buf = append(buf, ch)
	}
	if len(buf) == 0 {
		r.close()
		return nil, false
	}
	return buf, true
}

func (r *readerSource) refill(capHint int) ([]rune, bool)          { return r.readChunk(capHint) }
func (r *readerSource) refillLookahead(capHint int) ([]rune, bool) { return r.readChunk(capHint) }
func (r *readerSource) isEos() bool                                { return r.eos }
func (r *readerSource) capacity() int                              { return r.cap }

func (r *readerSource) close() error {
	r.eos = true
	if r.closer == nil {
		return nil
	}
	closer := r.closer
	r.closer = nil
	if err := closer.Close(); err != nil {
		return errors.Wrap(err, "scanner: closing backing reader")
	}
	return nil
}
