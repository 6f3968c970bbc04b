package scanner

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Severity classifies a Message emitted by a Scanner.
type Severity int

const (
	// SeverityError marks a message that, under the default handler, aborts
	// the current read by panicking with the underlying error.
	SeverityError Severity = iota
	// SeverityWarning marks a message emitted by a tolerant reader (see
	// ReadJavaStringLiteral, ReadJavaCharLiteral) that keeps scanning.
	SeverityWarning
	// SeverityInfo marks a purely informational message.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// A Message is emitted by a Scanner whenever it encounters something worth
// reporting to the caller: a recoverable formatting problem, an entity
// resolution failure, or (at SeverityError) an unrecoverable one.
type Message struct {
	Severity Severity
	Line     int
	Column   int
	Text     string
}

// A MessageHandler receives every Message a Scanner produces. The handler
// decides what to do with SeverityError messages; NewDefaultMessageHandler's
// handler panics with the message text so that strict reads fail at the call
// site, matching the "successful reads never throw, failing ones always do"
// contract in §7 of the scanner's error handling design.
type MessageHandler func(Message)

// NewDefaultMessageHandler returns a MessageHandler that logs every message
// through logger at a level derived from its Severity (error/warn/info) and
// panics with the message's text when Severity is SeverityError.
func NewDefaultMessageHandler(logger log.Logger) MessageHandler {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return func(msg Message) {
		kvs := []any{"line", msg.Line, "column", msg.Column, "msg", msg.Text}
		switch msg.Severity {
		case SeverityError:
			level.Error(logger).Log(kvs...)
			panic(&LiteralFormatError{Message: msg.Text})
		case SeverityWarning:
			level.Warn(logger).Log(kvs...)
		default:
			level.Info(logger).Log(kvs...)
		}
	}
}

// NewCollectingMessageHandler returns a MessageHandler that appends every
// message it receives to *messages instead of logging or panicking. Useful
// for tests that want to assert on the exact messages produced by a tolerant
// read.
func NewCollectingMessageHandler(messages *[]Message) MessageHandler {
	return func(msg Message) {
		*messages = append(*messages, msg)
	}
}
