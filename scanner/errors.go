package scanner

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrClosed is the value any operation performed on a Scanner after Close
// has been called on it panics with.
var ErrClosed = errors.New("scanner: closed")

// ErrUnknownEntity is the error the default entity resolver returns for any
// entity name it does not recognize.
var ErrUnknownEntity = errors.New("scanner: unknown entity")

// A ConfigurationError reports a misuse of the scanner API that is detected
// before any state change, such as a lookahead request exceeding the
// configured buffer capacity, or an invalid min/max argument pair.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "scanner: " + e.Message
}

func newConfigError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// A NumberFormatError reports a malformed numeric literal. Radix is 0 or 10
// when the literal was scanned in base 10, matching the "For input string" shape
// readNumber's callers format their errors with.
type NumberFormatError struct {
	Text  string
	Radix int
}

func (e *NumberFormatError) Error() string {
	if e.Radix != 0 && e.Radix != 10 {
		return fmt.Sprintf("For input string: %q under radix %d", e.Text, e.Radix)
	}
	return fmt.Sprintf("For input string: %q", e.Text)
}

// A LiteralFormatError reports an unterminated string/char literal, an
// illegal escape sequence, or a multi-character char literal encountered in
// strict mode.
type LiteralFormatError struct {
	Message string
}

func (e *LiteralFormatError) Error() string {
	return e.Message
}

// An ExpectationError is raised by Require when the scanned text does not
// match what was expected.
type ExpectationError struct {
	Message string
}

func (e *ExpectationError) Error() string {
	return e.Message
}

func errExpectingButFound(expected, found string) *ExpectationError {
	return &ExpectationError{Message: fmt.Sprintf("Expecting %q but found: %s", expected, found)}
}

func errRequireCount(min, max, actual int, description string) *ExpectationError {
	if max < 0 {
		return &ExpectationError{
			Message: fmt.Sprintf("Require at least %d character(s) matching %s but found only %d", min, description, actual),
		}
	}
	return &ExpectationError{
		Message: fmt.Sprintf("Require at least %d / up to %d character(s) matching %s but found only %d", min, max, description, actual),
	}
}
