package scanner

import "strconv"

// ReadDigit reads a single digit under radix and returns its numeric
// value, or ok=false if the cursor is not at a digit.
func (s *Scanner) ReadDigit(radix int) (int, bool) {
	s.checkClosed()
	r, ok := s.Peek()
	if !ok {
		return 0, false
	}
	v, isDigit := digitValue(r, radix)
	if !isDigit {
		return 0, false
	}
	s.Next()
	return v, true
}

// ReadLong reads an integer literal under radixMode and returns it as an
// int64.
func (s *Scanner) ReadLong(radixMode RadixMode) (int64, error) {
	s.checkClosed()
	p := NewInt64Parser()
	s.ReadNumber(p, radixMode)
	return p.Int64()
}

// ReadInteger reads an integer literal under radixMode and returns it as
// an int32, following the same overflow checks as ReadLong but against
// the narrower range.
func (s *Scanner) ReadInteger(radixMode RadixMode) (int32, error) {
	v, err := s.ReadLong(radixMode)
	if err != nil {
		return 0, err
	}
	if v < math32Min || v > math32Max {
		return 0, &NumberFormatError{Text: strconv.FormatInt(v, 10)}
	}
	return int32(v), nil
}

const (
	math32Min = -1 << 31
	math32Max = 1<<31 - 1
)

// ReadDouble reads a floating-point literal under radixMode and returns it
// as a float64.
func (s *Scanner) ReadDouble(radixMode RadixMode) (float64, error) {
	s.checkClosed()
	p := NewFloat64Parser()
	s.ReadNumber(p, radixMode)
	return p.Float64()
}

// ReadFloat reads a floating-point literal under radixMode and returns it
// as a float32.
func (s *Scanner) ReadFloat(radixMode RadixMode) (float32, error) {
	v, err := s.ReadDouble(radixMode)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

// ReadJavaNumberLiteral reads a number literal (integer or floating-point,
// in any radix) and returns the parser used to scan it, whose Text method
// gives the exact matched text, together with whether any character was
// consumed, letting the caller decide the target type.
func (s *Scanner) ReadJavaNumberLiteral(radixMode RadixMode) (*TextNumberParser, bool) {
	s.checkClosed()
	p := NewTextNumberParser()
	consumed := s.ReadNumber(p, radixMode)
	return p, consumed
}

// SkipUntil discards characters up to and including stopChar and returns
// whether stopChar was found.
func (s *Scanner) SkipUntil(stopChar rune) bool {
	_, ok := s.ReadUntilChar(stopChar, false)
	return ok
}

// SkipUntilEscaped is SkipUntil with escape-char support, per
// ReadUntilEscaped.
func (s *Scanner) SkipUntilEscaped(stopChar, escape rune) bool {
	_, ok := s.ReadUntilEscaped(stopChar, false, escape)
	return ok
}
