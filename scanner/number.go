package scanner

// A NumberParser receives the sign, radix, digits, dot, exponent, and
// special tokens of one numeric literal as the driver (readNumber) scans
// it, and exposes the resulting value once scanning stops. Two concrete
// parsers ship with this package: Int64Parser/Float64Parser (typed,
// overflow-checked) and TextNumberParser (builds the matched text and
// delegates conversion to strconv).
type NumberParser interface {
	// Sign is called when a leading '+' or '-' is seen. Returning false
	// rejects the sign; the driver leaves it unconsumed and stops.
	Sign(c rune) bool
	// Radix is called after a "0x"/"0b"/leading-zero-octal prefix is
	// detected. probed is 16, 2, or 8; symbol is the character following
	// the '0' ('x'/'X', 'b'/'B', or the first octal digit). It returns the
	// radix to actually apply, or 0 to reject the prefix (in which case
	// nothing is consumed and the driver falls back to treating the '0' as
	// an ordinary decimal digit).
	Radix(probed int, symbol rune) int
	// Digit is called for each digit character, with its numeric value
	// already computed against the probed radix. Returning false stops
	// the scan without consuming the character.
	Digit(value int, c rune) bool
	// Dot is called on '.'. Returning false stops the scan (and leaves the
	// dot unconsumed).
	Dot() bool
	// Exponent is called on 'e'/'E' (radix 10) or 'p'/'P' (radix 16), with
	// sign set to '+', '-', or 0. Returning false stops the scan.
	Exponent(symbol, sign rune) bool
	// SpecialToken is called when none of the above match; it returns the
	// literal text the driver should try to match at the cursor (e.g.
	// "NaN", "Infinity") and whether such a token applies at all.
	SpecialToken(cp rune) (string, bool)
	// Special is called once SpecialToken's returned text has been
	// matched and consumed.
	Special(token string)
}

// digitValue returns the numeric value of c under the given radix (2-36)
// and whether c is a valid digit under it at all.
func digitValue(c rune, radix int) (int, bool) {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= radix {
		return 0, false
	}
	return v, true
}

func probeRadix(radix int) int {
	if radix < 10 {
		return 10
	}
	return radix
}

// ReadNumber scans at most one numeric token at the cursor, delegating
// every decision to parser, and reports whether any character was
// consumed.
func (s *Scanner) ReadNumber(parser NumberParser, radixMode RadixMode) bool {
	s.checkClosed()
	consumedAny := false

	if r, ok := s.Peek(); ok && (r == '+' || r == '-') {
		if parser.Sign(r) {
			s.Next()
			consumedAny = true
		}
	}

	probedRadix := 10
	radix := 10
	if r, ok := s.Peek(); ok && r == '0' {
		if r2, ok2 := s.PeekAt(1); ok2 {
			switch {
			case (r2 == 'x' || r2 == 'X') && radixMode.allowsRadix(16):
				if actual := parser.Radix(16, r2); actual != 0 {
					s.Next()
					s.Next()
					radix, probedRadix = actual, 16
					consumedAny = true
				}
			case (r2 == 'b' || r2 == 'B') && radixMode.allowsRadix(2):
				if actual := parser.Radix(2, r2); actual != 0 {
					s.Next()
					s.Next()
					radix, probedRadix = actual, 2
					consumedAny = true
				}
			case r2 >= '0' && r2 <= '9' && radixMode.allowsRadix(8):
				if actual := parser.Radix(8, r2); actual != 0 {
					s.Next() // the symbol is itself a digit; only the leading 0 is consumed here
					radix, probedRadix = actual, 8
					consumedAny = true
				}
			}
		}
	}

	for {
		r, ok := s.Peek()
		if !ok {
			break
		}
		// Radix-overshoot: probe against max(probedRadix, 10) always, even
		// when the parser's accepted radix is smaller, so that a malformed
		// literal like "0b1012" is consumed in full and reported as one
		// well-formed numeric error rather than silently truncated.
		if value, isDigit := digitValue(r, probeRadix(probedRadix)); isDigit {
			if parser.Digit(value, r) {
				s.Next()
				consumedAny = true
				continue
			}
			break
		}
		if r == '.' {
			if parser.Dot() {
				s.Next()
				consumedAny = true
				continue
			}
			break
		}
		if (radix == 10 && (r == 'e' || r == 'E')) || (radix == 16 && (r == 'p' || r == 'P')) {
			var sign rune
			if next, ok2 := s.PeekAt(1); ok2 && (next == '+' || next == '-') {
				sign = next
			}
			if parser.Exponent(r, sign) {
				s.Next()
				consumedAny = true
				if sign != 0 {
					s.Next()
				}
				continue
			}
			break
		}
		if expect, ok3 := parser.SpecialToken(r); ok3 && expect != "" && s.Expect(expect, false) {
			parser.Special(expect)
			consumedAny = true
			continue
		}
		break
	}
	return consumedAny
}
