package scanner

import (
	"math"
	"strconv"
	"strings"
)

// Int64Parser is the typed numeric parser for integer literals. It
// accumulates the mantissa as a negative int64 so that math.MinInt64 is
// representable without a final negation overflowing, and detects overflow
// via a precomputed minMul threshold per radix, ported from
// CharScannerNumberParserLang.digit().
type Int64Parser struct {
	sign     rune
	radix    int
	mantissa int64
	min      int64
	minMul   int64
	digits   int
	err      bool
	text     strings.Builder
}

// NewInt64Parser returns a parser bounded to the full int64 range.
func NewInt64Parser() *Int64Parser {
	return &Int64Parser{min: -math.MaxInt64}
}

func (p *Int64Parser) Sign(c rune) bool {
	p.sign = c
	if c == '-' && p.min == -math.MaxInt64 {
		p.min = math.MinInt64
	}
	p.text.WriteRune(c)
	return true
}

func (p *Int64Parser) Radix(probed int, symbol rune) int {
	p.radix = probed
	p.text.WriteRune('0')
	if probed != 8 {
		p.text.WriteRune(symbol)
	}
	return probed
}

func (p *Int64Parser) radixOrDefault() int {
	if p.radix == 0 {
		return 10
	}
	return p.radix
}

func (p *Int64Parser) Digit(digit int, c rune) bool {
	radix := int64(p.radixOrDefault())
	if p.err {
		p.text.WriteRune(c)
		return true
	}
	if p.minMul == 0 {
		p.minMul = p.min / radix
	}
	p.digits++
	if int64(digit) >= radix || p.mantissa < p.minMul {
		p.err = true
		p.text.WriteRune(c)
		return true
	}
	p.mantissa *= radix
	if p.mantissa < p.min+int64(digit) {
		p.mantissa /= radix
		p.err = true
		p.text.WriteRune(c)
		return true
	}
	p.mantissa -= int64(digit)
	p.text.WriteRune(c)
	return true
}

func (p *Int64Parser) Dot() bool                        { return false }
func (p *Int64Parser) Exponent(rune, rune) bool         { return false }
func (p *Int64Parser) SpecialToken(rune) (string, bool) { return "", false }
func (p *Int64Parser) Special(token string)             { p.text.WriteString(token) }

// Int64 returns the parsed value, or a *NumberFormatError if the literal
// overflowed int64 or contained no digits.
func (p *Int64Parser) Int64() (int64, error) {
	if p.err {
		return 0, &NumberFormatError{Text: p.text.String(), Radix: p.radix}
	}
	if p.digits == 0 {
		return 0, &NumberFormatError{Text: p.text.String(), Radix: p.radix}
	}
	if p.sign != '-' {
		return -p.mantissa, nil
	}
	return p.mantissa, nil
}

// TextNumberParser builds the exact matched text of a numeric literal
// without committing to a numeric type while scanning, then delegates
// final conversion to strconv. This is the "string-building" parser named
// by the readNumber driver's contract; it is also how Float64Parser gets a
// bit-exact, correctly-rounded double out of a known-pathological
// composition problem (see DESIGN.md).
type TextNumberParser struct {
	sb         strings.Builder
	radix      int
	sawDot     bool
	sawExp     bool
	digits     int
	specialTok string
}

// NewTextNumberParser returns a parser that accepts decimal, hex, octal,
// and binary integers, dotted/exponent decimals and hex-floats, and the
// NaN/Infinity special tokens.
func NewTextNumberParser() *TextNumberParser {
	return &TextNumberParser{radix: 10}
}

func (p *TextNumberParser) Sign(c rune) bool {
	p.sb.WriteRune(c)
	return true
}

func (p *TextNumberParser) Radix(probed int, symbol rune) int {
	p.radix = probed
	p.sb.WriteRune('0')
	if probed != 8 {
		p.sb.WriteRune(symbol)
	}
	return probed
}

func (p *TextNumberParser) Digit(_ int, c rune) bool {
	p.digits++
	p.sb.WriteRune(c)
	return true
}

func (p *TextNumberParser) Dot() bool {
	if p.sawDot {
		return false
	}
	p.sawDot = true
	p.sb.WriteRune('.')
	return true
}

func (p *TextNumberParser) Exponent(symbol, sign rune) bool {
	if p.sawExp {
		return false
	}
	p.sawExp = true
	p.sb.WriteRune(symbol)
	if sign != 0 {
		p.sb.WriteRune(sign)
	}
	return true
}

func (p *TextNumberParser) SpecialToken(cp rune) (string, bool) {
	switch cp {
	case 'N':
		return "NaN", true
	case 'I':
		return "Infinity", true
	default:
		return "", false
	}
}

func (p *TextNumberParser) Special(token string) {
	p.specialTok = token
	p.sb.WriteString(token)
}

// Text returns the exact matched literal text.
func (p *TextNumberParser) Text() string { return p.sb.String() }

// Int64 parses the matched text as an int64, honoring whatever radix
// prefix (or absence of one) the scan detected.
func (p *TextNumberParser) Int64() (int64, error) {
	text := p.sb.String()
	if p.digits == 0 || p.specialTok != "" {
		return 0, &NumberFormatError{Text: text, Radix: p.radix}
	}
	parseText, base := stripRadixPrefix(text, p.radix)
	v, err := strconv.ParseInt(parseText, base, 64)
	if err != nil {
		return 0, &NumberFormatError{Text: text, Radix: p.radix}
	}
	return v, nil
}

// Float64 parses the matched text as a float64. NaN/Infinity tokens are
// handled directly; hex-float and decimal literals are handed to
// strconv.ParseFloat, which is bit-exact and correctly rounded -- the
// typed lang parser's own double-composition algorithm is, faithfully to
// its origin, never relied upon for this (see DESIGN.md).
func (p *TextNumberParser) Float64() (float64, error) {
	text := p.sb.String()
	if p.digits == 0 && p.specialTok == "" {
		return 0, &NumberFormatError{Text: text, Radix: p.radix}
	}
	negative := strings.HasPrefix(text, "-")
	switch p.specialTok {
	case "NaN":
		return math.NaN(), nil
	case "Infinity":
		if negative {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}
	if p.radix == 8 {
		return octalToFloat(text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &NumberFormatError{Text: text, Radix: p.radix}
	}
	return v, nil
}

// octalToFloat composes an octal-radix literal's value digit by digit:
// strconv.ParseFloat has no octal syntax, and feeding it the raw prefixed
// text would silently reinterpret it as decimal.
func octalToFloat(text string) (float64, error) {
	sign := 1.0
	rest := text
	switch {
	case strings.HasPrefix(rest, "-"):
		sign, rest = -1, rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}
	rest = strings.TrimPrefix(rest, "0")
	intPart, fracPart := rest, ""
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		intPart, fracPart = rest[:i], rest[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	whole, err := strconv.ParseInt(intPart, 8, 64)
	if err != nil {
		return 0, &NumberFormatError{Text: text, Radix: 8}
	}
	value := float64(whole)
	scale := 1.0 / 8
	for _, c := range fracPart {
		d, ok := digitValue(c, 8)
		if !ok {
			return 0, &NumberFormatError{Text: text, Radix: 8}
		}
		value += float64(d) * scale
		scale /= 8
	}
	return sign * value, nil
}

func stripRadixPrefix(text string, radix int) (string, int) {
	sign := ""
	rest := text
	if strings.HasPrefix(rest, "+") || strings.HasPrefix(rest, "-") {
		sign, rest = rest[:1], rest[1:]
	}
	switch radix {
	case 16:
		rest = strings.TrimPrefix(strings.TrimPrefix(rest, "0x"), "0X")
		return sign + rest, 16
	case 2:
		rest = strings.TrimPrefix(strings.TrimPrefix(rest, "0b"), "0B")
		return sign + rest, 2
	case 8:
		rest = strings.TrimPrefix(rest, "0")
		if rest == "" {
			rest = "0"
		}
		return sign + rest, 8
	default:
		return text, 10
	}
}

// Float64Parser is the typed parser for floating-point literals. It wraps
// a TextNumberParser: the driver callbacks below are a thin pass-through,
// so a Float64Parser behaves exactly like NewTextNumberParser().Float64()
// but with the NumberParser methods spelled out for callers that want a
// dedicated float-only type.
type Float64Parser struct {
	inner *TextNumberParser
}

func NewFloat64Parser() *Float64Parser {
	return &Float64Parser{inner: NewTextNumberParser()}
}

func (p *Float64Parser) Sign(c rune) bool                    { return p.inner.Sign(c) }
func (p *Float64Parser) Radix(probed int, symbol rune) int   { return p.inner.Radix(probed, symbol) }
func (p *Float64Parser) Digit(value int, c rune) bool        { return p.inner.Digit(value, c) }
func (p *Float64Parser) Dot() bool                           { return p.inner.Dot() }
func (p *Float64Parser) Exponent(symbol, sign rune) bool     { return p.inner.Exponent(symbol, sign) }
func (p *Float64Parser) SpecialToken(cp rune) (string, bool) { return p.inner.SpecialToken(cp) }
func (p *Float64Parser) Special(token string)                { p.inner.Special(token) }

// Float64 returns the parsed value.
func (p *Float64Parser) Float64() (float64, error) { return p.inner.Float64() }
