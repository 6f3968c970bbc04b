package scanner

import "testing"

func TestCharFilterBuiltins(t *testing.T) {
	cases := []struct {
		filter *CharFilter
		yes    []rune
		no     []rune
	}{
		{Digit, []rune{'0', '5', '9'}, []rune{'a', ' ', '-'}},
		{Letter, []rune{'a', 'Z', 'é'}, []rune{'0', ' ', '_'}},
		{Whitespace, []rune{' ', '\t', '\n'}, []rune{'a', '0'}},
		{NewLine, []rune{'\n', '\r'}, []rune{' ', 'a'}},
		{OctalDigit, []rune{'0', '7'}, []rune{'8', '9', 'a'}},
		{Any, []rune{'a', ' ', '\n'}, nil},
		{SingleQuote, []rune{'\''}, []rune{'"', 'a'}},
	}
	for _, tc := range cases {
		for _, r := range tc.yes {
			if !tc.filter.Test(r) {
				t.Errorf("%s: expected %q to match", tc.filter, r)
			}
		}
		for _, r := range tc.no {
			if tc.filter.Test(r) {
				t.Errorf("%s: expected %q not to match", tc.filter, r)
			}
		}
	}
}

func TestCharFilterCombinators(t *testing.T) {
	digitOrLetter := Digit.Or(Letter)
	if !digitOrLetter.Test('3') || !digitOrLetter.Test('x') {
		t.Error("Or should accept either side")
	}
	if digitOrLetter.Test(' ') {
		t.Error("Or should reject neither side")
	}

	digitAndLetter := Digit.And(Letter)
	if digitAndLetter.Test('3') || digitAndLetter.Test('x') {
		t.Error("And should reject a value matching only one side")
	}

	notDigit := Digit.Not()
	if notDigit.Test('3') || !notDigit.Test('x') {
		t.Error("Not should invert the match")
	}
}

func TestCharFilterNilSafety(t *testing.T) {
	var f *CharFilter
	if f.Test('a') {
		t.Error("nil filter should never match")
	}
	if f.String() != "<filter>" {
		t.Errorf("nil filter String() = %q", f.String())
	}
}
