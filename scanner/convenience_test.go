package scanner

import "testing"

func TestReadDigitRespectsRadix(t *testing.T) {
	s := NewFromString("9")
	defer s.Close()
	if _, ok := s.ReadDigit(8); ok {
		t.Fatal("'9' is not a valid octal digit")
	}
	if v, ok := s.ReadDigit(10); !ok || v != 9 {
		t.Fatalf("got %d, %v", v, ok)
	}
}

func TestReadDoubleHexFloat(t *testing.T) {
	s := NewFromString("0xAB.CDP+1")
	defer s.Close()
	got, err := s.ReadDouble(RadixAll)
	if err != nil {
		t.Fatalf("ReadDouble error: %v", err)
	}
	want := 343.6015625
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestReadIntegerOverflowsInt32(t *testing.T) {
	s := NewFromString("2147483648") // math.MaxInt32 + 1
	defer s.Close()
	if _, err := s.ReadInteger(RadixAll); err == nil {
		t.Fatal("expected an overflow error for int32")
	}
}

func TestReadIntegerAtInt32Bounds(t *testing.T) {
	s := NewFromString("-2147483648")
	defer s.Close()
	v, err := s.ReadInteger(RadixAll)
	if err != nil || v != math32Min {
		t.Fatalf("got %d, %v", v, err)
	}
}

func TestReadFloatNarrowsFromDouble(t *testing.T) {
	s := NewFromString("1.5")
	defer s.Close()
	v, err := s.ReadFloat(RadixAll)
	if err != nil || v != 1.5 {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestSkipUntilFindsStop(t *testing.T) {
	s := NewFromString("abc;def")
	defer s.Close()
	if !s.SkipUntil(';') {
		t.Fatal("expected the stop character to be found")
	}
	if got := s.PeekString(3); got != "def" {
		t.Fatalf("got %q", got)
	}
}

func TestSkipUntilEscapedSkipsEscapedStop(t *testing.T) {
	s := NewFromString(`a\;b;c`)
	defer s.Close()
	if !s.SkipUntilEscaped(';', '\\') {
		t.Fatal("expected the unescaped stop character to be found")
	}
	if got := s.PeekString(1); got != "c" {
		t.Fatalf("got %q", got)
	}
}
