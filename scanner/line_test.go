package scanner

import "testing"

func TestReadLineTrimmedSequence(t *testing.T) {
	input := "  ab c \ndef\r ghi\r\nj k l\n \r \n  \r\n   end"
	s := NewFromString(input)
	defer s.Close()

	want := []string{"ab c", "def", "ghi", "j k l", "", "", "", "end"}
	for i, w := range want {
		got, ok := s.ReadLine(true)
		if !ok {
			t.Fatalf("line %d: expected ok=true", i)
		}
		if got != w {
			t.Fatalf("line %d: got %q, want %q", i, got, w)
		}
	}
	if _, ok := s.ReadLine(true); ok {
		t.Fatal("expected EOT after the last line")
	}
}

func TestReadLineUntrimmedKeepsSpaces(t *testing.T) {
	s := NewFromString("  abc  \ndef")
	defer s.Close()
	got, ok := s.ReadLine(false)
	if !ok || got != "  abc  " {
		t.Fatalf("got %q, %v", got, ok)
	}
}

func TestReadLineEmptyInput(t *testing.T) {
	s := NewFromString("")
	defer s.Close()
	if _, ok := s.ReadLine(false); ok {
		t.Fatal("expected false on empty input")
	}
}

func TestReadLineNoTrailingTerminator(t *testing.T) {
	s := NewFromString("last line")
	defer s.Close()
	got, ok := s.ReadLine(false)
	if !ok || got != "last line" {
		t.Fatalf("got %q, %v", got, ok)
	}
	if _, ok := s.ReadLine(false); ok {
		t.Fatal("expected EOT after consuming the only line")
	}
}

func TestSkipLineCountsTerminator(t *testing.T) {
	s := NewFromString("abc\r\ndef")
	defer s.Close()
	if n := s.SkipLine(); n != 5 {
		t.Fatalf("SkipLine() = %d, want 5", n)
	}
	rest := s.PeekString(3)
	if rest != "def" {
		t.Fatalf("rest = %q", rest)
	}
}
