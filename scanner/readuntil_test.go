package scanner

import "testing"

func TestReadUntilPlainConsumesStop(t *testing.T) {
	s := NewFromString("abc,def")
	defer s.Close()
	got, ok := s.ReadUntilChar(',', false)
	if !ok || got != "abc" {
		t.Fatalf("got %q, %v", got, ok)
	}
	rest := s.PeekString(3)
	if rest != "def" {
		t.Fatalf("rest = %q, stop character should have been consumed", rest)
	}
}

func TestReadUntilPlainMissingStopWithAcceptEOT(t *testing.T) {
	s := NewFromString("abc")
	defer s.Close()
	got, ok := s.ReadUntilChar(',', true)
	if !ok || got != "abc" {
		t.Fatalf("got %q, %v", got, ok)
	}
}

func TestReadUntilPlainMissingStopWithoutAcceptEOT(t *testing.T) {
	s := NewFromString("abc")
	defer s.Close()
	if _, ok := s.ReadUntilChar(',', false); ok {
		t.Fatal("expected false when the stop is never found and acceptEOT is false")
	}
}

func TestReadUntilEscapedSkipsEscapedStop(t *testing.T) {
	s := NewFromString(`ab\,cd,ef`)
	defer s.Close()
	got, ok := s.ReadUntilEscaped(',', false, '\\')
	if !ok || got != "ab,cd" {
		t.Fatalf("got %q, %v", got, ok)
	}
	rest := s.PeekString(2)
	if rest != "ef" {
		t.Fatalf("rest = %q", rest)
	}
}

func TestReadUntilFilterOrStringTrims(t *testing.T) {
	s := NewFromString("  comment  */rest")
	defer s.Close()
	got, ok := s.ReadUntil(nil, ReadUntilOptions{AcceptEOT: true, StopString: "*/", Trim: true})
	if !ok || got != "comment" {
		t.Fatalf("got %q, %v", got, ok)
	}
	rest := s.PeekString(4)
	if rest != "rest" {
		t.Fatalf("rest = %q", rest)
	}
}

func TestReadUntilFilterOrStringStopsOnFilter(t *testing.T) {
	s := NewFromString("line one\nmore */ text")
	defer s.Close()
	got, ok := s.ReadUntil(NewLine, ReadUntilOptions{AcceptEOT: true, StopString: "*/"})
	if !ok || got != "line one" {
		t.Fatalf("got %q, %v", got, ok)
	}
	r, _ := s.Peek()
	if r != '\n' {
		t.Fatalf("newline should be left unconsumed, got %q", r)
	}
}

func TestReadUntilStopSyntaxDrivenScan(t *testing.T) {
	input := `Hi "$"quote$"", 'a''l\t' and \"esc\'&lt;&gt;&lt;x&gt;!`
	want := `Hi "quote", a'l\t and "esc'<><x>`

	resolver := func(name string) (string, error) {
		switch name {
		case "lt":
			return "<", nil
		case "gt":
			return ">", nil
		}
		return "", ErrUnknownEntity
	}
	syntax := NewSyntax(
		WithEscape('\\'),
		WithQuote('"', '"', '$', false),
		WithAltQuote('\'', '\'', '\'', false),
		WithEntity('&', ';', resolver),
	)

	s := NewFromString(input)
	defer s.Close()

	got, ok := s.ReadUntilStop(CharEquals('!'), false, syntax)
	if !ok {
		t.Fatal("expected the scan to find the stop character")
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadUntilStopLazyQuoteEscapeCollapsesDoubled(t *testing.T) {
	syntax := NewSyntax(WithQuote('\'', '\'', '\'', true))

	s := NewFromString(`'it''s a test',tail`)
	defer s.Close()

	got, ok := s.ReadUntilStop(CharEquals(','), false, syntax)
	if !ok {
		t.Fatal("expected the scan to find the stop character")
	}
	if want := "it's a test"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	rest := s.PeekString(4)
	if rest != "tail" {
		t.Fatalf("rest = %q, expected stop consumed and quote closed before it", rest)
	}
}

func TestReadUntilStopConsumesStopCharacter(t *testing.T) {
	syntax := NewSyntax()
	s := NewFromString("abc!def")
	defer s.Close()
	got, ok := s.ReadUntilStop(CharEquals('!'), false, syntax)
	if !ok || got != "abc" {
		t.Fatalf("got %q, %v", got, ok)
	}
	rest := s.PeekString(3)
	if rest != "def" {
		t.Fatalf("rest = %q, expected stop consumed", rest)
	}
}
