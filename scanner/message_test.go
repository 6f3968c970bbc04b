package scanner

import "testing"

func TestCollectingMessageHandlerRecordsTolerantWarnings(t *testing.T) {
	var messages []Message
	s := NewFromString(`"bad \q escape"`, WithMessageHandler(NewCollectingMessageHandler(&messages)))
	defer s.Close()

	got, err := s.ReadJavaStringLiteral(SeverityWarning)
	if err != nil {
		t.Fatalf("tolerant read should not return an error: %v", err)
	}
	if got != "bad ? escape" {
		t.Fatalf("got %q", got)
	}
	if len(messages) != 1 {
		t.Fatalf("expected exactly one collected message, got %d", len(messages))
	}
	if messages[0].Severity != SeverityWarning {
		t.Fatalf("severity = %v, want SeverityWarning", messages[0].Severity)
	}
}

func TestDefaultMessageHandlerPanicsOnError(t *testing.T) {
	s := NewFromString(`"bad \q escape"`)
	defer s.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic from the default handler at SeverityError")
		}
	}()
	s.report(SeverityError, "boom")
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "error" || SeverityWarning.String() != "warning" || SeverityInfo.String() != "info" {
		t.Error("unexpected Severity.String() output")
	}
}
