package scanner

import (
	"strings"
	"testing"
)

func TestMemorySourceRefillOnce(t *testing.T) {
	src := newMemorySource("abc")
	buf, ok := src.refill(4096)
	if !ok || string(buf) != "abc" {
		t.Fatalf("refill = %q, %v", string(buf), ok)
	}
	if _, ok := src.refill(4096); ok {
		t.Error("a second refill should report exhausted")
	}
}

func TestMemorySourceEmpty(t *testing.T) {
	src := newMemorySource("")
	if _, ok := src.refill(4096); ok {
		t.Error("refill of empty text should report exhausted")
	}
}

func TestReaderSourceChunking(t *testing.T) {
	r := strings.NewReader("hello world")
	src := newReaderSource(r, 4)
	var all []rune
	for {
		chunk, ok := src.refill(4)
		if !ok {
			break
		}
		all = append(all, chunk...)
	}
	if string(all) != "hello world" {
		t.Errorf("got %q", string(all))
	}
	if !src.isEos() {
		t.Error("expected isEos after exhausting reader")
	}
}

func TestReaderSourceCapacityDefault(t *testing.T) {
	src := newReaderSource(strings.NewReader(""), 0)
	if src.capacity() != defaultCapacity {
		t.Errorf("capacity() = %d, want %d", src.capacity(), defaultCapacity)
	}
}
