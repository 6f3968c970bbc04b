package main

import (
	"fmt"
	"log"

	"github.com/aescarias/scanchar/scanner"
)

// ShowTokens splits text into whitespace-separated words using
// readWhile/skipWhile, printing each one as it's found.
func ShowTokens(text string) {
	s := scanner.NewFromString(text)
	defer s.Close()

	idx := 0
	for s.HasNext() {
		s.SkipWhile(scanner.Whitespace, -1)
		if !s.HasNext() {
			break
		}
		word, err := s.ReadWhile(scanner.Whitespace.Not(), 1, -1)
		if err != nil {
			log.Fatalf("failed to read token: %s", err)
		}
		idx++
		fmt.Printf("%d: %q\n", idx, word)
	}
}
