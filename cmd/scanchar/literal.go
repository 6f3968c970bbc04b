package main

import (
	"fmt"
	"log"

	"github.com/aescarias/scanchar/scanner"
)

// ShowLiteral reads literal as a Java-style double-quoted string literal
// in strict mode and prints its resolved value and final position.
func ShowLiteral(literal string) {
	s := scanner.NewFromString(literal)
	defer s.Close()

	value, err := s.ReadJavaStringLiteral(scanner.SeverityError)
	if err != nil {
		log.Fatalf("failed to read literal: %s", err)
	}

	fmt.Printf("value:    %q\n", value)
	fmt.Printf("position: %d\n", s.Position())
}
