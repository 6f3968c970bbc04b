package main

import (
	"fmt"
	"log"

	"github.com/aescarias/scanchar/scanner"
)

// ShowNumber reads literal as a number under RadixAll and prints
// the matched text alongside its int64/float64 interpretation.
func ShowNumber(literal string) {
	s := scanner.NewFromString(literal)
	defer s.Close()

	parser, consumed := s.ReadJavaNumberLiteral(scanner.RadixAll)
	if !consumed {
		log.Fatalf("%q is not a numeric literal", literal)
	}

	fmt.Printf("text:    %s\n", parser.Text())

	if v, err := parser.Int64(); err == nil {
		fmt.Printf("int64:   %d\n", v)
	} else {
		fmt.Printf("int64:   %s\n", err)
	}

	if v, err := parser.Float64(); err == nil {
		fmt.Printf("float64: %v\n", v)
	} else {
		fmt.Printf("float64: %s\n", err)
	}

	if s.HasNext() {
		rest := s.PeekString(16)
		fmt.Printf("trailing input not consumed: %q\n", rest)
	}
}
