package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aescarias/scanchar/examples/bencode"
)

// ShowBencode decodes filename as a Bencode-encoded file (the .torrent
// format) and prints each top-level token.
func ShowBencode(filename string) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Fatalf("the file %q does not exist.", filename)
		}
		log.Fatal(err)
	}

	tokens, err := bencode.Decode(string(contents))
	if err != nil {
		log.Fatalf("failed to decode file: %s", err)
	}

	for idx, token := range tokens {
		fmt.Printf("token %d: %#v\n", idx, token)
	}
}
