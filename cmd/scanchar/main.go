package main

import (
	"fmt"
	"log"
	"os"
)

const NAME = "scanchar"

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("%s\n", NAME)
		fmt.Printf("usage: %s {tokens,number,literal,bencode} <options>\n", os.Args[0])
		os.Exit(1)
	}

	progArgs := os.Args[1:]

	switch progArgs[0] {
	case "tokens":
		if len(progArgs) < 2 {
			log.Fatalf("usage: %s tokens <text>\n", os.Args[0])
		}
		ShowTokens(progArgs[1])
	case "number":
		if len(progArgs) < 2 {
			log.Fatalf("usage: %s number <literal>\n", os.Args[0])
		}
		ShowNumber(progArgs[1])
	case "literal":
		if len(progArgs) < 2 {
			log.Fatalf("usage: %s literal <java-string-literal>\n", os.Args[0])
		}
		ShowLiteral(progArgs[1])
	case "bencode":
		if len(progArgs) < 2 {
			log.Fatalf("usage: %s bencode <filename>\n", os.Args[0])
		}
		ShowBencode(progArgs[1])
	default:
		fmt.Printf("invalid subcommand %q\n", progArgs[0])
		fmt.Printf("subcommands: tokens, number, literal, bencode\n")
		os.Exit(1)
	}
}
