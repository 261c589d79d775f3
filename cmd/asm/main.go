package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.creack.net/hack/asm"
)

func run(input, output string, prettyPrint bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	binary, prog, err := asm.Assemble(input, string(data))
	if err != nil {
		return fmt.Errorf("failed to assemble: %w", err)
	}
	if prettyPrint {
		fmt.Print(prog.Listing())
		return nil
	}

	if err := os.WriteFile(output, []byte(binary), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func main() {
	log.SetFlags(0)
	output := flag.String("o", "", "output file, default to <input>.hack")
	prettyPrint := flag.Bool("pretty", false, "print the resolved listing, do not output the binary")
	flag.Parse()
	input := flag.Arg(0)
	if input == "" {
		tmp := strings.Split(os.Args[0], "/")
		binName := tmp[len(tmp)-1]
		fmt.Fprintf(os.Stderr, "usage: %s <.asm path> [options]\n", binName)
		flag.PrintDefaults()
		return
	}
	if *output == "" {
		*output = strings.TrimSuffix(input, ".asm") + ".hack"
	}

	if err := run(input, *output, *prettyPrint); err != nil {
		log.Fatalf("fail: %s.", err)
	}
}
