package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.creack.net/hack/disasm"
)

func run(input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	source, err := disasm.Disasm(input, string(data))
	if err != nil {
		return fmt.Errorf("failed to disassemble: %w", err)
	}
	if output == "" {
		fmt.Print(source)
		return nil
	}

	if err := os.WriteFile(output, []byte(source), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func main() {
	log.SetFlags(0)
	output := flag.String("o", "", "output file, default to stdout")
	flag.Parse()
	input := flag.Arg(0)
	if input == "" {
		tmp := strings.Split(os.Args[0], "/")
		binName := tmp[len(tmp)-1]
		fmt.Fprintf(os.Stderr, "usage: %s <.hack path> [options]\n", binName)
		flag.PrintDefaults()
		return
	}

	if err := run(input, *output); err != nil {
		log.Fatalf("fail: %s.", err)
	}
}
