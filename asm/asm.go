// Package asm assembles HACK assembly text into its binary image.
package asm

import (
	"fmt"

	"go.creack.net/hack/asm/parser"
)

// Assemble translates the input into binary text, one 16 character line
// per instruction. The input name is only used in error reports.
func Assemble(inputName, inputData string) (string, *parser.Program, error) {
	p := parser.NewParser(inputName, inputData)
	prog, err := p.Parse()
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse: %w", err)
	}
	return prog.Text(), prog, nil
}
