// Package disasm turns a binary image back into assembly source, using
// the same mnemonic tables the assembler encodes with.
package disasm

import (
	"fmt"
	"strings"

	"go.creack.net/hack/asm/parser"
	"go.creack.net/hack/op"
)

// DecodeWord decodes a single instruction word.
func DecodeWord(word uint16) (parser.Instruction, error) {
	if word>>15 == 0 {
		return &parser.AInstruction{Address: int(word)}, nil
	}
	if word>>13 != 0b111 {
		return nil, fmt.Errorf("invalid instruction prefix %03b", word>>13)
	}
	comp := word >> 6 & 0b1111111
	if _, ok := op.DecodeComp(comp); !ok {
		return nil, fmt.Errorf("unknown computation code %07b", comp)
	}
	return &parser.CInstruction{
		Comp: comp,
		Dest: word >> 3 & 0b111,
		Jump: word & 0b111,
	}, nil
}

// Decode parses one line of exactly 16 '0'/'1' characters.
func Decode(line string) (parser.Instruction, error) {
	if len(line) != op.WordSize {
		return nil, fmt.Errorf("expected %d characters, got %d in %q", op.WordSize, len(line), line)
	}
	var word uint16
	for _, r := range line {
		switch r {
		case '0':
			word <<= 1
		case '1':
			word = word<<1 | 1
		default:
			return nil, fmt.Errorf("invalid character %q in %q", r, line)
		}
	}
	return DecodeWord(word)
}

// Disasm decodes a whole binary image into assembly source. The name is
// only used in error reports.
func Disasm(name, data string) (string, error) {
	out := strings.Builder{}
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		ins, err := Decode(line)
		if err != nil {
			return "", fmt.Errorf("%s: line %d: %w", name, i+1, err)
		}
		out.WriteString(ins.String())
		out.WriteByte('\n')
	}
	return out.String(), nil
}
