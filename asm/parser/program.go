package parser

import "strings"

// Program is the ordered, fully resolved instruction sequence produced by
// one parse session. Immutable once returned.
type Program struct {
	Instructions []Instruction
	Symbols      *SymbolTable
}

// Size returns the number of instructions.
func (p *Program) Size() int {
	return len(p.Instructions)
}

// Text returns the binary image as text, one 16 character line per
// instruction, each terminated by a newline. Labels and comments produce
// no output.
func (p *Program) Text() string {
	out := strings.Builder{}
	for _, ins := range p.Instructions {
		out.WriteString(ins.Encode())
		out.WriteByte('\n')
	}
	return out.String()
}

// Words returns the raw instruction words, ready to load in a rom.
func (p *Program) Words() []uint16 {
	out := make([]uint16, 0, len(p.Instructions))
	for _, ins := range p.Instructions {
		out = append(out, ins.Word())
	}
	return out
}

// Listing returns the resolved assembly text, one instruction per line.
func (p *Program) Listing() string {
	out := strings.Builder{}
	for _, ins := range p.Instructions {
		out.WriteString(ins.String())
		out.WriteByte('\n')
	}
	return out.String()
}
