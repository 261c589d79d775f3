package parser

import "fmt"

// Parser drives the scanner over the source in two passes. It owns the
// symbol table and the in-progress instruction sequence until Parse hands
// the finished program to the caller.
type Parser struct {
	lexer        *lexer
	symbols      *SymbolTable
	instructions []Instruction
}

// NewParser creates a parser for the given input. The name is only used
// in error reports.
func NewParser(name, input string) *Parser {
	return &Parser{
		lexer:   NewLexer(name, input),
		symbols: NewSymbolTable(),
	}
}

// Parse runs both passes and returns the resolved program.
func (p *Parser) Parse() (*Program, error) {
	p.collect()
	if err := p.resolve(); err != nil {
		return nil, err
	}
	return &Program{Instructions: p.instructions, Symbols: p.symbols}, nil
}

// collect is the first pass: tokenize the whole input, bind each label to
// the address of the next instruction and accumulate the instructions
// with their raw literals. Comments and illegal tokens are dropped; this
// pass cannot fail.
func (p *Parser) collect() {
	for {
		it := p.lexer.nextItem()
		switch it.typ {
		case itemEOF:
			return
		case itemLabel:
			// Labels are not instructions and do not advance the count.
			p.symbols.Bind(it.val, len(p.instructions))
		case itemAInstruction:
			p.instructions = append(p.instructions, &AInstruction{Raw: it.val})
		case itemCInstruction:
			p.instructions = append(p.instructions, &CInstruction{Raw: it.val})
		case itemComment, itemIllegal:
			// Dropped.
		}
	}
}

// resolve is the second pass: fill in the binary fields of every
// accumulated instruction, in order, failing fast on the first
// unresolvable one.
func (p *Parser) resolve() error {
	for i, ins := range p.instructions {
		var err error
		switch ins := ins.(type) {
		case *AInstruction:
			err = ins.resolve(p.symbols)
		case *CInstruction:
			err = ins.resolve()
		}
		if err != nil {
			return fmt.Errorf("%s: instruction %d: %w", p.lexer.name, i, err)
		}
	}
	return nil
}
