package parser

import (
	"fmt"
	"strconv"
	"strings"

	"go.creack.net/hack/op"
)

// Instruction is a single machine instruction. Encode is pure and cannot
// fail: the parser only hands out instructions whose fields have been
// resolved and range checked.
type Instruction interface {
	Literal() string // Raw operand text from the source.
	Word() uint16    // Resolved 16 bit encoding.
	Encode() string  // Word as 16 '0'/'1' characters.
	String() string  // Assembly text of the resolved instruction.
}

// AInstruction loads an address into the A register.
type AInstruction struct {
	Raw     string // Decimal literal or symbolic name.
	Address int    // Resolved address, 15 bits.
}

func (a *AInstruction) Literal() string { return a.Raw }

func (a *AInstruction) Word() uint16 { return uint16(a.Address) }

func (a *AInstruction) Encode() string { return fmt.Sprintf("%016b", a.Word()) }

func (a *AInstruction) String() string {
	return string(op.AddressChar) + strconv.Itoa(a.Address)
}

// resolve fills in the address from the literal. Decimal literals are
// used directly, known names are looked up and unknown names become new
// variables, bound in first appearance order.
func (a *AInstruction) resolve(symbols *SymbolTable) error {
	if isDecimal(a.Raw) {
		n, err := strconv.Atoi(a.Raw)
		if err != nil || n > op.MaxAddress {
			return fmt.Errorf("address %q exceeds %d bits", a.Raw, op.AddressBits)
		}
		a.Address = n
		return nil
	}
	addr, ok := symbols.Lookup(a.Raw)
	if !ok {
		addr = symbols.NextVariableAddress()
		symbols.Bind(a.Raw, addr)
	}
	if addr > op.MaxAddress {
		return fmt.Errorf("address %q resolves to %d, exceeds %d bits", a.Raw, addr, op.AddressBits)
	}
	a.Address = addr
	return nil
}

func isDecimal(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

// CInstruction encodes a computation, optional destination registers and
// an optional jump condition.
type CInstruction struct {
	Raw  string // dest=comp;jump literal, dest and jump optional.
	Comp uint16 // 7 bits.
	Dest uint16 // 3 bits.
	Jump uint16 // 3 bits.
}

func (c *CInstruction) Literal() string { return c.Raw }

func (c *CInstruction) Word() uint16 {
	return 0b111<<13 | c.Comp<<6 | c.Dest<<3 | c.Jump
}

func (c *CInstruction) Encode() string { return fmt.Sprintf("%016b", c.Word()) }

func (c *CInstruction) String() string {
	dest, _ := op.DecodeDest(c.Dest)
	comp, _ := op.DecodeComp(c.Comp)
	jump, _ := op.DecodeJump(c.Jump)
	out := comp.Name
	if dest != "" {
		out = dest + string(op.DestSepChar) + out
	}
	if jump != "" {
		out += string(op.JumpSepChar) + jump
	}
	return out
}

// resolve parses the literal against the dest=comp;jump grammar and maps
// each field through the mnemonic tables.
func (c *CInstruction) resolve() error {
	comp := strings.TrimSpace(c.Raw)

	if i := strings.IndexByte(comp, op.DestSepChar); i >= 0 {
		code, ok := op.LookupDest(comp[:i])
		if !ok {
			return fmt.Errorf("unknown destination %q in %q", comp[:i], c.Raw)
		}
		c.Dest = code
		comp = comp[i+1:]
	}
	if i := strings.IndexByte(comp, op.JumpSepChar); i >= 0 {
		code, ok := op.LookupJump(comp[i+1:])
		if !ok {
			return fmt.Errorf("unknown jump condition %q in %q", comp[i+1:], c.Raw)
		}
		c.Jump = code
		comp = comp[:i]
	}
	def, ok := op.LookupComp(comp)
	if !ok {
		return fmt.Errorf("unknown computation %q in %q", comp, c.Raw)
	}
	c.Comp = def.Code
	return nil
}
