// Package vm emulates the HACK computer: a 16 bit CPU with two registers,
// a 32K instruction rom and a data memory with a mapped screen and
// keyboard.
package vm

import (
	"fmt"

	"go.creack.net/hack/op"
)

type Config struct {
	ROM []uint16
}

type Machine struct {
	Config Config

	ROM []uint16
	Ram Ram

	A, D uint16 // Address and data registers.
	PC   uint16 // Program counter, index in rom.

	Cycle int

	halted bool

	// Messages is a channel where the vm sends messages for the viewers.
	// Sends are non blocking, unconsumed messages are dropped.
	Messages chan Message `json:"-"`
}

func New(cfg Config) (*Machine, error) {
	if len(cfg.ROM) > op.ROMSize {
		return nil, fmt.Errorf("program has %d instructions, rom holds %d", len(cfg.ROM), op.ROMSize)
	}
	m := &Machine{
		Config:   cfg,
		ROM:      cfg.ROM,
		Ram:      make(Ram, op.MemSize),
		Messages: make(chan Message, 64),
	}
	return m, nil
}

func (m *Machine) notify(mt MessageType, msg string) {
	select {
	case m.Messages <- NewMessage(mt, msg):
	default:
	}
}

// Halted reports whether the machine reached an unconditional jump to
// itself, the conventional end of a HACK program.
func (m *Machine) Halted() bool { return m.halted }

// SetKeyboard stores the given scan code in the keyboard register.
func (m *Machine) SetKeyboard(key uint16) {
	m.Ram.Set(m.Cycle, op.KeyboardAddress, key)
}

// alu computes the output for the given 7 bit comp code, reading memory
// through the ram when the a bit selects M.
func (m *Machine) alu(comp uint16) uint16 {
	x := m.D
	y := m.A
	if comp&op.CompA != 0 {
		y = m.Ram.Get(m.Cycle, m.A)
	}
	if comp&op.CompZX != 0 {
		x = 0
	}
	if comp&op.CompNX != 0 {
		x = ^x
	}
	if comp&op.CompZY != 0 {
		y = 0
	}
	if comp&op.CompNY != 0 {
		y = ^y
	}
	var out uint16
	if comp&op.CompF != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if comp&op.CompNO != 0 {
		out = ^out
	}
	return out
}

// Step executes the instruction at PC.
func (m *Machine) Step() error {
	if int(m.PC) >= len(m.ROM) {
		return fmt.Errorf("pc %d outside the program (%d instructions)", m.PC, len(m.ROM))
	}
	ins := m.ROM[m.PC]
	m.Cycle++

	// A-instruction.
	if ins>>15 == 0 {
		m.A = ins
		m.PC++
		return nil
	}

	// C-instruction. Capture the target cell before A may change.
	out := m.alu(ins >> 6 & 0b1111111)
	addr := m.A

	dest := ins >> 3 & 0b111
	if dest&op.DestM != 0 {
		m.Ram.Set(m.Cycle, addr, out)
	}
	if dest&op.DestA != 0 {
		m.A = out
	}
	if dest&op.DestD != 0 {
		m.D = out
	}

	jump := ins & 0b111
	s := int16(out)
	taken := jump&op.JumpLT != 0 && s < 0 ||
		jump&op.JumpEQ != 0 && s == 0 ||
		jump&op.JumpGT != 0 && s > 0
	if !taken {
		m.PC++
		return nil
	}
	target := m.A & op.MaxAddress
	// A program conventionally ends on a tight loop: either an
	// unconditional jump to itself, or the usual `@END / 0;JMP` pair
	// jumping back to the A-instruction that reloads its own address.
	if jump == op.JumpLT|op.JumpEQ|op.JumpGT && dest == 0 {
		selfLoop := target == m.PC ||
			target == m.PC-1 && m.ROM[target] == target
		if selfLoop && !m.halted {
			m.halted = true
			m.notify(MsgHalt, fmt.Sprintf("halted at %d after %d cycles", m.PC, m.Cycle))
		}
	}
	m.PC = target
	return nil
}

// Run executes at most maxCycles instructions, stopping early when the
// machine halts.
func (m *Machine) Run(maxCycles int) error {
	for range maxCycles {
		if m.halted {
			return nil
		}
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}
