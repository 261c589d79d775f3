package vm

import "go.creack.net/hack/op"

// Access types for RamEntry, used by the viewers to highlight activity.
const (
	AccessNone = iota
	AccessWrite
	AccessRead
)

type RamEntry struct {
	Value      uint16
	AccessType int // Last access to the entry.
	Cycle      int // Cycle of the last access.
}

type Ram []RamEntry

func (r Ram) Get(cycle int, addr uint16) uint16 {
	e := &r[int(addr)%len(r)]
	e.AccessType = AccessRead
	e.Cycle = cycle
	return e.Value
}

func (r Ram) Set(cycle int, addr, value uint16) {
	e := &r[int(addr)%len(r)]
	e.Value = value
	e.AccessType = AccessWrite
	e.Cycle = cycle
}

// Pixel reports whether the screen pixel at (x, y) is on. The screen is
// memory mapped at op.ScreenBase, 32 words per row, least significant bit
// leftmost.
func (r Ram) Pixel(x, y int) bool {
	word := r[op.ScreenBase+y*(op.ScreenWidth/op.WordSize)+x/op.WordSize].Value
	return word>>(x%op.WordSize)&1 == 1
}
