// Package op holds the constants of the HACK architecture: the memory
// layout, the instruction encodings and the mnemonic tables shared by the
// assembler, the disassembler and the vm.
package op

const (
	WordSize    = 16        // Instructions and memory cells are 16 bits.
	AddressBits = 15        // A-instructions carry a 15 bit address.
	MaxAddress  = 1<<15 - 1 // Largest encodable address, 32767.
	ROMSize     = 1 << 15   // Instruction memory, 32K words.
	MemSize     = 24576 + 1 // Data memory, up to and including the keyboard register.
)

// Memory map.
const (
	VariableBase    = 16    // First address handed out to variables.
	ScreenBase      = 16384 // Start of the memory mapped screen.
	ScreenSize      = 8192  // 512x256 pixels, one bit each.
	KeyboardAddress = 24576 // Memory mapped keyboard register.
)

// Screen geometry, in pixels.
const (
	ScreenWidth  = 512
	ScreenHeight = 256
)

// Tokens.
const (
	AddressChar    = '@'
	LabelOpenChar  = '('
	LabelCloseChar = ')'
	CommentChar    = '/'
	DestSepChar    = '='
	JumpSepChar    = ';'

	// Characters that can start a C-instruction.
	ComputeStartChars = "01-!ADM"
)

// Symbol is a predefined name of the architecture.
type Symbol struct {
	Name    string
	Address int
}

// PredefinedSymbols are the names every symbol table starts with.
// SP..THAT intentionally alias R0..R4.
var PredefinedSymbols = []Symbol{
	{"R0", 0}, {"R1", 1}, {"R2", 2}, {"R3", 3},
	{"R4", 4}, {"R5", 5}, {"R6", 6}, {"R7", 7},
	{"R8", 8}, {"R9", 9}, {"R10", 10}, {"R11", 11},
	{"R12", 12}, {"R13", 13}, {"R14", 14}, {"R15", 15},
	{"SP", 0},
	{"LCL", 1},
	{"ARG", 2},
	{"THIS", 3},
	{"THAT", 4},
	{"SCREEN", ScreenBase},
	{"KBD", KeyboardAddress},
}
