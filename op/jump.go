package op

// Jump bits.
const (
	JumpGT = 1 << 0 // j3: jump if the output is positive.
	JumpEQ = 1 << 1 // j2: jump if the output is zero.
	JumpLT = 1 << 2 // j1: jump if the output is negative.
)

// JumpTable maps each 3 bit jump code to its mnemonic, indexed by code.
// Index 0 is the empty condition.
var JumpTable = []string{
	"",
	"JGT",
	"JEQ",
	"JGE",
	"JLT",
	"JNE",
	"JLE",
	"JMP",
}

// LookupJump resolves a jump mnemonic to its 3 bit code.
func LookupJump(name string) (uint16, bool) {
	for code, n := range JumpTable {
		if n == name {
			return uint16(code), true
		}
	}
	return 0, false
}

// DecodeJump resolves a 3 bit code back to its mnemonic.
func DecodeJump(code uint16) (string, bool) {
	if int(code) >= len(JumpTable) {
		return "", false
	}
	return JumpTable[code], true
}
