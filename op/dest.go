package op

// Dest bits.
const (
	DestM = 1 << 0 // d3: write to M (the cell A points to).
	DestD = 1 << 1 // d2: write to D.
	DestA = 1 << 2 // d1: write to A.
)

// DestTable maps each 3 bit destination code to its canonical mnemonic,
// indexed by code. Index 0 is the empty destination.
var DestTable = []string{
	"",
	"M",
	"D",
	"MD",
	"A",
	"AM",
	"AD",
	"AMD",
}

// LookupDest resolves a destination mnemonic to its 3 bit code.
// Any permutation of distinct A, M, D letters is accepted.
func LookupDest(name string) (uint16, bool) {
	var code uint16
	for _, r := range name {
		var bit uint16
		switch r {
		case 'A':
			bit = DestA
		case 'M':
			bit = DestM
		case 'D':
			bit = DestD
		default:
			return 0, false
		}
		if code&bit != 0 {
			// Duplicate letter.
			return 0, false
		}
		code |= bit
	}
	return code, true
}

// DecodeDest resolves a 3 bit code back to its canonical mnemonic.
func DecodeDest(code uint16) (string, bool) {
	if int(code) >= len(DestTable) {
		return "", false
	}
	return DestTable[code], true
}
