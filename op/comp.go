package op

// Comp control bits, from the ALU pinout. The high bit selects the
// second operand: 0 reads A, 1 reads M (the cell A points to).
const (
	CompA  = 1 << 6 // a: operate on M instead of A.
	CompZX = 1 << 5 // zx: zero the x (D) input.
	CompNX = 1 << 4 // nx: negate the x input.
	CompZY = 1 << 3 // zy: zero the y (A/M) input.
	CompNY = 1 << 2 // ny: negate the y input.
	CompF  = 1 << 1 // f: add instead of and.
	CompNO = 1 << 0 // no: negate the output.
)

// Comp is the definition of a computation mnemonic.
type Comp struct {
	Name string
	Code uint16 // 7 bits: a c1..c6.
}

// CompTable lists every computation of the ALU.
var CompTable = []Comp{
	{"0", 0b0101010},
	{"1", 0b0111111},
	{"-1", 0b0111010},
	{"D", 0b0001100},
	{"A", 0b0110000},
	{"!D", 0b0001101},
	{"!A", 0b0110001},
	{"-D", 0b0001111},
	{"-A", 0b0110011},
	{"D+1", 0b0011111},
	{"A+1", 0b0110111},
	{"D-1", 0b0001110},
	{"A-1", 0b0110010},
	{"D+A", 0b0000010},
	{"D-A", 0b0010011},
	{"A-D", 0b0000111},
	{"D&A", 0b0000000},
	{"D|A", 0b0010101},
	{"M", 0b1110000},
	{"!M", 0b1110001},
	{"-M", 0b1110011},
	{"M+1", 0b1110111},
	{"M-1", 0b1110010},
	{"D+M", 0b1000010},
	{"D-M", 0b1010011},
	{"M-D", 0b1000111},
	{"D&M", 0b1000000},
	{"D|M", 0b1010101},
}

// LookupComp resolves a computation mnemonic to its definition.
func LookupComp(name string) (Comp, bool) {
	for _, c := range CompTable {
		if c.Name == name {
			return c, true
		}
	}
	return Comp{}, false
}

// DecodeComp resolves a 7 bit code back to its mnemonic.
// Several codes are unused by the ALU and have no mnemonic.
func DecodeComp(code uint16) (Comp, bool) {
	for _, c := range CompTable {
		if c.Code == code {
			return c, true
		}
	}
	return Comp{}, false
}
