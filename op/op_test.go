package op

import "testing"

func TestCompTableRoundTrip(t *testing.T) {
	for _, c := range CompTable {
		def, ok := LookupComp(c.Name)
		if !ok {
			t.Fatalf("LookupComp(%q) not found", c.Name)
		}
		if def.Code != c.Code {
			t.Errorf("LookupComp(%q) = %07b; want %07b", c.Name, def.Code, c.Code)
		}
		back, ok := DecodeComp(c.Code)
		if !ok || back.Name != c.Name {
			t.Errorf("DecodeComp(%07b) = %q, %v; want %q", c.Code, back.Name, ok, c.Name)
		}
	}
}

func TestLookupCompUnknown(t *testing.T) {
	for _, name := range []string{"", "X", "A+D", "M+A", "D+", "d"} {
		if _, ok := LookupComp(name); ok {
			t.Errorf("LookupComp(%q) = ok; want not found", name)
		}
	}
}

func TestDecodeCompUnknown(t *testing.T) {
	if _, ok := DecodeComp(0b1111111); ok {
		t.Errorf("DecodeComp(1111111) = ok; want not found")
	}
}

func TestLookupDest(t *testing.T) {
	tests := []struct {
		name   string
		code   uint16
		wantOk bool
	}{
		{"", 0b000, true},
		{"M", 0b001, true},
		{"D", 0b010, true},
		{"MD", 0b011, true},
		{"DM", 0b011, true}, // Permutations are accepted.
		{"A", 0b100, true},
		{"AM", 0b101, true},
		{"AD", 0b110, true},
		{"AMD", 0b111, true},
		{"DMA", 0b111, true},
		{"AA", 0, false}, // Duplicate letter.
		{"X", 0, false},
		{"Ax", 0, false},
	}
	for _, tc := range tests {
		code, ok := LookupDest(tc.name)
		if ok != tc.wantOk || (ok && code != tc.code) {
			t.Errorf("LookupDest(%q) = %03b, %v; want %03b, %v", tc.name, code, ok, tc.code, tc.wantOk)
		}
	}
}

func TestDestTableRoundTrip(t *testing.T) {
	for code, name := range DestTable {
		got, ok := LookupDest(name)
		if !ok || got != uint16(code) {
			t.Errorf("LookupDest(%q) = %03b, %v; want %03b", name, got, ok, code)
		}
		back, ok := DecodeDest(uint16(code))
		if !ok || back != name {
			t.Errorf("DecodeDest(%03b) = %q, %v; want %q", code, back, ok, name)
		}
	}
}

func TestJumpTableRoundTrip(t *testing.T) {
	for code, name := range JumpTable {
		got, ok := LookupJump(name)
		if !ok || got != uint16(code) {
			t.Errorf("LookupJump(%q) = %03b, %v; want %03b", name, got, ok, code)
		}
		back, ok := DecodeJump(uint16(code))
		if !ok || back != name {
			t.Errorf("DecodeJump(%03b) = %q, %v; want %q", code, back, ok, name)
		}
	}
	if _, ok := LookupJump("JXX"); ok {
		t.Errorf("LookupJump(\"JXX\") = ok; want not found")
	}
}

func TestPredefinedSymbols(t *testing.T) {
	want := map[string]int{
		"R0": 0, "R1": 1, "R2": 2, "R3": 3, "R4": 4, "R5": 5, "R6": 6, "R7": 7,
		"R8": 8, "R9": 9, "R10": 10, "R11": 11, "R12": 12, "R13": 13, "R14": 14, "R15": 15,
		"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
		"SCREEN": 16384, "KBD": 24576,
	}
	if len(PredefinedSymbols) != len(want) {
		t.Fatalf("PredefinedSymbols has %d entries; want %d", len(PredefinedSymbols), len(want))
	}
	for _, s := range PredefinedSymbols {
		if addr, ok := want[s.Name]; !ok || addr != s.Address {
			t.Errorf("predefined %q = %d; want %d", s.Name, s.Address, addr)
		}
	}
}
