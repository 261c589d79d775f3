package parser

import "testing"

func TestSymbolTablePredefined(t *testing.T) {
	st := NewSymbolTable()
	tests := []struct {
		name string
		addr int
	}{
		{"R0", 0}, {"R1", 1}, {"R2", 2}, {"R3", 3}, {"R4", 4},
		{"R5", 5}, {"R6", 6}, {"R7", 7}, {"R8", 8}, {"R9", 9},
		{"R10", 10}, {"R11", 11}, {"R12", 12}, {"R13", 13},
		{"R14", 14}, {"R15", 15},
		{"SP", 0}, {"LCL", 1}, {"ARG", 2}, {"THIS", 3}, {"THAT", 4},
		{"SCREEN", 16384}, {"KBD", 24576},
	}
	for _, tc := range tests {
		addr, ok := st.Lookup(tc.name)
		if !ok {
			t.Errorf("Lookup(%q) not found", tc.name)
			continue
		}
		if addr != tc.addr {
			t.Errorf("Lookup(%q) = %d; want %d", tc.name, addr, tc.addr)
		}
	}
}

func TestSymbolTableLookupMissing(t *testing.T) {
	st := NewSymbolTable()
	if addr, ok := st.Lookup("nope"); ok {
		t.Errorf("Lookup(\"nope\") = %d, true; want not found", addr)
	}
}

func TestSymbolTableBind(t *testing.T) {
	st := NewSymbolTable()
	st.Bind("LOOP", 42)
	if addr, ok := st.Lookup("LOOP"); !ok || addr != 42 {
		t.Errorf("Lookup(\"LOOP\") = %d, %v; want 42, true", addr, ok)
	}
}

func TestSymbolTableNextVariableAddress(t *testing.T) {
	st := NewSymbolTable()
	for i, want := range []int{16, 17, 18} {
		if got := st.NextVariableAddress(); got != want {
			t.Fatalf("call %d = %d; want %d", i, got, want)
		}
	}
}
