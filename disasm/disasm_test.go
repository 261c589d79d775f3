package disasm

import (
	"strings"
	"testing"

	"go.creack.net/hack/asm"
	"go.creack.net/hack/asm/parser"
	"go.creack.net/hack/op"
)

func TestDecodeAInstruction(t *testing.T) {
	ins, err := Decode("0000000000101010")
	if err != nil {
		t.Fatalf("Decode() error: %s", err)
	}
	a, ok := ins.(*parser.AInstruction)
	if !ok {
		t.Fatalf("Decode() = %T; want *parser.AInstruction", ins)
	}
	if a.Address != 42 {
		t.Errorf("Address = %d; want 42", a.Address)
	}
	if got := a.String(); got != "@42" {
		t.Errorf("String() = %q; want \"@42\"", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too short", "010101"},
		{"too long", "00000000000000000"},
		{"bad character", "00000000000000a0"},
		{"unknown comp", "1111111111111111"},
		{"bad prefix", "1000000000000000"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.line); err == nil {
				t.Errorf("Decode(%q) succeeded; want error", tc.line)
			}
		})
	}
}

// Every computation mnemonic survives an encode/decode round trip.
func TestCompRoundTrip(t *testing.T) {
	for _, c := range op.CompTable {
		src := "ADM=" + c.Name + ";JNE"
		binary, _, err := asm.Assemble("test", src)
		if err != nil {
			t.Fatalf("Assemble(%q) error: %s", src, err)
		}
		ins, err := Decode(strings.TrimSuffix(binary, "\n"))
		if err != nil {
			t.Fatalf("Decode(%q) error: %s", binary, err)
		}
		if want := "AMD=" + c.Name + ";JNE"; ins.String() != want {
			t.Errorf("round trip of %q = %q; want %q", c.Name, ins.String(), want)
		}
	}
}

func TestDisasmRoundTrip(t *testing.T) {
	src := "@2\nD=A\n@3\nD=D+A\n@0\nM=D\n(END)\n@END\n0;JMP\n"
	binary, _, err := asm.Assemble("test", src)
	if err != nil {
		t.Fatalf("Assemble() error: %s", err)
	}

	source, err := Disasm("test", binary)
	if err != nil {
		t.Fatalf("Disasm() error: %s", err)
	}

	// Reassembling the disassembled source yields the same binary.
	binary2, _, err := asm.Assemble("test", source)
	if err != nil {
		t.Fatalf("Assemble(disassembled) error: %s", err)
	}
	if binary2 != binary {
		t.Errorf("round trip mismatch:\n%s\nwant\n%s", binary2, binary)
	}
}

func TestDisasmReportsLine(t *testing.T) {
	_, err := Disasm("prog.hack", "0000000000000001\nnope\n")
	if err == nil {
		t.Fatal("Disasm() succeeded; want error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the line", err)
	}
}
