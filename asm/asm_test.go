package asm

import (
	"fmt"
	"strings"
	"testing"
)

// rectSource draws a rectangle of R0 rows at the top left of the screen.
// From the nand2tetris course material.
const rectSource = `// Draws a rectangle at the top-left corner of the screen.
// The rectangle is 16 pixels wide and R0 pixels high.

   @0
   D=M
   @INFINITE_LOOP
   D;JLE
   @counter
   M=D
   @SCREEN
   D=A
   @address
   M=D
(LOOP)
   @address
   A=M
   M=-1
   @address
   D=M
   @32
   D=D+A
   @address
   M=D
   @counter
   MD=M-1
   @LOOP
   D;JGT
(INFINITE_LOOP)
   @INFINITE_LOOP
   0;JMP
`

const rectBinary = `0000000000000000
1111110000010000
0000000000010111
1110001100000110
0000000000010000
1110001100001000
0100000000000000
1110110000010000
0000000000010001
1110001100001000
0000000000010001
1111110000100000
1110111010001000
0000000000010001
1111110000010000
0000000000100000
1110000010010000
0000000000010001
1110001100001000
0000000000010000
1111110010011000
0000000000001010
1110001100000001
0000000000010111
1110101010000111
`

func TestAssembleRect(t *testing.T) {
	binary, prog, err := Assemble("rect.asm", rectSource)
	if err != nil {
		t.Fatalf("Assemble() error: %s", err)
	}
	if binary != rectBinary {
		t.Errorf("Assemble() =\n%s\nwant\n%s", binary, rectBinary)
	}

	// One output line per non-label, non-comment source line.
	if want := 25; prog.Size() != want {
		t.Errorf("Size() = %d; want %d", prog.Size(), want)
	}
	lines := strings.Split(strings.TrimSuffix(binary, "\n"), "\n")
	if len(lines) != prog.Size() {
		t.Fatalf("output has %d lines; want %d", len(lines), prog.Size())
	}
	for i, line := range lines {
		if len(line) != 16 || strings.Trim(line, "01") != "" {
			t.Errorf("line %d = %q; want 16 binary digits", i, line)
		}
	}
}

func TestAssembleAddressEncoding(t *testing.T) {
	// Sampled across the full 15 bit range.
	for _, n := range []int{0, 1, 2, 15, 16, 255, 256, 1024, 16383, 16384, 24576, 32766, 32767} {
		binary, _, err := Assemble("test", fmt.Sprintf("@%d", n))
		if err != nil {
			t.Fatalf("Assemble(@%d) error: %s", n, err)
		}
		if want := fmt.Sprintf("0%015b\n", n); binary != want {
			t.Errorf("@%d = %q; want %q", n, binary, want)
		}
	}
}

func TestAssembleError(t *testing.T) {
	_, _, err := Assemble("bad.asm", "@0\nD=M\nM=X+1")
	if err == nil {
		t.Fatal("Assemble() succeeded; want resolution error")
	}
	if !strings.Contains(err.Error(), "bad.asm") {
		t.Errorf("error %q does not name the input", err)
	}
}

func TestAssembleEmptyOutput(t *testing.T) {
	binary, prog, err := Assemble("test", "// nothing here\n\n(ORPHAN)\n")
	if err != nil {
		t.Fatalf("Assemble() error: %s", err)
	}
	if binary != "" || prog.Size() != 0 {
		t.Errorf("Assemble() = %q, %d instructions; want empty", binary, prog.Size())
	}
}
