// Package cli provides the shared input loading for the vm binaries.
// Both .asm sources and .hack binary images are accepted; sources are
// assembled in process.
package cli

import (
	"fmt"
	"os"
	"strings"

	"go.creack.net/hack/asm"
	"go.creack.net/hack/asm/parser"
	"go.creack.net/hack/disasm"
	"go.creack.net/hack/vm"
)

type Input struct {
	PathName  string
	ShortName string
	Listing   string   // Assembly text of the loaded program.
	ROM       []uint16 // Instruction words.

	Prog *parser.Program // Only set when loaded from a .asm source.
}

// Load reads a .asm or .hack file and returns the rom image plus an
// assembly listing for display.
func Load(path string) (*Input, error) {
	if !strings.HasSuffix(path, ".asm") && !strings.HasSuffix(path, ".hack") {
		return nil, fmt.Errorf("invalid file extension for %q, must be .asm or .hack", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	in := &Input{PathName: path}
	tmp := strings.Split(path, "/")
	in.ShortName = tmp[len(tmp)-1]
	in.ShortName = strings.TrimSuffix(in.ShortName, ".asm")
	in.ShortName = strings.TrimSuffix(in.ShortName, ".hack")

	if strings.HasSuffix(path, ".asm") {
		_, prog, err := asm.Assemble(path, string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to assemble %q: %w", path, err)
		}
		in.Prog = prog
		in.ROM = prog.Words()
		in.Listing = prog.Listing()
		return in, nil
	}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ins, err := disasm.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", path, i+1, err)
		}
		in.ROM = append(in.ROM, ins.Word())
	}
	listing, err := disasm.Disasm(path, string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to disassemble %q: %w", path, err)
	}
	in.Listing = listing
	return in, nil
}

// ParseConfig loads the program named on the command line and builds the
// vm configuration for it.
func ParseConfig() (vm.Config, *Input, error) {
	args := os.Args[1:]
	if len(args) != 1 {
		return vm.Config{}, nil, fmt.Errorf("expected one .asm or .hack file, got %d args", len(args))
	}
	in, err := Load(args[0])
	if err != nil {
		return vm.Config{}, nil, fmt.Errorf("load program: %w", err)
	}
	return vm.Config{ROM: in.ROM}, in, nil
}
