// Package loader loads ELF32 RV32 executables into a hostif.Memory, for
// the CLI and debugger front ends and for test/demo setup. It is not
// part of the interpreter core: interp only ever sees the hostif
// interfaces, never this package.
package loader

import (
	"debug/elf"
	"fmt"
	"io"

	"github.com/lookbusy1344/rv32-emulator/hostif"
)

// LoadResult reports where an ELF image landed in memory.
type LoadResult struct {
	EntryPoint uint32
	LowAddr    uint32
	HighAddr   uint32
}

// LoadELF reads the ELF32 file at path, maps its loadable segments
// into mem with permissions derived from each segment's ELF flags, and
// returns the entry point recorded in the ELF header.
func LoadELF(path string, mem *hostif.FlatMemory) (LoadResult, error) {
	f, err := elf.Open(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	if f.Class != elf.ELFCLASS32 {
		return LoadResult{}, fmt.Errorf("loader: %s is not a 32-bit ELF", path)
	}
	if f.Machine != elf.EM_RISCV {
		return LoadResult{}, fmt.Errorf("loader: %s is not a RISC-V ELF (machine=%s)", path, f.Machine)
	}

	var lo, hi uint32
	first := true

	for _, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}

		base := uint32(prog.Vaddr)
		size := uint32(prog.Memsz)
		if size == 0 {
			continue
		}

		perm := hostif.PermRead
		if prog.Flags&elf.PF_W != 0 {
			perm |= hostif.PermWrite
		}
		if prog.Flags&elf.PF_X != 0 {
			perm |= hostif.PermExecute
		}

		seg := mem.AddSegment(fmt.Sprintf("elf-segment-%#x", base), base, size, perm)

		buf := make([]byte, prog.Filesz)
		if _, err := io.ReadFull(prog.Open(), buf); err != nil && err != io.EOF {
			return LoadResult{}, fmt.Errorf("loader: read segment at %#x: %w", base, err)
		}
		// Populate the segment's backing store directly rather than
		// through StoreByte: a read/execute-only code segment has no
		// PermWrite bit once mapped, but the initial image load is
		// not a runtime store and must still succeed.
		copy(seg.Data, buf)

		end := base + size
		if first || base < lo {
			lo = base
		}
		if first || end > hi {
			hi = end
		}
		first = false
	}

	return LoadResult{
		EntryPoint: uint32(f.Entry),
		LowAddr:    lo,
		HighAddr:   hi,
	}, nil
}

// LoadSymbols reads the ELF symbol table at path and returns a name
// to address map of function, object and untyped symbols, for the debugger's
// label resolution. Symbols with no name or no defined value are
// skipped; an ELF with no symbol table yields an empty, non-error map.
func LoadSymbols(path string) (map[string]uint32, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	symbols := make(map[string]uint32)

	syms, err := f.Symbols()
	if err != nil {
		if err == elf.ErrNoSymbols {
			return symbols, nil
		}
		return nil, fmt.Errorf("loader: read symbols from %s: %w", path, err)
	}

	for _, sym := range syms {
		if sym.Name == "" || sym.Value == 0 {
			continue
		}
		switch elf.ST_TYPE(sym.Info) {
		case elf.STT_FUNC, elf.STT_OBJECT, elf.STT_NOTYPE:
			symbols[sym.Name] = uint32(sym.Value)
		}
	}

	return symbols, nil
}
