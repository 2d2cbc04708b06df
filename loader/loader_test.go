package loader

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/lookbusy1344/rv32-emulator/hostif"
)

// buildMinimalELF32 assembles a minimal ELF32 RISC-V executable with a
// single PT_LOAD segment containing code, by hand, so the test has no
// dependency on an external assembler/linker toolchain.
func buildMinimalELF32(t *testing.T, vaddr uint32, code []byte) string {
	t.Helper()

	const ehSize = 52
	const phSize = 32
	offset := uint32(ehSize + phSize)

	buf := make([]byte, offset+uint32(len(code)))

	copy(buf[0:4], []byte{0x7f, 'E', 'L', 'F'})
	buf[4] = 1 // ELFCLASS32
	buf[5] = 1 // ELFDATA2LSB
	buf[6] = 1 // EV_CURRENT

	le := binary.LittleEndian
	le.PutUint16(buf[16:], 2)     // e_type = ET_EXEC
	le.PutUint16(buf[18:], 0xF3)  // e_machine = EM_RISCV (243)
	le.PutUint32(buf[20:], 1)     // e_version
	le.PutUint32(buf[24:], vaddr) // e_entry
	le.PutUint32(buf[28:], ehSize) // e_phoff
	le.PutUint32(buf[32:], 0)      // e_shoff
	le.PutUint32(buf[36:], 0)      // e_flags
	le.PutUint16(buf[40:], ehSize)
	le.PutUint16(buf[42:], phSize)
	le.PutUint16(buf[44:], 1) // e_phnum
	le.PutUint16(buf[46:], 0)
	le.PutUint16(buf[48:], 0)
	le.PutUint16(buf[50:], 0)

	ph := buf[ehSize:]
	le.PutUint32(ph[0:], 1)               // p_type = PT_LOAD
	le.PutUint32(ph[4:], offset)          // p_offset
	le.PutUint32(ph[8:], vaddr)           // p_vaddr
	le.PutUint32(ph[12:], vaddr)          // p_paddr
	le.PutUint32(ph[16:], uint32(len(code))) // p_filesz
	le.PutUint32(ph[20:], uint32(len(code))) // p_memsz
	le.PutUint32(ph[24:], 5)              // p_flags = PF_R|PF_X
	le.PutUint32(ph[28:], 4096)           // p_align

	copy(buf[offset:], code)

	path := filepath.Join(t.TempDir(), "test.elf")
	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatalf("failed to write test ELF: %v", err)
	}
	return path
}

func TestLoadELFMapsSegmentAndEntry(t *testing.T) {
	code := []byte{0x13, 0x00, 0x00, 0x00} // addi x0, x0, 0 (nop)
	path := buildMinimalELF32(t, 0x00010000, code)

	mem := hostif.NewFlatMemory()
	res, err := LoadELF(path, mem)
	if err != nil {
		t.Fatalf("LoadELF failed: %v", err)
	}

	if res.EntryPoint != 0x00010000 {
		t.Errorf("expected entry point 0x10000, got %#x", res.EntryPoint)
	}

	w, ok := mem.LoadWord(0x00010000)
	if !ok {
		t.Fatal("expected loaded segment to be readable")
	}
	if w != 0x00000013 {
		t.Errorf("expected loaded word 0x13, got %#x", w)
	}

	if mem.LoadBytes(0x00010000, []byte{0, 0, 0, 0}) {
		t.Error("expected a read/execute-only segment to reject writes")
	}
}

func TestLoadSymbolsNoSymtab(t *testing.T) {
	code := []byte{0x13, 0x00, 0x00, 0x00}
	path := buildMinimalELF32(t, 0x00010000, code)

	symbols, err := LoadSymbols(path)
	if err != nil {
		t.Fatalf("LoadSymbols failed: %v", err)
	}
	if len(symbols) != 0 {
		t.Errorf("expected no symbols from a symtab-less ELF, got %d", len(symbols))
	}
}

func TestLoadELFRejectsWrongMachine(t *testing.T) {
	path := buildMinimalELF32(t, 0x1000, []byte{0, 0, 0, 0})
	// corrupt e_machine to something other than EM_RISCV
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	binary.LittleEndian.PutUint16(data[18:], 0x28) // EM_ARM
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	mem := hostif.NewFlatMemory()
	if _, err := LoadELF(path, mem); err == nil {
		t.Error("expected error loading a non-RISC-V ELF")
	}
}
