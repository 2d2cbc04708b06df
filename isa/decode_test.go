package isa

import "testing"

func TestDecode32Basics(t *testing.T) {
	cases := []struct {
		name string
		word uint32
		kind Kind
	}{
		{"addi", 0x00100093, KindADDI},  // addi x1, x0, 1
		{"add", 0x002081B3, KindADD},    // add x3, x1, x2
		{"sub", 0x402081B3, KindSUB},    // sub x3, x1, x2
		{"lui", 0x000010B7, KindLUI},    // lui x1, 1
		{"jal", 0x0000006F, KindJAL},    // jal x0, 0
		{"beq", 0x00208463, KindBEQ},    // beq x1, x2, 8
		{"lw", 0x00012083, KindLW},      // lw x1, 0(x2)
		{"sw", 0x0020A023, KindSW},      // sw x2, 0(x1)
		{"mul", 0x022081B3, KindMUL},    // mul x3, x1, x2
		{"div", 0x0220C1B3, KindDIV},    // div x3, x1, x2
		{"ecall", 0x00000073, KindECALL},
		{"ebreak", 0x00100073, KindEBREAK},
		{"csrrw", 0x001091F3, KindCSRRW}, // csrrw x3, x1, 0
		{"lrw", 0x1000A1AF, KindLRW},     // lr.w x3, (x1)
		{"fadds", 0x00208153, KindFADDS}, // fadd.s f2, f1, f2 (rm=0)
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			op, ok := Decode32(c.word)
			if !ok {
				t.Fatalf("decode failed for %#x", c.word)
			}
			if op.Kind != c.kind {
				t.Errorf("kind = %v, want %v", op.Kind, c.kind)
			}
			if op.Size != 4 {
				t.Errorf("size = %d, want 4", op.Size)
			}
		})
	}
}

func TestDecode32RejectsUnknown(t *testing.T) {
	// opcode 0x5B is unallocated in the base+GC extension set.
	if _, ok := Decode32(0x0000005B); ok {
		t.Fatal("expected decode failure for unallocated opcode")
	}
}

func TestDecode16AllZeroIsIllegal(t *testing.T) {
	if _, ok := Decode16(0); ok {
		t.Fatal("all-zero compressed word must be c.illegal, never a successful decode")
	}
}

func TestDecode16Basics(t *testing.T) {
	cases := []struct {
		name string
		word uint32
		kind Kind
	}{
		{"c.addi", 0x0085, KindADDI},   // c.addi x1, 1
		{"c.li", 0x4085, KindADDI},     // c.li x1, 1
		{"c.mv", 0x808A, KindADD},      // c.mv x1, x2
		{"c.jr", 0x8082, KindJALR},     // c.jr x1
		{"c.ebreak", 0x9002, KindEBREAK},
		{"c.lw", 0x4208, KindLW},       // c.lw x8, 0(x8)
		{"c.sw", 0xC208, KindSW},       // c.sw x8, 0(x8)
		{"c.beqz", 0xC081, KindBEQ},    // c.beqz x8, 0
		{"c.j", 0xA001, KindJAL},       // c.j 0
		{"c.swsp", 0xC022, KindSW},     // c.swsp x8, 0(sp)
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			op, ok := Decode16(c.word)
			if !ok {
				t.Fatalf("decode failed for %#x", c.word)
			}
			if op.Kind != c.kind {
				t.Errorf("kind = %v, want %v", op.Kind, c.kind)
			}
			if op.Size != 2 {
				t.Errorf("size = %d, want 2", op.Size)
			}
		})
	}
}

func TestIsCompressed(t *testing.T) {
	if IsCompressed(0xFFFF) {
		t.Error("low bits 11 must not be compressed")
	}
	if !IsCompressed(0x0001) {
		t.Error("low bits 01 must be compressed")
	}
}
