// Package isa implements the RV32G[C] decode-and-dispatch front end:
// bit-field extraction, the Operation tagged union, and the 32-bit and
// 16-bit (compressed) decoder trees built from declarative tables.
package isa

// Pure, total bit-field extractors over a 32-bit instruction word.
// Field ranges are fixed by the RISC-V unprivileged ISA manual and
// must be reproduced exactly.

// Opcode returns instr[6:0].
func Opcode(instr uint32) uint32 { return instr & 0x7F }

// Funct3 returns instr[14:12].
func Funct3(instr uint32) uint32 { return (instr >> 12) & 0x7 }

// Funct7 returns instr[31:25].
func Funct7(instr uint32) uint32 { return (instr >> 25) & 0x7F }

// Funct5 returns instr[31:27], the AMO operation selector.
func Funct5(instr uint32) uint32 { return (instr >> 27) & 0x1F }

// Funct2 returns instr[26:25], the fused-multiply-add precision
// selector.
func Funct2(instr uint32) uint32 { return (instr >> 25) & 0x3 }

// Rd returns the destination register index, instr[11:7].
func Rd(instr uint32) int { return int((instr >> 7) & 0x1F) }

// Rs1 returns the first source register index, instr[19:15].
func Rs1(instr uint32) int { return int((instr >> 15) & 0x1F) }

// Rs2 returns the second source register index, instr[24:20].
func Rs2(instr uint32) int { return int((instr >> 20) & 0x1F) }

// Rs3 returns the third source register index (fused multiply-add
// forms), instr[31:27].
func Rs3(instr uint32) int { return int((instr >> 27) & 0x1F) }

// Shamt returns the zero-extended 5-bit shift amount, instr[24:20].
func Shamt(instr uint32) uint32 { return (instr >> 20) & 0x1F }

// RM returns the rounding-mode field, instr[14:12].
func RM(instr uint32) uint32 { return (instr >> 12) & 0x7 }

// CsrIndex returns the 12-bit CSR index, instr[31:20].
func CsrIndex(instr uint32) uint32 { return (instr >> 20) & 0xFFF }

// Aq returns instr[26], the acquire ordering bit.
func Aq(instr uint32) bool { return (instr>>26)&1 != 0 }

// Rl returns instr[25], the release ordering bit.
func Rl(instr uint32) bool { return (instr>>25)&1 != 0 }

// IImm returns the I-immediate: sign-extended instr[31:20].
func IImm(instr uint32) int32 {
	return int32(instr) >> 20
}

// SImm returns the S-immediate: sign-extended {instr[31:25], instr[11:7]}.
func SImm(instr uint32) int32 {
	hi := (instr >> 25) & 0x7F
	lo := (instr >> 7) & 0x1F
	v := (hi << 5) | lo
	return signExtend(v, 12)
}

// BImm returns the B-immediate: sign-extended
// {instr[31], instr[7], instr[30:25], instr[11:8], 0}.
func BImm(instr uint32) int32 {
	b12 := (instr >> 31) & 1
	b11 := (instr >> 7) & 1
	b10_5 := (instr >> 25) & 0x3F
	b4_1 := (instr >> 8) & 0xF
	v := (b12 << 12) | (b11 << 11) | (b10_5 << 5) | (b4_1 << 1)
	return signExtend(v, 13)
}

// UImm returns the U-immediate: {instr[31:12], 12'b0} as a signed value.
func UImm(instr uint32) int32 {
	return int32(instr & 0xFFFFF000)
}

// JImm returns the J-immediate: sign-extended
// {instr[31], instr[19:12], instr[20], instr[30:21], 0}.
func JImm(instr uint32) int32 {
	b20 := (instr >> 31) & 1
	b19_12 := (instr >> 12) & 0xFF
	b11 := (instr >> 20) & 1
	b10_1 := (instr >> 21) & 0x3FF
	v := (b20 << 20) | (b19_12 << 12) | (b11 << 11) | (b10_1 << 1)
	return signExtend(v, 21)
}

// signExtend sign-extends the low `bits` bits of v (already shifted
// into position) to a full 32-bit signed value.
func signExtend(v uint32, bits uint) int32 {
	shift := 32 - bits
	return int32(v<<shift) >> shift
}
