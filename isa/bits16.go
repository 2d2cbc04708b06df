package isa

// Bit-field extractors for the 16-bit compressed (RVC) encoding space.
// Compressed register fields name x8-x15 via a 3-bit index; cPrime
// adds the implicit offset.

func cOpcode(instr uint32) uint32  { return instr & 0x3 }
func cFunct3(instr uint32) uint32  { return (instr >> 13) & 0x7 }
func cBit12(instr uint32) uint32   { return (instr >> 12) & 0x1 }
func cFunct2Hi(instr uint32) uint32 { return (instr >> 10) & 0x3 }
func cFunct2Lo(instr uint32) uint32 { return (instr >> 5) & 0x3 }
func cRs2Full(instr uint32) uint32  { return (instr >> 2) & 0x1F }
func cRdFull(instr uint32) uint32   { return (instr >> 7) & 0x1F }

// cPrime maps a 3-bit compressed register field to x8-x15.
func cPrime(field uint32) int { return int(field) + 8 }

func cRdPrime(instr uint32) int  { return cPrime((instr >> 2) & 0x7) }
func cRs1Prime(instr uint32) int { return cPrime((instr >> 7) & 0x7) }
func cRs2Prime(instr uint32) int { return cPrime((instr >> 2) & 0x7) }

// cIW extracts C.ADDI4SPN's nzuimm[9:2], already positioned.
func cIW(instr uint32) uint32 {
	b5_4 := (instr >> 11) & 0x3
	b9_6 := (instr >> 7) & 0xF
	b2 := (instr >> 6) & 0x1
	b3 := (instr >> 5) & 0x1
	return (b9_6 << 6) | (b5_4 << 4) | (b3 << 3) | (b2 << 2)
}

// cLSWImm extracts the word-width CL/CS offset (C.LW/C.SW/C.FLW/C.FSW).
func cLSWImm(instr uint32) int32 {
	b5_3 := (instr >> 10) & 0x7
	b2 := (instr >> 6) & 0x1
	b6 := (instr >> 5) & 0x1
	return int32((b6 << 6) | (b5_3 << 3) | (b2 << 2))
}

// cLDImm extracts the double-width CL/CS offset (C.FLD/C.FSD).
func cLDImm(instr uint32) int32 {
	b5_3 := (instr >> 10) & 0x7
	b7_6 := (instr >> 5) & 0x3
	return int32((b7_6 << 6) | (b5_3 << 3))
}

// cImm6 extracts the common signed 6-bit CI immediate (C.ADDI/C.LI).
func cImm6(instr uint32) int32 {
	b5 := (instr >> 12) & 0x1
	b4_0 := (instr >> 2) & 0x1F
	return signExtend((b5<<5)|b4_0, 6)
}

// cLwspImm extracts the C.LWSP/C.FLWSP offset.
func cLwspImm(instr uint32) int32 {
	b5 := (instr >> 12) & 0x1
	b4_2 := (instr >> 4) & 0x7
	b7_6 := (instr >> 2) & 0x3
	return int32((b7_6 << 6) | (b5 << 5) | (b4_2 << 2))
}

// cLdspImm extracts the C.FLDSP offset.
func cLdspImm(instr uint32) int32 {
	b5 := (instr >> 12) & 0x1
	b4_3 := (instr >> 5) & 0x3
	b8_6 := (instr >> 2) & 0x7
	return int32((b8_6 << 6) | (b5 << 5) | (b4_3 << 3))
}

// cSwspImm extracts the C.SWSP/C.FSWSP offset.
func cSwspImm(instr uint32) int32 {
	b5_2 := (instr >> 9) & 0xF
	b7_6 := (instr >> 7) & 0x3
	return int32((b7_6 << 6) | (b5_2 << 2))
}

// cSdspImm extracts the C.FSDSP offset.
func cSdspImm(instr uint32) int32 {
	b5_3 := (instr >> 10) & 0x7
	b8_6 := (instr >> 7) & 0x7
	return int32((b8_6 << 6) | (b5_3 << 3))
}

// cjImm extracts the C.J/C.JAL 11-bit signed offset.
func cjImm(instr uint32) int32 {
	b11 := (instr >> 12) & 1
	b4 := (instr >> 11) & 1
	b9_8 := (instr >> 9) & 0x3
	b10 := (instr >> 8) & 1
	b6 := (instr >> 7) & 1
	b7 := (instr >> 6) & 1
	b3_1 := (instr >> 3) & 0x7
	b5 := (instr >> 2) & 1
	v := (b11 << 11) | (b10 << 10) | (b9_8 << 8) | (b7 << 7) | (b6 << 6) | (b5 << 5) | (b4 << 4) | (b3_1 << 1)
	return signExtend(v, 12)
}

// cbImm extracts the C.BEQZ/C.BNEZ 8-bit signed offset.
func cbImm(instr uint32) int32 {
	b8 := (instr >> 12) & 1
	b4_3 := (instr >> 10) & 0x3
	b7_6 := (instr >> 5) & 0x3
	b2_1 := (instr >> 3) & 0x3
	b5 := (instr >> 2) & 1
	v := (b8 << 8) | (b7_6 << 6) | (b5 << 5) | (b4_3 << 3) | (b2_1 << 1)
	return signExtend(v, 9)
}

// cShamt extracts the C.SLLI/C.SRLI/C.SRAI shift amount, unsigned.
func cShamt(instr uint32) uint32 {
	b5 := (instr >> 12) & 1
	b4_0 := (instr >> 2) & 0x1F
	return (b5 << 5) | b4_0
}

// cAndiImm extracts the C.ANDI signed immediate (same bit layout as
// cShamt, interpreted as a sign-extended 6-bit value).
func cAndiImm(instr uint32) int32 {
	return signExtend(cShamt(instr), 6)
}

// cLuiImm extracts C.LUI's immediate, already positioned as bits
// [17:12] of the final value.
func cLuiImm(instr uint32) int32 {
	b17 := (instr >> 12) & 1
	b16_12 := (instr >> 2) & 0x1F
	v := (b17 << 17) | (b16_12 << 12)
	return signExtend(v, 18)
}

// cAddi16spImm extracts C.ADDI16SP's signed, pre-scaled immediate.
func cAddi16spImm(instr uint32) int32 {
	b9 := (instr >> 12) & 1
	b4 := (instr >> 6) & 1
	b6 := (instr >> 5) & 1
	b8_7 := (instr >> 3) & 0x3
	b5 := (instr >> 2) & 1
	v := (b9 << 9) | (b8_7 << 7) | (b6 << 6) | (b5 << 5) | (b4 << 4)
	return signExtend(v, 10)
}
