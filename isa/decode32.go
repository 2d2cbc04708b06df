package isa

var tree32 *treeNode

func init() {
	t, err := buildTree(table32)
	if err != nil {
		panic(err)
	}
	tree32 = t
}

// Decode32 decodes a 32-bit standard-form instruction word. ok is
// false if no row in the table matches; callers must treat that as a
// decode failure (illegal instruction), never as a silent no-op.
func Decode32(instr uint32) (Operation, bool) {
	r, ok := tree32.decode(instr)
	if !ok {
		return Operation{Kind: KindIllegal, Raw: instr, Size: 4}, false
	}
	op := Operation{Kind: r.kind, Raw: instr, Size: 4}
	fillOperands(&op, instr, r.form)
	return op, true
}

// fillOperands extracts the operand fields appropriate to form from
// instr into op. Each form corresponds to exactly one RISC-V
// instruction encoding shape.
func fillOperands(op *Operation, instr uint32, form operandForm) {
	switch form {
	case formR:
		op.Rd, op.Rs1, op.Rs2 = Rd(instr), Rs1(instr), Rs2(instr)
	case formR4:
		op.Rd, op.Rs1, op.Rs2, op.Rs3 = Rd(instr), Rs1(instr), Rs2(instr), Rs3(instr)
		op.RM = RM(instr)
	case formI:
		op.Rd, op.Rs1, op.Imm = Rd(instr), Rs1(instr), IImm(instr)
	case formShift:
		op.Rd, op.Rs1, op.Shamt = Rd(instr), Rs1(instr), Shamt(instr)
	case formS:
		op.Rs1, op.Rs2, op.Imm = Rs1(instr), Rs2(instr), SImm(instr)
	case formB:
		op.Rs1, op.Rs2, op.Imm = Rs1(instr), Rs2(instr), BImm(instr)
	case formU:
		op.Rd, op.Imm = Rd(instr), UImm(instr)
	case formJ:
		op.Rd, op.Imm = Rd(instr), JImm(instr)
	case formCSR:
		op.Rd, op.Rs1, op.Csr = Rd(instr), Rs1(instr), CsrIndex(instr)
	case formCSRI:
		op.Rd, op.Csr = Rd(instr), CsrIndex(instr)
		op.Imm = int32(Rs1(instr)) // uimm lives in the rs1 bit field
	case formAMO:
		op.Rd, op.Rs1, op.Rs2, op.Aq, op.Rl = Rd(instr), Rs1(instr), Rs2(instr), Aq(instr), Rl(instr)
	case formLR:
		op.Rd, op.Rs1, op.Aq, op.Rl = Rd(instr), Rs1(instr), Aq(instr), Rl(instr)
	case formFP:
		op.Rd, op.Rs1, op.Rs2 = Rd(instr), Rs1(instr), Rs2(instr)
		op.RM = RM(instr)
	case formFPR1:
		op.Rd, op.Rs1 = Rd(instr), Rs1(instr)
		op.RM = RM(instr)
	case formFPCmp:
		op.Rd, op.Rs1, op.Rs2 = Rd(instr), Rs1(instr), Rs2(instr)
	case formNone:
		// no operand fields
	}
}
