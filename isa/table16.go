package isa

var (
	fieldCOp       = &field{"c.op", cOpcode}
	fieldCFunct3   = &field{"c.funct3", cFunct3}
	fieldCBit12    = &field{"c.bit12", cBit12}
	fieldCFunct2Hi = &field{"c.funct2hi", cFunct2Hi}
	fieldCFunct2Lo = &field{"c.funct2lo", cFunct2Lo}
	fieldCRs2Full  = &field{"c.rs2full", cRs2Full}
	fieldCRdFull   = &field{"c.rdfull", cRdFull}
)

// compressed operand forms. Each expands to one of the existing Kind
// values so execution handlers never need to know whether an
// instruction arrived compressed.
type cForm int

const (
	cFormCIW    cForm = iota // C.ADDI4SPN
	cFormCLW                 // C.LW
	cFormCLD                 // C.FLD
	cFormCSW                 // C.SW
	cFormCSD                 // C.FSD
	cFormADDI                // C.ADDI
	cFormJALLink             // C.JAL (rd = x1)
	cFormLI                  // C.LI
	cFormADDI16SP
	cFormLUI
	cFormShift    // C.SRLI/C.SRAI
	cFormANDI
	cFormArith    // C.SUB/C.XOR/C.OR/C.AND
	cFormJ        // C.J (rd = x0)
	cFormBranch   // C.BEQZ/C.BNEZ
	cFormSLLI
	cFormLSP      // C.LWSP/C.FLWSP
	cFormLDSP     // C.FLDSP
	cFormJR
	cFormMV
	cFormEBREAK
	cFormJALR
	cFormADD
	cFormSSP  // C.SWSP/C.FSWSP
	cFormSDSP // C.FSDSP
)

type crow struct {
	path []match
	kind Kind
	form cForm
}

const (
	x0 = 0
	x1 = 1
	x2 = 2
)

var table16 = []crow{
	{[]match{m(fieldCOp, 0), m(fieldCFunct3, 0)}, KindADDI, cFormCIW},
	{[]match{m(fieldCOp, 0), m(fieldCFunct3, 1)}, KindFLD, cFormCLD},
	{[]match{m(fieldCOp, 0), m(fieldCFunct3, 2)}, KindLW, cFormCLW},
	{[]match{m(fieldCOp, 0), m(fieldCFunct3, 3)}, KindFLW, cFormCLW},
	{[]match{m(fieldCOp, 0), m(fieldCFunct3, 5)}, KindFSD, cFormCSD},
	{[]match{m(fieldCOp, 0), m(fieldCFunct3, 6)}, KindSW, cFormCSW},
	{[]match{m(fieldCOp, 0), m(fieldCFunct3, 7)}, KindFSW, cFormCSW},

	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 0)}, KindADDI, cFormADDI},
	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 1)}, KindJAL, cFormJALLink},
	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 2)}, KindADDI, cFormLI},
	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 3), m(fieldCRdFull, 2)}, KindADDI, cFormADDI16SP},
	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 3), wc(fieldCRdFull)}, KindLUI, cFormLUI},

	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 4), m(fieldCFunct2Hi, 0)}, KindSRLI, cFormShift},
	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 4), m(fieldCFunct2Hi, 1)}, KindSRAI, cFormShift},
	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 4), m(fieldCFunct2Hi, 2)}, KindANDI, cFormANDI},
	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 4), m(fieldCFunct2Hi, 3), m(fieldCBit12, 0), m(fieldCFunct2Lo, 0)}, KindSUB, cFormArith},
	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 4), m(fieldCFunct2Hi, 3), m(fieldCBit12, 0), m(fieldCFunct2Lo, 1)}, KindXOR, cFormArith},
	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 4), m(fieldCFunct2Hi, 3), m(fieldCBit12, 0), m(fieldCFunct2Lo, 2)}, KindOR, cFormArith},
	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 4), m(fieldCFunct2Hi, 3), m(fieldCBit12, 0), m(fieldCFunct2Lo, 3)}, KindAND, cFormArith},

	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 5)}, KindJAL, cFormJ},
	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 6)}, KindBEQ, cFormBranch},
	{[]match{m(fieldCOp, 1), m(fieldCFunct3, 7)}, KindBNE, cFormBranch},

	{[]match{m(fieldCOp, 2), m(fieldCFunct3, 0), m(fieldCBit12, 0)}, KindSLLI, cFormSLLI},
	{[]match{m(fieldCOp, 2), m(fieldCFunct3, 1)}, KindFLD, cFormLDSP},
	{[]match{m(fieldCOp, 2), m(fieldCFunct3, 2)}, KindLW, cFormLSP},
	{[]match{m(fieldCOp, 2), m(fieldCFunct3, 3)}, KindFLW, cFormLSP},

	{[]match{m(fieldCOp, 2), m(fieldCFunct3, 4), m(fieldCBit12, 0), m(fieldCRs2Full, 0)}, KindJALR, cFormJR},
	{[]match{m(fieldCOp, 2), m(fieldCFunct3, 4), m(fieldCBit12, 0), wc(fieldCRs2Full)}, KindADD, cFormMV},
	{[]match{m(fieldCOp, 2), m(fieldCFunct3, 4), m(fieldCBit12, 1), m(fieldCRs2Full, 0), m(fieldCRdFull, 0)}, KindEBREAK, cFormEBREAK},
	{[]match{m(fieldCOp, 2), m(fieldCFunct3, 4), m(fieldCBit12, 1), m(fieldCRs2Full, 0), wc(fieldCRdFull)}, KindJALR, cFormJALR},
	{[]match{m(fieldCOp, 2), m(fieldCFunct3, 4), m(fieldCBit12, 1), wc(fieldCRs2Full)}, KindADD, cFormADD},

	{[]match{m(fieldCOp, 2), m(fieldCFunct3, 5)}, KindFSD, cFormSDSP},
	{[]match{m(fieldCOp, 2), m(fieldCFunct3, 6)}, KindSW, cFormSSP},
	{[]match{m(fieldCOp, 2), m(fieldCFunct3, 7)}, KindFSW, cFormSSP},
}
