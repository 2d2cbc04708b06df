package isa

// operandForm selects how a matched row's operands are extracted from
// the raw instruction word into an Operation.
type operandForm int

const (
	formR      operandForm = iota // rd, rs1, rs2
	formR4                        // rd, rs1, rs2, rs3, rm (fused multiply-add)
	formI                         // rd, rs1, imm (I-immediate)
	formShift                     // rd, rs1, shamt
	formS                         // rs1, rs2, imm (S-immediate): store address + source
	formB                         // rs1, rs2, imm (B-immediate)
	formU                         // rd, imm (U-immediate)
	formJ                         // rd, imm (J-immediate)
	formCSR                       // rd, rs1 (register source), csr
	formCSRI                      // rd, uimm (into Imm), csr
	formAMO                       // rd, rs1, rs2, aq, rl
	formLR                        // rd, rs1, aq, rl (no rs2)
	formFP                        // rd, rs1, rs2, rm (no integer semantics beyond indices)
	formFPR1                      // rd, rs1, rm (single operand + rounding mode: sqrt, conversions)
	formFPCmp                     // rd, rs1, rs2 (compare/sign-inject/min-max, no rm)
	formNone                      // no operands (ECALL, EBREAK, FENCE)
)

// table32 is the declarative row set for the 32-bit (uncompressed)
// RV32IMAFD_Zicsr encoding space. It is validated and compiled into a
// discriminator tree once, at init time.
var table32 = []row{
	{[]match{m(fieldOpcode, 0x37)}, KindLUI, formU},
	{[]match{m(fieldOpcode, 0x17)}, KindAUIPC, formU},
	{[]match{m(fieldOpcode, 0x6F)}, KindJAL, formJ},
	{[]match{m(fieldOpcode, 0x67), m(fieldFunct3, 0)}, KindJALR, formI},

	{[]match{m(fieldOpcode, 0x63), m(fieldFunct3, 0)}, KindBEQ, formB},
	{[]match{m(fieldOpcode, 0x63), m(fieldFunct3, 1)}, KindBNE, formB},
	{[]match{m(fieldOpcode, 0x63), m(fieldFunct3, 4)}, KindBLT, formB},
	{[]match{m(fieldOpcode, 0x63), m(fieldFunct3, 5)}, KindBGE, formB},
	{[]match{m(fieldOpcode, 0x63), m(fieldFunct3, 6)}, KindBLTU, formB},
	{[]match{m(fieldOpcode, 0x63), m(fieldFunct3, 7)}, KindBGEU, formB},

	{[]match{m(fieldOpcode, 0x03), m(fieldFunct3, 0)}, KindLB, formI},
	{[]match{m(fieldOpcode, 0x03), m(fieldFunct3, 1)}, KindLH, formI},
	{[]match{m(fieldOpcode, 0x03), m(fieldFunct3, 2)}, KindLW, formI},
	{[]match{m(fieldOpcode, 0x03), m(fieldFunct3, 4)}, KindLBU, formI},
	{[]match{m(fieldOpcode, 0x03), m(fieldFunct3, 5)}, KindLHU, formI},

	{[]match{m(fieldOpcode, 0x23), m(fieldFunct3, 0)}, KindSB, formS},
	{[]match{m(fieldOpcode, 0x23), m(fieldFunct3, 1)}, KindSH, formS},
	{[]match{m(fieldOpcode, 0x23), m(fieldFunct3, 2)}, KindSW, formS},

	{[]match{m(fieldOpcode, 0x13), m(fieldFunct3, 0)}, KindADDI, formI},
	{[]match{m(fieldOpcode, 0x13), m(fieldFunct3, 2)}, KindSLTI, formI},
	{[]match{m(fieldOpcode, 0x13), m(fieldFunct3, 3)}, KindSLTIU, formI},
	{[]match{m(fieldOpcode, 0x13), m(fieldFunct3, 4)}, KindXORI, formI},
	{[]match{m(fieldOpcode, 0x13), m(fieldFunct3, 6)}, KindORI, formI},
	{[]match{m(fieldOpcode, 0x13), m(fieldFunct3, 7)}, KindANDI, formI},
	{[]match{m(fieldOpcode, 0x13), m(fieldFunct3, 1), m(fieldFunct7, 0x00)}, KindSLLI, formShift},
	{[]match{m(fieldOpcode, 0x13), m(fieldFunct3, 5), m(fieldFunct7, 0x00)}, KindSRLI, formShift},
	{[]match{m(fieldOpcode, 0x13), m(fieldFunct3, 5), m(fieldFunct7, 0x20)}, KindSRAI, formShift},

	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 0), m(fieldFunct7, 0x00)}, KindADD, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 0), m(fieldFunct7, 0x20)}, KindSUB, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 0), m(fieldFunct7, 0x01)}, KindMUL, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 1), m(fieldFunct7, 0x00)}, KindSLL, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 1), m(fieldFunct7, 0x01)}, KindMULH, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 2), m(fieldFunct7, 0x00)}, KindSLT, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 2), m(fieldFunct7, 0x01)}, KindMULHSU, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 3), m(fieldFunct7, 0x00)}, KindSLTU, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 3), m(fieldFunct7, 0x01)}, KindMULHU, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 4), m(fieldFunct7, 0x00)}, KindXOR, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 4), m(fieldFunct7, 0x01)}, KindDIV, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 5), m(fieldFunct7, 0x00)}, KindSRL, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 5), m(fieldFunct7, 0x20)}, KindSRA, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 5), m(fieldFunct7, 0x01)}, KindDIVU, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 6), m(fieldFunct7, 0x00)}, KindOR, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 6), m(fieldFunct7, 0x01)}, KindREM, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 7), m(fieldFunct7, 0x00)}, KindAND, formR},
	{[]match{m(fieldOpcode, 0x33), m(fieldFunct3, 7), m(fieldFunct7, 0x01)}, KindREMU, formR},

	{[]match{m(fieldOpcode, 0x0F), m(fieldFunct3, 0)}, KindFENCE, formNone},

	{[]match{m(fieldOpcode, 0x73), m(fieldFunct3, 0), m(fieldRs2, 0)}, KindECALL, formNone},
	{[]match{m(fieldOpcode, 0x73), m(fieldFunct3, 0), m(fieldRs2, 1)}, KindEBREAK, formNone},
	{[]match{m(fieldOpcode, 0x73), m(fieldFunct3, 1)}, KindCSRRW, formCSR},
	{[]match{m(fieldOpcode, 0x73), m(fieldFunct3, 2)}, KindCSRRS, formCSR},
	{[]match{m(fieldOpcode, 0x73), m(fieldFunct3, 3)}, KindCSRRC, formCSR},
	{[]match{m(fieldOpcode, 0x73), m(fieldFunct3, 5)}, KindCSRRWI, formCSRI},
	{[]match{m(fieldOpcode, 0x73), m(fieldFunct3, 6)}, KindCSRRSI, formCSRI},
	{[]match{m(fieldOpcode, 0x73), m(fieldFunct3, 7)}, KindCSRRCI, formCSRI},

	{[]match{m(fieldOpcode, 0x2F), m(fieldFunct3, 2), m(fieldFunct5, 0x02)}, KindLRW, formLR},
	{[]match{m(fieldOpcode, 0x2F), m(fieldFunct3, 2), m(fieldFunct5, 0x03)}, KindSCW, formAMO},
	{[]match{m(fieldOpcode, 0x2F), m(fieldFunct3, 2), m(fieldFunct5, 0x01)}, KindAMOSWAPW, formAMO},
	{[]match{m(fieldOpcode, 0x2F), m(fieldFunct3, 2), m(fieldFunct5, 0x00)}, KindAMOADDW, formAMO},
	{[]match{m(fieldOpcode, 0x2F), m(fieldFunct3, 2), m(fieldFunct5, 0x04)}, KindAMOXORW, formAMO},
	{[]match{m(fieldOpcode, 0x2F), m(fieldFunct3, 2), m(fieldFunct5, 0x0C)}, KindAMOANDW, formAMO},
	{[]match{m(fieldOpcode, 0x2F), m(fieldFunct3, 2), m(fieldFunct5, 0x08)}, KindAMOORW, formAMO},
	{[]match{m(fieldOpcode, 0x2F), m(fieldFunct3, 2), m(fieldFunct5, 0x10)}, KindAMOMINW, formAMO},
	{[]match{m(fieldOpcode, 0x2F), m(fieldFunct3, 2), m(fieldFunct5, 0x14)}, KindAMOMAXW, formAMO},
	{[]match{m(fieldOpcode, 0x2F), m(fieldFunct3, 2), m(fieldFunct5, 0x18)}, KindAMOMINUW, formAMO},
	{[]match{m(fieldOpcode, 0x2F), m(fieldFunct3, 2), m(fieldFunct5, 0x1C)}, KindAMOMAXUW, formAMO},

	{[]match{m(fieldOpcode, 0x07), m(fieldFunct3, 2)}, KindFLW, formI},
	{[]match{m(fieldOpcode, 0x07), m(fieldFunct3, 3)}, KindFLD, formI},
	{[]match{m(fieldOpcode, 0x27), m(fieldFunct3, 2)}, KindFSW, formS},
	{[]match{m(fieldOpcode, 0x27), m(fieldFunct3, 3)}, KindFSD, formS},

	{[]match{m(fieldOpcode, 0x43), m(fieldFunct2, 0)}, KindFMADDS, formR4},
	{[]match{m(fieldOpcode, 0x43), m(fieldFunct2, 1)}, KindFMADDD, formR4},
	{[]match{m(fieldOpcode, 0x47), m(fieldFunct2, 0)}, KindFMSUBS, formR4},
	{[]match{m(fieldOpcode, 0x47), m(fieldFunct2, 1)}, KindFMSUBD, formR4},
	{[]match{m(fieldOpcode, 0x4B), m(fieldFunct2, 0)}, KindFNMSUBS, formR4},
	{[]match{m(fieldOpcode, 0x4B), m(fieldFunct2, 1)}, KindFNMSUBD, formR4},
	{[]match{m(fieldOpcode, 0x4F), m(fieldFunct2, 0)}, KindFNMADDS, formR4},
	{[]match{m(fieldOpcode, 0x4F), m(fieldFunct2, 1)}, KindFNMADDD, formR4},

	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x00)}, KindFADDS, formFP},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x04)}, KindFSUBS, formFP},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x08)}, KindFMULS, formFP},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x0C)}, KindFDIVS, formFP},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x2C)}, KindFSQRTS, formFPR1},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x01)}, KindFADDD, formFP},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x05)}, KindFSUBD, formFP},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x09)}, KindFMULD, formFP},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x0D)}, KindFDIVD, formFP},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x2D)}, KindFSQRTD, formFPR1},

	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x10), m(fieldFunct3, 0)}, KindFSGNJS, formFPCmp},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x10), m(fieldFunct3, 1)}, KindFSGNJNS, formFPCmp},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x10), m(fieldFunct3, 2)}, KindFSGNJXS, formFPCmp},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x11), m(fieldFunct3, 0)}, KindFSGNJD, formFPCmp},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x11), m(fieldFunct3, 1)}, KindFSGNJND, formFPCmp},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x11), m(fieldFunct3, 2)}, KindFSGNJXD, formFPCmp},

	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x14), m(fieldFunct3, 0)}, KindFMINS, formFPCmp},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x14), m(fieldFunct3, 1)}, KindFMAXS, formFPCmp},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x15), m(fieldFunct3, 0)}, KindFMIND, formFPCmp},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x15), m(fieldFunct3, 1)}, KindFMAXD, formFPCmp},

	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x50), m(fieldFunct3, 2)}, KindFEQS, formFPCmp},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x50), m(fieldFunct3, 1)}, KindFLTS, formFPCmp},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x50), m(fieldFunct3, 0)}, KindFLES, formFPCmp},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x51), m(fieldFunct3, 2)}, KindFEQD, formFPCmp},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x51), m(fieldFunct3, 1)}, KindFLTD, formFPCmp},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x51), m(fieldFunct3, 0)}, KindFLED, formFPCmp},

	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x60), m(fieldRs2, 0)}, KindFCVTWS, formFPR1},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x60), m(fieldRs2, 1)}, KindFCVTWUS, formFPR1},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x61), m(fieldRs2, 0)}, KindFCVTWD, formFPR1},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x61), m(fieldRs2, 1)}, KindFCVTWUD, formFPR1},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x68), m(fieldRs2, 0)}, KindFCVTSW, formFPR1},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x68), m(fieldRs2, 1)}, KindFCVTSWU, formFPR1},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x69), m(fieldRs2, 0)}, KindFCVTDW, formFPR1},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x69), m(fieldRs2, 1)}, KindFCVTDWU, formFPR1},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x20), m(fieldRs2, 1)}, KindFCVTSD, formFPR1},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x21), m(fieldRs2, 0)}, KindFCVTDS, formFPR1},

	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x70), m(fieldRs2, 0), m(fieldFunct3, 0)}, KindFMVXW, formFPR1},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x70), m(fieldRs2, 0), m(fieldFunct3, 1)}, KindFCLASSS, formFPR1},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x71), m(fieldRs2, 0), m(fieldFunct3, 1)}, KindFCLASSD, formFPR1},
	{[]match{m(fieldOpcode, 0x53), m(fieldFunct7, 0x78), m(fieldRs2, 0), m(fieldFunct3, 0)}, KindFMVWX, formFPR1},
}
