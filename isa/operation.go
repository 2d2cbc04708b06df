package isa

// Kind discriminates the decoded instruction variants. Each Kind names
// exactly one architectural operation; width and precision are part of
// the Kind itself rather than a separate field, since the ISA never
// mixes them within a single encoding.
type Kind uint16

const (
	KindIllegal Kind = iota // decode failure; never a successful no-op

	// RV32I
	KindLUI
	KindAUIPC
	KindJAL
	KindJALR
	KindBEQ
	KindBNE
	KindBLT
	KindBGE
	KindBLTU
	KindBGEU
	KindLB
	KindLH
	KindLW
	KindLBU
	KindLHU
	KindSB
	KindSH
	KindSW
	KindADDI
	KindSLTI
	KindSLTIU
	KindXORI
	KindORI
	KindANDI
	KindSLLI
	KindSRLI
	KindSRAI
	KindADD
	KindSUB
	KindSLL
	KindSLT
	KindSLTU
	KindXOR
	KindSRL
	KindSRA
	KindOR
	KindAND
	KindFENCE
	KindFENCETSO
	KindECALL
	KindEBREAK

	// Zicsr
	KindCSRRW
	KindCSRRS
	KindCSRRC
	KindCSRRWI
	KindCSRRSI
	KindCSRRCI

	// M extension
	KindMUL
	KindMULH
	KindMULHSU
	KindMULHU
	KindDIV
	KindDIVU
	KindREM
	KindREMU

	// A extension
	KindLRW
	KindSCW
	KindAMOSWAPW
	KindAMOADDW
	KindAMOXORW
	KindAMOANDW
	KindAMOORW
	KindAMOMINW
	KindAMOMAXW
	KindAMOMINUW
	KindAMOMAXUW

	// F extension
	KindFLW
	KindFSW
	KindFMADDS
	KindFMSUBS
	KindFNMSUBS
	KindFNMADDS
	KindFADDS
	KindFSUBS
	KindFMULS
	KindFDIVS
	KindFSQRTS
	KindFSGNJS
	KindFSGNJNS
	KindFSGNJXS
	KindFMINS
	KindFMAXS
	KindFCVTWS
	KindFCVTWUS
	KindFMVXW
	KindFEQS
	KindFLTS
	KindFLES
	KindFCLASSS
	KindFCVTSW
	KindFCVTSWU
	KindFMVWX

	// D extension
	KindFLD
	KindFSD
	KindFMADDD
	KindFMSUBD
	KindFNMSUBD
	KindFNMADDD
	KindFADDD
	KindFSUBD
	KindFMULD
	KindFDIVD
	KindFSQRTD
	KindFSGNJD
	KindFSGNJND
	KindFSGNJXD
	KindFMIND
	KindFMAXD
	KindFCVTWD
	KindFCVTWUD
	KindFEQD
	KindFLTD
	KindFLED
	KindFCLASSD
	KindFCVTDW
	KindFCVTDWU
	KindFCVTSD
	KindFCVTDS

	kindCount
)

// Operation is the decoded, already bit-extracted form of one
// instruction word. All variants share this single representation;
// a handler keys off Kind and reads only the fields its variant uses.
type Operation struct {
	Kind Kind

	Rd, Rs1, Rs2, Rs3 int

	// Imm carries the sign-extended immediate for I/S/B/U/J forms.
	// For CSR-immediate variants (CSRRWI/CSRRSI/CSRRCI) it carries the
	// zero-extended 5-bit uimm instead of a register index in Rs1.
	Imm int32

	Shamt uint32
	RM    uint32
	Csr   uint32
	Aq    bool
	Rl    bool

	// Raw is the original instruction word, kept for diagnostics and
	// for encoding round-trip tests; execution never reads it.
	Raw uint32

	// Size is the instruction length in bytes: 4 for standard
	// encodings, 2 for compressed ones. Needed to compute the
	// fall-through PC.
	Size uint32
}
