package interp

import "github.com/lookbusy1344/rv32-emulator/isa"

// execute dispatches op to its handler. pc is the instruction's own
// address, nextPC the architectural fall-through address (pc + op.Size);
// handlers that do not alter control flow just set it.CPU.PC = nextPC.
func (it *Interpreter) execute(op isa.Operation, pc, nextPC uint32) error {
	switch op.Kind {
	case isa.KindLUI:
		it.CPU.SetX(op.Rd, uint32(op.Imm))
		it.CPU.PC = nextPC
	case isa.KindAUIPC:
		it.CPU.SetX(op.Rd, pc+uint32(op.Imm))
		it.CPU.PC = nextPC

	case isa.KindJAL:
		target := pc + uint32(op.Imm)
		if target%it.fetchAlignment() != 0 {
			return &StopError{StopMisalignedFetch, target}
		}
		it.CPU.SetX(op.Rd, nextPC)
		it.CPU.PC = target
	case isa.KindJALR:
		target := (it.CPU.GetX(op.Rs1) + uint32(op.Imm)) &^ 1
		if target%it.fetchAlignment() != 0 {
			return &StopError{StopMisalignedFetch, target}
		}
		it.CPU.SetX(op.Rd, nextPC)
		it.CPU.PC = target

	case isa.KindBEQ, isa.KindBNE, isa.KindBLT, isa.KindBGE, isa.KindBLTU, isa.KindBGEU:
		return it.execBranch(op, pc, nextPC)

	case isa.KindLB, isa.KindLH, isa.KindLW, isa.KindLBU, isa.KindLHU:
		return it.execLoad(op, nextPC)
	case isa.KindSB, isa.KindSH, isa.KindSW:
		return it.execStore(op, nextPC)

	case isa.KindADDI, isa.KindSLTI, isa.KindSLTIU, isa.KindXORI, isa.KindORI, isa.KindANDI:
		it.execOpImm(op)
		it.CPU.PC = nextPC
	case isa.KindSLLI, isa.KindSRLI, isa.KindSRAI:
		it.execShiftImm(op)
		it.CPU.PC = nextPC
	case isa.KindADD, isa.KindSUB, isa.KindSLL, isa.KindSLT, isa.KindSLTU,
		isa.KindXOR, isa.KindSRL, isa.KindSRA, isa.KindOR, isa.KindAND:
		it.execOp(op)
		it.CPU.PC = nextPC

	case isa.KindMUL, isa.KindMULH, isa.KindMULHSU, isa.KindMULHU,
		isa.KindDIV, isa.KindDIVU, isa.KindREM, isa.KindREMU:
		if !it.Extensions.M {
			return &StopError{StopIllegalInstruction, pc}
		}
		it.execM(op)
		it.CPU.PC = nextPC

	case isa.KindFENCE, isa.KindFENCETSO:
		it.CPU.PC = nextPC

	case isa.KindECALL:
		it.CPU.PC = nextPC
		return &StopError{StopEcall, pc}
	case isa.KindEBREAK:
		it.CPU.PC = nextPC
		return &StopError{StopEbreak, pc}

	case isa.KindCSRRW, isa.KindCSRRS, isa.KindCSRRC, isa.KindCSRRWI, isa.KindCSRRSI, isa.KindCSRRCI:
		if err := it.execCSR(op); err != nil {
			return &StopError{StopIllegalInstruction, pc}
		}
		it.CPU.PC = nextPC

	case isa.KindLRW, isa.KindSCW, isa.KindAMOSWAPW, isa.KindAMOADDW, isa.KindAMOXORW,
		isa.KindAMOANDW, isa.KindAMOORW, isa.KindAMOMINW, isa.KindAMOMAXW,
		isa.KindAMOMINUW, isa.KindAMOMAXUW:
		if !it.Extensions.A {
			return &StopError{StopIllegalInstruction, pc}
		}
		return it.execA(op, pc, nextPC)

	case isa.KindFLW, isa.KindFLD:
		if !it.fpAllowed(op.Kind) {
			return &StopError{StopIllegalInstruction, pc}
		}
		return it.execFLoad(op, nextPC)
	case isa.KindFSW, isa.KindFSD:
		if !it.fpAllowed(op.Kind) {
			return &StopError{StopIllegalInstruction, pc}
		}
		return it.execFStore(op, nextPC)

	default:
		if isFPKind(op.Kind) {
			if !it.fpAllowed(op.Kind) {
				return &StopError{StopIllegalInstruction, pc}
			}
			if err := it.execF(op); err != nil {
				return &StopError{StopIllegalInstruction, pc}
			}
			it.CPU.PC = nextPC
			return nil
		}
		return &StopError{StopIllegalInstruction, pc}
	}
	return nil
}

// fpAllowed reports whether k's required extension is enabled: F for
// single-precision kinds, F and D together for double-precision ones.
func (it *Interpreter) fpAllowed(k isa.Kind) bool {
	if !it.Extensions.F {
		return false
	}
	return !isDoubleFPKind(k) || it.Extensions.D
}

func isDoubleFPKind(k isa.Kind) bool {
	switch k {
	case isa.KindFLD, isa.KindFSD,
		isa.KindFMADDD, isa.KindFMSUBD, isa.KindFNMSUBD, isa.KindFNMADDD,
		isa.KindFADDD, isa.KindFSUBD, isa.KindFMULD, isa.KindFDIVD, isa.KindFSQRTD,
		isa.KindFSGNJD, isa.KindFSGNJND, isa.KindFSGNJXD, isa.KindFMIND, isa.KindFMAXD,
		isa.KindFCVTWD, isa.KindFCVTWUD, isa.KindFEQD, isa.KindFLTD, isa.KindFLED,
		isa.KindFCLASSD, isa.KindFCVTDW, isa.KindFCVTDWU, isa.KindFCVTSD, isa.KindFCVTDS:
		return true
	default:
		return false
	}
}

func (it *Interpreter) execBranch(op isa.Operation, pc, nextPC uint32) error {
	a, b := it.CPU.GetX(op.Rs1), it.CPU.GetX(op.Rs2)
	var taken bool
	switch op.Kind {
	case isa.KindBEQ:
		taken = a == b
	case isa.KindBNE:
		taken = a != b
	case isa.KindBLT:
		taken = int32(a) < int32(b)
	case isa.KindBGE:
		taken = int32(a) >= int32(b)
	case isa.KindBLTU:
		taken = a < b
	case isa.KindBGEU:
		taken = a >= b
	}
	if !taken {
		it.CPU.PC = nextPC
		return nil
	}
	target := pc + uint32(op.Imm)
	if target%it.fetchAlignment() != 0 {
		return &StopError{StopMisalignedFetch, target}
	}
	it.CPU.PC = target
	return nil
}

func (it *Interpreter) execOpImm(op isa.Operation) {
	a := it.CPU.GetX(op.Rs1)
	imm := uint32(op.Imm)
	var r uint32
	switch op.Kind {
	case isa.KindADDI:
		r = a + imm
	case isa.KindSLTI:
		if int32(a) < op.Imm {
			r = 1
		}
	case isa.KindSLTIU:
		if a < imm {
			r = 1
		}
	case isa.KindXORI:
		r = a ^ imm
	case isa.KindORI:
		r = a | imm
	case isa.KindANDI:
		r = a & imm
	}
	it.CPU.SetX(op.Rd, r)
}

func (it *Interpreter) execShiftImm(op isa.Operation) {
	a := it.CPU.GetX(op.Rs1)
	var r uint32
	switch op.Kind {
	case isa.KindSLLI:
		r = a << op.Shamt
	case isa.KindSRLI:
		r = a >> op.Shamt
	case isa.KindSRAI:
		r = uint32(int32(a) >> op.Shamt)
	}
	it.CPU.SetX(op.Rd, r)
}

func (it *Interpreter) execOp(op isa.Operation) {
	a, b := it.CPU.GetX(op.Rs1), it.CPU.GetX(op.Rs2)
	var r uint32
	switch op.Kind {
	case isa.KindADD:
		r = a + b
	case isa.KindSUB:
		r = a - b
	case isa.KindSLL:
		r = a << (b & 0x1F)
	case isa.KindSLT:
		if int32(a) < int32(b) {
			r = 1
		}
	case isa.KindSLTU:
		if a < b {
			r = 1
		}
	case isa.KindXOR:
		r = a ^ b
	case isa.KindSRL:
		r = a >> (b & 0x1F)
	case isa.KindSRA:
		r = uint32(int32(a) >> (b & 0x1F))
	case isa.KindOR:
		r = a | b
	case isa.KindAND:
		r = a & b
	}
	it.CPU.SetX(op.Rd, r)
}

func isFPKind(k isa.Kind) bool {
	switch k {
	case isa.KindFMADDS, isa.KindFMSUBS, isa.KindFNMSUBS, isa.KindFNMADDS,
		isa.KindFADDS, isa.KindFSUBS, isa.KindFMULS, isa.KindFDIVS, isa.KindFSQRTS,
		isa.KindFSGNJS, isa.KindFSGNJNS, isa.KindFSGNJXS, isa.KindFMINS, isa.KindFMAXS,
		isa.KindFCVTWS, isa.KindFCVTWUS, isa.KindFMVXW, isa.KindFEQS, isa.KindFLTS,
		isa.KindFLES, isa.KindFCLASSS, isa.KindFCVTSW, isa.KindFCVTSWU, isa.KindFMVWX,
		isa.KindFMADDD, isa.KindFMSUBD, isa.KindFNMSUBD, isa.KindFNMADDD,
		isa.KindFADDD, isa.KindFSUBD, isa.KindFMULD, isa.KindFDIVD, isa.KindFSQRTD,
		isa.KindFSGNJD, isa.KindFSGNJND, isa.KindFSGNJXD, isa.KindFMIND, isa.KindFMAXD,
		isa.KindFCVTWD, isa.KindFCVTWUD, isa.KindFEQD, isa.KindFLTD, isa.KindFLED,
		isa.KindFCLASSD, isa.KindFCVTDW, isa.KindFCVTDWU, isa.KindFCVTSD, isa.KindFCVTDS:
		return true
	default:
		return false
	}
}
