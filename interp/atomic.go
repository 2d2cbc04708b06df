package interp

import "github.com/lookbusy1344/rv32-emulator/isa"

// execA handles LR.W, SC.W and the AMO*.W instructions. Atomics are
// the only accesses that enforce alignment themselves: a misaligned
// atomic cannot be carried out as the single indivisible bus
// transaction the operation requires.
func (it *Interpreter) execA(op isa.Operation, pc, nextPC uint32) error {
	addr := it.CPU.GetX(op.Rs1)
	if addr%4 != 0 {
		it.CPU.PC = nextPC
		return &StopError{StopMisalignedAccess, addr}
	}

	if op.Kind == isa.KindLRW {
		w, ok := it.Mem.LoadWord(addr)
		if !ok {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
		it.CPU.SetReservation(addr)
		it.CPU.SetX(op.Rd, w)
		it.CPU.PC = nextPC
		return nil
	}

	if op.Kind == isa.KindSCW {
		if !it.CPU.ReservationMatches(addr) {
			it.CPU.SetX(op.Rd, 1)
			it.CPU.PC = nextPC
			return nil
		}
		if !it.Mem.StoreWord(addr, it.CPU.GetX(op.Rs2)) {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
		it.CPU.ClearReservation()
		it.CPU.SetX(op.Rd, 0)
		it.CPU.PC = nextPC
		return nil
	}

	old, ok := it.Mem.LoadWord(addr)
	if !ok {
		it.CPU.PC = nextPC
		return &StopError{StopIllegalAccess, addr}
	}

	// Write the loaded value to rd (respecting the x0-is-always-zero
	// rule) before computing the new value, so amoop rd, rs2, (rs1)
	// with rd aliasing x0 or rs2 operates on the value now in rd, not
	// on a local copy of the pre-write load.
	it.CPU.SetX(op.Rd, old)
	rd := it.CPU.GetX(op.Rd)
	rs2 := it.CPU.GetX(op.Rs2)

	var result uint32
	switch op.Kind {
	case isa.KindAMOSWAPW:
		result = rs2
	case isa.KindAMOADDW:
		result = rd + rs2
	case isa.KindAMOXORW:
		result = rd ^ rs2
	case isa.KindAMOANDW:
		result = rd & rs2
	case isa.KindAMOORW:
		result = rd | rs2
	case isa.KindAMOMINW:
		if int32(rd) < int32(rs2) {
			result = rd
		} else {
			result = rs2
		}
	case isa.KindAMOMAXW:
		if int32(rd) > int32(rs2) {
			result = rd
		} else {
			result = rs2
		}
	case isa.KindAMOMINUW:
		if rd < rs2 {
			result = rd
		} else {
			result = rs2
		}
	case isa.KindAMOMAXUW:
		if rd > rs2 {
			result = rd
		} else {
			result = rs2
		}
	}
	if !it.Mem.StoreWord(addr, result) {
		it.CPU.PC = nextPC
		return &StopError{StopIllegalAccess, addr}
	}
	it.CPU.ClearReservation()
	it.CPU.PC = nextPC
	return nil
}
