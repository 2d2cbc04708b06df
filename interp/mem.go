package interp

import "github.com/lookbusy1344/rv32-emulator/isa"

// Non-atomic loads and stores delegate alignment entirely to the host
// memory; only atomic (AMO/LR/SC) accesses enforce 4-byte alignment
// themselves, per the architectural distinction between an ordinary
// access and one that must be a single indivisible bus transaction.

func (it *Interpreter) execLoad(op isa.Operation, nextPC uint32) error {
	addr := it.CPU.GetX(op.Rs1) + uint32(op.Imm)
	var v uint32
	switch op.Kind {
	case isa.KindLB:
		b, ok := it.Mem.LoadByte(addr)
		if !ok {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
		v = uint32(int32(int8(b)))
	case isa.KindLBU:
		b, ok := it.Mem.LoadByte(addr)
		if !ok {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
		v = uint32(b)
	case isa.KindLH:
		h, ok := it.Mem.LoadHalf(addr)
		if !ok {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
		v = uint32(int32(int16(h)))
	case isa.KindLHU:
		h, ok := it.Mem.LoadHalf(addr)
		if !ok {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
		v = uint32(h)
	case isa.KindLW:
		w, ok := it.Mem.LoadWord(addr)
		if !ok {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
		v = w
	}
	it.CPU.SetX(op.Rd, v)
	it.CPU.PC = nextPC
	return nil
}

func (it *Interpreter) execStore(op isa.Operation, nextPC uint32) error {
	addr := it.CPU.GetX(op.Rs1) + uint32(op.Imm)
	v := it.CPU.GetX(op.Rs2)
	switch op.Kind {
	case isa.KindSB:
		if !it.Mem.StoreByte(addr, byte(v)) {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
	case isa.KindSH:
		if !it.Mem.StoreHalf(addr, uint16(v)) {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
	case isa.KindSW:
		if !it.Mem.StoreWord(addr, v) {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
	}
	it.CPU.ClearReservation()
	it.CPU.PC = nextPC
	return nil
}

func (it *Interpreter) execFLoad(op isa.Operation, nextPC uint32) error {
	addr := it.CPU.GetX(op.Rs1) + uint32(op.Imm)
	switch op.Kind {
	case isa.KindFLW:
		w, ok := it.Mem.LoadWord(addr)
		if !ok {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
		it.CPU.SetFSingle(op.Rd, w)
	case isa.KindFLD:
		lo, ok1 := it.Mem.LoadWord(addr)
		hi, ok2 := it.Mem.LoadWord(addr + 4)
		if !ok1 || !ok2 {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
		it.CPU.SetFDouble(op.Rd, uint64(lo)|uint64(hi)<<32)
	}
	it.CPU.PC = nextPC
	return nil
}

func (it *Interpreter) execFStore(op isa.Operation, nextPC uint32) error {
	addr := it.CPU.GetX(op.Rs1) + uint32(op.Imm)
	switch op.Kind {
	case isa.KindFSW:
		if !it.Mem.StoreWord(addr, it.CPU.GetFSingle(op.Rs2)) {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
	case isa.KindFSD:
		v := it.CPU.GetFDouble(op.Rs2)
		if !it.Mem.StoreWord(addr, uint32(v)) || !it.Mem.StoreWord(addr+4, uint32(v>>32)) {
			it.CPU.PC = nextPC
			return &StopError{StopIllegalAccess, addr}
		}
	}
	it.CPU.ClearReservation()
	it.CPU.PC = nextPC
	return nil
}
