package interp

import (
	"errors"

	"github.com/lookbusy1344/rv32-emulator/isa"
	"github.com/lookbusy1344/rv32-emulator/softfloat"
)

// errReservedRM reports an instruction whose rm field selects one of
// the two reserved codes (5 or 6).
var errReservedRM = errors.New("interp: reserved rounding mode")

// rm resolves op's rounding-mode field against the dynamic mode in
// fcsr, returning false for the reserved codes 5/6.
func (it *Interpreter) rm(op isa.Operation) (softfloat.Rm, bool) {
	mode, ok := it.CPU.ResolveRoundingMode(int(op.RM))
	if !ok {
		return 0, false
	}
	return softfloat.Rm(mode), true
}

// execF implements the F and D extension arithmetic, comparison,
// conversion, classify and sign-injection instructions.
func (it *Interpreter) execF(op isa.Operation) error {
	switch op.Kind {
	case isa.KindFMADDS, isa.KindFMSUBS, isa.KindFNMSUBS, isa.KindFNMADDS:
		return it.execFMA32(op)
	case isa.KindFMADDD, isa.KindFMSUBD, isa.KindFNMSUBD, isa.KindFNMADDD:
		return it.execFMA64(op)

	case isa.KindFADDS, isa.KindFSUBS, isa.KindFMULS, isa.KindFDIVS:
		return it.execFArith32(op)
	case isa.KindFADDD, isa.KindFSUBD, isa.KindFMULD, isa.KindFDIVD:
		return it.execFArith64(op)

	case isa.KindFSQRTS:
		mode, ok := it.rm(op)
		if !ok {
			return errReservedRM
		}
		r, flags := softfloat.Sqrt32(mode, it.CPU.GetFSingle(op.Rs1))
		it.CPU.SetFSingle(op.Rd, r)
		it.CPU.AccumulateFlags(uint32(flags))
	case isa.KindFSQRTD:
		mode, ok := it.rm(op)
		if !ok {
			return errReservedRM
		}
		r, flags := softfloat.Sqrt64(mode, it.CPU.GetFDouble(op.Rs1))
		it.CPU.SetFDouble(op.Rd, r)
		it.CPU.AccumulateFlags(uint32(flags))

	case isa.KindFSGNJS, isa.KindFSGNJNS, isa.KindFSGNJXS:
		it.CPU.SetFSingle(op.Rd, softfloat.SignInjectS(it.CPU.GetFSingle(op.Rs1), it.CPU.GetFSingle(op.Rs2), signMode(op.Kind)))
	case isa.KindFSGNJD, isa.KindFSGNJND, isa.KindFSGNJXD:
		it.CPU.SetFDouble(op.Rd, softfloat.SignInjectD(it.CPU.GetFDouble(op.Rs1), it.CPU.GetFDouble(op.Rs2), signMode(op.Kind)))

	case isa.KindFMINS, isa.KindFMAXS:
		var r uint32
		var flags softfloat.Flags
		if op.Kind == isa.KindFMINS {
			r, flags = softfloat.Min32(it.CPU.GetFSingle(op.Rs1), it.CPU.GetFSingle(op.Rs2))
		} else {
			r, flags = softfloat.Max32(it.CPU.GetFSingle(op.Rs1), it.CPU.GetFSingle(op.Rs2))
		}
		it.CPU.SetFSingle(op.Rd, r)
		it.CPU.AccumulateFlags(uint32(flags))
	case isa.KindFMIND, isa.KindFMAXD:
		var r uint64
		var flags softfloat.Flags
		if op.Kind == isa.KindFMIND {
			r, flags = softfloat.Min64(it.CPU.GetFDouble(op.Rs1), it.CPU.GetFDouble(op.Rs2))
		} else {
			r, flags = softfloat.Max64(it.CPU.GetFDouble(op.Rs1), it.CPU.GetFDouble(op.Rs2))
		}
		it.CPU.SetFDouble(op.Rd, r)
		it.CPU.AccumulateFlags(uint32(flags))

	case isa.KindFEQS, isa.KindFLTS, isa.KindFLES:
		result, flags := it.fcmp32(op)
		it.setCmp(op, result, flags)
	case isa.KindFEQD, isa.KindFLTD, isa.KindFLED:
		result, flags := it.fcmp64(op)
		it.setCmp(op, result, flags)

	case isa.KindFCLASSS:
		it.CPU.SetX(op.Rd, softfloat.Classify32(it.CPU.GetFSingle(op.Rs1)))
	case isa.KindFCLASSD:
		it.CPU.SetX(op.Rd, softfloat.Classify64(it.CPU.GetFDouble(op.Rs1)))

	case isa.KindFMVXW:
		it.CPU.SetX(op.Rd, it.CPU.GetFSingle(op.Rs1))
	case isa.KindFMVWX:
		it.CPU.SetFSingle(op.Rd, it.CPU.GetX(op.Rs1))

	case isa.KindFCVTWS, isa.KindFCVTWUS, isa.KindFCVTWD, isa.KindFCVTWUD:
		return it.execFCVTToInt(op)
	case isa.KindFCVTSW, isa.KindFCVTSWU, isa.KindFCVTDW, isa.KindFCVTDWU:
		return it.execFCVTFromInt(op)

	case isa.KindFCVTSD:
		mode, ok := it.rm(op)
		if !ok {
			return errReservedRM
		}
		r, flags := softfloat.Narrow64To32(mode, it.CPU.GetFDouble(op.Rs1))
		it.CPU.SetFSingle(op.Rd, r)
		it.CPU.AccumulateFlags(uint32(flags))
	case isa.KindFCVTDS:
		r, flags := softfloat.Widen32To64(it.CPU.GetFSingle(op.Rs1))
		it.CPU.SetFDouble(op.Rd, r)
		it.CPU.AccumulateFlags(uint32(flags))
	}
	return nil
}

func (it *Interpreter) execFMA32(op isa.Operation) error {
	mode, ok := it.rm(op)
	if !ok {
		return errReservedRM
	}
	a := it.CPU.GetFSingle(op.Rs1)
	b := it.CPU.GetFSingle(op.Rs2)
	c := it.CPU.GetFSingle(op.Rs3)
	switch op.Kind {
	case isa.KindFMSUBS:
		c ^= 1 << 31
	case isa.KindFNMSUBS:
		a ^= 1 << 31
	case isa.KindFNMADDS:
		a ^= 1 << 31
		c ^= 1 << 31
	}
	r, flags := softfloat.Fma32(mode, a, b, c)
	it.CPU.SetFSingle(op.Rd, r)
	it.CPU.AccumulateFlags(uint32(flags))
	return nil
}

func (it *Interpreter) execFMA64(op isa.Operation) error {
	mode, ok := it.rm(op)
	if !ok {
		return errReservedRM
	}
	a := it.CPU.GetFDouble(op.Rs1)
	b := it.CPU.GetFDouble(op.Rs2)
	c := it.CPU.GetFDouble(op.Rs3)
	switch op.Kind {
	case isa.KindFMSUBD:
		c ^= 1 << 63
	case isa.KindFNMSUBD:
		a ^= 1 << 63
	case isa.KindFNMADDD:
		a ^= 1 << 63
		c ^= 1 << 63
	}
	r, flags := softfloat.Fma64(mode, a, b, c)
	it.CPU.SetFDouble(op.Rd, r)
	it.CPU.AccumulateFlags(uint32(flags))
	return nil
}

func (it *Interpreter) execFArith32(op isa.Operation) error {
	mode, ok := it.rm(op)
	if !ok {
		return errReservedRM
	}
	a, b := it.CPU.GetFSingle(op.Rs1), it.CPU.GetFSingle(op.Rs2)
	var r uint32
	var flags softfloat.Flags
	switch op.Kind {
	case isa.KindFADDS:
		r, flags = softfloat.Add32(mode, a, b)
	case isa.KindFSUBS:
		r, flags = softfloat.Sub32(mode, a, b)
	case isa.KindFMULS:
		r, flags = softfloat.Mul32(mode, a, b)
	case isa.KindFDIVS:
		r, flags = softfloat.Div32(mode, a, b)
	}
	it.CPU.SetFSingle(op.Rd, r)
	it.CPU.AccumulateFlags(uint32(flags))
	return nil
}

func (it *Interpreter) execFArith64(op isa.Operation) error {
	mode, ok := it.rm(op)
	if !ok {
		return errReservedRM
	}
	a, b := it.CPU.GetFDouble(op.Rs1), it.CPU.GetFDouble(op.Rs2)
	var r uint64
	var flags softfloat.Flags
	switch op.Kind {
	case isa.KindFADDD:
		r, flags = softfloat.Add64(mode, a, b)
	case isa.KindFSUBD:
		r, flags = softfloat.Sub64(mode, a, b)
	case isa.KindFMULD:
		r, flags = softfloat.Mul64(mode, a, b)
	case isa.KindFDIVD:
		r, flags = softfloat.Div64(mode, a, b)
	}
	it.CPU.SetFDouble(op.Rd, r)
	it.CPU.AccumulateFlags(uint32(flags))
	return nil
}

func (it *Interpreter) fcmp32(op isa.Operation) (bool, softfloat.Flags) {
	a, b := it.CPU.GetFSingle(op.Rs1), it.CPU.GetFSingle(op.Rs2)
	switch op.Kind {
	case isa.KindFEQS:
		return softfloat.Eq32(a, b)
	case isa.KindFLTS:
		return softfloat.Lt32(a, b)
	default:
		return softfloat.Le32(a, b)
	}
}

func (it *Interpreter) fcmp64(op isa.Operation) (bool, softfloat.Flags) {
	a, b := it.CPU.GetFDouble(op.Rs1), it.CPU.GetFDouble(op.Rs2)
	switch op.Kind {
	case isa.KindFEQD:
		return softfloat.Eq64(a, b)
	case isa.KindFLTD:
		return softfloat.Lt64(a, b)
	default:
		return softfloat.Le64(a, b)
	}
}

func (it *Interpreter) setCmp(op isa.Operation, result bool, flags softfloat.Flags) {
	var v uint32
	if result {
		v = 1
	}
	it.CPU.SetX(op.Rd, v)
	it.CPU.AccumulateFlags(uint32(flags))
}

func (it *Interpreter) execFCVTToInt(op isa.Operation) error {
	mode, ok := it.rm(op)
	if !ok {
		return errReservedRM
	}
	var v int32
	var u uint32
	var flags softfloat.Flags
	switch op.Kind {
	case isa.KindFCVTWS:
		v, flags = softfloat.ToInt32From32(mode, it.CPU.GetFSingle(op.Rs1))
		it.CPU.SetX(op.Rd, uint32(v))
	case isa.KindFCVTWUS:
		u, flags = softfloat.ToUint32From32(mode, it.CPU.GetFSingle(op.Rs1))
		it.CPU.SetX(op.Rd, u)
	case isa.KindFCVTWD:
		v, flags = softfloat.ToInt32From64(mode, it.CPU.GetFDouble(op.Rs1))
		it.CPU.SetX(op.Rd, uint32(v))
	case isa.KindFCVTWUD:
		u, flags = softfloat.ToUint32From64(mode, it.CPU.GetFDouble(op.Rs1))
		it.CPU.SetX(op.Rd, u)
	}
	it.CPU.AccumulateFlags(uint32(flags))
	return nil
}

func (it *Interpreter) execFCVTFromInt(op isa.Operation) error {
	mode, ok := it.rm(op)
	if !ok {
		return errReservedRM
	}
	x := it.CPU.GetX(op.Rs1)
	var flags softfloat.Flags
	switch op.Kind {
	case isa.KindFCVTSW:
		var r uint32
		r, flags = softfloat.FromInt32To32(mode, int32(x))
		it.CPU.SetFSingle(op.Rd, r)
	case isa.KindFCVTSWU:
		var r uint32
		r, flags = softfloat.FromUint32To32(mode, x)
		it.CPU.SetFSingle(op.Rd, r)
	case isa.KindFCVTDW:
		var r uint64
		r, flags = softfloat.FromInt32To64(mode, int32(x))
		it.CPU.SetFDouble(op.Rd, r)
	case isa.KindFCVTDWU:
		var r uint64
		r, flags = softfloat.FromUint32To64(mode, x)
		it.CPU.SetFDouble(op.Rd, r)
	}
	it.CPU.AccumulateFlags(uint32(flags))
	return nil
}

func signMode(k isa.Kind) softfloat.SignMode {
	switch k {
	case isa.KindFSGNJNS, isa.KindFSGNJND:
		return softfloat.SignInjectNeg
	case isa.KindFSGNJXS, isa.KindFSGNJXD:
		return softfloat.SignInjectXor
	default:
		return softfloat.SignInject
	}
}
