package interp

import (
	"math"

	"github.com/lookbusy1344/rv32-emulator/isa"
)

func (it *Interpreter) execM(op isa.Operation) {
	a, b := it.CPU.GetX(op.Rs1), it.CPU.GetX(op.Rs2)
	var r uint32
	switch op.Kind {
	case isa.KindMUL:
		r = a * b
	case isa.KindMULH:
		r = uint32((int64(int32(a)) * int64(int32(b))) >> 32)
	case isa.KindMULHSU:
		r = uint32((int64(int32(a)) * int64(uint64(b))) >> 32)
	case isa.KindMULHU:
		r = uint32((uint64(a) * uint64(b)) >> 32)
	case isa.KindDIV:
		r = divSigned(a, b)
	case isa.KindDIVU:
		r = divUnsigned(a, b)
	case isa.KindREM:
		r = remSigned(a, b)
	case isa.KindREMU:
		r = remUnsigned(a, b)
	}
	it.CPU.SetX(op.Rd, r)
}

// divSigned implements DIV's RISC-V-mandated results for the
// division-by-zero and signed-overflow edge cases (no trap is raised).
func divSigned(a, b uint32) uint32 {
	if b == 0 {
		return 0xFFFFFFFF
	}
	sa, sb := int32(a), int32(b)
	if sa == math.MinInt32 && sb == -1 {
		return a
	}
	return uint32(sa / sb)
}

func divUnsigned(a, b uint32) uint32 {
	if b == 0 {
		return 0xFFFFFFFF
	}
	return a / b
}

func remSigned(a, b uint32) uint32 {
	if b == 0 {
		return a
	}
	sa, sb := int32(a), int32(b)
	if sa == math.MinInt32 && sb == -1 {
		return 0
	}
	return uint32(sa % sb)
}

func remUnsigned(a, b uint32) uint32 {
	if b == 0 {
		return a
	}
	return a % b
}
