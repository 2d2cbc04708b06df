package softfloat

import "math"

// Eq32 implements FEQ.S: a quiet comparison that signals NV only on a
// signaling NaN operand.
func Eq32(aBits, bBits uint32) (bool, Flags) {
	a, b := math.Float32frombits(aBits), math.Float32frombits(bBits)
	var flags Flags
	if isSignalingNaN32(aBits) || isSignalingNaN32(bBits) {
		flags |= FlagNV
	}
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return false, flags
	}
	return a == b, flags
}

// Lt32/Le32 implement FLT.S/FLE.S: these signal NV on any NaN operand,
// quiet or signaling.
func Lt32(aBits, bBits uint32) (bool, Flags) {
	a, b := math.Float32frombits(aBits), math.Float32frombits(bBits)
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return false, FlagNV
	}
	return a < b, 0
}

func Le32(aBits, bBits uint32) (bool, Flags) {
	a, b := math.Float32frombits(aBits), math.Float32frombits(bBits)
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return false, FlagNV
	}
	return a <= b, 0
}

func Eq64(aBits, bBits uint64) (bool, Flags) {
	a, b := math.Float64frombits(aBits), math.Float64frombits(bBits)
	var flags Flags
	if isSignalingNaN64(aBits) || isSignalingNaN64(bBits) {
		flags |= FlagNV
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false, flags
	}
	return a == b, flags
}

func Lt64(aBits, bBits uint64) (bool, Flags) {
	a, b := math.Float64frombits(aBits), math.Float64frombits(bBits)
	if math.IsNaN(a) || math.IsNaN(b) {
		return false, FlagNV
	}
	return a < b, 0
}

func Le64(aBits, bBits uint64) (bool, Flags) {
	a, b := math.Float64frombits(aBits), math.Float64frombits(bBits)
	if math.IsNaN(a) || math.IsNaN(b) {
		return false, FlagNV
	}
	return a <= b, 0
}

// isNegZero32/isNegZero64 report whether bits represent -0.0.
func isNegZero32(bits uint32) bool { return bits == 0x80000000 }
func isNegZero64(bits uint64) bool { return bits == 0x8000000000000000 }

// Min32/Max32 implement the 2019 ISA min/max semantics: -0 < +0, a
// quiet NaN paired with a number yields the number, two NaNs yield the
// canonical NaN, and any signaling NaN operand sets NV regardless of
// which value is selected.
func Min32(aBits, bBits uint32) (uint32, Flags) {
	return minMax32(aBits, bBits, true)
}

func Max32(aBits, bBits uint32) (uint32, Flags) {
	return minMax32(aBits, bBits, false)
}

func minMax32(aBits, bBits uint32, wantMin bool) (uint32, Flags) {
	a, b := math.Float32frombits(aBits), math.Float32frombits(bBits)
	aNaN, bNaN := math.IsNaN(float64(a)), math.IsNaN(float64(b))
	var flags Flags
	if isSignalingNaN32(aBits) || isSignalingNaN32(bBits) {
		flags |= FlagNV
	}
	switch {
	case aNaN && bNaN:
		return canonicalNaN32, flags
	case aNaN:
		return bBits, flags
	case bNaN:
		return aBits, flags
	}
	if a == 0 && b == 0 {
		aNeg, bNeg := isNegZero32(aBits), isNegZero32(bBits)
		if wantMin {
			if aNeg || bNeg {
				return math.Float32bits(float32(math.Copysign(0, -1))), flags
			}
			return math.Float32bits(0), flags
		}
		if !aNeg || !bNeg {
			return math.Float32bits(0), flags
		}
		return math.Float32bits(float32(math.Copysign(0, -1))), flags
	}
	if wantMin == (a < b) {
		return aBits, flags
	}
	return bBits, flags
}

func Min64(aBits, bBits uint64) (uint64, Flags) {
	return minMax64(aBits, bBits, true)
}

func Max64(aBits, bBits uint64) (uint64, Flags) {
	return minMax64(aBits, bBits, false)
}

func minMax64(aBits, bBits uint64, wantMin bool) (uint64, Flags) {
	a, b := math.Float64frombits(aBits), math.Float64frombits(bBits)
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	var flags Flags
	if isSignalingNaN64(aBits) || isSignalingNaN64(bBits) {
		flags |= FlagNV
	}
	switch {
	case aNaN && bNaN:
		return canonicalNaN64, flags
	case aNaN:
		return bBits, flags
	case bNaN:
		return aBits, flags
	}
	if a == 0 && b == 0 {
		aNeg, bNeg := isNegZero64(aBits), isNegZero64(bBits)
		if wantMin {
			if aNeg || bNeg {
				return math.Float64bits(math.Copysign(0, -1)), flags
			}
			return math.Float64bits(0), flags
		}
		if !aNeg || !bNeg {
			return math.Float64bits(0), flags
		}
		return math.Float64bits(math.Copysign(0, -1)), flags
	}
	if wantMin == (a < b) {
		return aBits, flags
	}
	return bBits, flags
}

// SignInjectS applies FSGNJ/FSGNJN/FSGNJX.S's pure bit manipulation:
// the magnitude of a with a sign derived from a and b by mode.
func SignInjectS(aBits, bBits uint32, mode SignMode) uint32 {
	mag := aBits &^ (uint32(1) << 31)
	aSign := aBits >> 31
	bSign := bBits >> 31
	var sign uint32
	switch mode {
	case SignInject:
		sign = bSign
	case SignInjectNeg:
		sign = bSign ^ 1
	case SignInjectXor:
		sign = aSign ^ bSign
	}
	return mag | (sign << 31)
}

func SignInjectD(aBits, bBits uint64, mode SignMode) uint64 {
	mag := aBits &^ (uint64(1) << 63)
	aSign := aBits >> 63
	bSign := bBits >> 63
	var sign uint64
	switch mode {
	case SignInject:
		sign = bSign
	case SignInjectNeg:
		sign = bSign ^ 1
	case SignInjectXor:
		sign = aSign ^ bSign
	}
	return mag | (sign << 63)
}

// SignMode selects which FSGNJ variant SignInjectS/D computes.
type SignMode int

const (
	SignInject SignMode = iota
	SignInjectNeg
	SignInjectXor
)
