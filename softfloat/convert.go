package softfloat

import (
	"math"
	"math/big"
)

func roundToInt(x float64, rm Rm) float64 {
	switch rm {
	case RTZ:
		return math.Trunc(x)
	case RDN:
		return math.Floor(x)
	case RUP:
		return math.Ceil(x)
	case RMM:
		return math.Round(x)
	default:
		return math.RoundToEven(x)
	}
}

// ToInt32From32 implements FCVT.W.S: convert a binary32 value to a
// signed 32-bit integer, saturating on overflow and NaN.
func ToInt32From32(rm Rm, bits uint32) (int32, Flags) {
	return toInt32(float64(math.Float32frombits(bits)), rm)
}

// ToInt32From64 implements FCVT.W.D.
func ToInt32From64(rm Rm, bits uint64) (int32, Flags) {
	return toInt32(math.Float64frombits(bits), rm)
}

func toInt32(f float64, rm Rm) (int32, Flags) {
	if math.IsNaN(f) {
		return math.MaxInt32, FlagNV
	}
	r := roundToInt(f, rm)
	var flags Flags
	if r != f {
		flags |= FlagNX
	}
	if r > math.MaxInt32 || math.IsInf(r, 1) {
		return math.MaxInt32, flags | FlagNV
	}
	if r < math.MinInt32 || math.IsInf(r, -1) {
		return math.MinInt32, flags | FlagNV
	}
	return int32(r), flags
}

// ToUint32From32 implements FCVT.WU.S.
func ToUint32From32(rm Rm, bits uint32) (uint32, Flags) {
	return toUint32(float64(math.Float32frombits(bits)), rm)
}

// ToUint32From64 implements FCVT.WU.D.
func ToUint32From64(rm Rm, bits uint64) (uint32, Flags) {
	return toUint32(math.Float64frombits(bits), rm)
}

func toUint32(f float64, rm Rm) (uint32, Flags) {
	if math.IsNaN(f) {
		return math.MaxUint32, FlagNV
	}
	r := roundToInt(f, rm)
	var flags Flags
	if r != f {
		flags |= FlagNX
	}
	if r > math.MaxUint32 || math.IsInf(r, 1) {
		return math.MaxUint32, flags | FlagNV
	}
	if r < 0 || math.IsInf(r, -1) {
		return 0, flags | FlagNV
	}
	return uint32(r), flags
}

// fromExact narrows an exactly-known big.Float value to binary32 or
// binary64 under rm, reporting NX if narrowing lost precision.
func fromExact32(rm Rm, x *big.Float) (uint32, Flags) {
	z := new(big.Float).SetPrec(24).SetMode(bigMode(rm))
	z.Set(x)
	r, flags := roundResult32(z)
	return math.Float32bits(r), flags
}

func fromExact64(rm Rm, x *big.Float) (uint64, Flags) {
	z := new(big.Float).SetPrec(53).SetMode(bigMode(rm))
	z.Set(x)
	r, flags := roundResult64(z)
	return math.Float64bits(r), flags
}

// FromInt32To32 implements FCVT.S.W.
func FromInt32To32(rm Rm, v int32) (uint32, Flags) {
	return fromExact32(rm, new(big.Float).SetPrec(64).SetInt64(int64(v)))
}

// FromInt32To64 implements FCVT.D.W. Every int32 is exactly
// representable in binary64, so this never sets NX.
func FromInt32To64(rm Rm, v int32) (uint64, Flags) {
	return fromExact64(rm, new(big.Float).SetPrec(64).SetInt64(int64(v)))
}

// FromUint32To32 implements FCVT.S.WU.
func FromUint32To32(rm Rm, v uint32) (uint32, Flags) {
	return fromExact32(rm, new(big.Float).SetPrec(64).SetUint64(uint64(v)))
}

// FromUint32To64 implements FCVT.D.WU. Never inexact, for the same
// reason as FromInt32To64.
func FromUint32To64(rm Rm, v uint32) (uint64, Flags) {
	return fromExact64(rm, new(big.Float).SetPrec(64).SetUint64(uint64(v)))
}

// Widen32To64 implements FCVT.D.S: every binary32 value is exactly
// representable in binary64, so this never sets NX, only NV on a
// signaling NaN.
func Widen32To64(bits32 uint32) (uint64, Flags) {
	if isSignalingNaN32(bits32) {
		return canonicalNaN64, FlagNV
	}
	if math.IsNaN(float64(math.Float32frombits(bits32))) {
		return canonicalNaN64, 0
	}
	return math.Float64bits(float64(math.Float32frombits(bits32))), 0
}

// Narrow64To32 implements FCVT.S.D, rounding under rm.
func Narrow64To32(rm Rm, bits64 uint64) (uint32, Flags) {
	if isSignalingNaN64(bits64) {
		return canonicalNaN32, FlagNV
	}
	f := math.Float64frombits(bits64)
	if math.IsNaN(f) {
		return canonicalNaN32, 0
	}
	return fromExact32(rm, new(big.Float).SetPrec(53).SetFloat64(f))
}
