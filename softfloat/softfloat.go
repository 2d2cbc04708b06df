// Package softfloat implements the IEEE-754 binary32/binary64
// arithmetic primitives needed by the F and D extensions, with
// explicit rounding-mode selection and accrued-exception reporting.
//
// No dependency in the surrounding ecosystem exposes software
// floating point with an explicit rounding-mode argument and a side
// channel for accrued flags (hardware-backed math/float32 always
// rounds to nearest-even and never reports flags), so this package is
// hand-written. It leans on math/big.Float for correctly-rounded
// arithmetic in every static rounding mode instead of hand-rolling
// mantissa bit-twiddling.
package softfloat

import (
	"math"
	"math/big"
)

// Rm is a resolved RISC-V rounding-mode code. Callers must resolve
// the dynamic mode (DYN) to a concrete one before calling into this
// package; it never sees the reserved codes 5/6 or DYN=7.
type Rm uint32

const (
	RNE Rm = 0
	RTZ Rm = 1
	RDN Rm = 2
	RUP Rm = 3
	RMM Rm = 4
)

// Flags mirrors the accrued exception bits of fcsr[4:0].
type Flags uint32

const (
	FlagNX Flags = 1 << 0
	FlagUF Flags = 1 << 1
	FlagOF Flags = 1 << 2
	FlagDZ Flags = 1 << 3
	FlagNV Flags = 1 << 4
)

const (
	canonicalNaN32 = 0x7FC00000
	canonicalNaN64 = 0x7FF8000000000000
)

func bigMode(rm Rm) big.RoundingMode {
	switch rm {
	case RTZ:
		return big.ToZero
	case RDN:
		return big.ToNegativeInf
	case RUP:
		return big.ToPositiveInf
	case RMM:
		return big.ToNearestAway
	default:
		return big.ToNearestEven
	}
}

// op32 evaluates f at double precision internally, rounds the exact
// mathematical result to binary32 under rm, and reports NX/OF/UF.
func op32(rm Rm, f func(z, x, y *big.Float) *big.Float, a, b float32) (float32, Flags) {
	x := new(big.Float).SetPrec(200).SetFloat64(float64(a))
	y := new(big.Float).SetPrec(200).SetFloat64(float64(b))
	z := new(big.Float).SetPrec(24).SetMode(bigMode(rm))
	f(z, x, y)
	return roundResult32(z)
}

func op64(rm Rm, f func(z, x, y *big.Float) *big.Float, a, b float64) (float64, Flags) {
	x := new(big.Float).SetPrec(300).SetFloat64(a)
	y := new(big.Float).SetPrec(300).SetFloat64(b)
	z := new(big.Float).SetPrec(53).SetMode(bigMode(rm))
	f(z, x, y)
	return roundResult64(z)
}

func roundResult32(z *big.Float) (float32, Flags) {
	f, acc := z.Float32()
	var flags Flags
	if acc != big.Exact {
		flags |= FlagNX
	}
	if math.IsInf(float64(f), 0) {
		flags |= FlagOF | FlagNX
	} else if f != 0 && math.Abs(float64(f)) < math.SmallestNonzeroFloat32*2 {
		flags |= FlagUF
	}
	return f, flags
}

func roundResult64(z *big.Float) (float64, Flags) {
	f, acc := z.Float64()
	var flags Flags
	if acc != big.Exact {
		flags |= FlagNX
	}
	if math.IsInf(f, 0) {
		flags |= FlagOF | FlagNX
	} else if f != 0 && math.Abs(f) < math.SmallestNonzeroFloat64*2 {
		flags |= FlagUF
	}
	return f, flags
}

// isSignalingNaN32/64 classify NaNs from the bit pattern directly: a
// signaling NaN has a payload whose MSB is clear.
func isSignalingNaN32(bits uint32) bool {
	return (bits&0x7FC00000) == 0x7F800000 && (bits&0x003FFFFF) != 0 && (bits&0x00400000) == 0
}

func isSignalingNaN64(bits uint64) bool {
	return (bits&0x7FF8000000000000) == 0x7FF0000000000000 && (bits&0x000FFFFFFFFFFFFF) != 0 && (bits&0x0008000000000000) == 0
}

// nanResult32 returns the canonical quiet NaN and sets NV if either
// operand was a signaling NaN, per the RISC-V NaN propagation rules.
func nanResult32(a, b uint32) (uint32, Flags) {
	var flags Flags
	if isSignalingNaN32(a) || isSignalingNaN32(b) {
		flags |= FlagNV
	}
	return canonicalNaN32, flags
}

func nanResult64(a, b uint64) (uint64, Flags) {
	var flags Flags
	if isSignalingNaN64(a) || isSignalingNaN64(b) {
		flags |= FlagNV
	}
	return canonicalNaN64, flags
}

// Add32 computes a+b in binary32 under rounding mode rm.
func Add32(rm Rm, aBits, bBits uint32) (uint32, Flags) {
	a := math.Float32frombits(aBits)
	b := math.Float32frombits(bBits)
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return nanResult32(aBits, bBits)
	}
	r, flags := op32(rm, (*big.Float).Add, a, b)
	return math.Float32bits(r), flags
}

func Sub32(rm Rm, aBits, bBits uint32) (uint32, Flags) {
	a := math.Float32frombits(aBits)
	b := math.Float32frombits(bBits)
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return nanResult32(aBits, bBits)
	}
	r, flags := op32(rm, (*big.Float).Sub, a, b)
	return math.Float32bits(r), flags
}

func Mul32(rm Rm, aBits, bBits uint32) (uint32, Flags) {
	a := math.Float32frombits(aBits)
	b := math.Float32frombits(bBits)
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return nanResult32(aBits, bBits)
	}
	r, flags := op32(rm, (*big.Float).Mul, a, b)
	return math.Float32bits(r), flags
}

func Div32(rm Rm, aBits, bBits uint32) (uint32, Flags) {
	a := math.Float32frombits(aBits)
	b := math.Float32frombits(bBits)
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return nanResult32(aBits, bBits)
	}
	if b == 0 {
		if a == 0 {
			return canonicalNaN32, FlagNV
		}
		sign := uint32(0)
		if math.Signbit(float64(a)) != math.Signbit(float64(b)) {
			sign = 1 << 31
		}
		return sign | 0x7F800000, FlagDZ
	}
	r, flags := op32(rm, (*big.Float).Quo, a, b)
	return math.Float32bits(r), flags
}

func Sqrt32(rm Rm, aBits uint32) (uint32, Flags) {
	a := math.Float32frombits(aBits)
	if math.IsNaN(float64(a)) {
		v, f := nanResult32(aBits, aBits)
		return v, f
	}
	if a < 0 {
		return canonicalNaN32, FlagNV
	}
	x := new(big.Float).SetPrec(200).SetFloat64(float64(a))
	z := new(big.Float).SetPrec(24).SetMode(bigMode(rm))
	z.Sqrt(x)
	r, flags := roundResult32(z)
	return math.Float32bits(r), flags
}

// Fma32 computes a*b+c as a single fused operation (one rounding, at
// the final addition) rather than rounding the product first. The
// FMADD/FMSUB/FNMSUB/FNMADD family all reduce to this by flipping the
// sign bit of a and/or c before calling in.
func Fma32(rm Rm, aBits, bBits, cBits uint32) (uint32, Flags) {
	a := math.Float32frombits(aBits)
	b := math.Float32frombits(bBits)
	c := math.Float32frombits(cBits)
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) || math.IsNaN(float64(c)) {
		var flags Flags
		if isSignalingNaN32(aBits) || isSignalingNaN32(bBits) || isSignalingNaN32(cBits) {
			flags |= FlagNV
		}
		return canonicalNaN32, flags
	}
	x := new(big.Float).SetPrec(200).SetFloat64(float64(a))
	y := new(big.Float).SetPrec(200).SetFloat64(float64(b))
	prod := new(big.Float).SetPrec(200).Mul(x, y)
	addend := new(big.Float).SetPrec(200).SetFloat64(float64(c))
	z := new(big.Float).SetPrec(24).SetMode(bigMode(rm))
	z.Add(prod, addend)
	r, flags := roundResult32(z)
	return math.Float32bits(r), flags
}

// Fma64 mirrors Fma32 at double precision.
func Fma64(rm Rm, aBits, bBits, cBits uint64) (uint64, Flags) {
	a := math.Float64frombits(aBits)
	b := math.Float64frombits(bBits)
	c := math.Float64frombits(cBits)
	if math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(c) {
		var flags Flags
		if isSignalingNaN64(aBits) || isSignalingNaN64(bBits) || isSignalingNaN64(cBits) {
			flags |= FlagNV
		}
		return canonicalNaN64, flags
	}
	x := new(big.Float).SetPrec(300).SetFloat64(a)
	y := new(big.Float).SetPrec(300).SetFloat64(b)
	prod := new(big.Float).SetPrec(300).Mul(x, y)
	addend := new(big.Float).SetPrec(300).SetFloat64(c)
	z := new(big.Float).SetPrec(53).SetMode(bigMode(rm))
	z.Add(prod, addend)
	r, flags := roundResult64(z)
	return math.Float64bits(r), flags
}

// Add64/Sub64/Mul64/Div64/Sqrt64 mirror the single-precision forms at
// double precision.
func Add64(rm Rm, aBits, bBits uint64) (uint64, Flags) {
	a := math.Float64frombits(aBits)
	b := math.Float64frombits(bBits)
	if math.IsNaN(a) || math.IsNaN(b) {
		return nanResult64(aBits, bBits)
	}
	r, flags := op64(rm, (*big.Float).Add, a, b)
	return math.Float64bits(r), flags
}

func Sub64(rm Rm, aBits, bBits uint64) (uint64, Flags) {
	a := math.Float64frombits(aBits)
	b := math.Float64frombits(bBits)
	if math.IsNaN(a) || math.IsNaN(b) {
		return nanResult64(aBits, bBits)
	}
	r, flags := op64(rm, (*big.Float).Sub, a, b)
	return math.Float64bits(r), flags
}

func Mul64(rm Rm, aBits, bBits uint64) (uint64, Flags) {
	a := math.Float64frombits(aBits)
	b := math.Float64frombits(bBits)
	if math.IsNaN(a) || math.IsNaN(b) {
		return nanResult64(aBits, bBits)
	}
	r, flags := op64(rm, (*big.Float).Mul, a, b)
	return math.Float64bits(r), flags
}

func Div64(rm Rm, aBits, bBits uint64) (uint64, Flags) {
	a := math.Float64frombits(aBits)
	b := math.Float64frombits(bBits)
	if math.IsNaN(a) || math.IsNaN(b) {
		return nanResult64(aBits, bBits)
	}
	if b == 0 {
		if a == 0 {
			return canonicalNaN64, FlagNV
		}
		sign := uint64(0)
		if math.Signbit(a) != math.Signbit(b) {
			sign = 1 << 63
		}
		return sign | 0x7FF0000000000000, FlagDZ
	}
	r, flags := op64(rm, (*big.Float).Quo, a, b)
	return math.Float64bits(r), flags
}

func Sqrt64(rm Rm, aBits uint64) (uint64, Flags) {
	a := math.Float64frombits(aBits)
	if math.IsNaN(a) {
		v, f := nanResult64(aBits, aBits)
		return v, f
	}
	if a < 0 {
		return canonicalNaN64, FlagNV
	}
	x := new(big.Float).SetPrec(300).SetFloat64(a)
	z := new(big.Float).SetPrec(53).SetMode(bigMode(rm))
	z.Sqrt(x)
	r, flags := roundResult64(z)
	return math.Float64bits(r), flags
}
