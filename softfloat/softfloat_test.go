package softfloat

import (
	"math"
	"testing"
)

func f32(f float32) uint32 { return math.Float32bits(f) }

func TestAdd32Basic(t *testing.T) {
	r, flags := Add32(RNE, f32(1.5), f32(2.25))
	if math.Float32frombits(r) != 3.75 {
		t.Errorf("1.5+2.25 = %v, want 3.75", math.Float32frombits(r))
	}
	if flags != 0 {
		t.Errorf("unexpected flags %#x", flags)
	}
}

func TestDiv32ByZero(t *testing.T) {
	r, flags := Div32(RNE, f32(1), f32(0))
	if !math.IsInf(float64(math.Float32frombits(r)), 1) {
		t.Errorf("1/0 = %v, want +Inf", math.Float32frombits(r))
	}
	if flags != FlagDZ {
		t.Errorf("flags = %#x, want FlagDZ", flags)
	}
}

func TestDiv32ZeroByZero(t *testing.T) {
	r, flags := Div32(RNE, f32(0), f32(0))
	if r != canonicalNaN32 {
		t.Errorf("0/0 = %#x, want canonical NaN", r)
	}
	if flags != FlagNV {
		t.Errorf("flags = %#x, want FlagNV", flags)
	}
}

func TestMin32NegZeroLessThanPosZero(t *testing.T) {
	negZero := f32(float32(math.Copysign(0, -1)))
	posZero := f32(0)
	r, _ := Min32(negZero, posZero)
	if r != negZero {
		t.Errorf("min(-0,+0) = %#x, want -0 (%#x)", r, negZero)
	}
}

func TestMin32QuietNaNYieldsOther(t *testing.T) {
	r, flags := Min32(canonicalNaN32, f32(1.0))
	if r != f32(1.0) {
		t.Errorf("min(qNaN, 1.0) = %v, want 1.0", math.Float32frombits(r))
	}
	if flags != 0 {
		t.Errorf("quiet NaN must not set NV, got %#x", flags)
	}
}

func TestClassify32(t *testing.T) {
	cases := []struct {
		name string
		bits uint32
		want uint32
	}{
		{"pos zero", f32(0), ClassPosZero},
		{"neg zero", f32(float32(math.Copysign(0, -1))), ClassNegZero},
		{"pos inf", f32(float32(math.Inf(1))), ClassPosInf},
		{"neg inf", f32(float32(math.Inf(-1))), ClassNegInf},
		{"quiet nan", canonicalNaN32, ClassQuietNaN},
		{"pos normal", f32(1.0), ClassPosNormal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify32(c.bits); got != c.want {
				t.Errorf("Classify32(%#x) = %#x, want %#x", c.bits, got, c.want)
			}
		})
	}
}

func TestToInt32SaturatesOnOverflow(t *testing.T) {
	r, flags := ToInt32From32(RNE, f32(1e30))
	if r != math.MaxInt32 {
		t.Errorf("got %d, want MaxInt32", r)
	}
	if flags&FlagNV == 0 {
		t.Errorf("expected NV on overflow, got %#x", flags)
	}
}

func TestToInt32NaNSaturatesToMax(t *testing.T) {
	r, flags := ToInt32From32(RNE, canonicalNaN32)
	if r != math.MaxInt32 {
		t.Errorf("fcvt.w.s(NaN) = %d, want MaxInt32", r)
	}
	if flags != FlagNV {
		t.Errorf("flags = %#x, want FlagNV", flags)
	}
}

func TestRoundTripIntFloat(t *testing.T) {
	bits, flags := FromInt32To32(RNE, 42)
	if math.Float32frombits(bits) != 42.0 {
		t.Errorf("fcvt.s.w(42) = %v, want 42.0", math.Float32frombits(bits))
	}
	if flags != 0 {
		t.Errorf("unexpected flags %#x", flags)
	}
	back, flags := ToInt32From32(RNE, bits)
	if back != 42 || flags != 0 {
		t.Errorf("round trip failed: back=%d flags=%#x", back, flags)
	}
}

func TestSignInjectS(t *testing.T) {
	a := f32(3.0)
	b := f32(float32(math.Copysign(0, -1)))
	got := SignInjectS(a, b, SignInject)
	if math.Float32frombits(got) != -3.0 {
		t.Errorf("fsgnj.s(3.0, -0.0) = %v, want -3.0", math.Float32frombits(got))
	}
}
