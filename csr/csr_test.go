package csr

import "testing"

type fakeFloat struct {
	fflags, frm, fcsr uint32
}

func (f *fakeFloat) ReadFflags() uint32   { return f.fflags }
func (f *fakeFloat) WriteFflags(v uint32) { f.fflags = v }
func (f *fakeFloat) ReadFrm() uint32      { return f.frm }
func (f *fakeFloat) WriteFrm(v uint32)    { f.frm = v }
func (f *fakeFloat) ReadFcsr() uint32     { return f.fcsr }
func (f *fakeFloat) WriteFcsr(v uint32)   { f.fcsr = v }

type fakeClock struct{ cycle, time, instret uint64 }

func (c *fakeClock) ReadCycle() uint64   { return c.cycle }
func (c *fakeClock) ReadTime() uint64    { return c.time }
func (c *fakeClock) ReadInstret() uint64 { return c.instret }

func TestReadWriteFflags(t *testing.T) {
	p := Plane{Float: &fakeFloat{}, Clock: &fakeClock{}}
	if !p.Write(Fflags, 0x1F) {
		t.Fatal("write to fflags should succeed")
	}
	v, ok := p.Read(Fflags)
	if !ok || v != 0x1F {
		t.Fatalf("read fflags = %#x, %v", v, ok)
	}
}

func TestCounterWriteIsSilentlyIgnored(t *testing.T) {
	p := Plane{Float: &fakeFloat{}, Clock: &fakeClock{cycle: 99}}
	if !p.Write(Cycle, 0) {
		t.Fatal("write to a counter CSR must be accepted, not rejected")
	}
	v, _ := p.Read(Cycle)
	if v != 99 {
		t.Errorf("cycle = %d, want unchanged 99", v)
	}
}

func TestUnknownCSRFails(t *testing.T) {
	p := Plane{Float: &fakeFloat{}, Clock: &fakeClock{}}
	if _, ok := p.Read(0xFFF); ok {
		t.Error("expected read of an unimplemented CSR to fail")
	}
	if p.Write(0xFFF, 0) {
		t.Error("expected write of an unimplemented CSR to fail")
	}
}

func TestZeroMaskSkipsWrite(t *testing.T) {
	p := Plane{Float: &fakeFloat{fcsr: 0x55}, Clock: &fakeClock{}}
	if err := p.SetBits(Fcsr, 0); err != nil {
		t.Fatalf("SetBits with zero mask should not error: %v", err)
	}
	v, _ := p.Read(Fcsr)
	if v != 0x55 {
		t.Errorf("fcsr = %#x, want unchanged 0x55", v)
	}
}

func TestSetAndClearBits(t *testing.T) {
	p := Plane{Float: &fakeFloat{fcsr: 0x10}, Clock: &fakeClock{}}
	if err := p.SetBits(Fcsr, 0x01); err != nil {
		t.Fatal(err)
	}
	v, _ := p.Read(Fcsr)
	if v != 0x11 {
		t.Fatalf("fcsr = %#x, want 0x11", v)
	}
	if err := p.ClearBits(Fcsr, 0x10); err != nil {
		t.Fatal(err)
	}
	v, _ = p.Read(Fcsr)
	if v != 0x01 {
		t.Fatalf("fcsr = %#x, want 0x01", v)
	}
}

func TestCycleHighWord(t *testing.T) {
	p := Plane{Float: &fakeFloat{}, Clock: &fakeClock{cycle: 0x100000001}}
	lo, _ := p.Read(Cycle)
	hi, _ := p.Read(Cycleh)
	if lo != 1 || hi != 1 {
		t.Errorf("cycle=%#x cycleh=%#x, want 1/1", lo, hi)
	}
}
