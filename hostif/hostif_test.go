package hostif

import (
	"testing"

	"github.com/lookbusy1344/rv32-emulator/isa"
)

func TestFlatMemoryReadWriteRoundTrip(t *testing.T) {
	m := NewFlatMemory()
	m.AddSegment("data", 0x1000, 0x100, PermRead|PermWrite)

	if !m.StoreWord(0x1000, 0xDEADBEEF) {
		t.Fatal("store should succeed")
	}
	v, ok := m.LoadWord(0x1000)
	if !ok || v != 0xDEADBEEF {
		t.Fatalf("load = %#x, %v", v, ok)
	}
}

func TestFlatMemoryPermissionDenied(t *testing.T) {
	m := NewFlatMemory()
	m.AddSegment("code", 0x8000, 0x100, PermRead|PermExecute)

	if m.StoreByte(0x8000, 1) {
		t.Fatal("write to a read+execute-only segment must fail")
	}
	if _, ok := m.LoadByte(0x8000); !ok {
		t.Fatal("read should succeed")
	}
}

func TestFlatMemoryUnmappedFails(t *testing.T) {
	m := NewFlatMemory()
	if _, ok := m.LoadByte(0x9999); ok {
		t.Fatal("read of unmapped address must fail")
	}
}

func TestFlatMemoryExecRespectsExecPermission(t *testing.T) {
	m := NewFlatMemory()
	m.AddSegment("data", 0x2000, 0x10, PermRead|PermWrite)
	if _, ok := m.Exec(0x2000); ok {
		t.Fatal("exec of a non-executable segment must fail")
	}
}

func TestSimpleClockQuota(t *testing.T) {
	c := NewSimpleClock()
	c.MaxInstructions = 2
	if !c.CheckQuota() {
		t.Fatal("fresh clock should have quota")
	}
	c.Progress(isa.Operation{})
	c.Progress(isa.Operation{})
	if c.CheckQuota() {
		t.Fatal("quota should be exhausted after 2 instructions")
	}
	if c.ReadInstret() != 2 || c.ReadCycle() != 2 {
		t.Fatalf("instret=%d cycle=%d, want 2/2", c.ReadInstret(), c.ReadCycle())
	}
}

func TestSimpleClockTimeRate(t *testing.T) {
	c := NewSimpleClock()
	c.CyclesPerTimeTick = 10
	for i := 0; i < 25; i++ {
		c.Progress(isa.Operation{})
	}
	if got := c.ReadTime(); got != 2 {
		t.Fatalf("time = %d, want 2", got)
	}
}
