// Package hostif defines the interfaces a host environment implements
// to back an interpreter: addressable memory and a progressing clock.
// It also provides one ready-to-use implementation of each, suitable
// for running a single hart against a flat address space.
package hostif

import "github.com/lookbusy1344/rv32-emulator/isa"

// Memory is the address space an interpreter fetches instructions
// from and loads/stores data through. Every method reports success
// as a bool rather than an error: a failed access is an architectural
// event (illegal/misaligned access), not a host-side exception, and
// the interpreter turns a false return into the appropriate StopKind.
type Memory interface {
	// LoadByte, LoadHalf and LoadWord read little-endian values. ok is
	// false on an unmapped address or a permission violation.
	LoadByte(addr uint32) (v byte, ok bool)
	LoadHalf(addr uint32) (v uint16, ok bool)
	LoadWord(addr uint32) (v uint32, ok bool)

	// StoreByte, StoreHalf and StoreWord write little-endian values.
	StoreByte(addr uint32, v byte) (ok bool)
	StoreHalf(addr uint32, v uint16) (ok bool)
	StoreWord(addr uint32, v uint32) (ok bool)

	// Exec fetches one instruction halfword for decode, honoring
	// execute permission independently of read permission.
	Exec(addr uint32) (v uint16, ok bool)
}

// Clock supplies the cycle/time/instret performance counters and
// governs how much work a Run call may perform before yielding.
type Clock interface {
	ReadCycle() uint64
	ReadTime() uint64
	ReadInstret() uint64

	// Progress is called once per retired instruction, successful or
	// trapping, so a cost-attributing clock can see what was retired.
	Progress(op isa.Operation)

	// CheckQuota reports whether the interpreter may execute another
	// instruction. A false return ends Run with StopKind
	// QuotaExceeded.
	CheckQuota() bool
}
