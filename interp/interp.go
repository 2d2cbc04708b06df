// Package interp implements the decode-dispatch execution loop: given
// a cpu.CPU, a hostif.Memory and a hostif.Clock, it fetches, decodes
// and executes RV32IMAFDC instructions one at a time.
package interp

import (
	"fmt"

	"github.com/lookbusy1344/rv32-emulator/cpu"
	"github.com/lookbusy1344/rv32-emulator/csr"
	"github.com/lookbusy1344/rv32-emulator/hostif"
	"github.com/lookbusy1344/rv32-emulator/isa"
)

// StopKind classifies why Step/Run returned without executing another
// instruction.
type StopKind int

const (
	StopMisalignedFetch StopKind = iota
	StopIllegalFetch
	StopIllegalInstruction
	StopIllegalAccess
	StopMisalignedAccess
	StopEcall
	StopEbreak
	StopQuotaExceeded
)

func (k StopKind) String() string {
	switch k {
	case StopMisalignedFetch:
		return "misaligned fetch"
	case StopIllegalFetch:
		return "illegal fetch"
	case StopIllegalInstruction:
		return "illegal instruction"
	case StopIllegalAccess:
		return "illegal access"
	case StopMisalignedAccess:
		return "misaligned access"
	case StopEcall:
		return "ecall"
	case StopEbreak:
		return "ebreak"
	case StopQuotaExceeded:
		return "quota exceeded"
	default:
		return "unknown stop"
	}
}

// StopError reports why execution stopped. PC is the address of the
// instruction that caused the stop, except for MisalignedFetch (the
// misaligned branch/jump target) and IllegalAccess/MisalignedAccess
// (the faulting data address). After a stop, CPU.PC still holds the
// stopping instruction's address for MisalignedFetch, IllegalFetch,
// IllegalInstruction and QuotaExceeded, and has been advanced past it
// for IllegalAccess, MisalignedAccess, Ecall and Ebreak.
type StopError struct {
	Kind StopKind
	PC   uint32
}

func (e *StopError) Error() string {
	return fmt.Sprintf("interp: stop (%s) at pc=%#08x", e.Kind, e.PC)
}

// Extensions selects which optional RV32G[C] extensions the decoder
// and dispatcher accept. New enables all of them; a caller narrows
// this after construction (e.g. from a loaded config) to match a
// target that lacks some of the optional ISA.
type Extensions struct {
	M, A, F, D, C bool
}

// Interpreter binds architectural state to a host environment and
// drives the fetch-decode-execute loop.
type Interpreter struct {
	CPU        *cpu.CPU
	Mem        hostif.Memory
	Clock      hostif.Clock
	CSR        csr.Plane
	Extensions Extensions
}

// New creates an Interpreter with every optional extension enabled.
// clock may implement csr.Counters itself (hostif.Clock already
// satisfies it); the caller's cpu.CPU satisfies csr.FloatRegs
// directly.
func New(c *cpu.CPU, mem hostif.Memory, clock hostif.Clock) *Interpreter {
	return &Interpreter{
		CPU:        c,
		Mem:        mem,
		Clock:      clock,
		CSR:        csr.Plane{Float: c, Clock: clock},
		Extensions: Extensions{M: true, A: true, F: true, D: true, C: true},
	}
}

// fetchAlignment returns the alignment a branch/jump target must meet:
// 2 bytes when the compressed extension is enabled (any instruction
// may start on a halfword boundary), 4 bytes otherwise.
func (it *Interpreter) fetchAlignment() uint32 {
	if it.Extensions.C {
		return 2
	}
	return 4
}

// Step fetches, decodes and executes exactly one instruction.
func (it *Interpreter) Step() error {
	if !it.Clock.CheckQuota() {
		return &StopError{StopQuotaExceeded, it.CPU.PC}
	}

	pc := it.CPU.PC

	lo, ok := it.Mem.Exec(pc)
	if !ok {
		return &StopError{StopIllegalFetch, pc}
	}

	var op isa.Operation
	if it.Extensions.C && isa.IsCompressed(lo) {
		op, ok = isa.Decode16(uint32(lo))
	} else {
		hi, ok2 := it.Mem.Exec(pc + 2)
		if !ok2 {
			return &StopError{StopIllegalFetch, pc}
		}
		op, ok = isa.Decode32(uint32(lo) | uint32(hi)<<16)
	}
	if !ok {
		return &StopError{StopIllegalInstruction, pc}
	}

	nextPC := pc + op.Size
	err := it.execute(op, pc, nextPC)
	// The clock is told about every retired instruction, trapping or
	// not, so instret/cycle still count instructions that stop
	// execution (ecall, ebreak, illegal/misaligned access, ...).
	it.Clock.Progress(op)
	it.CPU.Cycles++
	return err
}

// Run steps until a StopError occurs or maxSteps instructions have
// retired (maxSteps <= 0 means unbounded, bounded only by the clock's
// own quota).
func (it *Interpreter) Run(maxSteps int) error {
	for i := 0; maxSteps <= 0 || i < maxSteps; i++ {
		if err := it.Step(); err != nil {
			return err
		}
	}
	return nil
}
