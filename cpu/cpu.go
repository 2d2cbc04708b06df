// Package cpu holds the architectural state of an RV32G[C] hart: the
// integer and floating-point register files, the program counter, the
// floating-point control/status register and the LR/SC reservation.
package cpu

// CPU represents the RV32G[C] architectural state.
type CPU struct {
	// X holds the thirty-two integer registers. X[0] always reads as
	// zero; writes to it are silently discarded (see SetX).
	X [32]uint32

	// F holds the thirty-two floating-point registers. Single-precision
	// values sit in the low 32 bits, NaN-boxed by SetFSingle.
	F [32]uint64

	// PC is the address of the next instruction to fetch.
	PC uint32

	// FCSR is the floating-point control/status register. Bits [4:0]
	// are the accrued IEEE exception flags, bits [7:5] the dynamic
	// rounding mode; all other bits always read zero.
	FCSR uint32

	// Cycles counts retired instructions, for statistics display. The
	// cycle/instret CSRs read the host Clock, not this field.
	Cycles uint64

	// ReservationValid and Reservation implement the LR/SC
	// reservation: Reservation is only meaningful when
	// ReservationValid is true.
	ReservationValid bool
	Reservation       uint32
}

// boxTag is the upper 32 bits a properly NaN-boxed single-precision
// value must carry: all ones, per the RISC-V F extension.
const boxTag = 0xFFFFFFFF00000000

// New creates a CPU with all registers zeroed and PC set to entry.
func New(entry uint32) *CPU {
	return &CPU{PC: entry}
}

// Reset clears all architectural state and sets PC to entry.
func (c *CPU) Reset(entry uint32) {
	c.X = [32]uint32{}
	c.F = [32]uint64{}
	c.PC = entry
	c.FCSR = 0
	c.Cycles = 0
	c.ReservationValid = false
	c.Reservation = 0
}

// GetX reads integer register reg. Register 0 always reads as zero.
func (c *CPU) GetX(reg int) uint32 {
	if reg == 0 {
		return 0
	}
	return c.X[reg]
}

// SetX writes value to integer register reg. Writes to register 0 are
// silently discarded, per spec.
func (c *CPU) SetX(reg int, value uint32) {
	if reg == 0 {
		return
	}
	c.X[reg] = value
}

// GetFDouble reads register reg as a double-precision value.
func (c *CPU) GetFDouble(reg int) uint64 {
	return c.F[reg]
}

// SetFDouble writes a double-precision value to register reg.
func (c *CPU) SetFDouble(reg int, value uint64) {
	c.F[reg] = value
}

// GetFSingle reads register reg as a single-precision value. A value
// that is not properly NaN-boxed reads back as the canonical quiet NaN,
// per the F extension's NaN-boxing convention.
func (c *CPU) GetFSingle(reg int) uint32 {
	v := c.F[reg]
	if v&boxTag != boxTag {
		return canonicalNaN32
	}
	return uint32(v)
}

// SetFSingle writes a single-precision value to register reg, NaN-
// boxing it into the upper 32 bits.
func (c *CPU) SetFSingle(reg int, value uint32) {
	c.F[reg] = boxTag | uint64(value)
}

// canonicalNaN32 is the canonical quiet NaN bit pattern for single
// precision (RISC-V ISA manual, section on NaN boxing).
const canonicalNaN32 = 0x7FC00000

// canonicalNaN64 is the canonical quiet NaN bit pattern for double
// precision.
const canonicalNaN64 = 0x7FF8000000000000

// CanonicalNaN32 exposes the canonical single-precision NaN pattern.
func CanonicalNaN32() uint32 { return canonicalNaN32 }

// CanonicalNaN64 exposes the canonical double-precision NaN pattern.
func CanonicalNaN64() uint64 { return canonicalNaN64 }

// SetReservation records an LR reservation at addr.
func (c *CPU) SetReservation(addr uint32) {
	c.ReservationValid = true
	c.Reservation = addr
}

// ClearReservation drops any outstanding LR reservation. Hosts that
// perform out-of-band writes (DMA, other harts) must call this to
// preserve LR/SC correctness, per spec §5.
func (c *CPU) ClearReservation() {
	c.ReservationValid = false
	c.Reservation = 0
}

// ReservationMatches reports whether addr matches an outstanding
// reservation.
func (c *CPU) ReservationMatches(addr uint32) bool {
	return c.ReservationValid && c.Reservation == addr
}
