package hostif

import "github.com/lookbusy1344/rv32-emulator/isa"

// SimpleClock is a host Clock that advances cycle/instret together
// (one retired instruction costs one cycle) and derives time from an
// injectable rate, with an optional hard instruction quota.
type SimpleClock struct {
	cycle   uint64
	instret uint64

	// CyclesPerTimeTick converts retired cycles to the time CSR's
	// units. Zero disables time advancement (time always reads 0).
	CyclesPerTimeTick uint64

	// MaxInstructions bounds how many instructions Run may execute
	// before CheckQuota reports false. Zero means unbounded.
	MaxInstructions uint64
}

// NewSimpleClock creates a clock with no quota and a 1:1 time rate.
func NewSimpleClock() *SimpleClock {
	return &SimpleClock{CyclesPerTimeTick: 1}
}

func (c *SimpleClock) ReadCycle() uint64   { return c.cycle }
func (c *SimpleClock) ReadInstret() uint64 { return c.instret }

func (c *SimpleClock) ReadTime() uint64 {
	if c.CyclesPerTimeTick == 0 {
		return 0
	}
	return c.cycle / c.CyclesPerTimeTick
}

func (c *SimpleClock) Progress(op isa.Operation) {
	c.cycle++
	c.instret++
}

func (c *SimpleClock) CheckQuota() bool {
	if c.MaxInstructions == 0 {
		return true
	}
	return c.instret < c.MaxInstructions
}

// Reset zeroes both counters without touching the configured rate or
// quota.
func (c *SimpleClock) Reset() {
	c.cycle = 0
	c.instret = 0
}
