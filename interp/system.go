package interp

import (
	"fmt"

	"github.com/lookbusy1344/rv32-emulator/isa"
)

// execCSR implements the six Zicsr instructions. The register forms
// (CSRRW/CSRRS/CSRRC) read the CSR before writing it, and the
// read-then-write order matters only for the write-skip rules below;
// the immediate forms (CSRRWI/CSRRSI/CSRRCI) never read rs1, they
// carry a 5-bit unsigned immediate in its place.
//
// CSRRS/CSRRC skip the write when rs1 is architecturally x0 (by
// register index, regardless of its value); CSRRSI/CSRRCI skip the
// write when the immediate itself is zero. The immediate-zero rule is
// enforced generically inside csr.Plane.SetBits/ClearBits; the
// rs1==x0 rule has to be checked here since Plane has no way to see
// which register supplied the mask.
func (it *Interpreter) execCSR(op isa.Operation) error {
	switch op.Kind {
	case isa.KindCSRRW:
		old, ok := it.CSR.Read(op.Csr)
		if !ok {
			return unknownCSR(op.Csr)
		}
		if !it.CSR.Write(op.Csr, it.CPU.GetX(op.Rs1)) {
			return readOnlyCSR(op.Csr)
		}
		it.CPU.SetX(op.Rd, old)

	case isa.KindCSRRS:
		old, ok := it.CSR.Read(op.Csr)
		if !ok {
			return unknownCSR(op.Csr)
		}
		mask := it.CPU.GetX(op.Rs1)
		if op.Rs1 != 0 {
			if err := it.CSR.SetBits(op.Csr, mask); err != nil {
				return err
			}
		}
		it.CPU.SetX(op.Rd, old)

	case isa.KindCSRRC:
		old, ok := it.CSR.Read(op.Csr)
		if !ok {
			return unknownCSR(op.Csr)
		}
		mask := it.CPU.GetX(op.Rs1)
		if op.Rs1 != 0 {
			if err := it.CSR.ClearBits(op.Csr, mask); err != nil {
				return err
			}
		}
		it.CPU.SetX(op.Rd, old)

	case isa.KindCSRRWI:
		old, ok := it.CSR.Read(op.Csr)
		if !ok {
			return unknownCSR(op.Csr)
		}
		if !it.CSR.Write(op.Csr, uint32(op.Imm)) {
			return readOnlyCSR(op.Csr)
		}
		it.CPU.SetX(op.Rd, old)

	case isa.KindCSRRSI:
		old, ok := it.CSR.Read(op.Csr)
		if !ok {
			return unknownCSR(op.Csr)
		}
		if err := it.CSR.SetBits(op.Csr, uint32(op.Imm)); err != nil {
			return err
		}
		it.CPU.SetX(op.Rd, old)

	case isa.KindCSRRCI:
		old, ok := it.CSR.Read(op.Csr)
		if !ok {
			return unknownCSR(op.Csr)
		}
		if err := it.CSR.ClearBits(op.Csr, uint32(op.Imm)); err != nil {
			return err
		}
		it.CPU.SetX(op.Rd, old)
	}
	return nil
}

func unknownCSR(addr uint32) error {
	return fmt.Errorf("interp: no such csr %#x", addr)
}

func readOnlyCSR(addr uint32) error {
	return fmt.Errorf("interp: csr %#x is read-only", addr)
}
