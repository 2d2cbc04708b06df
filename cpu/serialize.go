package cpu

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// serializedSize is the fixed encoded length: 32 x uint32 + 32 x
// uint64 + pc (uint32) + fcsr (uint32) + reservation valid (uint8) +
// reservation (uint32).
const serializedSize = 32*4 + 32*8 + 4 + 4 + 1 + 4

// MarshalBinary encodes the CPU state in the neutral byte format
// required by spec §6: x, f, pc, fcsr, reservation, in that order,
// little-endian, preserving bitwise values exactly.
func (c *CPU) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, serializedSize)
	var tmp [8]byte

	for _, x := range c.X {
		binary.LittleEndian.PutUint32(tmp[:4], x)
		buf = append(buf, tmp[:4]...)
	}
	for _, f := range c.F {
		binary.LittleEndian.PutUint64(tmp[:8], f)
		buf = append(buf, tmp[:8]...)
	}
	binary.LittleEndian.PutUint32(tmp[:4], c.PC)
	buf = append(buf, tmp[:4]...)
	binary.LittleEndian.PutUint32(tmp[:4], c.FCSR)
	buf = append(buf, tmp[:4]...)

	var reservationValid byte
	if c.ReservationValid {
		reservationValid = 1
	}
	buf = append(buf, reservationValid)
	binary.LittleEndian.PutUint32(tmp[:4], c.Reservation)
	buf = append(buf, tmp[:4]...)

	return buf, nil
}

// UnmarshalBinary decodes a byte slice previously produced by
// MarshalBinary, overwriting all fields of c.
func (c *CPU) UnmarshalBinary(data []byte) error {
	if len(data) != serializedSize {
		return fmt.Errorf("cpu: invalid serialized state: want %d bytes, got %d", serializedSize, len(data))
	}
	r := bytes.NewReader(data)

	for i := range c.X {
		if err := binary.Read(r, binary.LittleEndian, &c.X[i]); err != nil {
			return fmt.Errorf("cpu: decode x[%d]: %w", i, err)
		}
	}
	for i := range c.F {
		if err := binary.Read(r, binary.LittleEndian, &c.F[i]); err != nil {
			return fmt.Errorf("cpu: decode f[%d]: %w", i, err)
		}
	}
	if err := binary.Read(r, binary.LittleEndian, &c.PC); err != nil {
		return fmt.Errorf("cpu: decode pc: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &c.FCSR); err != nil {
		return fmt.Errorf("cpu: decode fcsr: %w", err)
	}
	var reservationValid byte
	if err := binary.Read(r, binary.LittleEndian, &reservationValid); err != nil {
		return fmt.Errorf("cpu: decode reservation flag: %w", err)
	}
	c.ReservationValid = reservationValid != 0
	if err := binary.Read(r, binary.LittleEndian, &c.Reservation); err != nil {
		return fmt.Errorf("cpu: decode reservation: %w", err)
	}

	return nil
}
