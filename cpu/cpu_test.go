package cpu

import "testing"

func TestX0AlwaysZero(t *testing.T) {
	c := New(0)
	c.SetX(0, 0xDEADBEEF)
	if got := c.GetX(0); got != 0 {
		t.Errorf("x0 = 0x%X, want 0", got)
	}
	if c.X[0] != 0 {
		t.Errorf("underlying X[0] = 0x%X, want 0 (write must be fully discarded)", c.X[0])
	}
}

func TestSingleNaNBoxing(t *testing.T) {
	c := New(0)
	c.SetFSingle(1, 0x3F800000) // 1.0f
	if got := c.GetFDouble(1); got != 0xFFFFFFFF3F800000 {
		t.Errorf("boxed value = 0x%X, want 0xFFFFFFFF3F800000", got)
	}
	if got := c.GetFSingle(1); got != 0x3F800000 {
		t.Errorf("unboxed value = 0x%X, want 0x3F800000", got)
	}
}

func TestImproperlyBoxedReadsAsCanonicalNaN(t *testing.T) {
	c := New(0)
	c.SetFDouble(2, 0x0000000000000001) // not boxed
	if got := c.GetFSingle(2); got != canonicalNaN32 {
		t.Errorf("unboxed garbage = 0x%X, want canonical NaN 0x%X", got, canonicalNaN32)
	}
}

func TestReservationLifecycle(t *testing.T) {
	c := New(0)
	if c.ReservationMatches(0x1000) {
		t.Fatal("fresh CPU should have no reservation")
	}
	c.SetReservation(0x1000)
	if !c.ReservationMatches(0x1000) {
		t.Fatal("expected reservation to match 0x1000")
	}
	if c.ReservationMatches(0x2000) {
		t.Fatal("reservation must not match a different address")
	}
	c.ClearReservation()
	if c.ReservationMatches(0x1000) {
		t.Fatal("reservation should be cleared")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	c := New(0x1000)
	c.SetX(5, 42)
	c.SetFSingle(3, 0x40490FDB)
	c.FCSR = 0x9B
	c.SetReservation(0x2000)

	data, err := c.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out CPU
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.X != c.X || out.F != c.F || out.PC != c.PC || out.FCSR != c.FCSR ||
		out.ReservationValid != c.ReservationValid || out.Reservation != c.Reservation {
		t.Errorf("round-tripped state does not match original:\n got  %+v\n want %+v", out, *c)
	}
}

func TestFflagsRoundTrip(t *testing.T) {
	c := New(0)
	c.FCSR = 0xFF
	v := c.ReadFflags()
	if v != c.FCSR&0x1F {
		t.Fatalf("ReadFflags = %#x, want %#x", v, c.FCSR&0x1F)
	}
	c.WriteFflags(v)
	if c.FCSR&0xFF != 0xFF {
		t.Errorf("fcsr[7:0] changed after reading then writing fflags back: got %#x", c.FCSR&0xFF)
	}
	if c.FCSR&^uint32(0xFF) != 0 {
		t.Errorf("fcsr bits outside [7:0] must be zero, got %#x", c.FCSR)
	}
}
