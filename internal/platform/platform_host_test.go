//go:build !avr && !rp2040

package platform

import "testing"

func TestFakeIOWriteLog(t *testing.T) {
	io := NewFakeIO()
	if io.DigitalRead(4) {
		t.Fatalf("pins must start low")
	}
	io.DigitalWrite(4, true)
	io.DigitalWrite(5, false)
	if !io.DigitalRead(4) || io.DigitalRead(5) {
		t.Fatalf("levels not applied")
	}
	w := io.Writes()
	if len(w) != 2 || w[0] != (Write{Pin: 4, Level: true}) || w[1] != (Write{Pin: 5, Level: false}) {
		t.Fatalf("write log wrong: %v", w)
	}
	// External stimulus does not show up in the log.
	io.SetLevel(6, true)
	if !io.DigitalRead(6) || len(io.Writes()) != 2 {
		t.Fatalf("SetLevel must bypass the log")
	}
	io.ResetWrites()
	if len(io.Writes()) != 0 || !io.DigitalRead(4) {
		t.Fatalf("ResetWrites must keep levels")
	}
}

func TestSimBankMaskedWrite(t *testing.T) {
	b := &SimBank{}
	b.Load(0xF0)
	b.WriteMasked(0x0F, 0x3C)
	if got := b.Value(); got != 0xCC {
		t.Fatalf("masked write got %#02x want 0xCC", got)
	}
	if b.WriteCount() != 1 {
		t.Fatalf("write count %d", b.WriteCount())
	}
	// Value bits outside the mask are discarded.
	b.WriteMasked(0xFF, 0x01)
	if got := b.Value(); got != 0xCD {
		t.Fatalf("got %#02x want 0xCD", got)
	}
}

func TestSimBankSetByName(t *testing.T) {
	set := SimBankSet{"PORTB": &SimBank{}}
	if b, ok := set.ByName("PORTB"); !ok || b == nil {
		t.Fatalf("PORTB must resolve")
	}
	if _, ok := set.ByName("PORTE"); ok {
		t.Fatalf("unknown bank must not resolve")
	}
}
