package expander

import (
	"errors"
	"testing"

	"tinygo.org/x/drivers/mcp23017"

	"pinio-go/boards"
	"pinio-go/errcode"
	"pinio-go/ports"
)

type setCall struct {
	pins, mask mcp23017.Pins
}

// fakeDev models the expander's output latch without the wire.
type fakeDev struct {
	pins mcp23017.Pins
	err  error
	sets []setCall
}

func (f *fakeDev) GetPins() (mcp23017.Pins, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.pins, nil
}

func (f *fakeDev) SetPins(pins, mask mcp23017.Pins) error {
	if f.err != nil {
		return f.err
	}
	f.sets = append(f.sets, setCall{pins: pins, mask: mask})
	f.pins = (f.pins &^ mask) | (pins & mask)
	return nil
}

func TestScalarPrimitives(t *testing.T) {
	dev := &fakeDev{pins: 1 << 9}
	e := newWithDevice(dev)

	if e.DigitalRead(3) || !e.DigitalRead(9) {
		t.Fatalf("reads wrong")
	}
	if e.DigitalRead(16) {
		t.Fatalf("out-of-range pin must read low")
	}

	e.DigitalWrite(3, true)
	if dev.pins != 1<<9|1<<3 {
		t.Fatalf("pins=%#04x", uint16(dev.pins))
	}
	if len(dev.sets) != 1 || dev.sets[0].mask != 1<<3 {
		t.Fatalf("scalar write must mask a single pin: %+v", dev.sets)
	}
	e.DigitalWrite(9, false)
	if dev.pins != 1<<3 {
		t.Fatalf("clear failed, pins=%#04x", uint16(dev.pins))
	}
}

func TestBankViews(t *testing.T) {
	dev := &fakeDev{}
	e := newWithDevice(dev)

	a, ok := e.ByName("GPA")
	if !ok {
		t.Fatalf("GPA must resolve")
	}
	b, ok := e.ByName("GPB")
	if !ok {
		t.Fatalf("GPB must resolve")
	}
	if _, ok := e.ByName("GPC"); ok {
		t.Fatalf("unknown bank must not resolve")
	}

	a.WriteMasked(0xA5, 0xFF)
	if dev.pins != 0x00A5 {
		t.Fatalf("GPA write pins=%#04x", uint16(dev.pins))
	}
	b.WriteMasked(0xFF, 0x0F)
	if dev.pins != 0x0FA5 {
		t.Fatalf("GPB write pins=%#04x", uint16(dev.pins))
	}
	last := dev.sets[len(dev.sets)-1]
	if last.mask != 0x0F00 {
		t.Fatalf("GPB mask must shift to the high byte: %#04x", uint16(last.mask))
	}
}

func TestEngineGroupedWriteThroughExpander(t *testing.T) {
	dev := &fakeDev{}
	e := newWithDevice(dev)
	eng := ports.New(boards.PicoExpander(boards.Config{}), e, ports.WithDirectWrite(e))

	eng.WritePort(1, 0b00001111, 0b00111100)
	if dev.pins != 0x0C00 {
		t.Fatalf("pins=%#04x want 0x0C00", uint16(dev.pins))
	}
	if len(dev.sets) != 1 {
		t.Fatalf("grouped write must be one transaction, saw %d", len(dev.sets))
	}

	// Reads go through the same latch.
	if got := eng.ReadPort(1, 0xFF); got != 0x0C {
		t.Fatalf("ReadPort=%#02x want 0x0C", got)
	}
}

func TestBusFaultLatches(t *testing.T) {
	dev := &fakeDev{err: errors.New("i2c timeout")}
	e := newWithDevice(dev)

	if e.DigitalRead(0) {
		t.Fatalf("faulted read must degrade to low")
	}
	err := e.Err()
	if err == nil {
		t.Fatalf("fault must latch")
	}
	if errcode.Of(err) != errcode.BusFault {
		t.Fatalf("code=%v", errcode.Of(err))
	}
	if !errors.Is(err, dev.err) {
		t.Fatalf("cause must be preserved")
	}
	if e.Err() != nil {
		t.Fatalf("Err must clear the latch")
	}
}
