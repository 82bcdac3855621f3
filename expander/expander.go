// expander/expander.go

// Package expander adapts an MCP23017 I2C port expander to the pin engine:
// its 16 pins become logical pins 0..15 and its GPA/GPB banks back the
// grouped write plan of the pico_expander profile.
package expander

import (
	"sync"

	"tinygo.org/x/drivers/mcp23017"

	"pinio-go/errcode"
	"pinio-go/ports"
)

// portDevice is the slice of the mcp23017 driver we use. A local interface
// keeps tests off the wire.
type portDevice interface {
	GetPins() (mcp23017.Pins, error)
	SetPins(pins, mask mcp23017.Pins) error
}

// Expander implements ports.DigitalIO and ports.BankSet over one MCP23017.
//
// The scalar primitives are error-free by contract, so bus faults are
// latched instead of returned: reads degrade to low, writes are dropped,
// and the last fault stays readable via Err until cleared.
type Expander struct {
	dev portDevice

	mu  sync.Mutex
	err error
}

// New wraps a configured mcp23017 device.
func New(dev *mcp23017.Device) *Expander {
	return &Expander{dev: dev}
}

func newWithDevice(dev portDevice) *Expander {
	return &Expander{dev: dev}
}

func (e *Expander) DigitalRead(native uint8) bool {
	if native > 15 {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	pins, err := e.dev.GetPins()
	if err != nil {
		e.latch("GetPins", err)
		return false
	}
	return pins&(1<<native) != 0
}

func (e *Expander) DigitalWrite(native uint8, level bool) {
	if native > 15 {
		return
	}
	var val mcp23017.Pins
	if level {
		val = 1 << native
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.dev.SetPins(val, 1<<native); err != nil {
		e.latch("SetPins", err)
	}
}

// ByName resolves the pico_expander plan's bank names.
func (e *Expander) ByName(name string) (ports.Bank, bool) {
	switch name {
	case "GPA":
		return bank{e: e, shift: 0}, true
	case "GPB":
		return bank{e: e, shift: 8}, true
	}
	return nil, false
}

// Err returns the latched bus fault, if any, and clears it.
func (e *Expander) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	err := e.err
	e.err = nil
	return err
}

// caller holds lock
func (e *Expander) latch(op string, err error) {
	e.err = &errcode.E{C: errcode.BusFault, Op: "mcp23017." + op, Err: err}
}

// bank is an 8-bit view of one expander register. The driver performs the
// masked update as a single transaction on the wire; the engine-side mutex
// keeps it ordered against the scalar primitives.
type bank struct {
	e     *Expander
	shift uint8
}

func (b bank) WriteMasked(value, mask uint8) {
	b.e.mu.Lock()
	defer b.e.mu.Unlock()
	err := b.e.dev.SetPins(
		mcp23017.Pins(value)<<b.shift,
		mcp23017.Pins(mask)<<b.shift,
	)
	if err != nil {
		b.e.latch("SetPins", err)
	}
}
