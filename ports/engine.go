// ports/engine.go
package ports

import "pinio-go/boards"

// DigitalIO supplies the host scalar pin primitives the engine delegates
// to. Native pin numbers come from the profile's translations; the
// primitives are total and error-free by contract.
type DigitalIO interface {
	DigitalRead(native uint8) bool
	DigitalWrite(native uint8, level bool)
}

// Bank is one native 8-bit output register. WriteMasked replaces the bits
// selected by mask with value in a single read-modify-write that is atomic
// with respect to interrupt-driven mutation of the same register.
type Bank interface {
	WriteMasked(value, mask uint8)
}

// BankSet resolves the register names of a profile's DirectPlan to hardware
// banks.
type BankSet interface {
	ByName(name string) (Bank, bool)
}

// Engine performs grouped 8-pin reads and masked writes on top of the
// active profile and the host primitives. It carries no state of its own:
// every call is a pure transformation over the current hardware snapshot.
type Engine struct {
	prof  boards.Profile
	io    DigitalIO
	banks BankSet
}

type Option func(*Engine)

// WithDirectWrite binds hardware banks, enabling the profile's grouped
// write plan. Profiles without a plan, ports the plan does not cover, and
// ports whose plan names a bank the set cannot resolve keep the portable
// per-pin path.
func WithDirectWrite(banks BankSet) Option {
	return func(e *Engine) { e.banks = banks }
}

func New(prof boards.Profile, io DigitalIO, opts ...Option) *Engine {
	e := &Engine{prof: prof, io: io}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Profile exposes the active board table so the protocol layer can run its
// own validity checks when building capability reports.
func (e *Engine) Profile() boards.Profile { return e.prof }

// ReadPort reads the 8 pins of port; bit i of bitmask selects logical pin
// port*8+i. Bits for pins that were not requested, or are not
// digital-capable, come back 0 rather than stale data. An out-of-range port
// degrades to 0.
func (e *Engine) ReadPort(port, bitmask uint8) uint8 {
	var out uint8
	base := uint16(port) * 8
	for i := uint8(0); i < 8; i++ {
		if bitmask&(1<<i) == 0 {
			continue
		}
		pin := base + uint16(i)
		if pin >= uint16(e.prof.TotalPins) {
			continue
		}
		p := uint8(pin)
		if !e.prof.IsDigital(p) {
			continue
		}
		if e.io.DigitalRead(e.prof.ToDigital(p)) {
			out |= 1 << i
		}
	}
	return out
}

// WritePort applies the selected bits of value to the digital pins of port.
// Pins outside the bitmask, and pins outside the digital domain, are left
// untouched; requesting them is not an error.
func (e *Engine) WritePort(port, value, bitmask uint8) {
	if e.banks != nil && e.prof.DirectWrite != nil {
		if slices, ok := e.prof.DirectWrite.Ports[port]; ok && e.banksResolve(slices) {
			e.writeDirect(slices, value, bitmask)
			return
		}
	}

	base := uint16(port) * 8
	for i := uint8(0); i < 8; i++ {
		if bitmask&(1<<i) == 0 {
			continue
		}
		pin := base + uint16(i)
		if pin >= uint16(e.prof.TotalPins) {
			continue
		}
		p := uint8(pin)
		if !e.prof.IsDigital(p) {
			continue
		}
		e.io.DigitalWrite(e.prof.ToDigital(p), value&(1<<i) != 0)
	}
}

// banksResolve reports whether every register slice maps to a bound bank.
// A port whose plan cannot fully resolve is written through the portable
// path instead, keeping the two paths observably equivalent.
func (e *Engine) banksResolve(slices []boards.BankSlice) bool {
	for _, s := range slices {
		if _, ok := e.banks.ByName(s.Bank); !ok {
			return false
		}
	}
	return true
}

// writeDirect performs one masked read-modify-write per register slice.
// Reserved register bits are stripped from the mask after shifting, so a
// caller bitmask naming a reserved pin can never alter it.
func (e *Engine) writeDirect(slices []boards.BankSlice, value, bitmask uint8) {
	for _, s := range slices {
		sel := bitmask & s.Mask
		if sel == 0 {
			continue
		}
		bank, _ := e.banks.ByName(s.Bank)
		mask := shift8(sel, s.Shift) &^ s.Reserved
		if mask == 0 {
			continue
		}
		val := shift8(value&sel, s.Shift) & mask
		bank.WriteMasked(val, mask)
	}
}

// shift8 shifts left for positive n and right for negative n.
func shift8(v uint8, n int) uint8 {
	if n >= 0 {
		return v << n
	}
	return v >> (-n)
}
