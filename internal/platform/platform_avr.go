// internal/platform/platform_avr.go
//go:build avr

package platform

import (
	"device/avr"
	"machine"
	"runtime/volatile"

	"pinio-go/internal/critical"
	"pinio-go/ports"
)

// MachineIO drives native pins through the machine package.
type MachineIO struct{}

func (MachineIO) DigitalRead(native uint8) bool {
	return machine.Pin(native).Get()
}

func (MachineIO) DigitalWrite(native uint8, level bool) {
	machine.Pin(native).Set(level)
}

// ConfigureInput puts a native pin into input mode with pull-up, the reset
// state the control protocol expects.
func (MachineIO) ConfigureInput(native uint8) {
	machine.Pin(native).Configure(machine.PinConfig{Mode: machine.PinInputPullup})
}

// ConfigureOutput puts a native pin into output mode.
func (MachineIO) ConfigureOutput(native uint8) {
	machine.Pin(native).Configure(machine.PinConfig{Mode: machine.PinOutput})
}

// avrBank wraps one AVR output register. The read-modify-write runs with
// interrupts masked; an ISR touching the same register cannot interleave.
type avrBank struct {
	reg *volatile.Register8
}

func (b avrBank) WriteMasked(value, mask uint8) {
	critical.Do(func() {
		b.reg.Set((b.reg.Get() &^ mask) | (value & mask))
	})
}

// avrBankSet exposes the ATmega output registers under their datasheet
// names, matching the DirectPlan entries of the AVR profiles.
type avrBankSet struct{}

func (avrBankSet) ByName(name string) (ports.Bank, bool) {
	switch name {
	case "PORTB":
		return avrBank{avr.PORTB}, true
	case "PORTC":
		return avrBank{avr.PORTC}, true
	case "PORTD":
		return avrBank{avr.PORTD}, true
	}
	return nil, false
}

// IO returns the native scalar primitives for this target.
func IO() ports.DigitalIO { return MachineIO{} }

// Banks returns the native register banks for this target.
func Banks() ports.BankSet { return avrBankSet{} }
