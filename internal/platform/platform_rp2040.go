// internal/platform/platform_rp2040.go
//go:build rp2040

package platform

import (
	"machine"

	"pinio-go/ports"
)

// MachineIO drives native pins through the machine package. On the Pico
// setups the engine's logical pins usually live behind the expander; this
// covers host-side pins such as the onboard LED.
type MachineIO struct{}

func (MachineIO) DigitalRead(native uint8) bool {
	return machine.Pin(native).Get()
}

func (MachineIO) DigitalWrite(native uint8, level bool) {
	machine.Pin(native).Set(level)
}

// ConfigureOutput puts a native pin into output mode.
func (MachineIO) ConfigureOutput(native uint8) {
	machine.Pin(native).Configure(machine.PinConfig{Mode: machine.PinOutput})
}

// IO returns the native scalar primitives for this target.
func IO() ports.DigitalIO { return MachineIO{} }
