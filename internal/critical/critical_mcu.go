// internal/critical/critical_mcu.go
//go:build tinygo

package critical

import "runtime/interrupt"

// Do runs fn with interrupts disabled. The previous interrupt state is
// restored on every exit path, including a panic inside fn.
func Do(fn func()) {
	state := interrupt.Disable()
	defer interrupt.Restore(state)
	fn()
}
