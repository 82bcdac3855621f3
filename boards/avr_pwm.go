// boards/avr_pwm.go
package boards

// Native PWM queries for the AVR targets. These are plain timer-output
// tables, so they compile (and are testable) on any host.

// ATmega328PHasPWM reports hardware PWM on the ATmega168/328P timer output
// pins.
func ATmega328PHasPWM(native uint8) bool {
	switch native {
	case 3, 5, 6, 9, 10, 11:
		return true
	}
	return false
}

// ATmega2560HasPWM reports hardware PWM on the ATmega1280/2560 timer output
// pins: 2..13 and 44..46.
func ATmega2560HasPWM(native uint8) bool {
	return (native >= 2 && native <= 13) || (native >= 44 && native <= 46)
}
