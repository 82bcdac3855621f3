// boards/mega.go
package boards

// Mega builds the ATmega1280/2560 profile: 54 digital plus 16 analog pins.
// Pins 0..1 carry the UART console and stay outside the digital domain. The
// pin banks are spread over too many registers for a grouped plan to pay
// off, so the profile keeps the portable write path.
func Mega(cfg Config) Profile {
	const total = 70
	maxServos := cfg.MaxServos

	isDigital := func(p uint8) bool {
		return p >= 2 && p < total
	}
	isPWM := func(p uint8) bool {
		if p >= total {
			return false
		}
		if cfg.PWM == nil {
			return isDigital(p)
		}
		return cfg.PWM(p)
	}

	return Profile{
		Name:            "mega",
		TotalPins:       total,
		TotalAnalogPins: 16,
		VersionBlinkPin: 13,

		IsDigital: isDigital,
		IsAnalog: func(p uint8) bool {
			return p >= 54 && p < total
		},
		IsPWM: isPWM,
		IsServo: func(p uint8) bool {
			return p >= 2 && p < total && int(p)-2 < maxServos
		},
		IsI2C: func(p uint8) bool {
			return p == 20 || p == 21
		},

		ToDigital: identity,
		ToAnalog:  func(p uint8) uint8 { return p - 54 },
		ToPWM:     identity,
		ToServo:   func(p uint8) uint8 { return p - 2 },
	}
}
