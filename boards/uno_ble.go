// boards/uno_ble.go
package boards

import "pinio-go/x/mathx"

// ATmega328P digital pin to AVR output register layout:
// logical 0..7 sit on PORTD, 8..13 on PORTB bits 0..5, 14..19 on PORTC
// bits 0..5. PORTD bits 0..1 carry the UART RX/TX lines.

// UnoBLE builds the profile for the ATmega168/328P boards carrying the BLE
// link (Duemilanove, Diecimila, NG class). Digital pins 2 and 9..13 belong
// to the BTLE transceiver and are withheld from the digital domain. The
// analog bank is addressed from logical pin 14 upward; boards ship with
// either 6 or 8 analog inputs, which also changes the logical pin count.
//
// The table is carried verbatim from the board definition, including the
// digital/analog overlap at pins 14+ — callers must not assume the two
// domains are disjoint here.
func UnoBLE(cfg Config) Profile {
	analog := uint8(8)
	total := uint8(22)
	if cfg.AnalogInputs == 6 {
		analog, total = 6, 16
	}
	maxServos := cfg.MaxServos

	isDigital := func(p uint8) bool {
		if p >= total {
			return false
		}
		return mathx.Between(p, 3, 8) || mathx.Between(p, 14, 19)
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
		Name:            "uno_ble",
		TotalPins:       total,
		TotalAnalogPins: analog,
		VersionBlinkPin: 99,

		IsDigital: isDigital,
		IsAnalog: func(p uint8) bool {
			return p >= 14 && p < 14+analog && p < total
		},
		IsPWM: isPWM,
		IsServo: func(p uint8) bool {
			return isDigital(p) && int(p)-2 < maxServos
		},
		IsI2C: func(p uint8) bool {
			return (p == 18 || p == 19) && p < total
		},

		ToDigital: identity,
		ToAnalog:  func(p uint8) uint8 { return p - 14 },
		ToPWM:     identity,
		ToServo:   func(p uint8) uint8 { return p - 2 },

		DirectWrite: unoBLEPlan(total),
	}
}

func identity(p uint8) uint8 { return p }

// unoBLEPlan maps logical ports onto the AVR output registers. Reserved bits
// cover the UART lines and every slot outside the digital domain, so a
// grouped write can never touch a pin the portable path would skip.
func unoBLEPlan(total uint8) *DirectPlan {
	plan := &DirectPlan{Ports: map[uint8][]BankSlice{
		// Pins 0..7 on PORTD. Bits 0..1 are RX/TX, bit 2 the BTLE line.
		0: {
			{Bank: "PORTD", Mask: 0xFF, Shift: 0, Reserved: 0x07},
		},
		// Pins 8..13 on PORTB bits 0..5 (9..13 are BTLE), 14..15 on
		// PORTC bits 0..1.
		1: {
			{Bank: "PORTB", Mask: 0x3F, Shift: 0, Reserved: 0x3E},
			{Bank: "PORTC", Mask: 0xC0, Shift: -6},
		},
	}}
	if total > 16 {
		// Pins 16..19 on PORTC bits 2..5; only present on the 22-pin
		// variant.
		plan.Ports[2] = []BankSlice{
			{Bank: "PORTC", Mask: 0x0F, Shift: 2},
		}
	}
	return plan
}
