//go:build board_uno_ble

package boards

// Servo channels the 328P build links in.
const maxServoCount = 12

// Selected is the single profile this build runs against. There is no
// untagged fallback on purpose: building without exactly one recognised
// board tag must fail here rather than ship a wrong pin table.
var Selected = UnoBLE(Config{
	MaxServos:    maxServoCount,
	AnalogInputs: 6,
	PWM:          ATmega328PHasPWM,
})
