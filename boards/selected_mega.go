//go:build board_mega

package boards

// Servo channels the Mega build links in.
const maxServoCount = 48

// Selected is the single profile this build runs against. There is no
// untagged fallback on purpose: building without exactly one recognised
// board tag must fail here rather than ship a wrong pin table.
var Selected = Mega(Config{
	MaxServos: maxServoCount,
	PWM:       ATmega2560HasPWM,
})
