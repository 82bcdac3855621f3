// boards/pico_expander.go
package boards

// PicoExpander builds a profile for an RP2040 host driving all of its
// logical pins through an MCP23017 port expander: 16 digital pins mapped
// 1:1 onto the expander's GPA/GPB banks. The expander has no analog inputs,
// no PWM and no servo timer, so those domains are empty regardless of the
// host's own capabilities. The indicator pin is the Pico's onboard LED,
// which is a host pin and deliberately outside the logical numbering.
func PicoExpander(cfg Config) Profile {
	const total = 16

	isDigital := func(p uint8) bool { return p < total }
	never := func(uint8) bool { return false }

	return Profile{
		Name:            "pico_expander",
		TotalPins:       total,
		TotalAnalogPins: 0,
		VersionBlinkPin: 25,

		IsDigital: isDigital,
		IsAnalog:  never,
		IsPWM:     never,
		IsServo:   never,
		IsI2C:     never,

		ToDigital: identity,
		ToAnalog:  identity,
		ToPWM:     identity,
		ToServo:   identity,

		DirectWrite: &DirectPlan{Ports: map[uint8][]BankSlice{
			0: {{Bank: "GPA", Mask: 0xFF, Shift: 0}},
			1: {{Bank: "GPB", Mask: 0xFF, Shift: 0}},
		}},
	}
}
