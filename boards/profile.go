// boards/profile.go
package boards

import "pinio-go/x/mathx"

// Predicate reports whether a logical pin has one capability. Predicates are
// total over the whole pin domain and return false for out-of-range pins;
// they never fail.
type Predicate func(pin uint8) bool

// Translate maps a logical pin to the native pin number a platform primitive
// expects. A translation is defined only where its matching Predicate holds,
// so test the predicate first.
type Translate func(pin uint8) uint8

// PWMCapability is the host platform's own PWM query for a native pin.
// Profiles default IsPWM to it unless their table overrides it.
type PWMCapability func(native uint8) bool

// Protocol ceilings: the control protocol addresses at most 128 pins and 16
// analog inputs.
const (
	MaxTotalPins  = 128
	MaxAnalogPins = 16
)

// Profile is the immutable capability table for one hardware variant.
// Exactly one profile is active for the lifetime of a build; the
// board-tagged selected_*.go files bind it to Selected, and a build without
// a recognised board tag does not compile.
type Profile struct {
	Name string

	TotalPins       uint8
	TotalAnalogPins uint8

	// VersionBlinkPin is the native indicator pin used for the liveness
	// blink. It is unrelated to logical pin numbering and kept verbatim
	// from the board table, including boards that park it on an unwired
	// number.
	VersionBlinkPin uint8

	IsDigital Predicate
	IsAnalog  Predicate
	IsPWM     Predicate
	IsServo   Predicate
	IsI2C     Predicate

	ToDigital Translate
	ToAnalog  Translate
	ToPWM     Translate
	ToServo   Translate

	// DirectWrite opts the profile into grouped-register port writes.
	// Nil keeps the portable per-pin path.
	DirectWrite *DirectPlan
}

// TotalPorts derives the 8-pin port count from TotalPins. It is never
// configured independently.
func (p Profile) TotalPorts() uint8 {
	return mathx.CeilDiv(p.TotalPins, 8)
}

// Config carries the externally supplied parameters a profile constructor
// needs. The zero value is a valid minimal build (no servos, no PWM query).
type Config struct {
	// MaxServos caps IsServo: a pin's servo index must stay below it.
	// Zero matches a build without a servo driver linked in.
	MaxServos int

	// PWM backs the IsPWM default. When nil the table falls back to
	// digital capability, mirroring hosts that ship no PWM query.
	PWM PWMCapability

	// AnalogInputs picks between analog bank sizes on boards that ship in
	// more than one configuration. Constructors clamp it to their table.
	AnalogInputs int
}
