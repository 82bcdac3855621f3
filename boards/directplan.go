// boards/directplan.go
package boards

// DirectPlan describes how a profile's logical ports map onto native 8-bit
// output registers, for boards where a grouped read-modify-write is cheaper
// than eight scalar writes. The engine only follows a plan when the caller
// has bound a matching bank set; the portable path always remains available
// and behaviourally equivalent.
type DirectPlan struct {
	// Ports maps a port index to the register slices covering it.
	Ports map[uint8][]BankSlice
}

// BankSlice maps part of one logical port onto one hardware register.
type BankSlice struct {
	// Bank names the register; the engine resolves it via its BankSet.
	Bank string

	// Mask selects the port-relative bits this register serves.
	Mask uint8

	// Shift moves a port bit position to its register bit position.
	// Negative values shift right.
	Shift int

	// Reserved marks register bits that must never change, no matter what
	// the caller's bitmask requests: fixed functions (UART lines, radio
	// links) and slots outside the board's digital domain.
	Reserved uint8
}
