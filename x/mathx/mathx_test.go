package mathx

import "testing"

func TestCeilDiv(t *testing.T) {
	if CeilDiv(uint8(16), 8) != 2 || CeilDiv(uint8(17), 8) != 3 || CeilDiv(uint8(70), 8) != 9 {
		t.Fatalf("CeilDiv wrong")
	}
	if CeilDiv(uint8(0), 8) != 0 || CeilDiv(uint8(5), 0) != 0 {
		t.Fatalf("CeilDiv edge cases wrong")
	}
}

func TestBetween(t *testing.T) {
	if !Between(uint8(3), 3, 8) || !Between(uint8(8), 3, 8) || Between(uint8(9), 3, 8) {
		t.Fatalf("Between wrong")
	}
	if !Between(5, 8, 3) {
		t.Fatalf("Between must be order-insensitive")
	}
}
