// internal/platform/platform_host.go
//go:build !avr && !rp2040

package platform

import (
	"sync"

	"pinio-go/internal/critical"
	"pinio-go/ports"
)

// ----------------------------- GPIO (host) -----------------------------------

// Write records one scalar write observed by FakeIO.
type Write struct {
	Pin   uint8
	Level bool
}

// FakeIO implements ports.DigitalIO for host-side tests: map-backed levels
// plus a log of every write.
type FakeIO struct {
	mu     sync.RWMutex
	levels map[uint8]bool
	writes []Write
}

func NewFakeIO() *FakeIO {
	return &FakeIO{levels: make(map[uint8]bool)}
}

func (f *FakeIO) DigitalRead(native uint8) bool {
	f.mu.RLock()
	v := f.levels[native]
	f.mu.RUnlock()
	return v
}

func (f *FakeIO) DigitalWrite(native uint8, level bool) {
	f.mu.Lock()
	f.levels[native] = level
	f.writes = append(f.writes, Write{Pin: native, Level: level})
	f.mu.Unlock()
}

// SetLevel drives a pin from the test without logging a write, as external
// hardware would.
func (f *FakeIO) SetLevel(native uint8, level bool) {
	f.mu.Lock()
	f.levels[native] = level
	f.mu.Unlock()
}

// Writes returns a copy of the write log.
func (f *FakeIO) Writes() []Write {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]Write(nil), f.writes...)
}

// ResetWrites clears the write log, keeping pin levels.
func (f *FakeIO) ResetWrites() {
	f.mu.Lock()
	f.writes = nil
	f.mu.Unlock()
}

// ----------------------------- Banks (host) ----------------------------------

// SimBank is a fake 8-bit output register implementing ports.Bank. The
// read-modify-write runs under the same critical bracket as firmware banks.
type SimBank struct {
	mu     sync.RWMutex
	val    uint8
	writes int
}

func (b *SimBank) WriteMasked(value, mask uint8) {
	critical.Do(func() {
		b.mu.Lock()
		b.val = (b.val &^ mask) | (value & mask)
		b.writes++
		b.mu.Unlock()
	})
}

// Value returns the current register contents.
func (b *SimBank) Value() uint8 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.val
}

// Load sets the register contents from the test, bypassing the write count.
func (b *SimBank) Load(v uint8) {
	b.mu.Lock()
	b.val = v
	b.mu.Unlock()
}

// WriteCount returns how many masked writes the register has seen.
func (b *SimBank) WriteCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.writes
}

// SimBankSet resolves plan register names to SimBanks.
type SimBankSet map[string]*SimBank

func (s SimBankSet) ByName(name string) (ports.Bank, bool) {
	b, ok := s[name]
	return b, ok
}
