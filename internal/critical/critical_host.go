// internal/critical/critical_host.go
//go:build !tinygo

package critical

import "sync"

var mu sync.Mutex

// Do runs fn inside the interrupt-masked bracket. Hosted builds model the
// mask with a process-wide mutex so tests drive the same code shape as
// firmware.
func Do(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	fn()
}
