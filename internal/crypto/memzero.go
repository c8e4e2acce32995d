package crypto

import "runtime"

// Wipe zeroes b in place. It is best-effort: the Go runtime may already hold
// copies of the data elsewhere.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(&b)
}
