package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"hyperlink/internal/domain"
)

var ready = sync.OnceValue(func() error {
	var probe [1]byte
	if _, err := io.ReadFull(rand.Reader, probe[:]); err != nil {
		return fmt.Errorf("%w: system random source: %w", domain.ErrCryptoInit, err)
	}
	return nil
})

// Ready probes the system random source once per process. Repeated and
// concurrent calls return the result of the first probe.
func Ready() error { return ready() }

// RandomBytes reads exactly n bytes from r, or from crypto/rand when r is nil.
func RandomBytes(r io.Reader, n int) ([]byte, error) {
	if r == nil {
		r = rand.Reader
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("%w: reading %d random bytes: %w", domain.ErrCryptoInit, n, err)
	}
	return b, nil
}
