package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"

	"hyperlink/internal/domain"
)

// NonceBytes is the secretbox (XSalsa20-Poly1305) nonce length.
const NonceBytes = 24

// EncryptWithPassword seals plaintext under a key derived from password and
// returns nonce‖ciphertext. The nonce is read from r (crypto/rand when nil).
func EncryptWithPassword(p Params, r io.Reader, plaintext []byte, password string) ([]byte, error) {
	key, err := SymmetricKeyFromPassword(p, password)
	if err != nil {
		return nil, err
	}
	defer Wipe(key[:])

	n, err := RandomBytes(r, NonceBytes)
	if err != nil {
		return nil, err
	}
	var nonce [NonceBytes]byte
	copy(nonce[:], n)

	out := make([]byte, NonceBytes, NonceBytes+len(plaintext)+secretbox.Overhead)
	copy(out, nonce[:])
	return secretbox.Seal(out, plaintext, &nonce, key), nil
}

// DecryptWithPassword opens a nonce‖ciphertext blob produced by EncryptWithPassword.
func DecryptWithPassword(p Params, blob []byte, password string) ([]byte, error) {
	if len(blob) < NonceBytes+secretbox.Overhead {
		return nil, fmt.Errorf("%w: sealed payload too short (%d bytes)", domain.ErrAuthenticationFailure, len(blob))
	}
	key, err := SymmetricKeyFromPassword(p, password)
	if err != nil {
		return nil, err
	}
	defer Wipe(key[:])

	var nonce [NonceBytes]byte
	copy(nonce[:], blob[:NonceBytes])
	pt, ok := secretbox.Open(nil, blob[NonceBytes:], &nonce, key)
	if !ok {
		return nil, domain.ErrAuthenticationFailure
	}
	return pt, nil
}
