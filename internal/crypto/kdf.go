package crypto

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"math"

	"golang.org/x/crypto/argon2"
)

const (
	// SaltBytes is the Argon2id salt length (libsodium crypto_pwhash_SALTBYTES).
	SaltBytes = 16
	// KeyBytes is the secretbox key length.
	KeyBytes = 32

	minOutputBytes = 16
)

// ErrKDFParams is returned when a derivation is asked for an unsupported
// salt or output length.
var ErrKDFParams = errors.New("invalid kdf parameters")

// Params are the Argon2id cost parameters.
type Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// InteractiveParams match libsodium's OPSLIMIT_INTERACTIVE / MEMLIMIT_INTERACTIVE
// for crypto_pwhash_ALG_ARGON2ID13. Changing them changes every derived key.
var InteractiveParams = Params{Time: 2, MemoryKiB: 64 * 1024, Threads: 1}

// Derive stretches input into outLen bytes with Argon2id under salt.
func Derive(p Params, outLen int, input, salt []byte) ([]byte, error) {
	if len(salt) != SaltBytes {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrKDFParams, SaltBytes, len(salt))
	}
	if outLen < minOutputBytes || uint64(outLen) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: output length %d", ErrKDFParams, outLen)
	}
	if p.Time == 0 || p.Threads == 0 {
		return nil, fmt.Errorf("%w: time and threads must be non-zero", ErrKDFParams)
	}
	return argon2.IDKey(input, salt, p.Time, p.MemoryKiB, p.Threads, uint32(outLen)), nil
}

// DeriveZeroSalt is Derive with an all-zero salt.
//
// The salt is fixed on purpose: a link must rebuild the same keypair every
// time it is opened, and the random secret already supplies the entropy a
// per-use salt would. Adding a random salt here breaks every existing link.
func DeriveZeroSalt(p Params, outLen int, input []byte) ([]byte, error) {
	var salt [SaltBytes]byte
	return Derive(p, outLen, input, salt[:])
}

// SeedFromSecret derives the 32-byte ed25519 seed for a link secret.
func SeedFromSecret(p Params, secret []byte) ([]byte, error) {
	return DeriveZeroSalt(p, ed25519.SeedSize, secret)
}

// SymmetricKeyFromPassword derives the secretbox key for a password.
func SymmetricKeyFromPassword(p Params, password string) (*[KeyBytes]byte, error) {
	k, err := DeriveZeroSalt(p, KeyBytes, []byte(password))
	if err != nil {
		return nil, err
	}
	defer Wipe(k)

	var key [KeyBytes]byte
	copy(key[:], k)
	return &key, nil
}
