package domain

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
)

// Keypair is an ed25519 signing keypair derived from a link secret.
type Keypair struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// PublicKeyBase58 renders the public key in base58, the form wallets display.
func (k Keypair) PublicKeyBase58() string { return base58.Encode(k.Public) }

// Equal reports whether both keypairs share the same public key.
func (k Keypair) Equal(other Keypair) bool { return k.Public.Equal(other.Public) }
