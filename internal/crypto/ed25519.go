package crypto

import (
	"crypto/ed25519"
	"fmt"

	"hyperlink/internal/domain"
)

// KeypairFromSeed expands a 32-byte seed into an ed25519 keypair.
func KeypairFromSeed(seed []byte) (domain.Keypair, error) {
	if len(seed) != ed25519.SeedSize {
		return domain.Keypair{}, fmt.Errorf("ed25519 seed: want %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return domain.Keypair{
		Public:  priv.Public().(ed25519.PublicKey),
		Private: priv,
	}, nil
}

// KeypairFromSecret derives the keypair a link secret stands for.
func KeypairFromSecret(p Params, secret []byte) (domain.Keypair, error) {
	seed, err := SeedFromSecret(p, secret)
	if err != nil {
		return domain.Keypair{}, err
	}
	defer Wipe(seed)
	return KeypairFromSeed(seed)
}
