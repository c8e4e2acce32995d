// Package crypto exposes the primitives hyperlink builds links from.
//
// Contents
//
//   - One-time readiness probe of the system random source (Ready)
//   - Argon2id stretching with a fixed zero salt (Derive, DeriveZeroSalt,
//     SeedFromSecret, SymmetricKeyFromPassword)
//   - Ed25519 keypairs from KDF seeds (KeypairFromSeed, KeypairFromSecret);
//     signing itself is left to crypto/ed25519
//   - Password sealing with NaCl secretbox (EncryptWithPassword,
//     DecryptWithPassword)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// InteractiveParams mirror libsodium's crypto_pwhash interactive limits for
// Argon2id, so links stay byte-compatible with libsodium based encoders.
// Callers should treat returned secrets, seeds and keys as sensitive and rely
// on Wipe when practical to reduce lifetime in memory.
package crypto
