package link

import (
	"fmt"
	"io"
	"strconv"

	"hyperlink/internal/crypto"
	"hyperlink/internal/domain"
)

const (
	// Delimiter separates the version tag from the payload.
	Delimiter = "_"

	shortSecretBytes = 12
	longSecretBytes  = 16
)

// Scheme describes how one link version lays out and protects its secret.
type Scheme interface {
	Version() domain.Version
	// SecretLen is the number of random secret bytes a new link carries.
	SecretLen() int
	// Prefix is the fragment text placed before the base58 payload.
	Prefix() string

	seal(p crypto.Params, r io.Reader, secret []byte, password string) ([]byte, error)
	open(p crypto.Params, payload []byte, password string) ([]byte, error)
}

// SchemeFor returns the scheme for v, or ErrInvalidVersion.
func SchemeFor(v domain.Version) (Scheme, error) {
	switch v {
	case domain.V0:
		return plainScheme{version: v, secretLen: shortSecretBytes}, nil
	case domain.V1:
		return plainScheme{version: v, secretLen: longSecretBytes, tagged: true}, nil
	case domain.V2:
		return sealedScheme{version: v, secretLen: longSecretBytes}, nil
	default:
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidVersion, int(v))
	}
}

func versionPrefix(v domain.Version) string {
	return Delimiter + strconv.Itoa(int(v)) + Delimiter
}

// plainScheme carries the secret in the clear.
type plainScheme struct {
	version   domain.Version
	secretLen int
	tagged    bool
}

func (s plainScheme) Version() domain.Version { return s.version }
func (s plainScheme) SecretLen() int          { return s.secretLen }

func (s plainScheme) Prefix() string {
	if !s.tagged {
		return ""
	}
	return versionPrefix(s.version)
}

func (s plainScheme) seal(_ crypto.Params, _ io.Reader, secret []byte, _ string) ([]byte, error) {
	return append([]byte(nil), secret...), nil
}

func (s plainScheme) open(_ crypto.Params, payload []byte, _ string) ([]byte, error) {
	return payload, nil
}

// sealedScheme carries the secret sealed under a password-derived key.
type sealedScheme struct {
	version   domain.Version
	secretLen int
}

func (s sealedScheme) Version() domain.Version { return s.version }
func (s sealedScheme) SecretLen() int          { return s.secretLen }
func (s sealedScheme) Prefix() string          { return versionPrefix(s.version) }

func (s sealedScheme) seal(p crypto.Params, r io.Reader, secret []byte, password string) ([]byte, error) {
	// An empty password could never be supplied again on recovery.
	if password == "" {
		return nil, domain.ErrMissingPassword
	}
	return crypto.EncryptWithPassword(p, r, secret, password)
}

func (s sealedScheme) open(p crypto.Params, payload []byte, password string) ([]byte, error) {
	if password == "" {
		return nil, domain.ErrMissingPassword
	}
	return crypto.DecryptWithPassword(p, payload, password)
}
