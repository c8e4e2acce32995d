package link

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/mr-tron/base58/base58"

	"hyperlink/internal/crypto"
	"hyperlink/internal/domain"
)

const (
	// DefaultOrigin is used when no origin is configured.
	DefaultOrigin = "https://hyperlink.org"
	// Path is the fixed link path.
	Path = "/i"
)

// Codec turns secrets into links under a single origin and back.
type Codec struct {
	origin string
	params crypto.Params
}

// New returns a codec for origin. An empty origin selects DefaultOrigin.
func New(origin string, p crypto.Params) *Codec {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		origin = DefaultOrigin
	}
	return &Codec{origin: origin, params: p}
}

// Origin returns the origin links are built under.
func (c *Codec) Origin() string { return c.origin }

// Params returns the KDF cost parameters used for password sealing.
func (c *Codec) Params() crypto.Params { return c.params }

// Encode builds the link for secret. For v2 the secret is sealed under
// password with a nonce read from r (crypto/rand when nil).
func (c *Codec) Encode(v domain.Version, secret []byte, password string, r io.Reader) (*url.URL, error) {
	s, err := SchemeFor(v)
	if err != nil {
		return nil, err
	}
	if len(secret) != s.SecretLen() {
		return nil, fmt.Errorf("%w: %s secret must be %d bytes, got %d",
			domain.ErrInvalidPayload, v, s.SecretLen(), len(secret))
	}
	payload, err := s.seal(c.params, r, secret, password)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(c.origin + Path + "#" + s.Prefix() + base58.Encode(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidURL, err)
	}
	return u, nil
}

// Parse splits the fragment of u into its version and base58-decoded payload.
// Nothing is decrypted.
func (c *Codec) Parse(u *url.URL) (domain.Version, []byte, error) {
	if u == nil {
		return 0, nil, domain.ErrInvalidURL
	}
	slug := u.Fragment
	version := domain.V0

	if strings.Contains(slug, Delimiter) {
		parts := strings.Split(slug, Delimiter)
		if len(parts) < 3 || parts[0] != "" {
			return 0, nil, fmt.Errorf("%w: malformed version tag", domain.ErrInvalidPayload)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || !domain.Version(n).Valid() {
			return 0, nil, fmt.Errorf("%w: %q", domain.ErrInvalidVersion, parts[1])
		}
		version = domain.Version(n)
		slug = strings.Join(parts[2:], Delimiter)
	}

	if slug == "" {
		return 0, nil, fmt.Errorf("%w: empty payload", domain.ErrInvalidPayload)
	}
	payload, err := base58.Decode(slug)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", domain.ErrInvalidPayload, err)
	}
	return version, payload, nil
}

// Decode recovers the version and secret carried by u. A v2 link needs a
// non-empty password; without one it fails with ErrMissingPassword before
// any key derivation runs.
func (c *Codec) Decode(u *url.URL, password string) (domain.Version, []byte, error) {
	v, payload, err := c.Parse(u)
	if err != nil {
		return 0, nil, err
	}
	s, err := SchemeFor(v)
	if err != nil {
		return 0, nil, err
	}
	secret, err := s.open(c.params, payload, password)
	if err != nil {
		return 0, nil, err
	}
	if len(secret) != s.SecretLen() {
		crypto.Wipe(secret)
		return 0, nil, fmt.Errorf("%w: %s secret must be %d bytes, got %d",
			domain.ErrInvalidPayload, v, s.SecretLen(), len(secret))
	}
	return v, secret, nil
}
