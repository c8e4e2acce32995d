package hyperlink

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"hyperlink/internal/crypto"
	"hyperlink/internal/domain"
	"hyperlink/internal/link"
)

// Service creates and recovers links for a single codec.
//
// A Service holds no mutable state and is safe for concurrent use.
type Service struct {
	codec *link.Codec
	rand  io.Reader
	log   *slog.Logger
}

// New returns a service backed by codec. A nil rand selects crypto/rand and a
// nil logger discards output.
func New(codec *link.Codec, rand io.Reader, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{codec: codec, rand: rand, log: log}
}

// Create draws a new secret for version v and returns the link and keypair it
// stands for. Password is only used by v2 links, where it is required.
func (s *Service) Create(v domain.Version, password string) (*domain.HyperLink, error) {
	scheme, err := link.SchemeFor(v)
	if err != nil {
		return nil, err
	}
	if v.RequiresPassword() && password == "" {
		return nil, domain.ErrMissingPassword
	}
	if err := crypto.Ready(); err != nil {
		return nil, err
	}

	secret, err := crypto.RandomBytes(s.rand, scheme.SecretLen())
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(secret)

	kp, err := crypto.KeypairFromSecret(s.codec.Params(), secret)
	if err != nil {
		return nil, fmt.Errorf("deriving keypair: %w", err)
	}
	u, err := s.codec.Encode(v, secret, password, s.rand)
	if err != nil {
		return nil, fmt.Errorf("encoding %s link: %w", v, err)
	}

	s.log.Debug("link created", "version", int(v), "public_key", kp.PublicKeyBase58())
	return &domain.HyperLink{URL: u, Version: v, Keypair: kp}, nil
}

// RecoverFromURL rebuilds the keypair carried by u. An empty password means
// none was given.
func (s *Service) RecoverFromURL(u *url.URL, password string) (*domain.HyperLink, error) {
	if u == nil {
		return nil, domain.ErrInvalidURL
	}
	if err := crypto.Ready(); err != nil {
		return nil, err
	}

	v, secret, err := s.codec.Decode(u, password)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(secret)

	kp, err := crypto.KeypairFromSecret(s.codec.Params(), secret)
	if err != nil {
		return nil, fmt.Errorf("deriving keypair: %w", err)
	}

	s.log.Debug("link recovered", "version", int(v), "public_key", kp.PublicKeyBase58())
	return &domain.HyperLink{URL: u, Version: v, Keypair: kp}, nil
}

// RecoverFromString parses text as an absolute URL and recovers it.
func (s *Service) RecoverFromString(text, password string) (*domain.HyperLink, error) {
	u, err := url.Parse(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute url", domain.ErrInvalidURL, text)
	}
	return s.RecoverFromURL(u, password)
}

// Compile-time assertion that Service implements domain.LinkService.
var _ domain.LinkService = (*Service)(nil)
