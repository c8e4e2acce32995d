package app

import (
	"io"
	"log/slog"
	"os"

	"hyperlink/internal/crypto"
	"hyperlink/internal/domain"
	"hyperlink/internal/link"
	linksvc "hyperlink/internal/services/hyperlink"
)

// Wire bundles the codec, services and logger for the CLI.
type Wire struct {
	Config Config
	Codec  *link.Codec
	Links  domain.LinkService
	Log    *slog.Logger
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut, or to
// stderr when logOut is nil.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logOut == nil {
		logOut = os.Stderr
	}
	log := NewLogger(cfg, logOut)

	codec := link.New(cfg.Origin, crypto.InteractiveParams)
	links := linksvc.New(codec, nil, log)

	return &Wire{
		Config: cfg,
		Codec:  codec,
		Links:  links,
		Log:    log,
	}, nil
}
