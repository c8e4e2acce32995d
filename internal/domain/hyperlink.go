package domain

import "net/url"

// HyperLink pairs a link URL with the keypair it unlocks.
type HyperLink struct {
	URL     *url.URL
	Version Version
	Keypair Keypair
}

// String returns the full link text.
func (h *HyperLink) String() string {
	if h == nil || h.URL == nil {
		return ""
	}
	return h.URL.String()
}
