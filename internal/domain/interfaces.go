package domain

import "net/url"

// LinkService creates links and recovers keypairs from them.
type LinkService interface {
	Create(v Version, password string) (*HyperLink, error)
	RecoverFromURL(u *url.URL, password string) (*HyperLink, error)
	RecoverFromString(text, password string) (*HyperLink, error)
}
