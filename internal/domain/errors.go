package domain

import "errors"

var (
	// ErrInvalidVersion is returned for a link version outside {0, 1, 2}.
	ErrInvalidVersion = errors.New("invalid version")
	// ErrMissingPassword is returned when a version 2 link is recovered without a password.
	ErrMissingPassword = errors.New("password is required for version 2 links")
	// ErrAuthenticationFailure is returned when a sealed payload fails to open:
	// either the password is wrong or the link was modified / corrupted.
	ErrAuthenticationFailure = errors.New("wrong password or corrupted link")
	// ErrInvalidURL is returned when link text does not parse as an absolute URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrInvalidPayload is returned when the fragment payload is not valid
	// base58 or does not carry a secret of the length its version requires.
	ErrInvalidPayload = errors.New("invalid link payload")
	// ErrCryptoInit is returned when the system random source is unusable.
	ErrCryptoInit = errors.New("crypto initialisation failed")
)
