package domain

import "strconv"

// Version selects the secret length, the fragment layout and whether the
// secret is sealed under a password.
type Version int

const (
	// V0 carries a 12-byte secret as the bare fragment.
	V0 Version = iota
	// V1 carries a 16-byte secret behind a "_1_" prefix.
	V1
	// V2 carries a password-sealed 16-byte secret behind a "_2_" prefix.
	V2
)

// Versions lists every supported version in ascending order.
var Versions = []Version{V0, V1, V2}

// Valid reports whether v is a supported link version.
func (v Version) Valid() bool {
	switch v {
	case V0, V1, V2:
		return true
	default:
		return false
	}
}

// RequiresPassword reports whether links of this version are password sealed.
func (v Version) RequiresPassword() bool { return v == V2 }

func (v Version) String() string { return "v" + strconv.Itoa(int(v)) }
