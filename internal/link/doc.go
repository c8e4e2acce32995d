// Package link encodes link secrets into URL fragments and back.
//
// Fragment layouts
//
//   - v0: "#" + base58(secret[12])
//   - v1: "#_1_" + base58(secret[16])
//   - v2: "#_2_" + base58(nonce[24] ‖ secretbox(secret[16]))
//
// Each version is a Scheme. SchemeFor is the only place a Version is mapped
// to its Scheme, so a new version is added by extending that switch.
//
// A Codec is bound to one origin at construction and holds no mutable state,
// so codecs for different origins can be used side by side.
package link
