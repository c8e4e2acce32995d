// Package hyperlink creates claim links and recovers the keypairs they carry.
//
// It draws a fresh secret, derives the ed25519 keypair from it, and hands the
// secret to the link codec, sealing it under a password for v2 links.
// Recovery runs the same steps in reverse. Nothing is stored between calls.
package hyperlink
