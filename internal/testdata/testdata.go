// Package testdata provides deterministic pseudorandom inputs for tests.
package testdata

import "crypto/sha3"

// DRBG is a deterministic random bit generator keyed by a domain string.
type DRBG struct {
	xof *sha3.SHAKE
}

// New returns a DRBG whose output stream depends only on domain.
func New(domain string) *DRBG {
	xof := sha3.NewSHAKE128()
	_, _ = xof.Write([]byte(domain))
	return &DRBG{xof: xof}
}

// Data returns the next n bytes of output.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.xof.Read(b)
	return b
}

// Seed returns the next 32 bytes of output, suitable as an Ed25519 seed.
func (d *DRBG) Seed() []byte {
	return d.Data(32)
}
