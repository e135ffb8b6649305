// Package ed25519 implements the Ed25519 signature algorithm as defined in [RFC 8032], using this module's SHA-512.
//
// Keys and signatures are byte-for-byte compatible with crypto/ed25519.
//
// [RFC 8032]: https://www.rfc-editor.org/rfc/rfc8032
package ed25519

import (
	"crypto/subtle"
	"io"
	"strconv"

	"filippo.io/edwards25519"
	"github.com/codahale/sha512"
)

const (
	// SeedSize is the size, in bytes, of private key seeds.
	SeedSize = 32

	// PublicKeySize is the size, in bytes, of public keys.
	PublicKeySize = 32

	// PrivateKeySize is the size, in bytes, of private keys: the seed followed by the public key.
	PrivateKeySize = 64

	// SignatureSize is the size, in bytes, of signatures.
	SignatureSize = 64
)

// PublicKey is an Ed25519 public key.
type PublicKey []byte

// PrivateKey is an Ed25519 private key.
type PrivateKey []byte

// Public returns the public key corresponding to priv.
func (priv PrivateKey) Public() PublicKey {
	return PublicKey(append([]byte(nil), priv[SeedSize:]...))
}

// Seed returns the private key seed corresponding to priv.
func (priv PrivateKey) Seed() []byte {
	return append([]byte(nil), priv[:SeedSize]...)
}

// GenerateKey generates a key pair using the seed read from rand.
func GenerateKey(rand io.Reader) (PublicKey, PrivateKey, error) {
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(rand, seed); err != nil {
		return nil, nil, err
	}

	priv := NewKeyFromSeed(seed)
	return priv.Public(), priv, nil
}

// NewKeyFromSeed calculates a private key from a seed. It panics if len(seed) is not SeedSize.
func NewKeyFromSeed(seed []byte) PrivateKey {
	if l := len(seed); l != SeedSize {
		panic("ed25519: bad seed length: " + strconv.Itoa(l))
	}

	s, _ := expand(seed)
	a := new(edwards25519.Point).ScalarBaseMult(s)

	priv := make([]byte, PrivateKeySize)
	copy(priv, seed)
	copy(priv[SeedSize:], a.Bytes())
	return priv
}

// Sign signs the message with priv and returns a signature. It panics if len(priv) is not PrivateKeySize.
func Sign(priv PrivateKey, message []byte) []byte {
	if l := len(priv); l != PrivateKeySize {
		panic("ed25519: bad private key length: " + strconv.Itoa(l))
	}
	seed, pub := priv[:SeedSize], priv[SeedSize:]

	s, prefix := expand(seed)

	// The commitment scalar is derived from the secret prefix and the message.
	r := hashToScalar(prefix, message)
	R := new(edwards25519.Point).ScalarBaseMult(r)
	encodedR := R.Bytes()

	// The challenge scalar binds the commitment, the signer, and the message.
	k := hashToScalar(encodedR, pub, message)

	// S = k * s + r
	S := edwards25519.NewScalar().MultiplyAdd(k, s, r)

	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, encodedR...)
	return append(sig, S.Bytes()...)
}

// Verify reports whether sig is a valid signature of message by pub. It panics if len(pub) is not PublicKeySize.
func Verify(pub PublicKey, message, sig []byte) bool {
	if l := len(pub); l != PublicKeySize {
		panic("ed25519: bad public key length: " + strconv.Itoa(l))
	}

	if len(sig) != SignatureSize || sig[63]&224 != 0 {
		return false
	}

	A, err := new(edwards25519.Point).SetBytes(pub)
	if err != nil {
		return false
	}

	k := hashToScalar(sig[:32], pub, message)

	S, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}

	// R' = [S]B - [k]A
	minusA := new(edwards25519.Point).Negate(A)
	R := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(k, minusA, S)

	return subtle.ConstantTimeCompare(sig[:32], R.Bytes()) == 1
}

// expand hashes a seed into the clamped secret scalar and the nonce prefix.
func expand(seed []byte) (*edwards25519.Scalar, []byte) {
	h := sha512.Sum512(seed)
	s, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		panic("ed25519: internal error: setting scalar failed")
	}
	return s, h[32:]
}

// hashToScalar returns SHA-512(parts...) reduced modulo the group order.
func hashToScalar(parts ...[]byte) *edwards25519.Scalar {
	c := sha512.New()
	for _, p := range parts {
		c.Update(p)
	}
	digest := c.Finalize()

	s, err := edwards25519.NewScalar().SetUniformBytes(digest[:])
	if err != nil {
		panic("ed25519: internal error: setting scalar failed")
	}
	return s
}
