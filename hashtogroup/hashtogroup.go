// Package hashtogroup maps messages to Ristretto255 elements and scalars by hashing them with SHA-512, as in the
// hash-to-group construction of RFC 9496 §4.3.4.
package hashtogroup

import (
	"io"

	"github.com/codahale/sha512"
	"github.com/gtank/ristretto255"
)

// Element returns the Ristretto255 element derived from the SHA-512 digest of message.
func Element(message []byte) *ristretto255.Element {
	return element(sha512.Sum512(message))
}

// ElementFromReader returns the Ristretto255 element derived from the SHA-512 digest of the reader's contents.
//
// Returns any error from the underlying reader.
func ElementFromReader(r io.Reader) (*ristretto255.Element, error) {
	c := sha512.New()
	if _, err := io.Copy(c, r); err != nil {
		return nil, err
	}
	return element(c.Finalize()), nil
}

// Scalar returns the Ristretto255 scalar derived from the SHA-512 digest of message, reduced modulo the group order.
func Scalar(message []byte) *ristretto255.Scalar {
	digest := sha512.Sum512(message)
	s, err := ristretto255.NewScalar().SetUniformBytes(digest[:])
	if err != nil {
		panic(err)
	}
	return s
}

func element(digest [sha512.Size]byte) *ristretto255.Element {
	e, err := ristretto255.NewIdentityElement().SetUniformBytes(digest[:])
	if err != nil {
		panic(err)
	}
	return e
}
