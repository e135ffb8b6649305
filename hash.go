package sha512

import "hash"

// NewHash returns a hash.Hash computing SHA-512. Unlike Finalize, its Sum method does not change the underlying state.
func NewHash() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

type digest struct {
	Context
}

func (d *digest) Sum(b []byte) []byte {
	c := d.Context
	sum := c.Finalize()
	return append(b, sum[:]...)
}

func (d *digest) Reset() {
	d.Init()
}

func (d *digest) Size() int {
	return Size
}

func (d *digest) BlockSize() int {
	return BlockSize
}

var _ hash.Hash = (*digest)(nil)
