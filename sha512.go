// Package sha512 implements the SHA-512 hash algorithm as defined in [FIPS 180-4].
//
// A Context is created with New (or by calling Init on a zero Context), fed with any number of calls to Update, and
// consumed exactly once by Finalize, which returns the 64-byte digest and wipes the Context. Using a Context which has
// not been initialized, or which has already been finalized, is a programming error and panics.
//
// For use with the standard library's hash interfaces, see NewHash.
//
// [FIPS 180-4]: https://nvlpubs.nist.gov/nistpubs/FIPS/NIST.FIPS.180-4.pdf
package sha512

import (
	"encoding"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/codahale/sha512/internal/block"
	"github.com/codahale/sha512/internal/byteorder"
)

const (
	// Size is the size of a SHA-512 digest in bytes.
	Size = 64

	// BlockSize is the block size of SHA-512 in bytes.
	BlockSize = block.Size
)

// ErrInvalidState is returned when a serialized Context cannot be restored.
var ErrInvalidState = errors.New("sha512: invalid state")

// Context is a streaming SHA-512 computation. A Context must not be used concurrently.
type Context struct {
	h     [8]uint64
	hi    uint64 // high word of the bit count
	lo    uint64 // low word of the bit count
	x     [BlockSize]byte
	nx    int
	phase phase
}

type phase uint8

const (
	uninitialized phase = iota
	ready
	finalized
)

// New returns a new, initialized Context.
func New() *Context {
	c := new(Context)
	c.Init()
	return c
}

// Sum512 returns the SHA-512 digest of data.
func Sum512(data []byte) [Size]byte {
	var c Context
	c.Init()
	c.Update(data)
	return c.Finalize()
}

// Init resets the Context to the initial state. It may be called on a zero Context or on one which has been
// finalized.
func (c *Context) Init() {
	c.h = block.IV()
	c.hi, c.lo = 0, 0
	clear(c.x[:])
	c.nx = 0
	c.phase = ready
}

// Update extends the hashed message with p.
func (c *Context) Update(p []byte) {
	c.check("update")

	n := uint64(len(p))
	var carry uint64
	c.lo, carry = bits.Add64(c.lo, n<<3, 0)
	c.hi += n>>61 + carry

	if c.nx+len(p) < BlockSize {
		c.nx += copy(c.x[c.nx:], p)
		return
	}

	// Fill and compress the buffered block.
	m := copy(c.x[c.nx:], p)
	block.Block(&c.h, c.x[:])
	p = p[m:]

	// Compress any whole blocks in place.
	if len(p) >= BlockSize {
		m = len(p) &^ (BlockSize - 1)
		block.Block(&c.h, p[:m])
		p = p[m:]
	}

	c.nx = copy(c.x[:], p)
}

// Write is Update in the form of an io.Writer. It never returns an error.
func (c *Context) Write(p []byte) (int, error) {
	c.Update(p)
	return len(p), nil
}

// Finalize pads the message, returns its digest and wipes the Context. The Context may not be used again until Init
// is called.
func (c *Context) Finalize() (digest [Size]byte) {
	c.check("finalize")
	defer c.wipe()

	// Pad with a single 1 bit and then 0 bits until 112 bytes mod 128. If there is not enough room for the length,
	// finish this block and start the final one with zeros.
	c.x[c.nx] = 0x80
	if c.nx >= lengthOffset {
		clear(c.x[c.nx+1:])
		block.Block(&c.h, c.x[:])
		clear(c.x[:lengthOffset])
	} else {
		clear(c.x[c.nx+1 : lengthOffset])
	}

	// Append the 128-bit message length in bits.
	byteorder.PutUint64(c.x[lengthOffset:], c.hi)
	byteorder.PutUint64(c.x[lengthOffset+8:], c.lo)
	block.Block(&c.h, c.x[:])

	byteorder.PutUint64s(digest[:], c.h[:])
	return digest
}

// String returns the hex encoding of the current chaining state.
func (c *Context) String() string {
	var b [Size]byte
	byteorder.PutUint64s(b[:], c.h[:])
	return hex.EncodeToString(b[:])
}

// AppendBinary appends a serialized form of the Context's state to b. It returns ErrInvalidState if the Context is
// not ready for use.
func (c *Context) AppendBinary(b []byte) ([]byte, error) {
	if c.phase != ready {
		return nil, ErrInvalidState
	}

	b = append(b, magic...)
	for _, v := range c.h {
		b = byteorder.AppendUint64(b, v)
	}
	b = byteorder.AppendUint64(b, c.hi)
	b = byteorder.AppendUint64(b, c.lo)
	b = append(b, byte(c.nx))
	b = append(b, c.x[:c.nx]...)
	b = append(b, make([]byte, BlockSize-c.nx)...)
	return b, nil
}

// MarshalBinary returns a serialized form of the Context's state.
func (c *Context) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(make([]byte, 0, marshaledSize))
}

// UnmarshalBinary restores a Context's state from the output of MarshalBinary. The restored Context is ready for
// use.
func (c *Context) UnmarshalBinary(data []byte) error {
	if len(data) != marshaledSize || string(data[:len(magic)]) != magic {
		return ErrInvalidState
	}
	b := data[len(magic):]

	lo := byteorder.Uint64(b[72:])
	nx := b[80]
	if nx >= BlockSize || uint64(nx) != (lo>>3)%BlockSize {
		return fmt.Errorf("%w: buffered length %d does not match bit count", ErrInvalidState, nx)
	}

	byteorder.Uint64s(c.h[:], b[:64])
	c.hi = byteorder.Uint64(b[64:])
	c.lo = lo
	c.nx = int(nx)
	copy(c.x[:], b[81:])
	clear(c.x[nx:])
	c.phase = ready
	return nil
}

func (c *Context) check(op string) {
	switch c.phase {
	case uninitialized:
		panic("sha512: cannot " + op + " an uninitialized context")
	case finalized:
		panic("sha512: cannot " + op + " a finalized context")
	case ready:
	}
}

func (c *Context) wipe() {
	clear(c.h[:])
	c.hi, c.lo = 0, 0
	clear(c.x[:])
	c.nx = 0
	c.phase = finalized
}

const (
	lengthOffset  = BlockSize - 16
	magic         = "sha512\x00\x01"
	marshaledSize = len(magic) + 8*8 + 16 + 1 + BlockSize
)

var (
	_ io.Writer                  = (*Context)(nil)
	_ fmt.Stringer               = (*Context)(nil)
	_ encoding.BinaryAppender    = (*Context)(nil)
	_ encoding.BinaryMarshaler   = (*Context)(nil)
	_ encoding.BinaryUnmarshaler = (*Context)(nil)
)
