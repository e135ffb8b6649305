// Package byteorder encodes and decodes unsigned integers in big-endian byte order.
package byteorder

import "encoding/binary"

// PutUint64 writes v into b[:8], most significant byte first.
func PutUint64(b []byte, v uint64) {
	binary.BigEndian.PutUint64(b, v)
}

// Uint64 reads a big-endian uint64 from b[:8].
func Uint64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// AppendUint64 appends the big-endian encoding of v to b.
func AppendUint64(b []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(b, v)
}

// PutUint32 writes v into b[:4], most significant byte first.
func PutUint32(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

// Uint32 reads a big-endian uint32 from b[:4].
func Uint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// PutUint64s encodes each word of src into consecutive 8-byte groups of dst.
func PutUint64s(dst []byte, src []uint64) {
	_ = dst[8*len(src)-1] // bounds check hint
	for i, v := range src {
		binary.BigEndian.PutUint64(dst[8*i:], v)
	}
}

// Uint64s decodes consecutive 8-byte groups of src into dst.
func Uint64s(dst []uint64, src []byte) {
	_ = src[8*len(dst)-1] // bounds check hint
	for i := range dst {
		dst[i] = binary.BigEndian.Uint64(src[8*i:])
	}
}
