package byteorder

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestPutUint64(t *testing.T) {
	var b [8]byte
	PutUint64(b[:], 0x0102030405060708)

	if got, want := hex.EncodeToString(b[:]), "0102030405060708"; got != want {
		t.Errorf("PutUint64 = %s, want = %s", got, want)
	}
}

func TestUint32(t *testing.T) {
	var b [4]byte
	PutUint32(b[:], 0xdeadbeef)

	if got, want := b, [4]byte{0xde, 0xad, 0xbe, 0xef}; got != want {
		t.Errorf("PutUint32 = %x, want = %x", got, want)
	}

	if got, want := Uint32(b[:]), uint32(0xdeadbeef); got != want {
		t.Errorf("Uint32 = %x, want = %x", got, want)
	}
}

func TestAppendUint64(t *testing.T) {
	b := AppendUint64([]byte{0xff}, 1)
	if got, want := b, []byte{0xff, 0, 0, 0, 0, 0, 0, 0, 1}; !bytes.Equal(got, want) {
		t.Errorf("AppendUint64 = %x, want = %x", got, want)
	}
}

func TestVectors(t *testing.T) {
	src := []uint64{0x6a09e667f3bcc908, 0, 0xffffffffffffffff}
	buf := make([]byte, 8*len(src))
	PutUint64s(buf, src)

	if got, want := hex.EncodeToString(buf), "6a09e667f3bcc9080000000000000000ffffffffffffffff"; got != want {
		t.Errorf("PutUint64s = %s, want = %s", got, want)
	}

	dst := make([]uint64, len(src))
	Uint64s(dst, buf)
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("Uint64s[%d] = %x, want = %x", i, dst[i], src[i])
		}
	}
}

func FuzzRoundTrip(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1) << 63)
	f.Add(uint64(0x0123456789abcdef))

	f.Fuzz(func(t *testing.T, x uint64) {
		var b [8]byte
		PutUint64(b[:], x)
		if got := Uint64(b[:]); got != x {
			t.Errorf("Uint64(PutUint64(%x)) = %x", x, got)
		}
		if b[0] != byte(x>>56) || b[7] != byte(x) {
			t.Errorf("PutUint64(%x) = %x, not big-endian", x, b)
		}
	})
}
