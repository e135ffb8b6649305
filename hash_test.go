package sha512_test

import (
	"bytes"
	stdsha512 "crypto/sha512"
	"io"
	"testing"

	"github.com/codahale/sha512"
	"github.com/codahale/sha512/internal/testdata"
)

func TestHash_Size(t *testing.T) {
	h := sha512.NewHash()
	if s := h.Size(); s != sha512.Size {
		t.Errorf("Size() = %d, want %d", s, sha512.Size)
	}

	if bs := h.BlockSize(); bs != 128 {
		t.Errorf("BlockSize() = %d, want 128", bs)
	}
}

func TestHash_Sum(t *testing.T) {
	h := sha512.NewHash()
	_, _ = h.Write([]byte("Hello, world!"))

	sum := h.Sum(nil)
	if want := stdsha512.Sum512([]byte("Hello, world!")); !bytes.Equal(sum, want[:]) {
		t.Errorf("Sum() = %x, want %x", sum, want)
	}

	// Sum does not disturb the running state.
	sum2 := h.Sum(nil)
	if !bytes.Equal(sum, sum2) {
		t.Errorf("Sum() = %x, want %x", sum2, sum)
	}

	_, _ = h.Write([]byte("Hello, world!"))
	sum3 := h.Sum([]byte("prefix"))
	want := stdsha512.Sum512([]byte("Hello, world!Hello, world!"))
	if !bytes.Equal(sum3, append([]byte("prefix"), want[:]...)) {
		t.Errorf("Sum(prefix) = %x, want %x", sum3, want)
	}
}

func TestHash_Reset(t *testing.T) {
	h := sha512.NewHash()
	_, _ = h.Write([]byte("data"))
	sum1 := h.Sum(nil)

	h.Reset()
	empty := sha512.Sum512(nil)
	if got := h.Sum(nil); !bytes.Equal(got, empty[:]) {
		t.Errorf("Sum() after Reset = %x, want %x", got, empty)
	}

	_, _ = h.Write([]byte("data"))
	if sum2 := h.Sum(nil); !bytes.Equal(sum1, sum2) {
		t.Errorf("Sum() after Reset+Write = %x, want %x", sum2, sum1)
	}
}

func TestHash_Copy(t *testing.T) {
	msg := testdata.New("sha512 hash copy").Data(10_000)

	h := sha512.NewHash()
	if _, err := io.Copy(h, bytes.NewReader(msg)); err != nil {
		t.Fatal(err)
	}

	if got, want := h.Sum(nil), stdsha512.Sum512(msg); !bytes.Equal(got, want[:]) {
		t.Errorf("Sum() = %x, want %x", got, want)
	}
}
