package block

import (
	"math/bits"

	"github.com/codahale/sha512/internal/byteorder"
)

func blockGeneric(h *[8]uint64, p []byte) {
	var w [Rounds]uint64
	for len(p) >= Size {
		// Expand the message schedule.
		byteorder.Uint64s(w[:16], p[:Size])
		for t := 16; t < Rounds; t++ {
			w[t] = sigma1(w[t-2]) + w[t-7] + sigma0(w[t-15]) + w[t-16]
		}

		// The working registers a..h live at s[o], s[o+1], ..., s[o+7] (mod 8). Each round moves o back by one, so the
		// register written as the new a is the one which held h.
		s := *h
		for t := range Rounds {
			o := 8 - t&7
			a, b, c := s[o&7], s[(o+1)&7], s[(o+2)&7]
			e, f, g := s[(o+4)&7], s[(o+5)&7], s[(o+6)&7]

			t1 := s[(o+7)&7] + bigSigma1(e) + ch(e, f, g) + k[t] + w[t]
			t2 := bigSigma0(a) + maj(a, b, c)

			s[(o+3)&7] += t1
			s[(o+7)&7] = t1 + t2
		}

		for i := range h {
			h[i] += s[i]
		}

		p = p[Size:]
	}
}

func ch(x, y, z uint64) uint64 {
	return (x & y) ^ (^x & z)
}

func maj(x, y, z uint64) uint64 {
	return (x & y) ^ (x & z) ^ (y & z)
}

func bigSigma0(x uint64) uint64 {
	return bits.RotateLeft64(x, -28) ^ bits.RotateLeft64(x, -34) ^ bits.RotateLeft64(x, -39)
}

func bigSigma1(x uint64) uint64 {
	return bits.RotateLeft64(x, -14) ^ bits.RotateLeft64(x, -18) ^ bits.RotateLeft64(x, -41)
}

func sigma0(x uint64) uint64 {
	return bits.RotateLeft64(x, -1) ^ bits.RotateLeft64(x, -8) ^ (x >> 7)
}

func sigma1(x uint64) uint64 {
	return bits.RotateLeft64(x, -19) ^ bits.RotateLeft64(x, -61) ^ (x >> 6)
}
