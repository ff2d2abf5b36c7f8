package wyhash

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// The fixed secret from the wyhash reference implementation. Identical in
// every build, so equal inputs hash equally across all calls in a run.
const (
	secret0 = uint64(0xa0761d6478bd642f)
	secret1 = uint64(0xe7037ed1a0b428db)
	secret2 = uint64(0x8ebc6af09c88c6e3)
	secret3 = uint64(0x589965cc75374cc3)
)

// golden is 2^64 divided by the golden ratio, the usual odd constant for
// spreading low-entropy integers across the full 64-bit range.
const golden = uint64(0x9e3779b97f4a7c15)

// Sum64 returns the 64-bit hash of b.
//
// The slice is only read, never retained; it must stay valid and unmodified
// for the duration of the call. A nil or empty slice hashes to a defined
// value.
func Sum64(b []byte) uint64 { return sum64(b) }

// Sum64String returns the 64-bit hash of the bytes of s without copying.
// Sum64String(s) == Sum64([]byte(s)) for every s.
func Sum64String(s string) uint64 {
	if len(s) == 0 {
		return sum64(nil)
	}
	return sum64(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Uint64 hashes a single 64-bit integer. The output avalanches, so small
// sequential inputs land far apart.
func Uint64(x uint64) uint64 { return mix(x, golden) }

// mix folds the full 128-bit product of a and b into 64 bits by XORing the
// low and high halves.
func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

// mixGeneric is the portable 64x64->128 multiplication, splitting each
// operand into 32-bit halves and propagating carries by hand. It must stay
// bit-identical to mix on every input.
func mixGeneric(a, b uint64) uint64 {
	ha, hb := a>>32, b>>32
	la, lb := uint64(uint32(a)), uint64(uint32(b))
	rh := ha * hb
	rm0 := ha * lb
	rm1 := hb * la
	rl := la * lb
	t := rl + rm0<<32
	var c uint64
	if t < rl {
		c = 1
	}
	lo := t + rm1<<32
	if lo < t {
		c++
	}
	hi := rh + rm0>>32 + rm1>>32 + c
	return hi ^ lo
}

// Byte loads use the host's native order on purpose; see the package doc.

func read8(b []byte) uint64 { return binary.NativeEndian.Uint64(b) }

func read4(b []byte) uint64 { return uint64(binary.NativeEndian.Uint32(b)) }

// read3 packs the first, middle and last byte of b's leading k bytes
// (1 <= k <= 3). The overlapping picks make every available byte count even
// for one- and two-byte inputs.
func read3(b []byte, k int) uint64 {
	return uint64(b[0])<<16 | uint64(b[k>>1])<<8 | uint64(b[k-1])
}

func sum64(p []byte) uint64 {
	l := len(p)
	seed := secret0
	var a, b uint64

	switch {
	case l == 0:
		// a and b stay zero.
	case l < 4:
		a = read3(p, l)
	case l <= 16:
		// Two overlapping 4-byte loads from each end cover the whole
		// buffer without branching on the exact length.
		stride := (l >> 3) << 2
		a = read4(p)<<32 | read4(p[stride:])
		b = read4(p[l-4:])<<32 | read4(p[l-4-stride:])
	default:
		i := l
		off := 0
		if i > 48 {
			see1, see2 := seed, seed
			for {
				seed = mix(read8(p[off:])^secret1, read8(p[off+8:])^seed)
				see1 = mix(read8(p[off+16:])^secret2, read8(p[off+24:])^see1)
				see2 = mix(read8(p[off+32:])^secret3, read8(p[off+40:])^see2)
				off += 48
				i -= 48
				if i <= 48 {
					break
				}
			}
			seed ^= see1 ^ see2
		}
		for i > 16 {
			seed = mix(read8(p[off:])^secret1, read8(p[off+8:])^seed)
			off += 16
			i -= 16
		}
		// Re-read the final 16 bytes from the tail so trailing bytes
		// not aligned to the stride still influence the result.
		a = read8(p[off+i-16:])
		b = read8(p[off+i-8:])
	}

	// Folding the length in means a prefix and its extension never share
	// a hash by construction.
	return mix(secret1^uint64(l), mix(a^secret1, b^seed))
}
