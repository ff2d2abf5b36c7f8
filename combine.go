package hashing

import "go.dw1.io/hashing/wyhash"

// goldenRatio32 is the additive constant from the boost hash_combine
// formula. Together with the shift terms it keeps a zero seed from folding
// weakly with small hashes.
const goldenRatio32 = 0x9e3779b9

// Fold mixes an already-computed hash h into seed and returns the new seed.
// It assumes h avalanches; remix non-avalanching sources with
// [wyhash.Uint64] first.
func Fold(seed, h uint64) uint64 {
	return seed ^ (h + goldenRatio32 + seed<<6 + seed>>2)
}

// Combine hashes each value left to right and folds it into *seed. Values
// served by the non-avalanching fallback are remixed before folding. With
// no values the seed is left unchanged.
func Combine(seed *uint64, values ...any) {
	for _, v := range values {
		h, avalanching := valueOf(v)
		if !avalanching {
			h = wyhash.Uint64(h)
		}
		*seed = Fold(*seed, h)
	}
}

// Pair hashes a two-field aggregate: first field folded first, from seed
// zero.
func Pair[A, B any](a A, b B) uint64 {
	var seed uint64
	Combine(&seed, a, b)
	return seed
}

// Tuple hashes a fixed sequence of heterogeneous fields in strict argument
// order from seed zero. Tuple() returns 0. It agrees with [Value] of a
// struct holding the same fields in the same order.
func Tuple(values ...any) uint64 {
	var seed uint64
	Combine(&seed, values...)
	return seed
}

// Seq hashes an ordered homogeneous sequence element by element from seed
// zero; an empty or nil slice returns 0. Reordering elements changes the
// result. For content hashing of byte slices use [Value] instead, which
// hashes the raw bytes.
func Seq[S ~[]E, E any](s S) uint64 {
	var seed uint64
	for _, e := range s {
		Combine(&seed, e)
	}
	return seed
}
