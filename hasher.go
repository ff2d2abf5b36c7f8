package hashing

import "reflect"

// Hasher hashes values of a single type T with the strategy [Value] would
// pick for T, resolved once at construction.
type Hasher[T any] struct {
	avalanching bool
}

// For resolves the hashing strategy for T. Typical use is a hash table
// keyed by T that wants to know up front whether the hashes it receives
// need a remix before bucket folding.
func For[T any]() Hasher[T] {
	return Hasher[T]{avalanching: avalanchingKind(reflect.TypeOf((*T)(nil)).Elem().Kind())}
}

// Hash returns the 64-bit hash of v.
func (h Hasher[T]) Hash(v T) uint64 { return Value(v) }

// Avalanching reports whether the strategy's output already has uniformly
// distributed bits. It is a static property of T's category: false only for
// types served by the generic fallback, and for interface types, whose
// dynamic value is unknown here and treated conservatively.
func (h Hasher[T]) Avalanching() bool { return h.avalanching }

func avalanchingKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.String,
		reflect.Pointer, reflect.UnsafePointer,
		reflect.Slice, reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}
