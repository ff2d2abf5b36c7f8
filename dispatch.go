package hashing

import (
	"fmt"
	"hash/fnv"
	"reflect"
	"unsafe"

	"go.dw1.io/hashing/wyhash"
)

// Value returns the 64-bit hash of v.
//
// Strategy by category: booleans, integers and characters widen to 64 bits
// via numeric conversion and go through [wyhash.Uint64]; strings and byte
// slices hash their raw bytes with [wyhash.Sum64]; pointers hash their
// address without dereferencing (nil hashes as address zero); structs,
// arrays and non-byte slices fold their parts in order from seed zero.
// Anything else defers to a generic fallback whose output is not
// avalanching; [Combine] remixes such values before folding.
func Value[T any](v T) uint64 {
	h, _ := valueOf(v)
	return h
}

// valueOf dispatches v and reports whether the chosen strategy avalanches.
// The type switch covers the predeclared types; everything named or
// composite resolves through reflection.
func valueOf(v any) (h uint64, avalanching bool) {
	switch x := v.(type) {
	case bool:
		return wyhash.Uint64(boolWord(x)), true
	case int:
		return wyhash.Uint64(uint64(int64(x))), true
	case int8:
		return wyhash.Uint64(uint64(int64(x))), true
	case int16:
		return wyhash.Uint64(uint64(int64(x))), true
	case int32:
		return wyhash.Uint64(uint64(int64(x))), true
	case int64:
		return wyhash.Uint64(uint64(x)), true
	case uint:
		return wyhash.Uint64(uint64(x)), true
	case uint8:
		return wyhash.Uint64(uint64(x)), true
	case uint16:
		return wyhash.Uint64(uint64(x)), true
	case uint32:
		return wyhash.Uint64(uint64(x)), true
	case uint64:
		return wyhash.Uint64(x), true
	case uintptr:
		return wyhash.Uint64(uint64(x)), true
	case string:
		return wyhash.Sum64String(x), true
	case []byte:
		return wyhash.Sum64(x), true
	case unsafe.Pointer:
		return wyhash.Uint64(uint64(uintptr(x))), true
	default:
		return hashReflect(reflect.ValueOf(v))
	}
}

// hashReflect mirrors valueOf's strategies for named and composite types.
// For every kind the type switch also covers, the two must agree, so an
// enumeration hashes like its ordinal and a named string like its content.
func hashReflect(rv reflect.Value) (h uint64, avalanching bool) {
	switch rv.Kind() {
	case reflect.Invalid:
		// Value(nil): an absent reference hashes as address zero.
		return wyhash.Uint64(0), true
	case reflect.Bool:
		return wyhash.Uint64(boolWord(rv.Bool())), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return wyhash.Uint64(uint64(rv.Int())), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return wyhash.Uint64(rv.Uint()), true
	case reflect.String:
		return wyhash.Sum64String(rv.String()), true
	case reflect.Pointer, reflect.UnsafePointer:
		return wyhash.Uint64(uint64(rv.Pointer())), true
	case reflect.Interface:
		if rv.IsNil() {
			return wyhash.Uint64(0), true
		}
		return hashReflect(rv.Elem())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return wyhash.Sum64(sliceBytes(rv)), true
		}
		return hashSequence(rv)
	case reflect.Array:
		return hashSequence(rv)
	case reflect.Struct:
		var seed uint64
		for i := 0; i < rv.NumField(); i++ {
			seed = foldValue(seed, rv.Field(i))
		}
		return seed, true
	default:
		return hashFallback(rv), false
	}
}

// hashSequence folds elements in iteration order from seed zero, so two
// sequences hash equally iff they have equal length and pairwise-equal
// elements in the same order. An empty sequence hashes to zero.
func hashSequence(rv reflect.Value) (uint64, bool) {
	var seed uint64
	for i := 0; i < rv.Len(); i++ {
		seed = foldValue(seed, rv.Index(i))
	}
	return seed, true
}

// foldValue hashes one aggregate member and folds it into seed, remixing
// non-avalanching results first.
func foldValue(seed uint64, rv reflect.Value) uint64 {
	h, avalanching := hashReflect(rv)
	if !avalanching {
		h = wyhash.Uint64(h)
	}
	return Fold(seed, h)
}

// sliceBytes returns the raw bytes of a byte slice. Slices reached through
// unexported struct fields are read element by element, since reflect
// refuses Bytes there; content hashing must not depend on how the slice was
// reached.
func sliceBytes(rv reflect.Value) []byte {
	if rv.CanInterface() {
		return rv.Bytes()
	}
	b := make([]byte, rv.Len())
	for i := range b {
		b[i] = byte(rv.Index(i).Uint())
	}
	return b
}

// hashFallback is the escape hatch for kinds without a built-in strategy
// (floats, complex numbers, maps, channels, functions). It hashes a
// rendering of the value with FNV-1a, the conventional default hasher.
// FNV does not avalanche, so callers treat the result conservatively.
func hashFallback(rv reflect.Value) uint64 {
	d := fnv.New64a()
	fmt.Fprintf(d, "%v=%v", rv.Type(), rv)
	return d.Sum64()
}

func boolWord(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
