package hashing_test

import (
	"testing"
	"unsafe"

	"go.dw1.io/hashing"
	"go.dw1.io/hashing/wyhash"
)

func TestValueIntegerWidening(t *testing.T) {
	t.Run("negative", func(t *testing.T) {
		// A negative value must normalize identically at every width.
		want := hashing.Value(int64(-1))
		widths := map[string]uint64{
			"int":   hashing.Value(int(-1)),
			"int8":  hashing.Value(int8(-1)),
			"int16": hashing.Value(int16(-1)),
			"int32": hashing.Value(int32(-1)),
		}
		for name, got := range widths {
			if got != want {
				t.Fatalf("%s(-1) hashed %#x, int64(-1) hashed %#x", name, got, want)
			}
		}
		if got := hashing.Value(^uint64(0)); got != want {
			t.Fatalf("uint64 max hashed %#x, int64(-1) hashed %#x", got, want)
		}
	})

	t.Run("unsigned", func(t *testing.T) {
		want := wyhash.Uint64(255)
		for name, got := range map[string]uint64{
			"uint8":   hashing.Value(uint8(255)),
			"uint16":  hashing.Value(uint16(255)),
			"uint64":  hashing.Value(uint64(255)),
			"uintptr": hashing.Value(uintptr(255)),
			"int":     hashing.Value(255),
		} {
			if got != want {
				t.Fatalf("%s(255) hashed %#x, want %#x", name, got, want)
			}
		}
	})

	t.Run("bool", func(t *testing.T) {
		if hashing.Value(true) != wyhash.Uint64(1) || hashing.Value(false) != wyhash.Uint64(0) {
			t.Fatal("booleans must widen to 1 and 0")
		}
	})
}

func TestValueEnum(t *testing.T) {
	type color uint8
	const (
		red color = iota
		green
		blue
	)

	// An enumeration hashes via its ordinal.
	if got, want := hashing.Value(green), wyhash.Uint64(1); got != want {
		t.Fatalf("green hashed %#x, want ordinal hash %#x", got, want)
	}
	if hashing.Value(red) == hashing.Value(blue) {
		t.Fatal("distinct members hashed equally")
	}

	type direction int8
	if got, want := hashing.Value(direction(-2)), hashing.Value(int64(-2)); got != want {
		t.Fatalf("signed enum hashed %#x, want %#x", got, want)
	}
}

func TestValueTextCrossKind(t *testing.T) {
	s := "abc"
	b := []byte(s)

	if hashing.Value(s) != hashing.Value(b) {
		t.Fatal("string and []byte with equal content must hash equally")
	}
	if hashing.Value(s) != wyhash.Sum64String(s) {
		t.Fatal("text strategy must bottom out in wyhash.Sum64")
	}

	type label string
	type blob []byte
	if hashing.Value(label(s)) != hashing.Value(s) {
		t.Fatal("named string type must hash by content")
	}
	if hashing.Value(blob(b)) != hashing.Value(b) {
		t.Fatal("named byte slice type must hash by content")
	}

	if hashing.Value("") != hashing.Value([]byte(nil)) {
		t.Fatal("empty string and nil byte slice must hash equally")
	}
}

func TestValuePointerIdentity(t *testing.T) {
	x, y := 42, 42
	p := &x

	if hashing.Value(p) != hashing.Value(unsafe.Pointer(p)) {
		t.Fatal("pointer kinds at the same address must hash equally")
	}
	if hashing.Value(&x) == hashing.Value(&y) {
		t.Fatal("distinct addresses hashed equally")
	}
	if got, want := hashing.Value((*int)(nil)), wyhash.Uint64(0); got != want {
		t.Fatalf("nil pointer hashed %#x, want address-zero hash %#x", got, want)
	}

	// Identity, not content: equal pointees at different addresses differ.
	type node struct{ v int }
	a, b := &node{1}, &node{1}
	if hashing.Value(a) == hashing.Value(b) {
		t.Fatal("pointer hashing must not dereference")
	}
}

func TestValueStructFoldsFieldsInOrder(t *testing.T) {
	type kv struct {
		Key string
		N   int
	}
	v := kv{Key: "k", N: 7}

	want := hashing.Fold(hashing.Fold(0, hashing.Value("k")), hashing.Value(7))
	if got := hashing.Value(v); got != want {
		t.Fatalf("struct hashed %#x, manual fold %#x", got, want)
	}
	if hashing.Value(v) != hashing.Tuple("k", 7) {
		t.Fatal("struct and Tuple of its fields must agree")
	}
	if hashing.Value(kv{Key: "k", N: 8}) == want {
		t.Fatal("changing a field did not change the hash")
	}
}

func TestValueStructUnexportedFields(t *testing.T) {
	type hidden struct {
		tag []byte
		n   int
	}
	v := hidden{tag: []byte("xy"), n: 3}

	want := hashing.Fold(hashing.Fold(0, wyhash.Sum64([]byte("xy"))), hashing.Value(3))
	if got := hashing.Value(v); got != want {
		t.Fatalf("unexported fields hashed %#x, want %#x", got, want)
	}
}

func TestValueSliceAndArray(t *testing.T) {
	s := []int{1, 2, 3}

	want := hashing.Fold(hashing.Fold(hashing.Fold(0, hashing.Value(1)), hashing.Value(2)), hashing.Value(3))
	if got := hashing.Value(s); got != want {
		t.Fatalf("slice hashed %#x, manual fold %#x", got, want)
	}
	if hashing.Value([3]int{1, 2, 3}) != want {
		t.Fatal("array must fold like the equivalent slice")
	}
	if hashing.Value([]int{3, 2, 1}) == want {
		t.Fatal("reordered elements hashed equally")
	}
	if hashing.Value([]int{}) != 0 {
		t.Fatal("empty sequence must hash to the untouched seed")
	}
}

func TestValueFallback(t *testing.T) {
	if hashing.Value(1.5) != hashing.Value(1.5) {
		t.Fatal("fallback not deterministic for floats")
	}
	if hashing.Value(1.5) == hashing.Value(2.5) {
		t.Fatal("distinct floats hashed equally")
	}
	// Map rendering is sorted by key, so the fallback is order-stable.
	m := map[string]int{"a": 1, "b": 2}
	if hashing.Value(m) != hashing.Value(map[string]int{"b": 2, "a": 1}) {
		t.Fatal("fallback not deterministic for maps")
	}
}

func TestForResolvesStaticStrategy(t *testing.T) {
	avalanching := map[string]bool{
		"int":    hashing.For[int]().Avalanching(),
		"string": hashing.For[string]().Avalanching(),
		"*int":   hashing.For[*int]().Avalanching(),
		"struct": hashing.For[struct{ A int }]().Avalanching(),
		"slice":  hashing.For[[]int]().Avalanching(),
	}
	for name, got := range avalanching {
		if !got {
			t.Fatalf("expected %s strategy to avalanche", name)
		}
	}

	for name, got := range map[string]bool{
		"float64": hashing.For[float64]().Avalanching(),
		"map":     hashing.For[map[int]int]().Avalanching(),
		"any":     hashing.For[any]().Avalanching(),
	} {
		if got {
			t.Fatalf("expected %s strategy to be non-avalanching", name)
		}
	}

	h := hashing.For[string]()
	if h.Hash("abc") != hashing.Value("abc") {
		t.Fatal("Hasher.Hash must agree with Value")
	}
}
