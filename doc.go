// Package hashing provides consistent 64-bit hashing for typed values and a
// combiner for building hashes of composite keys.
//
// [Value] is the primary entry point: it picks a strategy from the value's
// category (integral, enumerated, text, pointer identity, aggregate) and
// bottoms out in [go.dw1.io/hashing/wyhash]. Equal logical values hash
// equally regardless of representation: a string and a []byte over the same
// bytes agree, as do all pointer kinds at the same address, and a named
// integer type agrees with its underlying ordinal.
//
// [Fold], [Combine], [Pair], [Tuple] and [Seq] build composite hashes by
// folding already-dispatched hashes left to right; combination order is
// significant by design.
//
// Every function is pure and safe for concurrent use. Hash values are
// process-local artifacts: never persist them, never compare them across
// builds, and never rely on them for security.
package hashing
