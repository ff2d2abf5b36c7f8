// Package wyhash implements a stripped-down variant of the wyhash
// non-cryptographic hash with a fixed, compiled-in secret.
//
// It offers one-shot helpers for byte slices, strings and single 64-bit
// integers, plus a streaming hasher that satisfies [hash.Hash64]. Because the
// secret is fixed, outputs are fully deterministic within a build; because
// byte loads use the host's native order, outputs are not portable across
// machines of different endianness. Never use this package for anything
// security-sensitive, and never persist or transmit its values.
package wyhash
