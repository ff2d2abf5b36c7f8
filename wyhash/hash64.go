package wyhash

import (
	"encoding/binary"
	"hash"
)

// Compile-time interface assertions.
var _ hash.Hash = (*Hasher)(nil)
var _ hash.Hash64 = (*Hasher)(nil)

// Hasher is a streaming adapter over [Sum64] implementing [hash.Hash64].
// It buffers writes and hashes the accumulated bytes on demand; there is no
// seed parameter because the secret is fixed.
//
// The zero value is ready to use.
type Hasher struct {
	buf []byte
}

// New returns a streaming 64-bit hasher.
func New() *Hasher { return &Hasher{} }

// Write appends p to the running state. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

// WriteString appends s to the running state. It never fails.
func (h *Hasher) WriteString(s string) (int, error) {
	h.buf = append(h.buf, s...)
	return len(s), nil
}

// Sum64 computes the hash of the accumulated data.
func (h *Hasher) Sum64() uint64 { return sum64(h.buf) }

// Sum appends the current hash to b.
func (h *Hasher) Sum(b []byte) []byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], h.Sum64())
	return append(b, out[:]...)
}

// Reset clears the accumulated data.
func (h *Hasher) Reset() { h.buf = h.buf[:0] }

// Size returns the hash size in bytes.
func (h *Hasher) Size() int { return 8 }

// BlockSize returns the write block size.
func (h *Hasher) BlockSize() int { return 1 }
