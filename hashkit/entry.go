// Package hashkit supplies ready-made lpcuckoo.HashOps implementations for
// common key kinds, built on two independent non-cryptographic 64-bit hash
// families (github.com/cespare/xxhash/v2 and github.com/zeebo/xxh3). The
// lpcuckoo engine never picks a hash function itself, so this package
// exists to make the table usable without every caller writing its own
// HashOps.
package hashkit

// Entry is the slot type backing every HashOps in this package: a key, a
// caller-supplied payload, and an occupancy flag. Key and Val are exported
// so callers can read/write the payload through Iterator.Value(); filled
// stays private because Init/Clear are the only valid way to flip
// occupancy.
type Entry[K comparable, Val any] struct {
	Key    K
	Val    Val
	filled bool
}

// Filled reports whether the entry currently holds a key. Equivalent to
// !ops.Empty(slot) from the engine's point of view; exported for callers
// iterating with Table.All who want to double check before reading Key/Val.
func (e *Entry[K, Val]) Filled() bool {
	return e.filled
}

// goldenGamma is the fractional part of the golden ratio scaled to a
// 64-bit odd constant, used to decorrelate hash functions beyond the first
// two when NumHashes > 2. It is not a third hash family, just a cheap
// perturbation of xxh3's output so table 2, 3, ... do not probe
// identically to table 1.
const goldenGamma = 0x9E3779B97F4A7C15
