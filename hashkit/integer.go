package hashkit

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// Integer is the set of key types IntegerOps accepts. Kept as a small
// local union rather than importing golang.org/x/exp/constraints: this
// module targets Go 1.21, where the stdlib already distinguishes ordered
// numeric kinds, and constraints.Integer predates that; see DESIGN.md for
// why this one constraint stays hand-written instead of imported.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IntegerOps is a ready-made lpcuckoo.HashOps[K, Entry[K, Val]] for integer
// keys of any width. Keys are encoded little-endian into an 8-byte buffer
// and hashed the same two ways as StringOps: xxhash for table 0, xxh3 for
// table 1, goldenGamma-perturbed xxh3 beyond that.
type IntegerOps[K Integer, Val any] struct {
	numHashes   int
	bucketWidth int
}

// NewIntegerOps returns an IntegerOps configured for numHashes tables of
// bucketWidth slots each. numHashes must be >= 2, bucketWidth >= 1.
func NewIntegerOps[K Integer, Val any](numHashes, bucketWidth int) *IntegerOps[K, Val] {
	if numHashes < 2 {
		panic("hashkit: NewIntegerOps requires numHashes >= 2")
	}
	if bucketWidth < 1 {
		panic("hashkit: NewIntegerOps requires bucketWidth >= 1")
	}
	return &IntegerOps[K, Val]{numHashes: numHashes, bucketWidth: bucketWidth}
}

func (o *IntegerOps[K, Val]) NumHashes() int   { return o.numHashes }
func (o *IntegerOps[K, Val]) BucketWidth() int { return o.bucketWidth }

func (o *IntegerOps[K, Val]) Alloc(n int) []Entry[K, Val] {
	return make([]Entry[K, Val], n)
}

func (o *IntegerOps[K, Val]) Free(s []Entry[K, Val]) {}

func (o *IntegerOps[K, Val]) hash(table int, key K) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	switch table {
	case 0:
		return xxhash.Sum64(buf[:])
	case 1:
		return xxh3.Hash(buf[:])
	default:
		return xxh3.Hash(buf[:]) ^ (goldenGamma * uint64(table))
	}
}

func (o *IntegerOps[K, Val]) HashKey(table int, key K) uint64 {
	return o.hash(table, key)
}

func (o *IntegerOps[K, Val]) HashSlot(table int, slot *Entry[K, Val]) uint64 {
	return o.hash(table, slot.Key)
}

func (o *IntegerOps[K, Val]) Equals(hash uint64, key K, slot *Entry[K, Val]) bool {
	return slot.filled && slot.Key == key
}

func (o *IntegerOps[K, Val]) Empty(slot *Entry[K, Val]) bool {
	return !slot.filled
}

func (o *IntegerOps[K, Val]) Init(table int, hash uint64, key K, slot *Entry[K, Val]) {
	var zero Val
	slot.Key = key
	slot.Val = zero
	slot.filled = true
}

func (o *IntegerOps[K, Val]) Clear(slot *Entry[K, Val]) {
	var zero Entry[K, Val]
	*slot = zero
}
