package hashkit

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// StringOps is a ready-made lpcuckoo.HashOps[string, Entry[string, Val]]
// for string keys. Table 0 is hashed with xxhash, table 1 with xxh3 — two
// independently designed hash families hashing the same key to get two
// uncorrelated fingerprints. Tables beyond 1 (NumHashes > 2) perturb the
// xxh3 hash with goldenGamma so they do not probe identically to table 1.
type StringOps[Val any] struct {
	numHashes   int
	bucketWidth int
}

// NewStringOps returns a StringOps configured for numHashes tables of
// bucketWidth slots each. numHashes must be >= 2, bucketWidth >= 1.
func NewStringOps[Val any](numHashes, bucketWidth int) *StringOps[Val] {
	if numHashes < 2 {
		panic("hashkit: NewStringOps requires numHashes >= 2")
	}
	if bucketWidth < 1 {
		panic("hashkit: NewStringOps requires bucketWidth >= 1")
	}
	return &StringOps[Val]{numHashes: numHashes, bucketWidth: bucketWidth}
}

func (o *StringOps[Val]) NumHashes() int   { return o.numHashes }
func (o *StringOps[Val]) BucketWidth() int { return o.bucketWidth }

func (o *StringOps[Val]) Alloc(n int) []Entry[string, Val] {
	return make([]Entry[string, Val], n)
}

func (o *StringOps[Val]) Free(s []Entry[string, Val]) {}

func (o *StringOps[Val]) hash(table int, key string) uint64 {
	switch table {
	case 0:
		return xxhash.Sum64String(key)
	case 1:
		return xxh3.HashString(key)
	default:
		return xxh3.HashString(key) ^ (goldenGamma * uint64(table))
	}
}

func (o *StringOps[Val]) HashKey(table int, key string) uint64 {
	return o.hash(table, key)
}

func (o *StringOps[Val]) HashSlot(table int, slot *Entry[string, Val]) uint64 {
	return o.hash(table, slot.Key)
}

func (o *StringOps[Val]) Equals(hash uint64, key string, slot *Entry[string, Val]) bool {
	return slot.filled && slot.Key == key
}

func (o *StringOps[Val]) Empty(slot *Entry[string, Val]) bool {
	return !slot.filled
}

func (o *StringOps[Val]) Init(table int, hash uint64, key string, slot *Entry[string, Val]) {
	var zero Val
	slot.Key = key
	slot.Val = zero
	slot.filled = true
}

func (o *StringOps[Val]) Clear(slot *Entry[string, Val]) {
	var zero Entry[string, Val]
	*slot = zero
}
