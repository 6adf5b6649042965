// Package lpcuckoo implements the Lehman–Panigrahy cuckoo hash table: an
// open-addressed associative container that combines NumHashes independent
// hash functions with short linear-probing "buckets" at each hash position
// to approach the load factor of 3.5-way cuckoo hashing at roughly the
// storage cost of 2-way cuckoo hashing.
//
//	Eric Lehman and Rita Panigrahy, "3.5-Way Cuckoo Hashing for the Price
//	of 2-and-a-Bit", European Symposium on Algorithms, 2009.
//
// A Table is parameterized by a key type K, a slot type V, and a HashOps
// capability bundle that supplies the hash functions, the slot allocator,
// and the equality/empty/init/clear predicates on V. The engine itself
// knows nothing about how K or V are represented; it only ever asks
// HashOps.
//
// A Table does not resize. Capacity is fixed at construction (see New);
// Insert returns ErrTableFull once the table cannot accommodate a new key
// within MaxBFSRounds eviction attempts.
//
// A Table is not safe for concurrent use. All methods must be called from
// a single goroutine at a time; concurrent reads are safe only while no
// goroutine is mutating the table.
package lpcuckoo

import (
	"fmt"
	"math"
)

const (
	// defaultLoadFactor is the target ratio of live entries to total slots
	// used to size bucketsPerTable at construction.
	defaultLoadFactor = 0.9

	// defaultMaxBFSRounds bounds eviction search. Each round pops one node
	// off the BFS queue.
	defaultMaxBFSRounds = 100

	// debugTrace gates fmt.Printf tracing of swaps and insert/vacate
	// decisions. Flip to true locally when debugging; never
	// wired to an external logger.
	debugTrace = false

	// noParent marks a BFS node seeded directly from one of the inserted
	// key's home buckets, i.e. a potential eviction-chain root.
	noParent = -1
)

// bfsNode is a transient record used only during eviction search. parent
// is an index into Table.queue, or noParent for a root seed. coord
// identifies the slot the node represents.
type bfsNode struct {
	parent int
	coord  coordinate
}

// Table is the LP-cuckoo table engine. The zero Table is not usable; use
// New.
type Table[K any, V any] struct {
	ops HashOps[K, V]

	numHashes       int
	bucketWidth     int
	bucketsPerTable int
	loadFactor      float64
	maxBFSRounds    int

	// tables holds numHashes parallel slot arrays, each bucketsPerTable
	// long, addressed with wrap-around probing.
	tables [][]V

	// used is the live entry count, maintained incrementally by Insert and
	// Erase so Len/LoadFactor are O(1).
	used int

	// queue and chain are engine-owned scratch buffers reused across
	// Insert calls to avoid per-call allocation. Reset at the start of
	// every eviction search.
	queue []bfsNode
	chain []coordinate

	// hashScratch holds the NumHashes precomputed hashes of the key
	// currently being inserted, reused across calls for the same reason.
	hashScratch []uint64
}

// New constructs a Table sized to hold capacity entries at the configured
// load factor (default 0.9, see WithLoadFactor). ops must report
// NumHashes() >= 2 and BucketWidth() >= 1; New panics otherwise, since a
// misconfigured HashOps is a programming error the caller can fix, not a
// runtime condition to recover from.
func New[K any, V any](capacity int, ops HashOps[K, V], opts ...Option[K, V]) *Table[K, V] {
	if capacity <= 0 {
		panic("lpcuckoo: New requires capacity > 0")
	}
	numHashes := ops.NumHashes()
	bucketWidth := ops.BucketWidth()
	if numHashes < 2 {
		panic("lpcuckoo: HashOps.NumHashes must be >= 2")
	}
	if bucketWidth < 1 {
		panic("lpcuckoo: HashOps.BucketWidth must be >= 1")
	}

	t := &Table[K, V]{
		ops:          ops,
		numHashes:    numHashes,
		bucketWidth:  bucketWidth,
		loadFactor:   defaultLoadFactor,
		maxBFSRounds: defaultMaxBFSRounds,
	}
	for _, op := range opts {
		op.apply(t)
	}

	needed := math.Ceil(float64(capacity) / t.loadFactor)
	t.bucketsPerTable = int(math.Ceil(needed / float64(numHashes)))
	if t.bucketsPerTable < bucketWidth {
		t.bucketsPerTable = bucketWidth
	}

	t.tables = make([][]V, numHashes)
	for i := 0; i < numHashes; i++ {
		t.tables[i] = ops.Alloc(t.bucketsPerTable)
	}
	t.hashScratch = make([]uint64, numHashes)
	return t
}

// Close releases the slot arrays back to ops and invalidates t. Using t
// after Close is invalid. Close is unnecessary (but harmless) when ops's
// Free is a no-op, e.g. DefaultAllocator.
func (t *Table[K, V]) Close() {
	for i, s := range t.tables {
		t.ops.Free(s)
		t.tables[i] = nil
	}
	t.tables = nil
	t.used = 0
}

// nextIndex advances idx by one slot within a table, wrapping at
// bucketsPerTable. This is the one place the wrap-around probing
// discipline lives; every scan goes through it.
func (t *Table[K, V]) nextIndex(idx int) int {
	idx++
	if idx >= t.bucketsPerTable {
		idx = 0
	}
	return idx
}

// baseIndex maps a raw hash to a bucket base position.
func (t *Table[K, V]) baseIndex(hash uint64) int {
	return int(hash % uint64(t.bucketsPerTable))
}

// Find probes the bucket at each hash position in turn and returns the
// first slot for which Equals holds, or End() if no table's bucket
// contains key. The scan is eager: it does not stop at an empty slot
// within a bucket, because a prior insertion's eviction chain may have
// left key further along the bucket than the first empty slot.
func (t *Table[K, V]) Find(key K) Iterator[K, V] {
	for table := 0; table < t.numHashes; table++ {
		hash := t.ops.HashKey(table, key)
		idx := t.baseIndex(hash)
		for d := 0; d < t.bucketWidth; d++ {
			slot := &t.tables[table][idx]
			if t.ops.Equals(hash, key, slot) {
				return Iterator[K, V]{t: t, coord: coordinate{table, idx}}
			}
			idx = t.nextIndex(idx)
		}
	}
	return t.End()
}

// Len returns the number of live entries.
func (t *Table[K, V]) Len() int {
	return t.used
}

// Erase clears the slot identified by it, which must have been returned by
// a prior Find or Insert on this table. Erasing the end-iterator panics.
// No tombstone is written: Find's eager scan never terminates on an empty
// slot, so clearing in place is sufficient.
func (t *Table[K, V]) Erase(it Iterator[K, V]) {
	invariant(!it.IsEnd(), "lpcuckoo: Erase of end iterator")
	slot := &t.tables[it.coord.table][it.coord.index]
	t.ops.Clear(slot)
	t.used--
}

// Insert returns (iterator, false, nil) if key is already present,
// (iterator, true, nil) once key has been newly placed (possibly after
// relocating other entries), or (End(), false, ErrTableFull) if BFS
// eviction search exhausts maxBFSRounds without finding a relocation
// chain.
func (t *Table[K, V]) Insert(key K) (Iterator[K, V], bool, error) {
	candidate := coordinate{table: -1}

	for table := 0; table < t.numHashes; table++ {
		hash := t.ops.HashKey(table, key)
		t.hashScratch[table] = hash
		idx := t.baseIndex(hash)
		for d := 0; d < t.bucketWidth; d++ {
			slot := &t.tables[table][idx]
			if t.ops.Equals(hash, key, slot) {
				if debugTrace {
					fmt.Printf("insert(dup): table=%d index=%d\n", table, idx)
				}
				return Iterator[K, V]{t: t, coord: coordinate{table, idx}}, false, nil
			}
			if candidate.table < 0 && t.ops.Empty(slot) {
				candidate = coordinate{table, idx}
			}
			idx = t.nextIndex(idx)
		}
	}

	if candidate.table >= 0 {
		slot := &t.tables[candidate.table][candidate.index]
		t.ops.Init(candidate.table, t.hashScratch[candidate.table], key, slot)
		t.used++
		if debugTrace {
			fmt.Printf("insert(fast-path): table=%d index=%d\n", candidate.table, candidate.index)
		}
		return Iterator[K, V]{t: t, coord: candidate}, true, nil
	}

	return t.insertByEviction(key)
}
