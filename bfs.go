package lpcuckoo

import "fmt"

// insertByEviction runs once Insert's fast-path scan has found every home
// bucket of key fully occupied. It seeds a BFS queue with every slot of
// key's NumHashes home buckets, then repeatedly pops the front of the
// queue and examines the alternate home buckets of whatever key currently
// occupies that slot, looking for an empty slot to relocate into. The
// first empty slot found yields the shortest eviction chain, because the
// search is breadth-first.
func (t *Table[K, V]) insertByEviction(key K) (Iterator[K, V], bool, error) {
	t.queue = t.queue[:0]

	for table := 0; table < t.numHashes; table++ {
		idx := t.baseIndex(t.hashScratch[table])
		for d := 0; d < t.bucketWidth; d++ {
			t.queue = append(t.queue, bfsNode{parent: noParent, coord: coordinate{table, idx}})
			idx = t.nextIndex(idx)
		}
	}

	qi := 0
	for round := 0; round < t.maxBFSRounds; round++ {
		if qi >= len(t.queue) {
			break
		}
		c := t.queue[qi]
		occupant := &t.tables[c.coord.table][c.coord.index]

		for alt := 0; alt < t.numHashes; alt++ {
			if alt == c.coord.table {
				continue
			}
			hash := t.ops.HashSlot(alt, occupant)
			idx := t.baseIndex(hash)
			for d := 0; d < t.bucketWidth; d++ {
				dest := coordinate{alt, idx}
				destSlot := &t.tables[alt][idx]
				if t.ops.Empty(destSlot) {
					vacated := t.evictChain(dest, qi)
					vacatedSlot := &t.tables[vacated.table][vacated.index]
					t.ops.Init(vacated.table, t.hashScratch[vacated.table], key, vacatedSlot)
					t.used++
					if debugTrace {
						fmt.Printf("insert(eviction): vacated table=%d index=%d\n", vacated.table, vacated.index)
					}
					return Iterator[K, V]{t: t, coord: vacated}, true, nil
				}
				t.queue = append(t.queue, bfsNode{parent: qi, coord: dest})
				idx = t.nextIndex(idx)
			}
		}
		qi++
	}

	if debugTrace {
		fmt.Printf("insert(full): exhausted %d rounds\n", t.maxBFSRounds)
	}
	return t.End(), false, ErrTableFull
}

// evictChain relocates an existing chain of keys to free up tail, which is
// already known to be an empty slot; parentIdx is the index into t.queue of
// the BFS node that
// discovered it (the node examining tail's alternate bucket). evictChain
// walks parent links from t.queue[parentIdx] back to a root seed (parent
// == noParent), then bubbles the empty slot from tail to that root by
// swapping each adjacent pair in the chain, tail-to-root. It returns the
// now-empty root coordinate, which is always a slot in one of the
// originally-inserted key's home buckets.
func (t *Table[K, V]) evictChain(tail coordinate, parentIdx int) coordinate {
	chain := t.chain[:0]
	chain = append(chain, tail)

	idx := parentIdx
	for {
		invariant(idx >= 0 && idx < len(t.queue), "BFS parent index out of range")
		node := t.queue[idx]
		chain = append(chain, node.coord)
		if node.parent == noParent {
			break
		}
		idx = node.parent
	}
	t.chain = chain

	invariant(len(chain) >= 2, "eviction chain shorter than 2")

	for i := 0; i < len(chain)-1; i++ {
		a := &t.tables[chain[i].table][chain[i].index]
		b := &t.tables[chain[i+1].table][chain[i+1].index]
		if debugTrace {
			fmt.Printf("swap: (%d,%d) <-> (%d,%d)\n",
				chain[i].table, chain[i].index, chain[i+1].table, chain[i+1].index)
		}
		*a, *b = *b, *a
	}

	vacated := chain[len(chain)-1]
	vacatedSlot := &t.tables[vacated.table][vacated.index]
	invariant(t.ops.Empty(vacatedSlot), "vacated slot still occupied after eviction")
	return vacated
}
