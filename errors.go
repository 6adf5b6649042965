package lpcuckoo

import "errors"

// ErrTableFull is returned by Insert when the BFS eviction search
// exhausts maxBFSRounds expansions without uncovering a relocation chain
// to an empty slot. A caller hitting this should rehash into a larger
// table rather than treat it as a crash.
var ErrTableFull = errors.New("lpcuckoo: table full")

// invariant panics on failures that indicate an engine bug rather than
// caller error: a short eviction chain, an out-of-range BFS parent index,
// or a vacated slot that is still occupied after eviction.
func invariant(cond bool, msg string) {
	if !cond {
		panic("lpcuckoo: invariant violated: " + msg)
	}
}
