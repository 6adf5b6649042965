package lpcuckoo

import (
	"fmt"
	"strings"
)

// LoadFactor returns the current ratio of live entries to total slots.
func (t *Table[K, V]) LoadFactor() float64 {
	total := t.numHashes * t.bucketsPerTable
	if total == 0 {
		return 0
	}
	return float64(t.used) / float64(total)
}

// Capacity returns the total number of slots across all tables
// (numHashes * bucketsPerTable), i.e. the denominator of LoadFactor.
func (t *Table[K, V]) Capacity() int {
	return t.numHashes * t.bucketsPerTable
}

// DebugString renders every slot's occupancy, grouped by table, for use in
// tests and interactive debugging. Unlike the debugTrace-gated tracing, it
// never fires on a hot path, so it always renders unconditionally.
func (t *Table[K, V]) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "lpcuckoo.Table{numHashes=%d bucketWidth=%d bucketsPerTable=%d used=%d loadFactor=%.3f}\n",
		t.numHashes, t.bucketWidth, t.bucketsPerTable, t.used, t.LoadFactor())
	for table := 0; table < t.numHashes; table++ {
		fmt.Fprintf(&b, "  table %d:", table)
		for index := 0; index < t.bucketsPerTable; index++ {
			slot := &t.tables[table][index]
			if t.ops.Empty(slot) {
				b.WriteString(" _")
			} else {
				b.WriteString(" x")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
