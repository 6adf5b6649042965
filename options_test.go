package lpcuckoo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithLoadFactorChangesSizing(t *testing.T) {
	ops := newTestOps(2, 2)
	loose := New[int, testSlot](100, ops, WithLoadFactor[int, testSlot](0.5))
	tight := New[int, testSlot](100, newTestOps(2, 2), WithLoadFactor[int, testSlot](0.95))
	require.Greater(t, loose.Capacity(), tight.Capacity())
}

func TestWithLoadFactorPanicsOnInvalidFactor(t *testing.T) {
	require.Panics(t, func() {
		WithLoadFactor[int, testSlot](0)
	})
	require.Panics(t, func() {
		WithLoadFactor[int, testSlot](1.5)
	})
}

func TestWithMaxBFSRoundsPanicsOnInvalidN(t *testing.T) {
	require.Panics(t, func() {
		WithMaxBFSRounds[int, testSlot](0)
	})
}

func TestNewPanicsOnBadHashOps(t *testing.T) {
	require.Panics(t, func() {
		New[int, testSlot](10, newTestOps(1, 2)) // NumHashes < 2
	})
	require.Panics(t, func() {
		New[int, testSlot](10, newTestOps(2, 0)) // BucketWidth < 1
	})
	require.Panics(t, func() {
		New[int, testSlot](0, newTestOps(2, 2)) // capacity <= 0
	})
}
