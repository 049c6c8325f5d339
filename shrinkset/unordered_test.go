package shrinkset_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stdx/shrinkset"
)

// TestUnordered_ConstructKeepsFirstSeenOrder verifies that construction
// dedups without sorting, keeping the first occurrence of each value in
// encounter order.
func TestUnordered_ConstructKeepsFirstSeenOrder(t *testing.T) {
	s := shrinkset.NewUnordered([]byte{'f', 'e', 'c', 'd', 'a', 'b'})

	assert.Equal(t, []byte{'f', 'e', 'c', 'd', 'a', 'b'}, s.Values(), "no sort on construction")
}

// TestUnordered_ConstructDedup verifies that duplicates collapse to the
// first occurrence and size equals the distinct-value count.
func TestUnordered_ConstructDedup(t *testing.T) {
	s := shrinkset.NewUnordered([]int{5, 3, 5, 1, 3, 3, 9})

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []int{5, 3, 1, 9}, s.Values(), "first-seen occurrence wins")
}

// TestUnordered_EraseSwapsWithLast verifies swap-to-end removal: the
// victim lands at the boundary and the last active element takes its slot.
func TestUnordered_EraseSwapsWithLast(t *testing.T) {
	s := shrinkset.NewUnordered([]int{1, 2, 3, 4, 5})

	require.True(t, s.Erase(2))

	assert.Equal(t, []int{1, 5, 3, 4}, s.Values(), "5 swaps into 2's slot")
	assert.False(t, s.Erase(2), "repeated erase misses")
	assert.Equal(t, []int{1, 5, 3, 4}, s.Values(), "miss must not mutate")
}

// TestUnordered_EraseFindCoherence verifies that Erase succeeds exactly
// when Find reported presence immediately before.
func TestUnordered_EraseFindCoherence(t *testing.T) {
	s := shrinkset.NewUnordered([]int{7, 8, 9})

	require.GreaterOrEqual(t, s.Find(8), 0)
	require.True(t, s.Erase(8))
	assert.Equal(t, -1, s.Find(8), "erased value must be invisible to Find")
	assert.False(t, s.Contains(8))
}

// TestUnordered_UneraseLIFO verifies that repeated Unerase restores the
// same member set, order unspecified, in reverse erase order.
func TestUnordered_UneraseLIFO(t *testing.T) {
	s := shrinkset.NewUnordered([]int{1, 2, 3, 4, 5})
	require.True(t, s.Erase(3))
	require.True(t, s.Erase(1))
	require.Equal(t, 3, s.Len())

	s.Unerase()
	assert.True(t, s.Contains(1), "last erased restores first")
	assert.False(t, s.Contains(3))
	s.Unerase()
	assert.True(t, s.Contains(3))

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, s.Values(), "member set fully recovered")
	s.Unerase() // empty undo pool: silent no-op
	assert.Equal(t, 5, s.Len())
}

// TestUnordered_RemoveIf verifies single-pass predicate removal,
// including re-examination of elements swapped into the scan slot.
func TestUnordered_RemoveIf(t *testing.T) {
	s := shrinkset.NewUnordered([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})

	s.RemoveIf(func(v int) bool { return v%2 == 0 })

	assert.ElementsMatch(t, []int{1, 3, 5, 7, 9}, s.Values())
	assert.Equal(t, 4, s.Erased())
}

// TestUnordered_RemoveIfAll verifies that a predicate matching everything
// empties the set and keeps the whole pool restorable.
func TestUnordered_RemoveIfAll(t *testing.T) {
	s := shrinkset.NewUnordered([]int{1, 2, 3})

	s.RemoveIf(func(int) bool { return true })

	assert.True(t, s.Empty())
	assert.Equal(t, 3, s.Erased())
	s.Unerase()
	s.Unerase()
	s.Unerase()
	assert.ElementsMatch(t, []int{1, 2, 3}, s.Values())
}

// TestUnordered_ResetAndResetSorted verifies one-step restore of the
// whole pool, with and without an explicit ordering.
func TestUnordered_ResetAndResetSorted(t *testing.T) {
	s := shrinkset.NewUnordered([]int{4, 2, 5, 1, 3})
	require.True(t, s.Erase(2))
	require.True(t, s.Erase(5))

	s.Reset()
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, s.Values())

	s.ResetSorted(func(a, b int) bool { return a < b })
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Values(), "explicit resort imposes order")
}

// TestUnordered_Reinit verifies wholesale replacement of the pool,
// discarding restorable elements.
func TestUnordered_Reinit(t *testing.T) {
	s := shrinkset.NewUnordered([]string{"a", "b"})
	require.True(t, s.Erase("a"))

	s.Reinit([]string{"x", "y", "x"})

	assert.Equal(t, []string{"x", "y"}, s.Values())
	s.Unerase()
	assert.Equal(t, 2, s.Len(), "no phantom restore after Reinit")
}

// TestUnordered_CustomEquality verifies the explicit equality strategy
// (mod-10 buckets) drives dedup, Find and Erase.
func TestUnordered_CustomEquality(t *testing.T) {
	eq := func(a, b int) bool { return a%10 == b%10 }
	s := shrinkset.NewUnorderedFunc(eq, []int{3, 13, 7, 23, 9})

	assert.Equal(t, 3, s.Len(), "13 and 23 are duplicates of 3 mod 10")
	require.True(t, s.Erase(17), "17 matches 7 under the strategy")
	assert.Equal(t, 2, s.Len())
}

// TestUnordered_AtPanicsOutOfRange verifies the programmer-error contract
// for indexed access.
func TestUnordered_AtPanicsOutOfRange(t *testing.T) {
	s := shrinkset.NewUnordered([]int{1})

	assert.Equal(t, 1, s.At(0))
	assert.Panics(t, func() { s.At(1) })
}

// TestUnordered_ActiveViewTracksBoundary verifies the live view shrinks
// and grows with the boundary.
func TestUnordered_ActiveViewTracksBoundary(t *testing.T) {
	s := shrinkset.NewUnordered([]int{1, 2, 3})
	require.True(t, s.Erase(1))

	assert.Len(t, s.Active(), 2)
	s.Unerase()
	assert.Len(t, s.Active(), 3)
}

// TestUnordered_EraseUneraseFuzz drives a long random sequence of
// operations against a reference map, checking membership and the
// Len+Erased==Total accounting after every step.
func TestUnordered_EraseUneraseFuzz(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	universe := rng.Perm(48)
	s := shrinkset.NewUnordered(universe)

	present := make(map[int]bool, len(universe))
	for _, v := range universe {
		present[v] = true
	}
	var undo []int

	for step := 0; step < 2000; step++ {
		v := rng.Intn(60)
		switch rng.Intn(3) {
		case 0:
			want := present[v]
			require.Equal(t, want, s.Erase(v), "erase result diverged at step %d", step)
			if want {
				present[v] = false
				undo = append(undo, v)
			}
		case 1:
			s.Unerase()
			if n := len(undo); n > 0 {
				present[undo[n-1]] = true
				undo = undo[:n-1]
			}
		default:
			assert.Equal(t, present[v], s.Contains(v), "membership diverged at step %d", step)
		}

		require.Equal(t, len(universe), s.Len()+s.Erased(), "size accounting broke at step %d", step)
	}

	// Drain the undo pool and confirm full recovery of the member set.
	for s.Erased() > 0 {
		s.Unerase()
	}
	got := s.Values()
	sort.Ints(got)
	want := make([]int, len(universe))
	copy(want, universe)
	sort.Ints(want)
	assert.Equal(t, want, got)
}
