package shrinkset

import (
	"cmp"
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/stdx/seqs"
)

// Ordered is a shrinking set whose active region stays sorted ascending by
// the stored comparator at all times. Erase rotates the victim to the
// boundary instead of swapping, so the remaining active elements keep
// their relative order; Unerase rotates it back into sorted position.
//
// The zero value is not usable; construct via NewOrdered or
// NewOrderedFunc.
type Ordered[T any] struct {
	less   func(a, b T) bool // strict ordering strategy, fixed at construction
	elems  []T               // backing buffer: sorted active prefix + erased suffix
	active int               // one past the last active element
}

// NewOrdered builds an ordered shrinking set from items under the natural
// ordering, sorting and collapsing duplicates. The input slice is not
// retained.
// Complexity: O(n log n).
func NewOrdered[T cmp.Ordered](items []T) *Ordered[T] {
	return NewOrderedFunc(func(a, b T) bool { return a < b }, items)
}

// NewOrderedFunc is NewOrdered under an explicit strict ordering.
// Equality is derived from less (neither argument precedes the other).
// Panics if less is nil.
func NewOrderedFunc[T any](less func(a, b T) bool, items []T) *Ordered[T] {
	if less == nil {
		panic("shrinkset: NewOrderedFunc called with nil comparator")
	}
	s := &Ordered[T]{less: less}
	s.Reinit(items)

	return s
}

// eq derives equivalence from the stored strict ordering.
func (s *Ordered[T]) eq(a, b T) bool { return !s.less(a, b) && !s.less(b, a) }

// Reinit replaces the backing buffer wholesale: copy, sort ascending,
// collapse adjacent duplicates. Previously erased-but-restorable elements
// are discarded permanently.
// Complexity: O(n log n) time, O(n) memory.
func (s *Ordered[T]) Reinit(items []T) {
	buf := slices.Clone(items)
	sort.Slice(buf, func(i, j int) bool { return s.less(buf[i], buf[j]) })
	s.elems = slices.CompactFunc(buf, s.eq)
	s.active = len(s.elems)
}

// ReinitSorted replaces the backing buffer with input the caller
// guarantees is already sorted ascending by the stored comparator and free
// of duplicates. The guarantee is not checked; violating it leaves the set
// in an undefined state. Performance escape hatch for hot paths that
// rebuild candidate pools from known-sorted sources.
// Complexity: O(n) copy.
func (s *Ordered[T]) ReinitSorted(items []T) {
	s.elems = slices.Clone(items)
	s.active = len(s.elems)
}

// Len returns the number of active elements.
// Complexity: O(1).
func (s *Ordered[T]) Len() int { return s.active }

// Empty reports whether no elements are active.
// Complexity: O(1).
func (s *Ordered[T]) Empty() bool { return s.active == 0 }

// Erased returns the number of currently erased (restorable) elements.
// Complexity: O(1).
func (s *Ordered[T]) Erased() int { return len(s.elems) - s.active }

// Total returns the full backing-buffer size, active plus erased.
// Complexity: O(1).
func (s *Ordered[T]) Total() int { return len(s.elems) }

// At returns the i-th active element in sorted order. Panics if i is
// outside [0, Len()).
// Complexity: O(1).
func (s *Ordered[T]) At(i int) T {
	if i < 0 || i >= s.active {
		panic(fmt.Sprintf("shrinkset: index %d out of active range [0,%d)", i, s.active))
	}

	return s.elems[i]
}

// Active returns the live active region as a slice view, sorted ascending.
// Valid only until the next mutating call; take it fresh after every
// mutation.
// Complexity: O(1).
func (s *Ordered[T]) Active() []T { return s.elems[:s.active:s.active] }

// Values returns a copy of the active region in sorted order.
// Complexity: O(n) time and memory.
func (s *Ordered[T]) Values() []T {
	out := make([]T, s.active)
	copy(out, s.elems[:s.active])

	return out
}

// Find returns the lower bound of v in the active region: the index of the
// first active element not less than v, which is Len() when every active
// element is less. On a miss the result is the insertion point, NOT a
// dedicated sentinel — callers that need membership must compare the
// element at the returned index for equality (or use Contains). Erase
// relies on exactly this contract.
// Complexity: O(log n) binary search.
func (s *Ordered[T]) Find(v T) int {
	return sort.Search(s.active, func(i int) bool { return !s.less(s.elems[i], v) })
}

// Contains reports whether v is active.
// Complexity: O(log n).
func (s *Ordered[T]) Contains(v T) bool {
	i := s.Find(v)

	return i < s.active && s.eq(s.elems[i], v)
}

// Erase logically removes v: the subrange from v's position through the
// last active element rotates left by one, so every later active element
// shifts down, order is preserved, and v lands exactly at the new
// boundary, ready for Unerase. Returns false with no change if v is not
// active.
// Complexity: O(log n) search + O(k) rotation, k = distance to the boundary.
func (s *Ordered[T]) Erase(v T) bool {
	p := s.Find(v)
	if p == s.active || !s.eq(s.elems[p], v) {
		return false
	}
	s.eraseAt(p)

	return true
}

// eraseAt rotates the active element at p out to the boundary and shrinks
// the active region. Caller guarantees 0 <= p < active.
func (s *Ordered[T]) eraseAt(p int) {
	s.active--
	seqs.RotateLeft(s.elems[p:s.active+1], 1)
}

// Unerase restores the most recently erased element (the one at the
// boundary) back into its sorted position via a right rotation, then grows
// the active region. No-op when nothing is erased. Restores the sortedness
// invariant unconditionally.
// Complexity: O(log n) search + O(k) rotation.
func (s *Ordered[T]) Unerase() {
	if s.active == len(s.elems) {
		return
	}
	p := s.Find(s.elems[s.active])
	seqs.RotateLeft(s.elems[p:s.active+1], -1)
	s.active++
}

// RemoveIf erases every active element matching pred in a single pass,
// equivalent to repeated scan-and-Erase in encounter order. Sortedness of
// the active region holds throughout.
// Complexity: O(n) predicate calls, O(n·k) worst-case element moves.
func (s *Ordered[T]) RemoveIf(pred func(v T) bool) {
	i := 0
	for i < s.active {
		if pred(s.elems[i]) {
			s.eraseAt(i)
			// stay on i: the next element rotated into this slot
			continue
		}
		i++
	}
}

// Reset restores every erased element and re-sorts the whole buffer.
// The full sort is required: erasures keep only the active prefix sorted,
// so after a mix of removals the suffix order is arbitrary.
// Complexity: O(n log n).
func (s *Ordered[T]) Reset() {
	s.active = len(s.elems)
	sort.Slice(s.elems, func(i, j int) bool { return s.less(s.elems[i], s.elems[j]) })
}

// String renders the active region for debugging, e.g. "[1 2 3]".
// Complexity: O(n).
func (s *Ordered[T]) String() string {
	return fmt.Sprintf("%v", s.elems[:s.active])
}
