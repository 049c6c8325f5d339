package shrinkset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stdx/seqs"
)

// Unordered is a shrinking set with swap-to-end removal. The active region
// carries no ordering guarantee and may be scrambled by any Erase.
//
// The zero value is not usable; construct via NewUnordered or
// NewUnorderedFunc.
type Unordered[T any] struct {
	eq     func(a, b T) bool // equality strategy, fixed at construction
	elems  []T               // backing buffer: active prefix + erased suffix
	active int               // one past the last active element
}

// NewUnordered builds an unordered shrinking set from items, collapsing
// duplicates under == and preserving first-seen order. The input slice is
// not retained.
// Complexity: O(n²) dedup (candidate pools are small by design).
func NewUnordered[T comparable](items []T) *Unordered[T] {
	return NewUnorderedFunc(func(a, b T) bool { return a == b }, items)
}

// NewUnorderedFunc is NewUnordered under an explicit equality predicate.
// Panics if eq is nil.
func NewUnorderedFunc[T any](eq func(a, b T) bool, items []T) *Unordered[T] {
	if eq == nil {
		panic("shrinkset: NewUnorderedFunc called with nil equality predicate")
	}
	s := &Unordered[T]{eq: eq}
	s.Reinit(items)

	return s
}

// Reinit replaces the backing buffer wholesale and reruns first-seen
// deduplication. Previously erased-but-restorable elements are discarded
// permanently.
// Complexity: O(n²) time, O(n) memory.
func (s *Unordered[T]) Reinit(items []T) {
	s.elems = seqs.DedupFunc(items, s.eq)
	s.active = len(s.elems)
}

// Len returns the number of active elements.
// Complexity: O(1).
func (s *Unordered[T]) Len() int { return s.active }

// Empty reports whether no elements are active.
// Complexity: O(1).
func (s *Unordered[T]) Empty() bool { return s.active == 0 }

// Erased returns the number of currently erased (restorable) elements.
// Complexity: O(1).
func (s *Unordered[T]) Erased() int { return len(s.elems) - s.active }

// Total returns the full backing-buffer size, active plus erased.
// Len() + Erased() == Total() at all times.
// Complexity: O(1).
func (s *Unordered[T]) Total() int { return len(s.elems) }

// At returns the i-th active element. Panics if i is outside [0, Len()).
// Complexity: O(1).
func (s *Unordered[T]) At(i int) T {
	if i < 0 || i >= s.active {
		panic(fmt.Sprintf("shrinkset: index %d out of active range [0,%d)", i, s.active))
	}

	return s.elems[i]
}

// Active returns the live active region as a slice view. The view is
// valid only until the next mutating call (Erase, Unerase, RemoveIf,
// Reset, Reinit); take it fresh after every mutation.
// Complexity: O(1).
func (s *Unordered[T]) Active() []T { return s.elems[:s.active:s.active] }

// Values returns a copy of the active region in current order.
// Complexity: O(n) time and memory.
func (s *Unordered[T]) Values() []T {
	out := make([]T, s.active)
	copy(out, s.elems[:s.active])

	return out
}

// Find returns the index of v in the active region, or -1 if absent.
// Complexity: O(n) linear scan.
func (s *Unordered[T]) Find(v T) int {
	for i := 0; i < s.active; i++ {
		if s.eq(s.elems[i], v) {
			return i
		}
	}

	return -1
}

// Contains reports whether v is active.
// Complexity: O(n).
func (s *Unordered[T]) Contains(v T) bool { return s.Find(v) >= 0 }

// Erase logically removes v: the victim is swapped with the last active
// element and the boundary shrinks by one, leaving v exactly at the new
// boundary, ready for Unerase. Returns false with no change if v is not
// active. Order among the remaining active elements is not preserved.
// Complexity: O(n) scan + O(1) swap.
func (s *Unordered[T]) Erase(v T) bool {
	p := s.Find(v)
	if p < 0 {
		return false
	}
	s.active--
	s.elems[p], s.elems[s.active] = s.elems[s.active], s.elems[p]

	return true
}

// Unerase restores the most recently erased element (the one at the
// boundary) into the active region, at whatever position it physically
// occupies. No-op when nothing is erased.
// Complexity: O(1).
func (s *Unordered[T]) Unerase() {
	if s.active < len(s.elems) {
		s.active++
	}
}

// RemoveIf erases every active element matching pred in a single pass,
// equivalent to repeated scan-and-Erase in encounter order. An element
// swapped into the scan position by an erasure is still examined.
// Complexity: O(n) predicate calls.
func (s *Unordered[T]) RemoveIf(pred func(v T) bool) {
	i := 0
	for i < s.active {
		if pred(s.elems[i]) {
			s.active--
			s.elems[i], s.elems[s.active] = s.elems[s.active], s.elems[i]
			// stay on i: the swapped-in element has not been examined
			continue
		}
		i++
	}
}

// Reset restores every erased element in one step. The resulting order is
// whatever the buffer currently holds; use ResetSorted to impose one.
// Complexity: O(1).
func (s *Unordered[T]) Reset() { s.active = len(s.elems) }

// ResetSorted restores every erased element and sorts the full buffer
// ascending by less. Panics if less is nil.
// Complexity: O(n log n).
func (s *Unordered[T]) ResetSorted(less func(a, b T) bool) {
	if less == nil {
		panic("shrinkset: ResetSorted called with nil comparator")
	}
	s.active = len(s.elems)
	sort.Slice(s.elems, func(i, j int) bool { return less(s.elems[i], s.elems[j]) })
}

// String renders the active region for debugging, e.g. "[3 1 4]".
// Complexity: O(n).
func (s *Unordered[T]) String() string {
	return fmt.Sprintf("%v", s.elems[:s.active])
}
