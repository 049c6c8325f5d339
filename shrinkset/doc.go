// Package shrinkset implements removable/restorable candidate sets for
// backtracking search.
//
// Both variants keep every element they were built with in one contiguous
// backing buffer and track a single active boundary: elements before the
// boundary are "present", elements at or past it are erased but physically
// retained. Erasing never frees or reallocates anything, and the most
// recently erased element always sits exactly at the boundary — so a
// backtracking search can erase candidates while descending and call
// Unerase in strict LIFO order while unwinding, with zero allocation and
// zero bookkeeping beyond the buffer itself.
//
// Variants:
//
//   - Unordered — erase swaps the victim with the last active element and
//     shrinks the boundary: O(1) after the O(n) scan, no ordering guarantee
//     on the active region.
//   - Ordered — the active region stays sorted ascending at all times:
//     lookup is a binary search, erase rotates the victim to the boundary
//     in O(k), Unerase rotates it back into sorted position.
//
// Duplicates are collapsed once, at construction or Reinit; the set never
// grows afterwards — only erases, restores, and resets.
//
// Undo history is implicit in the buffer layout: repeated Unerase calls
// restore elements in exact reverse order of their erasure. Interleaving
// Erase and Unerase is well-defined only in this strict LIFO sense; there
// is no operation log.
//
// Comparator strategy is explicit: the ordered variant stores the less
// function it was built with, the unordered variant stores its equality
// predicate. No global or default-constructed ordering is consulted.
//
// Error policy: there are no error returns. A miss on Erase is a normal
// false result, Unerase with nothing erased is a no-op, and the only panic
// is At with an index outside the active region (programmer error).
//
// Not safe for concurrent use; wrap with external synchronization if
// shared. Any mutating call invalidates views previously returned by
// Active.
package shrinkset
