// Package stdx is a grab-bag extension of the standard library: small,
// self-contained generic data structures and numeric helpers that keep
// showing up in combinatorial and constraint-propagation code.
//
// What lives here:
//
//	fraction/  — exact reduced-fraction arithmetic on int64
//	latin/     — random Latin-square generation via backtracking search
//	randgraph/ — a small adjacency-list graph plus random generators
//	seqs/      — sequence helpers: iota, permutations, dedup, rotation, sieve
//	shrinkset/ — removable/restorable candidate sets for backtracking
//	table/     — contiguous row-major 2-D tables with basic linear algebra
//
// ✨ Why stdx?
//
//   - Pure Go, generics-first, no hidden dependencies
//   - Explicit comparator strategies, no global state, no implicit randomness
//   - Sentinel errors matched with errors.Is; panics reserved for misuse
//
// The centerpiece is shrinkset: a backing-buffer set whose "removed"
// elements stay physically in place past an active boundary, so a
// backtracking search can erase candidates in O(1) (or order-preserving
// O(k)) and un-erase them in strict LIFO order with no allocation.
// latin/ shows the intended usage pattern end to end.
//
//	go get github.com/katalvlaran/stdx
package stdx
