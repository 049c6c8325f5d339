package seqs

import (
	"cmp"
	"slices"
)

// Iota returns a slice of n ints counting up from start:
// [start, start+1, ..., start+n-1].
// Panics if n < 0.
// Complexity: O(n) time and memory.
func Iota(n, start int) []int {
	if n < 0 {
		panic("seqs: Iota called with negative length")
	}
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}

	return out
}

// Sorted returns an ascending copy of s. The input is never modified.
// Complexity: O(n log n) time, O(n) memory.
func Sorted[T cmp.Ordered](s []T) []T {
	out := slices.Clone(s)
	slices.Sort(out)

	return out
}

// SortedFunc returns a copy of s sorted ascending by less.
// Complexity: O(n log n) time, O(n) memory.
func SortedFunc[T any](s []T, less func(a, b T) bool) []T {
	out := slices.Clone(s)
	slices.SortFunc(out, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})

	return out
}

// Dedup returns a copy of s with every value appearing once, keeping the
// first occurrence of each and preserving first-seen order. The input is
// never modified.
// Complexity: O(n) time and memory.
func Dedup[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// DedupFunc is Dedup under an arbitrary equality predicate. Because eq
// admits no hashing, the scan is quadratic; intended for the small
// candidate pools this package serves.
// Panics if eq is nil.
// Complexity: O(n²) time, O(n) memory.
func DedupFunc[T any](s []T, eq func(a, b T) bool) []T {
	if eq == nil {
		panic("seqs: DedupFunc called with nil equality predicate")
	}
	out := make([]T, 0, len(s))
	for _, v := range s {
		dup := false
		for _, u := range out {
			if eq(u, v) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}

	return out
}

// RotateLeft cyclically shifts s left by k positions in place, so the
// element at index k moves to index 0. k is taken modulo len(s); negative
// k rotates right.
// Complexity: O(n) time, O(1) memory (triple-reverse).
func RotateLeft[T any](s []T, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}
