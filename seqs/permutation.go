package seqs

import "cmp"

// NextPermutation rearranges s into the lexicographically next permutation
// in place. When s is already the last permutation it wraps around to the
// first (ascending) one and returns false; otherwise it returns true.
// Calling it in a loop from a sorted slice therefore enumerates all
// permutations exactly once.
// Complexity: O(n) time, O(1) memory.
func NextPermutation[T cmp.Ordered](s []T) bool {
	return NextPermutationFunc(s, func(a, b T) bool { return a < b })
}

// NextPermutationFunc is NextPermutation under an explicit strict
// ordering. Panics if less is nil.
// Complexity: O(n) time, O(1) memory.
func NextPermutationFunc[T any](s []T, less func(a, b T) bool) bool {
	if less == nil {
		panic("seqs: NextPermutationFunc called with nil comparator")
	}
	n := len(s)
	if n < 2 {
		return false
	}

	// Find the rightmost ascent s[i] < s[i+1].
	i := n - 2
	for i >= 0 && !less(s[i], s[i+1]) {
		i--
	}
	if i < 0 {
		// Entirely non-increasing: wrap to the first permutation.
		reverse(s)

		return false
	}

	// Find the rightmost element greater than the pivot and swap.
	j := n - 1
	for !less(s[i], s[j]) {
		j--
	}
	s[i], s[j] = s[j], s[i]

	// The suffix is descending; reverse it to the minimal order.
	reverse(s[i+1:])

	return true
}

// reverse flips s in place.
func reverse[T any](s []T) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
