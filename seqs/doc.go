// Package seqs collects small sequence algorithms that the rest of stdx
// builds on: iota-style fills, copying sort wrappers, first-seen
// deduplication, subrange rotation, lexicographic permutation stepping,
// and a few numeric one-liners (GCD, binomial coefficients, a prime sieve).
//
// Everything here is allocation-conscious and single-threaded. Functions
// that mutate do so in place and say so; functions returning slices always
// return fresh storage, never a view into their input.
//
// Errors: none. The only failure modes are programmer errors (negative
// lengths, out-of-domain arguments), which panic.
package seqs
