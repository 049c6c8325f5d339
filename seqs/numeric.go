package seqs

// GCD returns the greatest common divisor of a and b by the Euclidean
// algorithm. GCD(0, 0) == 0; the result is always non-negative.
// Complexity: O(log min(a,b)).
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Binomial returns C(n, k), the number of k-subsets of an n-set.
// Multiplies and divides alternately so intermediate values stay exact as
// long as the final result fits in int64.
// Panics if n < 0 or k < 0.
// Complexity: O(min(k, n-k)).
func Binomial(n, k int) int64 {
	if n < 0 || k < 0 {
		panic("seqs: Binomial called with negative argument")
	}
	if k > n {
		return 0
	}
	if k > n-k {
		k = n - k // exploit symmetry
	}
	res := int64(1)
	for i := 1; i <= k; i++ {
		// res * (n-k+i) is divisible by i at every step.
		res = res * int64(n-k+i) / int64(i)
	}

	return res
}

// Primes returns all primes ≤ n in ascending order via the sieve of
// Eratosthenes. For n < 2 the result is empty.
// Complexity: O(n log log n) time, O(n) memory.
func Primes(n int) []int {
	if n < 2 {
		return nil
	}
	composite := make([]bool, n+1)
	var primes []int
	for p := 2; p <= n; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, p)
		for q := p * p; q <= n && q > 0; q += p {
			composite[q] = true
		}
	}

	return primes
}
