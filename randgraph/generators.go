package randgraph

import (
	"fmt"
	"math/rand"
)

// Generator parameter domains.
const (
	minCycleVertices = 3
	probMin          = 0.0
	probMax          = 1.0

	// regularAttempts bounds stub-matching retries before Regular gives up.
	regularAttempts = 100
)

// Complete returns the graph with every admissible edge: all unordered
// pairs when undirected, all ordered pairs when directed.
// Trial order: u asc, then v asc.
// Complexity: O(n²).
func Complete(n int, opts ...Option) (*Graph, error) {
	g, err := New(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || (!g.directed && v < u) {
				continue
			}
			if err = g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("Complete: AddEdge(%d,%d): %w", u, v, err)
			}
		}
	}

	return g, nil
}

// Cycle returns the n-cycle 0–1–…–(n-1)–0. Requires n ≥ 3
// (ErrTooFewVertices): below that a simple graph admits no cycle.
// Complexity: O(n).
func Cycle(n int, opts ...Option) (*Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle(%d): need at least %d vertices: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	g, err := New(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}
	for u := 0; u < n; u++ {
		if err = g.AddEdge(u, (u+1)%n); err != nil {
			return nil, fmt.Errorf("Cycle: AddEdge(%d,%d): %w", u, (u+1)%n, err)
		}
	}

	return g, nil
}

// Sparse samples an Erdős–Rényi-like graph on n vertices: each admissible
// edge is included independently with probability p. rng is required
// whenever 0 < p < 1 (ErrNeedRandSource); the degenerate p values 0 and 1
// are deterministic and accept a nil rng.
// Trial order is stable (u asc, then v asc), so a fixed seed reproduces
// the graph exactly.
// Complexity: O(n²) Bernoulli trials.
func Sparse(n int, p float64, rng *rand.Rand, opts ...Option) (*Graph, error) {
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("Sparse: p=%v not in [%v,%v]: %w", p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("Sparse: %w", ErrNeedRandSource)
	}
	g, err := New(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Sparse: %w", err)
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || (!g.directed && v < u) {
				continue
			}
			if p < probMax && (p == probMin || rng.Float64() >= p) {
				continue
			}
			if err = g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("Sparse: AddEdge(%d,%d): %w", u, v, err)
			}
		}
	}

	return g, nil
}

// Regular samples an undirected d-regular graph on n vertices by stub
// matching: each vertex contributes d stubs, the stub list is shuffled
// and paired off, and the whole attempt restarts when a pairing produces
// a loop or a parallel edge. After regularAttempts failed attempts it
// returns ErrConstructFailed (retry with another seed).
//
// Feasibility requires 0 ≤ d < n and even n·d (ErrBadDegree). rng is
// required unless d == 0.
// Complexity: O(n·d) per attempt.
func Regular(n, d int, rng *rand.Rand) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Regular(%d,%d): %w", n, d, ErrTooFewVertices)
	}
	if d < 0 || d >= n || n*d%2 != 0 {
		return nil, fmt.Errorf("Regular(%d,%d): %w", n, d, ErrBadDegree)
	}
	if d == 0 {
		return New(n)
	}
	if rng == nil {
		return nil, fmt.Errorf("Regular: %w", ErrNeedRandSource)
	}

	stubs := make([]int, 0, n*d)
	for u := 0; u < n; u++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, u)
		}
	}

	for attempt := 0; attempt < regularAttempts; attempt++ {
		rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		g, err := New(n)
		if err != nil {
			return nil, fmt.Errorf("Regular: %w", err)
		}
		ok := true
		for i := 0; i < len(stubs); i += 2 {
			if err = g.AddEdge(stubs[i], stubs[i+1]); err != nil {
				ok = false // loop or parallel edge: resample the matching

				break
			}
		}
		if ok {
			return g, nil
		}
	}

	return nil, fmt.Errorf("Regular(%d,%d): %d attempts: %w", n, d, regularAttempts, ErrConstructFailed)
}
