package table

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the float64 linear-algebra routines.
var (
	// ErrDimensionMismatch indicates incompatible operand shapes
	// (Mul where a.Cols != b.Rows, or a start vector of the wrong length).
	ErrDimensionMismatch = errors.New("table: dimension mismatch")

	// ErrNonSquare signals that a square table was required.
	ErrNonSquare = errors.New("table: table is not square")

	// ErrNegativePower signals a negative exponent passed to Pow.
	ErrNegativePower = errors.New("table: negative power")

	// ErrNoConvergence indicates power iteration exhausted its iteration
	// budget before the eigenvalue estimate stabilized.
	ErrNoConvergence = errors.New("table: power iteration did not converge")

	// ErrZeroVector indicates the iterate collapsed to the zero vector
	// (start vector lies in the matrix kernel).
	ErrZeroVector = errors.New("table: iterate collapsed to zero")
)

// Defaults for PowerIterate; single source of truth.
const (
	// DefaultTolerance is the convergence threshold on successive
	// eigenvalue estimates.
	DefaultTolerance = 1e-9

	// DefaultMaxIterations caps the number of multiply-normalize sweeps.
	DefaultMaxIterations = 1000
)

// IterOption configures PowerIterate. Constructors panic on nonsensical
// values (programmer error), never at iteration time.
type IterOption func(*iterConfig)

type iterConfig struct {
	tol     float64
	maxIter int
	start   []float64 // optional; defaults to all-ones
}

// WithTolerance sets the convergence threshold. Panics unless tol > 0.
func WithTolerance(tol float64) IterOption {
	if tol <= 0 || math.IsNaN(tol) {
		panic(fmt.Sprintf("table: WithTolerance(%g): tolerance must be > 0", tol))
	}

	return func(c *iterConfig) { c.tol = tol }
}

// WithMaxIterations sets the sweep budget. Panics unless n > 0.
func WithMaxIterations(n int) IterOption {
	if n <= 0 {
		panic(fmt.Sprintf("table: WithMaxIterations(%d): budget must be > 0", n))
	}

	return func(c *iterConfig) { c.maxIter = n }
}

// WithStart sets the initial vector. The slice is copied. Panics on an
// empty start vector; a length mismatch against the table surfaces as
// ErrDimensionMismatch at call time.
func WithStart(v []float64) IterOption {
	if len(v) == 0 {
		panic("table: WithStart: empty start vector")
	}

	return func(c *iterConfig) {
		c.start = make([]float64, len(v))
		copy(c.start, v)
	}
}

// Identity returns the n×n identity table.
// Complexity: O(n²).
func Identity(n int) (*Table[float64], error) {
	t, err := New[float64](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}

	return t, nil
}

// Mul returns the matrix product a·b, or ErrDimensionMismatch when
// a.Cols != b.Rows.
// Complexity: O(r·c·k) time, O(r·c) memory.
func Mul(a, b *Table[float64]) (*Table[float64], error) {
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out := &Table[float64]{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// Pow returns a raised to the k-th power by repeated squaring. a must be
// square (ErrNonSquare) and k non-negative (ErrNegativePower); Pow(a, 0)
// is the identity.
// Complexity: O(n³ log k).
func Pow(a *Table[float64], k int) (*Table[float64], error) {
	if a.r != a.c {
		return nil, fmt.Errorf("Pow: %dx%d: %w", a.r, a.c, ErrNonSquare)
	}
	if k < 0 {
		return nil, fmt.Errorf("Pow: exponent %d: %w", k, ErrNegativePower)
	}
	res, err := Identity(a.r)
	if err != nil {
		return nil, err
	}
	base := a.Clone()
	for k > 0 {
		if k&1 == 1 {
			if res, err = Mul(res, base); err != nil {
				return nil, err
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

// PowerIterate estimates the dominant eigenvalue and a unit eigenvector
// of the square table a by power iteration: multiply, normalize, and
// refine a Rayleigh-quotient estimate until successive estimates differ
// by at most the tolerance.
//
// Returns ErrNonSquare, ErrDimensionMismatch (start vector length),
// ErrZeroVector (iterate lands in the kernel), or ErrNoConvergence when
// the iteration budget runs out. Convergence requires a dominant
// eigenvalue strictly larger in magnitude than the rest; rotation-like
// spectra legitimately exhaust the budget.
// Complexity: O(maxIter·n²) time, O(n) memory.
func PowerIterate(a *Table[float64], opts ...IterOption) (float64, []float64, error) {
	if a.r != a.c {
		return 0, nil, fmt.Errorf("PowerIterate: %dx%d: %w", a.r, a.c, ErrNonSquare)
	}
	cfg := iterConfig{tol: DefaultTolerance, maxIter: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := a.r
	x := cfg.start
	if x == nil {
		x = make([]float64, n)
		for i := range x {
			x[i] = 1
		}
	} else if len(x) != n {
		return 0, nil, fmt.Errorf("PowerIterate: start length %d, want %d: %w", len(x), n, ErrDimensionMismatch)
	}
	if norm(x) == 0 {
		return 0, nil, fmt.Errorf("PowerIterate: %w", ErrZeroVector)
	}
	scale(x, 1/norm(x))

	y := make([]float64, n)
	prev := math.Inf(1)
	for iter := 0; iter < cfg.maxIter; iter++ {
		// y = a·x
		for i := 0; i < n; i++ {
			sum := 0.0
			row := a.data[i*n : (i+1)*n]
			for j, v := range row {
				sum += v * x[j]
			}
			y[i] = sum
		}

		ynorm := norm(y)
		if ynorm == 0 {
			return 0, nil, fmt.Errorf("PowerIterate: %w", ErrZeroVector)
		}

		// Rayleigh quotient with x normalized: λ ≈ x·(a·x).
		lambda := dot(x, y)
		scale(y, 1/ynorm)
		copy(x, y)

		if math.Abs(lambda-prev) <= cfg.tol {
			return lambda, x, nil
		}
		prev = lambda
	}

	return 0, nil, fmt.Errorf("PowerIterate: %d iterations: %w", cfg.maxIter, ErrNoConvergence)
}

// norm returns the Euclidean length of v.
func norm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// dot returns the inner product of equal-length vectors.
func dot(a, b []float64) float64 {
	sum := 0.0
	for i, x := range a {
		sum += x * b[i]
	}

	return sum
}

// scale multiplies v by s in place.
func scale(v []float64, s float64) {
	for i := range v {
		v[i] *= s
	}
}
