// Package fraction provides exact rational arithmetic on int64 values.
//
// A Frac is always held in canonical form: lowest terms, denominator
// strictly positive, sign carried by the numerator. The zero value is the
// rational 0 (0/1). Arithmetic is value-based and never mutates operands.
//
// Overflow of intermediate products is not detected; the type targets the
// small exact coefficients that show up in combinatorics, not big-number
// work.
//
// Errors:
//
//	ErrZeroDenominator — a fraction with denominator 0 was requested.
//	ErrDivideByZero    — division by the rational 0.
//	ErrParse           — Parse input is not "n" or "n/d".
package fraction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/stdx/seqs"
)

// Sentinel errors for fraction operations.
var (
	// ErrZeroDenominator indicates a denominator of 0 was supplied to New or Parse.
	ErrZeroDenominator = errors.New("fraction: zero denominator")

	// ErrDivideByZero indicates division by a zero-valued fraction.
	ErrDivideByZero = errors.New("fraction: division by zero")

	// ErrParse indicates input that is neither "n" nor "n/d".
	ErrParse = errors.New("fraction: malformed input")
)

// Frac is a rational number in lowest terms with a positive denominator.
// The zero value is 0/1.
type Frac struct {
	num, den int64
}

// New returns num/den reduced to canonical form, or ErrZeroDenominator.
// Complexity: O(log min(num,den)) for the GCD.
func New(num, den int64) (Frac, error) {
	if den == 0 {
		return Frac{}, fmt.Errorf("New(%d,%d): %w", num, den, ErrZeroDenominator)
	}

	return reduce(num, den), nil
}

// FromInt returns the whole number n as a fraction n/1.
// Complexity: O(1).
func FromInt(n int64) Frac { return Frac{num: n, den: 1} }

// reduce brings num/den into canonical form. den must be non-zero.
func reduce(num, den int64) Frac {
	if den < 0 {
		num, den = -num, -den // sign lives on the numerator
	}
	if num == 0 {
		return Frac{num: 0, den: 1}
	}
	g := seqs.GCD(num, den)

	return Frac{num: num / g, den: den / g}
}

// Num returns the canonical numerator (carries the sign).
func (f Frac) Num() int64 { return f.normal().num }

// Den returns the canonical denominator (always positive).
func (f Frac) Den() int64 { return f.normal().den }

// normal maps the zero value onto 0/1 so methods need no special case.
func (f Frac) normal() Frac {
	if f.den == 0 {
		return Frac{num: 0, den: 1}
	}

	return f
}

// IsZero reports whether f equals the rational 0.
func (f Frac) IsZero() bool { return f.normal().num == 0 }

// Add returns f + g in canonical form.
// Complexity: O(log) for the reduction.
func (f Frac) Add(g Frac) Frac {
	a, b := f.normal(), g.normal()

	return reduce(a.num*b.den+b.num*a.den, a.den*b.den)
}

// Sub returns f - g in canonical form.
func (f Frac) Sub(g Frac) Frac {
	a, b := f.normal(), g.normal()

	return reduce(a.num*b.den-b.num*a.den, a.den*b.den)
}

// Mul returns f * g in canonical form.
func (f Frac) Mul(g Frac) Frac {
	a, b := f.normal(), g.normal()

	return reduce(a.num*b.num, a.den*b.den)
}

// Div returns f / g, or ErrDivideByZero when g is zero.
func (f Frac) Div(g Frac) (Frac, error) {
	a, b := f.normal(), g.normal()
	if b.num == 0 {
		return Frac{}, fmt.Errorf("Div(%s,%s): %w", a, b, ErrDivideByZero)
	}

	return reduce(a.num*b.den, a.den*b.num), nil
}

// Neg returns -f.
func (f Frac) Neg() Frac {
	a := f.normal()

	return Frac{num: -a.num, den: a.den}
}

// Cmp compares f and g: -1 if f < g, 0 if equal, +1 if f > g.
// Exact via cross-multiplication, no float round-trip.
func (f Frac) Cmp(g Frac) int {
	a, b := f.normal(), g.normal()
	l, r := a.num*b.den, b.num*a.den
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// Float returns the nearest float64 approximation of f.
func (f Frac) Float() float64 {
	a := f.normal()

	return float64(a.num) / float64(a.den)
}

// String renders "n/d", or just "n" when the denominator is 1.
func (f Frac) String() string {
	a := f.normal()
	if a.den == 1 {
		return strconv.FormatInt(a.num, 10)
	}

	return fmt.Sprintf("%d/%d", a.num, a.den)
}

// Parse reads "n" or "n/d" (optional sign on the numerator) into a
// canonical Frac. Returns ErrParse on malformed input and
// ErrZeroDenominator on "n/0".
func Parse(s string) (Frac, error) {
	numStr, denStr, slash := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Frac{}, fmt.Errorf("Parse(%q): %w", s, ErrParse)
	}
	if !slash {
		return FromInt(num), nil
	}
	den, err := strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
	if err != nil {
		return Frac{}, fmt.Errorf("Parse(%q): %w", s, ErrParse)
	}

	return New(num, den)
}
