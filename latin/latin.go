// Package latin generates random Latin squares by constraint propagation
// and backtracking.
//
// An order-n Latin square is an n×n table where every row and every
// column contains each symbol 0..n-1 exactly once. Generation works row
// by row: each column keeps a shrinkset of symbols it can still accept,
// and the row filler erases a candidate from the column pool on every
// placement, restoring it with Unerase when a branch dead-ends. A partial
// Latin rectangle always extends to a full square, so per-row
// backtracking never fails outright — it only reorders its choices.
package latin

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/stdx/seqs"
	"github.com/katalvlaran/stdx/shrinkset"
	"github.com/katalvlaran/stdx/table"
)

// Sentinel errors; match with errors.Is.
var (
	// ErrTooSmall indicates a requested order below 1.
	ErrTooSmall = errors.New("latin: order must be at least 1")

	// ErrNeedRandSource indicates Generate was called with a nil rng.
	ErrNeedRandSource = errors.New("latin: rng is required")

	// ErrNotSquare indicates Validate received a non-square table.
	ErrNotSquare = errors.New("latin: table is not square")

	// ErrBadSymbol indicates a cell value outside [0, n).
	ErrBadSymbol = errors.New("latin: symbol out of range")

	// ErrNotLatin indicates a row or column repeats a symbol.
	ErrNotLatin = errors.New("latin: duplicate symbol in row or column")
)

// Generate returns a random order-n Latin square. The rng drives the
// candidate order in every cell, so a fixed seed reproduces the square
// exactly.
// Complexity: expected near O(n²·n) — backtracking within a row is rare
// and never escapes the row.
func Generate(n int, rng *rand.Rand) (*table.Table[int], error) {
	if n < 1 {
		return nil, fmt.Errorf("Generate(%d): %w", n, ErrTooSmall)
	}
	if rng == nil {
		return nil, fmt.Errorf("Generate(%d): %w", n, ErrNeedRandSource)
	}

	// One candidate pool per column: symbols the column still accepts.
	cols := make([]*shrinkset.Unordered[int], n)
	for j := range cols {
		cols[j] = shrinkset.NewUnordered(seqs.Iota(n, 0))
	}

	sq, err := table.New[int](n, n)
	if err != nil {
		return nil, fmt.Errorf("Generate(%d): %w", n, err)
	}

	used := make([]bool, n) // symbols already placed in the current row
	for r := 0; r < n; r++ {
		row, rerr := sq.Row(r)
		if rerr != nil {
			return nil, fmt.Errorf("Generate(%d): %w", n, rerr)
		}
		if !fillRow(row, cols, used, rng, 0) {
			// Unreachable: every partial Latin rectangle extends (Hall's
			// theorem), and fillRow searches the row exhaustively.
			return nil, fmt.Errorf("Generate(%d): row %d: search space exhausted", n, r)
		}
		// Pools stay shrunk: placements in this row are permanent.
		clear(used)
	}

	return sq, nil
}

// fillRow places symbols into row[j:] by depth-first search. Each
// placement erases the symbol from its column pool; unwinding restores
// it with Unerase, strictly LIFO per pool. Returns false when no
// candidate order completes the suffix.
func fillRow(row []int, cols []*shrinkset.Unordered[int], used []bool, rng *rand.Rand, j int) bool {
	if j == len(row) {
		return true
	}

	// Snapshot and shuffle the column's live candidates; the pool itself
	// mutates as we descend, the snapshot keeps the choice order stable.
	cands := cols[j].Values()
	rng.Shuffle(len(cands), func(a, b int) { cands[a], cands[b] = cands[b], cands[a] })

	for _, c := range cands {
		if used[c] {
			continue
		}
		if !cols[j].Erase(c) {
			continue
		}
		row[j] = c
		used[c] = true

		if fillRow(row, cols, used, rng, j+1) {
			return true
		}

		used[c] = false
		cols[j].Unerase()
	}

	return false
}

// Validate checks the Latin property: sq must be square, every cell in
// [0, n), and every row and column free of repeats. Returns nil on a
// valid square and a wrapped sentinel naming the first violation
// otherwise.
// Complexity: O(n²).
func Validate(sq *table.Table[int]) error {
	n := sq.Rows()
	if sq.Cols() != n {
		return fmt.Errorf("Validate: %dx%d: %w", n, sq.Cols(), ErrNotSquare)
	}

	rowSeen := make([]bool, n)
	colSeen := make([][]bool, n)
	for j := range colSeen {
		colSeen[j] = make([]bool, n)
	}

	for i := 0; i < n; i++ {
		clear(rowSeen)
		for j := 0; j < n; j++ {
			v, err := sq.At(i, j)
			if err != nil {
				return fmt.Errorf("Validate: %w", err)
			}
			if v < 0 || v >= n {
				return fmt.Errorf("Validate: cell (%d,%d)=%d: %w", i, j, v, ErrBadSymbol)
			}
			if rowSeen[v] {
				return fmt.Errorf("Validate: row %d repeats %d: %w", i, v, ErrNotLatin)
			}
			if colSeen[j][v] {
				return fmt.Errorf("Validate: column %d repeats %d: %w", j, v, ErrNotLatin)
			}
			rowSeen[v] = true
			colSeen[j][v] = true
		}
	}

	return nil
}
