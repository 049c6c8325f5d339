// Package table provides a contiguous row-major 2-D container generic
// over its element type, plus basic linear algebra on float64 tables
// (multiplication, integer powers, dominant-eigenvalue estimation by
// power iteration).
//
// A Table owns a single flat backing slice for cache friendliness; rows
// are views into it, columns are copies. Shape is fixed at construction.
package table

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for table operations; match with errors.Is.
var (
	// ErrBadShape indicates non-positive dimensions or ragged row input.
	ErrBadShape = errors.New("table: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("table: index out of range")
)

// Table is a row-major 2-D container. r rows, c columns, and data holds
// r*c elements with (i,j) at data[i*c+j].
type Table[T any] struct {
	r, c int
	data []T
}

// New creates an r×c Table of zero values, or ErrBadShape when either
// dimension is non-positive.
// Complexity: O(r*c) time and memory.
func New[T any](rows, cols int) (*Table[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Table[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows creates a Table from a rectangular slice of rows. Values are
// copied; the input is not retained. Returns ErrBadShape for empty input
// or ragged rows.
// Complexity: O(r*c).
func FromRows[T any](rows [][]T) (*Table[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: empty input: %w", ErrBadShape)
	}
	c := len(rows[0])
	t := &Table[T]{r: len(rows), c: c, data: make([]T, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrBadShape)
		}
		copy(t.data[i*c:(i+1)*c], row)
	}

	return t, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (t *Table[T]) Rows() int { return t.r }

// Cols returns the number of columns.
// Complexity: O(1).
func (t *Table[T]) Cols() int { return t.c }

// indexOf computes the flat index of (row, col) or ErrOutOfRange.
func (t *Table[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= t.r || col < 0 || col >= t.c {
		return 0, fmt.Errorf("Table.%s(%d,%d): shape %dx%d: %w", method, row, col, t.r, t.c, ErrOutOfRange)
	}

	return row*t.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (t *Table[T]) At(row, col int) (T, error) {
	idx, err := t.indexOf("At", row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return t.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (t *Table[T]) Set(row, col int, v T) error {
	idx, err := t.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	t.data[idx] = v

	return nil
}

// Row returns the i-th row as a live view into the backing storage:
// writes through the view mutate the table. Valid for the table's
// lifetime (shape never changes).
// Complexity: O(1).
func (t *Table[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= t.r {
		return nil, fmt.Errorf("Table.Row(%d): have %d rows: %w", i, t.r, ErrOutOfRange)
	}

	return t.data[i*t.c : (i+1)*t.c : (i+1)*t.c], nil
}

// Col returns a copy of the j-th column (column-major views are not
// expressible over row-major storage).
// Complexity: O(r) time and memory.
func (t *Table[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= t.c {
		return nil, fmt.Errorf("Table.Col(%d): have %d cols: %w", j, t.c, ErrOutOfRange)
	}
	out := make([]T, t.r)
	for i := 0; i < t.r; i++ {
		out[i] = t.data[i*t.c+j]
	}

	return out, nil
}

// Fill assigns v to every cell.
// Complexity: O(r*c).
func (t *Table[T]) Fill(v T) {
	for i := range t.data {
		t.data[i] = v
	}
}

// Clone returns a deep copy.
// Complexity: O(r*c) time and memory.
func (t *Table[T]) Clone() *Table[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)

	return &Table[T]{r: t.r, c: t.c, data: data}
}

// String implements fmt.Stringer: one bracketed row per line.
// Complexity: O(r*c).
func (t *Table[T]) String() string {
	var b strings.Builder
	for i := 0; i < t.r; i++ {
		b.WriteByte('[')
		for j := 0; j < t.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", t.data[i*t.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
