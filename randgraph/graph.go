// Package randgraph provides a small simple-graph type over integer
// vertices plus a few deterministic and random generators (complete,
// cycle, Erdős–Rényi sparse, d-regular by stub matching).
//
// Graphs are simple: no self-loops, no parallel edges. Vertices are the
// fixed range [0, n). Stochastic generators take an explicit *rand.Rand;
// nothing here seeds or touches global randomness, so a fixed seed gives
// a reproducible graph.
//
// Not safe for concurrent mutation; build first, then share read-only.
package randgraph

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors; match with errors.Is.
var (
	// ErrTooFewVertices indicates a vertex count below the generator's minimum.
	ErrTooFewVertices = errors.New("randgraph: vertex count too small")

	// ErrVertexOutOfRange indicates a vertex id outside [0, n).
	ErrVertexOutOfRange = errors.New("randgraph: vertex out of range")

	// ErrLoopNotAllowed indicates an attempted self-loop.
	ErrLoopNotAllowed = errors.New("randgraph: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge that already exists.
	ErrDuplicateEdge = errors.New("randgraph: duplicate edge")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("randgraph: probability out of range")

	// ErrNeedRandSource indicates a stochastic generator was called with a nil rng.
	ErrNeedRandSource = errors.New("randgraph: rng is required")

	// ErrBadDegree indicates a degree outside [0, n) or an odd n·d in Regular.
	ErrBadDegree = errors.New("randgraph: infeasible degree")

	// ErrConstructFailed indicates the generator exhausted its retry budget
	// without producing a graph satisfying its invariants.
	ErrConstructFailed = errors.New("randgraph: construction failed")
)

// Option configures a Graph before construction.
type Option func(*Graph)

// WithDirected makes edges one-way (u→v only).
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// Graph is a simple graph over vertices 0..n-1 backed by adjacency lists.
type Graph struct {
	directed bool
	n        int
	adj      [][]int  // adj[u] lists neighbors in insertion order
	edges    [][2]int // edge list in insertion order (u,v as added)
}

// New creates an edgeless graph on n vertices (n ≥ 1, else
// ErrTooFewVertices).
// Complexity: O(n).
func New(n int, opts ...Option) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrTooFewVertices)
	}
	g := &Graph{n: n, adj: make([][]int, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges.
// Complexity: O(1).
func (g *Graph) Size() int { return len(g.edges) }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// checkVertex validates a vertex id.
func (g *Graph) checkVertex(method string, u int) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("%s: vertex %d outside [0,%d): %w", method, u, g.n, ErrVertexOutOfRange)
	}

	return nil
}

// AddEdge inserts the edge u–v (u→v when directed). Self-loops return
// ErrLoopNotAllowed, repeats ErrDuplicateEdge, bad ids
// ErrVertexOutOfRange; the graph is unchanged on any error.
// Complexity: O(deg) duplicate check.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkVertex("AddEdge", u); err != nil {
		return err
	}
	if err := g.checkVertex("AddEdge", v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if g.HasEdge(u, v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}

	g.adj[u] = append(g.adj[u], v)
	if !g.directed {
		g.adj[v] = append(g.adj[v], u)
	}
	g.edges = append(g.edges, [2]int{u, v})

	return nil
}

// HasEdge reports whether the edge u–v exists (u→v when directed).
// Out-of-range ids simply report false.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n {
		return false
	}

	return slices.Contains(g.adj[u], v)
}

// Neighbors returns a copy of u's adjacency list in insertion order.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if err := g.checkVertex("Neighbors", u); err != nil {
		return nil, err
	}

	return slices.Clone(g.adj[u]), nil
}

// Degree returns the number of neighbors of u (out-degree when directed).
// Complexity: O(1).
func (g *Graph) Degree(u int) (int, error) {
	if err := g.checkVertex("Degree", u); err != nil {
		return 0, err
	}

	return len(g.adj[u]), nil
}

// Edges returns a copy of the edge list in insertion order. Generators
// add edges in a documented deterministic trial order, so a fixed seed
// reproduces this list exactly.
// Complexity: O(m).
func (g *Graph) Edges() [][2]int { return slices.Clone(g.edges) }
