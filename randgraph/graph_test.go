package randgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stdx/randgraph"
)

// TestNew_Validation verifies vertex-count validation and empty-graph
// accessors.
func TestNew_Validation(t *testing.T) {
	_, err := randgraph.New(0)
	assert.ErrorIs(t, err, randgraph.ErrTooFewVertices)

	g, err := randgraph.New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.False(t, g.Directed())
}

// TestAddEdge_Undirected verifies mirroring, duplicate and loop rejection.
func TestAddEdge_Undirected(t *testing.T) {
	g, err := randgraph.New(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0), "undirected edges mirror")
	assert.Equal(t, 1, g.Size(), "mirrored edge counts once")

	assert.ErrorIs(t, g.AddEdge(1, 0), randgraph.ErrDuplicateEdge, "reverse of an existing undirected edge is a duplicate")
	assert.ErrorIs(t, g.AddEdge(1, 1), randgraph.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(0, 3), randgraph.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0), randgraph.ErrVertexOutOfRange)
	assert.Equal(t, 1, g.Size(), "failed adds leave the graph unchanged")
}

// TestAddEdge_Directed verifies one-way edges admit their reverse.
func TestAddEdge_Directed(t *testing.T) {
	g, err := randgraph.New(3, randgraph.WithDirected())
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0), "directed edge has no mirror")
	require.NoError(t, g.AddEdge(1, 0), "reverse direction is a distinct edge")
	assert.Equal(t, 2, g.Size())
}

// TestNeighborsDegree verifies adjacency queries and their error class.
func TestNeighborsDegree(t *testing.T) {
	g, err := randgraph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, nbrs)

	deg, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
	deg, err = g.Degree(3)
	require.NoError(t, err)
	assert.Equal(t, 0, deg)

	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, randgraph.ErrVertexOutOfRange)
	_, err = g.Degree(-1)
	assert.ErrorIs(t, err, randgraph.ErrVertexOutOfRange)
}

// TestEdges_CopySemantics verifies the edge list is a snapshot, not a
// live view.
func TestEdges_CopySemantics(t *testing.T) {
	g, err := randgraph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	edges := g.Edges()
	edges[0] = [2]int{2, 2}

	assert.Equal(t, [][2]int{{0, 1}}, g.Edges(), "caller mutation must not leak back")
}
