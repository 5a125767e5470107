package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjacencyConnectAndNeighbors(t *testing.T) {
	a := NewAdjacencyIndex()
	x, y := NewIdentifier(), NewIdentifier()
	a.Connect(x, y, 1.0, EdgeAssociation)
	a.Connect(x, y, 0.5, EdgeAssociation)

	neighbors := a.Neighbors(x)
	require.Len(t, neighbors, 2)
	assert.Equal(t, y, neighbors[0].To)
}

func TestAdjacencyRemoveNodeStripsBothDirections(t *testing.T) {
	a := NewAdjacencyIndex()
	x, y, z := NewIdentifier(), NewIdentifier(), NewIdentifier()
	a.Connect(x, y, 1.0, EdgeAssociation)
	a.Connect(y, z, 1.0, EdgeAssociation)

	a.RemoveNode(y)

	assert.Empty(t, a.Neighbors(x))
	assert.Empty(t, a.Neighbors(y))
	for _, e := range a.All() {
		assert.NotEqual(t, y, e.From)
		assert.NotEqual(t, y, e.To)
	}
}
