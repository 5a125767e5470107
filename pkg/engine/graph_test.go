package engine

import (
	"testing"

	"github.com/jorgeguberte/loom-db/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestConnectFailsOnMalformedIdentifier(t *testing.T) {
	g := New(0.9)
	a := g.AddConcept("a", "a")
	assert.False(t, g.Connect("not-a-uuid", a.String(), 1.0))
	assert.False(t, g.Connect(a.String(), "not-a-uuid", 1.0))
}

func TestConnectFailsOnMissingEndpoint(t *testing.T) {
	g := New(0.9)
	a := g.AddConcept("a", "a")
	ghost := core.NewIdentifier()
	assert.False(t, g.Connect(a.String(), ghost.String(), 1.0))
	assert.False(t, g.Connect(ghost.String(), a.String(), 1.0))
	assert.Empty(t, g.Adjacency.Neighbors(a))
}

func TestConnectSucceedsBetweenExistingNodes(t *testing.T) {
	g := New(0.9)
	a := g.AddConcept("a", "a")
	b := g.AddConcept("b", "b")
	assert.True(t, g.Connect(a.String(), b.String(), 0.5))
	assert.Len(t, g.Adjacency.Neighbors(a), 1)
}

func TestStimulateFailsOnMalformedOrMissingIdentifier(t *testing.T) {
	g := New(0.9)
	assert.False(t, g.Stimulate("not-a-uuid", 0.5))
	assert.False(t, g.Stimulate(core.NewIdentifier().String(), 0.5))
}

func TestStimulateSucceedsOnExistingNode(t *testing.T) {
	g := New(0.9)
	a := g.AddConcept("a", "a")
	assert.True(t, g.Stimulate(a.String(), 0.5))
}

func TestGetNodeInfoNilOnMissingOrMalformed(t *testing.T) {
	g := New(0.9)
	assert.Nil(t, g.GetNodeInfo("not-a-uuid"))
	assert.Nil(t, g.GetNodeInfo(core.NewIdentifier().String()))
}

func TestGetNodeInfoReturnsProjectedCopy(t *testing.T) {
	g := New(0.9)
	a := g.AddConcept("a", "def")
	g.Tick()
	g.Tick()

	view := g.GetNodeInfo(a.String())
	assert.NotNil(t, view)
	assert.Equal(t, a, view.ID)

	stored := g.Store.Get(a)
	assert.Equal(t, 1.0, stored.Activation, "GetNodeInfo must not mutate stored state")
	assert.Less(t, view.Activation, 1.0)
}
