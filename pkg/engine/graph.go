// Package engine implements the memory dynamics: the lazy-decay activation
// kernel, the recursive spread-activation boost, the dream-consolidation
// procedure, and the projected-activation search ranking, all driving the
// typed graph held in pkg/core.
package engine

import (
	"time"

	"github.com/jorgeguberte/loom-db/pkg/core"
)

// defaultBoostDepth is the hop budget stimulate() grants each call, per the
// external interface contract ("runs boost with depth = 3").
const defaultBoostDepth = 3

// pruneActivationFloor is the hard-coded activation half of the prune
// predicate. Kept fixed per the design notes' open-question resolution.
const pruneActivationFloor = 0.1

// Graph is the single owning instance of the memory engine's state: the
// node store, the adjacency index, the text index, and the logical clock.
// It has no internal synchronization; every exported method must run to
// completion before another begins, and the graph must not be shared across
// goroutines without external serialization.
type Graph struct {
	Store     *core.NodeStore
	Adjacency *core.AdjacencyIndex
	Text      *core.TextIndex
	Clock     *core.Clock
	DecayRate float64
}

// New constructs an empty graph with the given per-tick decay rate, which
// must be in (0,1).
func New(decayRate float64) *Graph {
	return &Graph{
		Store:     core.NewNodeStore(),
		Adjacency: core.NewAdjacencyIndex(),
		Text:      core.NewTextIndex(),
		Clock:     core.NewClock(),
		DecayRate: decayRate,
	}
}

// AddConcept ingests a Concept node and returns its identifier.
func (g *Graph) AddConcept(name, definition string) core.Identifier {
	n := core.NewConcept(name, definition)
	n.LastTick = g.Clock.CurrentTick
	g.Store.Insert(n)
	g.Text.Index(n)
	return n.ID
}

// AddEpisode ingests an Episode node, stamping it with the current
// wall-clock time, and returns its identifier.
func (g *Graph) AddEpisode(summary string) core.Identifier {
	n := core.NewEpisode(summary, time.Now())
	n.LastTick = g.Clock.CurrentTick
	g.Store.Insert(n)
	g.Text.Index(n)
	return n.ID
}

// AddState ingests a State node and returns its identifier. State nodes are
// never indexed for text search.
func (g *Graph) AddState(valence, arousal float64) core.Identifier {
	n := core.NewState(valence, arousal)
	n.LastTick = g.Clock.CurrentTick
	g.Store.Insert(n)
	return n.ID
}

// Connect adds a directed, weighted edge from src to dst. It returns false,
// writing no edge, if either identifier fails to parse or does not name an
// existing node.
func (g *Graph) Connect(src, dst string, weight float64) bool {
	srcID, err := core.ParseIdentifier(src)
	if err != nil {
		return false
	}
	dstID, err := core.ParseIdentifier(dst)
	if err != nil {
		return false
	}
	if !g.Store.Has(srcID) || !g.Store.Has(dstID) {
		return false
	}
	g.Adjacency.Connect(srcID, dstID, weight, core.EdgeAssociation)
	return true
}

// Tick advances the logical clock by one.
func (g *Graph) Tick() {
	g.Clock.Tick()
}

// WakeUp bridges elapsed wall-clock minutes into ticks. Safe to call
// arbitrarily often; the first call after a fresh graph only anchors.
func (g *Graph) WakeUp() {
	g.Clock.WakeUp(time.Now())
}

// Stimulate parses id and, if it names an existing node, runs the
// spread-activation boost from it with the default hop budget. It returns
// false on a missing or malformed identifier, never an error.
func (g *Graph) Stimulate(id string, force float64) bool {
	nodeID, err := core.ParseIdentifier(id)
	if err != nil || !g.Store.Has(nodeID) {
		return false
	}
	g.boost(nodeID, force, defaultBoostDepth)
	return true
}

// GetNodeInfo returns the node named by id, or nil on a missing or
// malformed identifier. Activation is projected, not mutated.
func (g *Graph) GetNodeInfo(id string) *core.Node {
	nodeID, err := core.ParseIdentifier(id)
	if err != nil {
		return nil
	}
	n := g.Store.Get(nodeID)
	if n == nil {
		return nil
	}
	view := *n
	view.Activation = g.projectedActivation(n)
	return &view
}
