package engine

import (
	"math"

	"github.com/jorgeguberte/loom-db/pkg/core"
)

// decay applies the lazy-decay activation kernel to n at the graph's
// current tick, writing the result back. Decay is applied only when a node
// is observed; nodes never touched remain formally stale but numerically
// correct the next time they are read or boosted.
//
// Stability divides the decay exponent: a node that has been reinforced
// many times (high stability) forgets slower than a fresh one. This is the
// engine's sole read-time mutation; every other read path uses the
// projected variant below so that search and context stay side-effect-free.
func (g *Graph) decay(n *core.Node) float64 {
	delta := g.Clock.CurrentTick - n.LastTick
	if delta > 0 {
		n.Activation = n.Activation * math.Pow(g.DecayRate, float64(delta)/n.Stability)
		n.LastTick = g.Clock.CurrentTick
	}
	return n.Activation
}

// projectedActivation computes the value decay would write at the current
// tick without mutating n. Used by every read-only path (search, context).
func (g *Graph) projectedActivation(n *core.Node) float64 {
	delta := g.Clock.CurrentTick - n.LastTick
	if delta <= 0 {
		return n.Activation
	}
	return n.Activation * math.Pow(g.DecayRate, float64(delta)/n.Stability)
}
