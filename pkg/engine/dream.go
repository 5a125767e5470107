package engine

import "github.com/jorgeguberte/loom-db/pkg/core"

// dreamTickAdvance is the number of ticks dream() advances the clock by,
// representing roughly eight hours in the tick-minute convention wake_up
// establishes.
const dreamTickAdvance = 480

// dreamPromotionThreshold is the activation above which a node is rewarded
// with extra stability during a dream cycle.
const dreamPromotionThreshold = 0.7

// dreamStabilityFloor and dreamActivationFloor together gate pruning at the
// end of a dream cycle.
const (
	dreamStabilityFloor  = 1.2
	dreamActivationFloor = 0.1
)

// DreamSummary reports how many nodes a dream cycle promoted and pruned.
type DreamSummary struct {
	Promoted int
	Pruned   int
}

// Dream runs a sleep cycle: it advances the clock by dreamTickAdvance,
// rewards every node whose *stored* activation (no decay applied here —
// dream operates on the value as last written) exceeds the promotion
// threshold with extra stability, compresses every node's activation
// toward a stability-derived baseline, and finally prunes whatever is left
// too weak to matter. It is the only operation that increases activation
// for an otherwise-decaying memory, via the baseline term, and the only
// bulk writer in the engine.
func (g *Graph) Dream() DreamSummary {
	g.Clock.CurrentTick += dreamTickAdvance

	promoted := 0
	for _, n := range g.Store.All() {
		a := n.Activation
		if a > dreamPromotionThreshold {
			n.Stability += 0.5 * (1 - n.Stability/100)
			promoted++
		}
		baseline := n.Stability / 100
		if baseline > 0.2 {
			baseline = 0.2
		}
		n.Activation = a*0.3 + baseline
		n.LastTick = g.Clock.CurrentTick
	}

	pruned := g.prune(func(n *core.Node) bool {
		return n.Stability < dreamStabilityFloor && n.Activation < dreamActivationFloor
	})

	return DreamSummary{Promoted: promoted, Pruned: pruned}
}
