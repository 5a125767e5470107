package engine

import "github.com/jorgeguberte/loom-db/pkg/core"

// ltpGain, scaled by the boost amount, is the fraction of the distance to
// the stability soft cap (50) that a single boost closes, mirroring the asymptotic "neurons that fire
// together wire together" growth law: repeated stimulation raises stability
// quickly at first and ever more slowly as it approaches the cap.
const ltpGain = 0.05

// stabilitySoftCap bounds the asymptotic growth of stability; never reached
// exactly, only approached.
const stabilitySoftCap = 50.0

// hopDamping is applied to the propagated amount at every edge traversal.
const hopDamping = 0.5

// rippleFloor is the early-exit threshold below which a ripple is dropped
// rather than recursed into, bounding propagation cost on dense or cyclic
// graphs. The depth budget is still the actual termination guarantee.
const rippleFloor = 0.01

// boost is the recursive spread-activation step. depth is the remaining hop
// budget; callers enter at defaultBoostDepth. A depth-bounded recursion
// traverses any cycle at most depth times, so no cycle detection is
// attempted or needed.
func (g *Graph) boost(id core.Identifier, amount float64, depth int) {
	if depth == 0 {
		return
	}
	n := g.Store.Get(id)
	if n == nil {
		return
	}

	g.decay(n)

	realBoost := (1 - n.Activation) * amount
	n.Activation = clamp01(n.Activation + realBoost)
	n.Stability += (stabilitySoftCap - n.Stability) * amount * ltpGain
	n.LastTick = g.Clock.CurrentTick

	for _, e := range g.Adjacency.Neighbors(id) {
		ripple := amount * e.Weight * hopDamping
		if ripple > -rippleFloor && ripple < rippleFloor {
			continue
		}
		if ripple > 0 {
			g.boost(e.To, ripple, depth-1)
			continue
		}
		target := g.Store.Get(e.To)
		if target == nil {
			continue
		}
		g.decay(target)
		target.Activation = clamp01(target.Activation + ripple)
		target.LastTick = g.Clock.CurrentTick
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
