package engine

import "github.com/jorgeguberte/loom-db/pkg/core"

// PruneLowStability removes every node whose stability falls below
// threshold and whose activation is below the fixed pruneActivationFloor,
// cleaning the adjacency index (both directions) and the text index so
// indices never reference a removed identifier. It returns the number of
// nodes removed.
func (g *Graph) PruneLowStability(threshold float64) int {
	return g.prune(func(n *core.Node) bool {
		return n.Stability < threshold && n.Activation < pruneActivationFloor
	})
}

// prune is the shared sweep used by both PruneLowStability and Dream's
// end-of-cycle cleanup: collect victims first, then remove them, so the
// predicate is evaluated against pre-removal state throughout.
func (g *Graph) prune(shouldRemove func(*core.Node) bool) int {
	var victims []core.Identifier
	for _, n := range g.Store.All() {
		if shouldRemove(n) {
			victims = append(victims, n.ID)
		}
	}
	for _, id := range victims {
		g.Store.Delete(id)
		g.Adjacency.RemoveNode(id)
		g.Text.Remove(id)
	}
	return len(victims)
}
