package core

// AdjacencyIndex is the directed weighted edge set, indexed by source
// identifier for O(1) neighbor lookup. Multi-edges between the same pair
// are permitted and kept as separate entries.
type AdjacencyIndex struct {
	outgoing map[Identifier][]*Edge
}

// NewAdjacencyIndex builds an empty index.
func NewAdjacencyIndex() *AdjacencyIndex {
	return &AdjacencyIndex{outgoing: make(map[Identifier][]*Edge)}
}

// Connect records a new directed edge. Callers must have already verified
// both endpoints exist.
func (a *AdjacencyIndex) Connect(from, to Identifier, weight float64, kind EdgeKind) {
	a.outgoing[from] = append(a.outgoing[from], &Edge{From: from, To: to, Weight: weight, Kind: kind})
}

// Neighbors returns the outgoing edges of id, in insertion order.
func (a *AdjacencyIndex) Neighbors(id Identifier) []*Edge {
	return a.outgoing[id]
}

// RemoveNode strips every edge incident to id, both outgoing and incoming.
func (a *AdjacencyIndex) RemoveNode(id Identifier) {
	delete(a.outgoing, id)
	for src, edges := range a.outgoing {
		kept := edges[:0]
		for _, e := range edges {
			if e.To != id {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			delete(a.outgoing, src)
		} else {
			a.outgoing[src] = kept
		}
	}
}

// All returns every edge in the index, grouped by source in unspecified
// source order but preserving per-source insertion order.
func (a *AdjacencyIndex) All() []*Edge {
	var out []*Edge
	for _, edges := range a.outgoing {
		out = append(out, edges...)
	}
	return out
}
