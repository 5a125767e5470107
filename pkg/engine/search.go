package engine

import (
	"sort"
	"strings"

	"github.com/jorgeguberte/loom-db/pkg/core"
)

// SearchResult pairs a node identifier with its projected activation at
// query time.
type SearchResult struct {
	ID         core.Identifier
	Activation float64
}

// Search trims and lowercases query, collects every Text Index key that
// contains it as a substring, and ranks the union of their posting lists by
// projected (non-mutating) activation, descending. Ties break
// deterministically by identifier string so result order is stable across
// calls that don't otherwise change the graph.
func (g *Graph) Search(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	ids := g.Text.Search(q)

	results := make([]SearchResult, 0, len(ids))
	for _, id := range ids {
		n := g.Store.Get(id)
		if n == nil {
			continue
		}
		results = append(results, SearchResult{ID: id, Activation: g.projectedActivation(n)})
	}
	sortResults(results)
	return results
}

// GetContext returns every node whose projected activation is strictly
// above minActivation, sorted descending by that activation.
func (g *Graph) GetContext(minActivation float64) []SearchResult {
	var results []SearchResult
	for _, n := range g.Store.All() {
		a := g.projectedActivation(n)
		if a > minActivation {
			results = append(results, SearchResult{ID: n.ID, Activation: a})
		}
	}
	sortResults(results)
	return results
}

func sortResults(results []SearchResult) {
	sort.Slice(results, func(i, j int) bool {
		ai, aj := results[i].Activation, results[j].Activation
		// NaN compares equal to anything for ordering purposes so sort
		// never panics or misbehaves on a malformed scalar.
		switch {
		case ai != ai || aj != aj || ai == aj:
			return results[i].ID.String() < results[j].ID.String()
		default:
			return ai > aj
		}
	})
}
