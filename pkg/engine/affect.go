package engine

import (
	"github.com/jorgeguberte/loom-db/pkg/affect"
	"github.com/jorgeguberte/loom-db/pkg/core"
)

// moodAssociationWeight is the excitatory weight of the edge AddEpisodeWithMood
// draws from the episode to its derived state.
const moodAssociationWeight = 0.3

// AddEpisodeWithMood adds an Episode node, derives its affective residue
// with pkg/affect, adds a State node carrying that valence/arousal, and
// connects episode -> state with a small positive association. It is a
// convenience layered on top of AddEpisode/AddState/Connect; it introduces
// no new semantics for any of the three and changes none of their
// contracts.
func (g *Graph) AddEpisodeWithMood(summary string) (episodeID, stateID core.Identifier) {
	episodeID = g.AddEpisode(summary)
	valence, arousal := affect.Derive(summary)
	stateID = g.AddState(valence, arousal)
	g.Adjacency.Connect(episodeID, stateID, moodAssociationWeight, core.EdgeAssociation)
	return episodeID, stateID
}
