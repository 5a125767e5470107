package engine

import (
	"encoding/json"
	"time"

	"github.com/jorgeguberte/loom-db/pkg/core"
)

// backupNode and backupEdge are the structured-text (JSON) wire shapes for
// a node and an edge. They exist so the on-disk format is stable and
// self-describing independent of pkg/core's in-memory field layout.
type backupNode struct {
	ID         string  `json:"id"`
	Kind       string  `json:"kind"`
	Activation float64 `json:"activation"`
	Stability  float64 `json:"stability"`
	LastTick   int64   `json:"last_tick"`

	Summary   string    `json:"summary,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`

	Name       string `json:"name,omitempty"`
	Definition string `json:"definition,omitempty"`

	Valence float64 `json:"valence,omitempty"`
	Arousal float64 `json:"arousal,omitempty"`
}

type backupEdge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
	Kind   string  `json:"kind"`
}

// backupDocument is the full round-trip-stable structured-text document:
// the node table, the adjacency list, the tick counter, the decay rate, and
// the last-saved wall-clock anchor. The text index is not serialized: it is
// a derivable view over the node table (tokenization is deterministic), so
// ImportBackup always rebuilds it from Nodes rather than carrying a second,
// redundant copy that could drift out of sync with the node table.
type backupDocument struct {
	DecayRate   float64      `json:"decay_rate"`
	CurrentTick int64        `json:"current_tick"`
	LastSaved   *time.Time   `json:"last_saved,omitempty"`
	Nodes       []backupNode `json:"nodes"`
	Edges       []backupEdge `json:"edges"`
}

// emptyBackupDocument is the sentinel returned by ExportBackup on a
// serialization failure, per the error handling design's "{}"-shaped empty
// document sentinel.
const emptyBackupDocument = "{}"

// defaultImportDecayRate is the decay rate of the fresh default graph
// returned by ImportBackup when the blob fails to parse.
const defaultImportDecayRate = 0.95

func kindToString(k core.Kind) string {
	return k.String()
}

func stringToKind(s string) core.Kind {
	switch s {
	case "concept":
		return core.KindConcept
	case "state":
		return core.KindState
	default:
		return core.KindEpisode
	}
}

// ExportBackup serializes the entire graph to a structured text document.
// The Text Index is deliberately not part of the document: it is fully
// derivable from node content, and ImportBackup rebuilds it from the node
// table on load.
func (g *Graph) ExportBackup() string {
	doc := backupDocument{
		DecayRate:   g.DecayRate,
		CurrentTick: g.Clock.CurrentTick,
		LastSaved:   g.Clock.LastSaved,
	}
	for _, n := range g.Store.All() {
		doc.Nodes = append(doc.Nodes, backupNode{
			ID:         n.ID.String(),
			Kind:       kindToString(n.Kind),
			Activation: n.Activation,
			Stability:  n.Stability,
			LastTick:   n.LastTick,
			Summary:    n.Summary,
			Timestamp:  n.Timestamp,
			Name:       n.Name,
			Definition: n.Definition,
			Valence:    n.Valence,
			Arousal:    n.Arousal,
		})
	}
	for _, e := range g.Adjacency.All() {
		doc.Edges = append(doc.Edges, backupEdge{
			From:   e.From.String(),
			To:     e.To.String(),
			Weight: e.Weight,
			Kind:   string(e.Kind),
		})
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return emptyBackupDocument
	}
	return string(raw)
}

// ImportBackup parses a structured text document produced by ExportBackup
// into a brand new graph. On any parse failure it returns a fresh default
// graph with decay 0.95, per the error handling design, rather than an
// error — the core never aborts on malformed input.
func ImportBackup(blob string) *Graph {
	var doc backupDocument
	if err := json.Unmarshal([]byte(blob), &doc); err != nil {
		return New(defaultImportDecayRate)
	}
	if doc.DecayRate <= 0 || doc.DecayRate >= 1 {
		return New(defaultImportDecayRate)
	}

	g := New(doc.DecayRate)
	g.Clock.CurrentTick = doc.CurrentTick
	g.Clock.LastSaved = doc.LastSaved

	for _, bn := range doc.Nodes {
		id, err := core.ParseIdentifier(bn.ID)
		if err != nil {
			continue
		}
		n := &core.Node{
			ID:         id,
			Kind:       stringToKind(bn.Kind),
			Activation: bn.Activation,
			Stability:  bn.Stability,
			LastTick:   bn.LastTick,
			Summary:    bn.Summary,
			Timestamp:  bn.Timestamp,
			Name:       bn.Name,
			Definition: bn.Definition,
			Valence:    bn.Valence,
			Arousal:    bn.Arousal,
		}
		g.Store.Insert(n)
		g.Text.Index(n)
	}
	for _, be := range doc.Edges {
		from, err1 := core.ParseIdentifier(be.From)
		to, err2 := core.ParseIdentifier(be.To)
		if err1 != nil || err2 != nil || !g.Store.Has(from) || !g.Store.Has(to) {
			continue
		}
		g.Adjacency.Connect(from, to, be.Weight, core.EdgeKind(be.Kind))
	}

	return g
}
