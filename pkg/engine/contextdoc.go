package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jorgeguberte/loom-db/pkg/core"
)

// escapeText escapes the five standard XML metacharacters. Every text value
// interpolated into a context or node document goes through this.
func escapeText(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ContextDocument renders the given results as the nested markup document
// rooted at active_memories described in the external interface contract.
// When results is empty a single placeholder memory child is emitted
// instead of an empty root.
func (g *Graph) ContextDocument(results []SearchResult) string {
	var b strings.Builder
	b.WriteString("<active_memories>")
	if len(results) == 0 {
		b.WriteString("<memory>no active memories</memory>")
	}
	for _, r := range results {
		n := g.Store.Get(r.ID)
		if n == nil {
			continue
		}
		b.WriteString(renderMemory(n, r.Activation))
	}
	b.WriteString("</active_memories>")
	return b.String()
}

func renderMemory(n *core.Node, activation float64) string {
	a, s := formatFloat(activation), formatFloat(n.Stability)
	switch n.Kind {
	case core.KindConcept:
		return fmt.Sprintf(
			"<memory type='concept' activation='%s' stability='%s'><name>%s</name><definition>%s</definition></memory>",
			a, s, escapeText(n.Name), escapeText(n.Definition))
	case core.KindEpisode:
		return fmt.Sprintf(
			"<memory type='episode' activation='%s' stability='%s' time='%s'><summary>%s</summary></memory>",
			a, s, n.Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00"), escapeText(n.Summary))
	default:
		return fmt.Sprintf(
			"<state activation='%s' stability='%s'><mood valence='%s' arousal='%s'/></state>",
			a, s, formatFloat(n.Valence), formatFloat(n.Arousal))
	}
}

// NodeDocument renders a single node as the same structured-text shape used
// inside a context document, or "" on a missing/malformed identifier.
func (g *Graph) NodeDocument(id string) string {
	n := g.GetNodeInfo(id)
	if n == nil {
		return ""
	}
	return renderMemory(n, n.Activation)
}

// SearchDocument renders a ranked search result list as structured text, in
// the same entry shape as a context document, rooted at search_results.
func (g *Graph) SearchDocument(results []SearchResult) string {
	var b strings.Builder
	b.WriteString("<search_results>")
	for _, r := range results {
		n := g.Store.Get(r.ID)
		if n == nil {
			continue
		}
		b.WriteString(renderMemory(n, r.Activation))
	}
	b.WriteString("</search_results>")
	return b.String()
}
