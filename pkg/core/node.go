package core

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Identifier is a globally unique, 128-bit value identifying a Node. It is
// stable across save/load and is never reassigned once a node is created.
type Identifier uuid.UUID

// Nil is the zero Identifier, returned by lookups that find nothing.
var Nil Identifier

// NewIdentifier allocates a fresh, random Identifier.
func NewIdentifier() Identifier {
	return Identifier(uuid.New())
}

// ParseIdentifier parses the text form of an Identifier. A malformed string
// is reported through the error return; callers on the public engine surface
// treat this identically to "not found" per the error handling design.
func ParseIdentifier(s string) (Identifier, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Nil, err
	}
	return Identifier(id), nil
}

func (id Identifier) String() string {
	return uuid.UUID(id).String()
}

// Kind distinguishes the three node payload variants.
type Kind int

const (
	KindEpisode Kind = iota
	KindConcept
	KindState
)

func (k Kind) String() string {
	switch k {
	case KindEpisode:
		return "episode"
	case KindConcept:
		return "concept"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

// Node is a tagged variant with exactly one of three payloads plus shared
// decay metadata. Only the fields relevant to Kind are meaningful; the
// others are zero-valued and ignored.
//
// Activation is always in [0,1], clamped at every write. Stability starts
// at 1.0 and grows asymptotically toward a soft cap of 50 under LTP. LastTick
// never exceeds the graph's current tick.
type Node struct {
	ID         Identifier
	Kind       Kind
	Activation float64
	Stability  float64
	LastTick   int64

	// Episode payload.
	Summary   string
	Timestamp time.Time

	// Concept payload.
	Name       string
	Definition string

	// State payload. Valence in [-1,1], Arousal in [0,1].
	Valence float64
	Arousal float64
}

// NewConcept builds a Concept node with default decay metadata.
func NewConcept(name, definition string) *Node {
	return &Node{
		ID:         NewIdentifier(),
		Kind:       KindConcept,
		Activation: 1.0,
		Stability:  1.0,
		Name:       name,
		Definition: definition,
	}
}

// NewEpisode builds an Episode node stamped with the given wall-clock time.
func NewEpisode(summary string, at time.Time) *Node {
	return &Node{
		ID:         NewIdentifier(),
		Kind:       KindEpisode,
		Activation: 1.0,
		Stability:  1.0,
		Summary:    summary,
		Timestamp:  at,
	}
}

// NewState builds a State node. Valence and arousal are clamped to their
// documented ranges.
func NewState(valence, arousal float64) *Node {
	return &Node{
		ID:         NewIdentifier(),
		Kind:       KindState,
		Activation: 1.0,
		Stability:  1.0,
		Valence:    clamp(valence, -1, 1),
		Arousal:    clamp(arousal, 0, 1),
	}
}

// IndexableText returns the text a node contributes to the Text Index.
// State nodes never contribute; they carry no text content.
func (n *Node) IndexableText() string {
	switch n.Kind {
	case KindEpisode:
		return n.Summary
	case KindConcept:
		return n.Name + " " + n.Definition
	default:
		return ""
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// tokenize lowercases, splits on whitespace, and strips leading/trailing
// non-alphanumeric runes from each token, discarding any that end up empty.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.TrimFunc(f, func(r rune) bool {
			return !isAlphaNumeric(r)
		})
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
