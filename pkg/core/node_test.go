package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentifierIsUniqueAndRoundTrips(t *testing.T) {
	a := NewIdentifier()
	b := NewIdentifier()
	assert.NotEqual(t, a, b)

	parsed, err := ParseIdentifier(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)
}

func TestParseIdentifierRejectsMalformed(t *testing.T) {
	_, err := ParseIdentifier("not-a-uuid")
	assert.Error(t, err)
}

func TestNewStateClampsValenceAndArousal(t *testing.T) {
	n := NewState(-5, 5)
	assert.Equal(t, -1.0, n.Valence)
	assert.Equal(t, 1.0, n.Arousal)
}

func TestIndexableTextPerKind(t *testing.T) {
	concept := NewConcept("Rust", "a systems language")
	assert.Equal(t, "Rust a systems language", concept.IndexableText())

	episode := NewEpisode("met a friend", time.Now())
	assert.Equal(t, "met a friend", episode.IndexableText())

	state := NewState(0.5, 0.5)
	assert.Empty(t, state.IndexableText())
}

func TestTokenizeStripsPunctuationAndLowercases(t *testing.T) {
	got := tokenize("Hello, World! It's (Rust).")
	assert.Equal(t, []string{"hello", "world", "it's", "rust"}, got)
}
