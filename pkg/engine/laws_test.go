package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLawDecayMonotonicity(t *testing.T) {
	g := New(0.9)
	id := g.AddConcept("A", "a")
	n := g.Store.Get(id)

	prev := g.projectedActivation(n)
	for k := 0; k < 5; k++ {
		g.Tick()
		got := g.projectedActivation(n)
		assert.LessOrEqual(t, got, prev)
		prev = got
	}
}

func TestLawDecayNoOpWhenRateIsOne(t *testing.T) {
	g := New(0.999999) // decay must be in (0,1); close to 1 approximates the equality edge
	id := g.AddConcept("A", "a")
	n := g.Store.Get(id)
	before := g.projectedActivation(n)
	g.Tick()
	after := g.projectedActivation(n)
	assert.InDelta(t, before, after, 1e-4)
}

func TestLawBoostSaturation(t *testing.T) {
	g := New(0.9)
	id := g.AddConcept("A", "a")
	g.Store.Get(id).Activation = 0.0

	prev := 0.0
	for i := 0; i < 50; i++ {
		require.True(t, g.Stimulate(id.String(), 1.0))
		got := g.Store.Get(id).Activation
		assert.GreaterOrEqual(t, got, prev)
		assert.LessOrEqual(t, got, 1.0)
		prev = got
	}
	assert.InDelta(t, 1.0, prev, 1e-6)
}

func TestLawBackupRoundTrip(t *testing.T) {
	g := New(0.9)
	a := g.AddConcept("A", "a definition")
	b := g.AddEpisode("an episode happened")
	require.True(t, g.Connect(a.String(), b.String(), 0.75))
	g.Tick()
	g.Tick()

	blob := g.ExportBackup()
	g2 := ImportBackup(blob)

	assert.Equal(t, g.Clock.CurrentTick, g2.Clock.CurrentTick)
	assert.Equal(t, g.DecayRate, g2.DecayRate)
	assert.Equal(t, g.Store.Len(), g2.Store.Len())

	na, nb := g.Store.Get(a), g2.Store.Get(a)
	require.NotNil(t, nb)
	assert.Equal(t, na.Name, nb.Name)
	assert.InDelta(t, na.Activation, nb.Activation, 1e-9)
	assert.InDelta(t, na.Stability, nb.Stability, 1e-9)

	neighbors := g2.Adjacency.Neighbors(a)
	require.Len(t, neighbors, 1)
	assert.Equal(t, b, neighbors[0].To)
	assert.InDelta(t, 0.75, neighbors[0].Weight, 1e-9)
}

func TestImportBackupReturnsFreshGraphOnMalformedInput(t *testing.T) {
	g := ImportBackup("not json at all")
	assert.Equal(t, 0.95, g.DecayRate)
	assert.Equal(t, 0, g.Store.Len())
}

func TestExportBackupEmptySentinelNeverNeeded(t *testing.T) {
	// encoding/json.Marshal of a well-formed backupDocument never fails for
	// the field types this document uses, so ExportBackup's "{}" sentinel
	// path is defensive rather than reachable in practice; this test only
	// checks that exporting a fresh graph does not produce the sentinel.
	g := New(0.8)
	blob := g.ExportBackup()
	assert.NotEqual(t, emptyBackupDocument, blob)
}
