package affect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveRangesAreRespected(t *testing.T) {
	valence, arousal := Derive("I am overjoyed and thrilled, this is wonderful news!")
	assert.GreaterOrEqual(t, valence, -1.0)
	assert.LessOrEqual(t, valence, 1.0)
	assert.GreaterOrEqual(t, arousal, 0.0)
	assert.LessOrEqual(t, arousal, 1.0)
	assert.Greater(t, valence, 0.0)
}

func TestDeriveNegativeTextHasNegativeValence(t *testing.T) {
	valence, _ := Derive("this is a terrible, awful, devastating disaster")
	assert.Less(t, valence, 0.0)
}

func TestDeriveFlatTextHasLowArousal(t *testing.T) {
	_, arousal := Derive("the meeting is scheduled for tuesday")
	assert.Less(t, arousal, 0.5)
}
