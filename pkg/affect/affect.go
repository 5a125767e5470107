// Package affect derives an affective State node's valence and arousal from
// free text, using a lexicon-based sentiment scorer. This is a
// supplemental convenience on top of the core data model: nothing in the
// base engine requires it, and the engine's State nodes can always be
// created directly with explicit valence/arousal via AddState.
package affect

import (
	"sync"

	"github.com/jonreiter/govader"
)

// Analyzer wraps govader's SentimentIntensityAnalyzer and maps its
// compound and neutral scores onto the [-1,1]/[0,1] ranges a State node
// expects.
type Analyzer struct {
	sia *govader.SentimentIntensityAnalyzer
	mu  sync.Mutex
}

var (
	defaultAnalyzer *Analyzer
	once            sync.Once
)

// Default returns the package-level singleton Analyzer, built lazily.
func Default() *Analyzer {
	once.Do(func() {
		defaultAnalyzer = New()
	})
	return defaultAnalyzer
}

// New creates a standalone Analyzer. Prefer Default() for shared use.
func New() *Analyzer {
	return &Analyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Derive scores text and returns a (valence, arousal) pair suitable for
// engine.Graph.AddState. Valence follows the VADER compound score directly
// (it is already in [-1,1]). Arousal is approximated from how far the text
// sits from pure neutrality: arousal = 1 - neutral, since VADER's neutral
// ratio is highest for flat, low-affect text and lowest for emotionally
// loaded text regardless of polarity.
func (a *Analyzer) Derive(text string) (valence, arousal float64) {
	a.mu.Lock()
	scores := a.sia.PolarityScores(text)
	a.mu.Unlock()

	valence = scores.Compound
	arousal = 1 - scores.Neutral
	if arousal < 0 {
		arousal = 0
	}
	if arousal > 1 {
		arousal = 1
	}
	return valence, arousal
}

// Derive scores text through the default singleton analyzer.
func Derive(text string) (valence, arousal float64) {
	return Default().Derive(text)
}
