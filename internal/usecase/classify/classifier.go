// Package classify scores free-text queries against the six intent
// families using keyword and pattern heuristics. It is a cheap,
// explainable substitute for a learned classifier: it favors recall of
// strong lexical cues over semantic understanding, which is acceptable
// because the downstream retrieval strategies are themselves heuristic
// and the search strategy is a safe fallback on misclassification.
package classify

import (
	"strings"

	"github.com/shelfwise/shelfwise/internal/domain/query/intent"
)

// Scoring weights and the acceptance threshold.
const (
	keywordWeight = 0.3
	patternWeight = 0.5
	maxScore      = 1.0
	// threshold is the minimum winning score below which the result
	// collapses to intent.Unknown.
	threshold = 0.3
)

// Classifier classifies query intent. Stateless and deterministic:
// the same input always yields the same result.
type Classifier struct{}

// New creates a Classifier.
func New() *Classifier {
	return &Classifier{}
}

// Classify returns the best-scoring intent and the classifier's
// confidence in [0,1]. Each keyword hit contributes keywordWeight, each
// matching pattern contributes patternWeight; per-intent scores are
// additive and capped at maxScore. Equal top scores break toward the
// earlier rules table entry. Confidence is reported even when the
// winning score falls below threshold and the intent collapses to
// Unknown.
func (c *Classifier) Classify(query string) (intent.Intent, float64) {
	q := strings.ToLower(strings.TrimSpace(query))

	best := intent.Unknown
	bestScore := 0.0

	for _, r := range rules {
		score := 0.0
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				score += keywordWeight
			}
		}
		for _, p := range r.patterns {
			if p.MatchString(q) {
				score += patternWeight
			}
		}
		if score > maxScore {
			score = maxScore
		}
		// Strict comparison: the first rule to reach the top score wins.
		if score > bestScore {
			bestScore = score
			best = r.intent
		}
	}

	if bestScore < threshold {
		return intent.Unknown, bestScore
	}
	return best, bestScore
}
