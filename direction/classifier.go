package direction

import (
	"fmt"

	"github.com/tsawler/proxima/model"
)

// Score is one heuristic's verdict: a direction, a score in [0,1] for that
// direction, and a short human-readable reasoning string.
type Score struct {
	Direction model.Direction
	Score     float64
	Reasoning string
}

// Analysis is the classifier's full verdict for one cluster: the three
// independent heuristic results plus the combined direction and confidence.
// It is ephemeral, computed per cluster, never persisted.
type Analysis struct {
	Linear      Score
	ContentFlow Score
	AspectRatio Score

	Direction  model.Direction
	Confidence float64
}

// Config holds classifier configuration. The weights control how much each
// heuristic contributes to the combined verdict.
type Config struct {
	// LinearWeight is the weight of the linear-arrangement heuristic.
	LinearWeight float64

	// ContentWeight is the weight of the content-flow heuristic.
	ContentWeight float64

	// AspectWeight is the weight of the aspect-ratio heuristic.
	AspectWeight float64

	// ConfidenceFloor is the minimum combined confidence considered
	// meaningful. Results below it keep their direction but have their
	// confidence reset to exactly 0.5 to signal "coin flip" to callers.
	ConfidenceFloor float64
}

// DefaultConfig returns default classifier configuration.
func DefaultConfig() Config {
	return Config{
		LinearWeight:    0.4,
		ContentWeight:   0.3,
		AspectWeight:    0.3,
		ConfidenceFloor: 0.6,
	}
}

// Classifier produces a stacking-direction recommendation for a cluster of
// elements by combining three independent heuristics: linear arrangement,
// content flow, and aspect ratio.
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultConfig()}
}

// Configure sets the classifier configuration.
func (c *Classifier) Configure(config Config) error {
	c.config = config
	return nil
}

// Classify analyzes a cluster's element list and returns the combined
// direction verdict. Zero elements yield horizontal with confidence 0; a
// single element yields the degenerate default, horizontal with confidence 1.
func (c *Classifier) Classify(elements []model.Element) Analysis {
	switch len(elements) {
	case 0:
		return Analysis{Direction: model.DirectionHorizontal, Confidence: 0}
	case 1:
		return Analysis{Direction: model.DirectionHorizontal, Confidence: 1.0}
	}

	analysis := Analysis{
		Linear:      linearArrangement(elements),
		ContentFlow: contentFlow(elements),
		AspectRatio: aspectRatio(elements),
	}

	analysis.Direction, analysis.Confidence = c.combine(analysis)
	return analysis
}

// combine folds the three heuristic scores into one direction and confidence.
// Each heuristic contributes its score toward its winning direction and
// 1-score toward the other, weighted and normalized by total weight.
func (c *Classifier) combine(a Analysis) (model.Direction, float64) {
	horizontal := 0.0
	vertical := 0.0

	add := func(s Score, weight float64) {
		if s.Direction == model.DirectionHorizontal {
			horizontal += weight * s.Score
			vertical += weight * (1 - s.Score)
		} else {
			vertical += weight * s.Score
			horizontal += weight * (1 - s.Score)
		}
	}

	add(a.Linear, c.config.LinearWeight)
	add(a.ContentFlow, c.config.ContentWeight)
	add(a.AspectRatio, c.config.AspectWeight)

	total := c.config.LinearWeight + c.config.ContentWeight + c.config.AspectWeight
	if total == 0 {
		return model.DirectionHorizontal, 0
	}
	horizontal /= total
	vertical /= total

	dir := model.DirectionHorizontal
	confidence := horizontal
	if vertical > horizontal {
		dir = model.DirectionVertical
		confidence = vertical
	}

	// Below the floor the computed value is discarded and reported as an
	// exact 0.5 so callers can treat the result as a coin flip.
	if confidence < c.config.ConfidenceFloor {
		confidence = 0.5
	}

	return dir, confidence
}

// axisScores is a {horizontal, vertical} weight pair produced by content-flow
// sub-heuristics. The two weights sum to approximately 1.
type axisScores struct {
	horizontal float64
	vertical   float64
}

func neutralScores() axisScores {
	return axisScores{horizontal: 0.5, vertical: 0.5}
}

func reasonf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
