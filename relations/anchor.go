package relations

import (
	"math"
	"sort"

	"github.com/tsawler/proxima/model"
)

const (
	// anchorBandMin and anchorBandMax bound the plausible normalized center
	// distance between an anchor and an anchored element.
	anchorBandMin = 0.05
	anchorBandMax = 0.8

	// maxAnchorPatterns caps how many patterns the detector reports.
	maxAnchorPatterns = 3
)

// AnchorDetector finds hub-and-spoke positioning: one element with several
// others placed consistently around it.
type AnchorDetector struct {
	config Config
}

// NewAnchorDetector creates an anchor detector with default configuration.
func NewAnchorDetector() *AnchorDetector {
	return &AnchorDetector{config: DefaultConfig()}
}

// Name returns the detector's identifier ("anchor").
func (d *AnchorDetector) Name() string {
	return "anchor"
}

// Configure sets the detector configuration.
func (d *AnchorDetector) Configure(config Config) error {
	d.config = config
	return nil
}

// Detect evaluates every element as a candidate anchor. An element becomes an
// anchor when at least two others attach to it with sufficient strength and
// the pattern's overall confidence clears the threshold. Only the strongest
// three patterns are reported.
func (d *AnchorDetector) Detect(scene *model.Scene) ([]Relationship, error) {
	els := normalizeElements(scene)
	if len(els) < minPatternElements {
		return nil, nil
	}

	var patterns []AnchorPattern

	for i, anchor := range els {
		candidates := candidatesInBand(els, i, anchor)
		if len(candidates) < 2 {
			continue
		}

		var anchored []AnchoredElement
		for _, c := range candidates {
			strength := d.anchorStrength(anchor, c, candidates)
			if strength > d.config.AnchorStrengthThreshold {
				anchored = append(anchored, AnchoredElement{
					ElementID:        c.element.id,
					RelativePosition: relativePosition(c.angle),
					AnchorStrength:   strength,
				})
			}
		}

		if len(anchored) < 2 {
			continue
		}

		confidence := 0.4*math.Min(1, float64(len(anchored))/4) +
			0.4*meanStrength(anchored) +
			0.2*math.Min(1, anchor.area*3)

		if confidence >= d.config.ConfidenceThreshold {
			patterns = append(patterns, AnchorPattern{
				AnchorID: anchor.id,
				Anchored: anchored,
				Score:    confidence,
			})
		}
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Score > patterns[j].Score
	})
	if len(patterns) > maxAnchorPatterns {
		patterns = patterns[:maxAnchorPatterns]
	}

	relationships := make([]Relationship, len(patterns))
	for i, p := range patterns {
		relationships[i] = p
	}
	return relationships, nil
}

// anchorCandidate is one element within the plausible distance band of a
// candidate anchor, with its polar position precomputed.
type anchorCandidate struct {
	element  normElement
	distance float64
	angle    float64
}

func candidatesInBand(els []normElement, anchorIdx int, anchor normElement) []anchorCandidate {
	var candidates []anchorCandidate
	for j, other := range els {
		if j == anchorIdx {
			continue
		}
		dist := anchor.center.Distance(other.center)
		if dist < anchorBandMin || dist > anchorBandMax {
			continue
		}
		candidates = append(candidates, anchorCandidate{
			element:  other,
			distance: dist,
			angle:    anchor.center.AngleTo(other.center),
		})
	}
	return candidates
}

// anchorStrength scores one candidate's attachment: the anchor's normalized
// area (0.4), the fraction of other in-band elements sharing this element's
// angle within 45 degrees (0.4), and an inverse-distance term (0.2).
func (d *AnchorDetector) anchorStrength(anchor normElement, c anchorCandidate, candidates []anchorCandidate) float64 {
	consistency := 0.0
	if len(candidates) > 1 {
		aligned := 0
		for _, other := range candidates {
			if other.element.id == c.element.id {
				continue
			}
			if angularDiff(c.angle, other.angle) <= 45 {
				aligned++
			}
		}
		consistency = float64(aligned) / float64(len(candidates)-1)
	}

	return 0.4*anchor.area +
		0.4*consistency +
		0.2*math.Max(0, 1-2*c.distance)
}

func meanStrength(anchored []AnchoredElement) float64 {
	sum := 0.0
	for _, a := range anchored {
		sum += a.AnchorStrength
	}
	return sum / float64(len(anchored))
}

// relativePosition maps an angle (degrees, Y down) to a coarse placement.
func relativePosition(angle float64) string {
	switch {
	case angle < 45 || angle >= 315:
		return "right"
	case angle < 135:
		return "below"
	case angle < 225:
		return "left"
	default:
		return "above"
	}
}

var _ Detector = (*AnchorDetector)(nil)
