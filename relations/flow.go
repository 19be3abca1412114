package relations

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/tsawler/proxima/model"
)

// FlowDetector finds directional vector fields: sets of element-to-element
// vectors sharing a similar orientation, implying visual movement.
type FlowDetector struct {
	config Config
}

// NewFlowDetector creates a flow detector with default configuration.
func NewFlowDetector() *FlowDetector {
	return &FlowDetector{config: DefaultConfig()}
}

// Name returns the detector's identifier ("flow").
func (d *FlowDetector) Name() string {
	return "flow"
}

// Configure sets the detector configuration.
func (d *FlowDetector) Configure(config Config) error {
	d.config = config
	return nil
}

// Detect computes every pairwise vector beyond the minimum flow distance and
// groups vectors by direction with a greedy first-fit pass. Each group with
// at least two vectors and sufficient confidence becomes a FlowPattern.
func (d *FlowDetector) Detect(scene *model.Scene) ([]Relationship, error) {
	els := normalizeElements(scene)
	if len(els) < minPatternElements {
		return nil, nil
	}

	vectors := d.pairwiseVectors(els)
	groups := d.groupByDirection(vectors)

	var relationships []Relationship
	for _, group := range groups {
		if len(group.vectors) < 2 {
			continue
		}

		confidence := 0.6*math.Min(1, float64(len(group.vectors))/3) +
			0.4*math.Min(1, group.meanMagnitude()*1.5)
		if confidence < d.config.ConfidenceThreshold {
			continue
		}

		relationships = append(relationships, FlowPattern{
			Type:     classifyFlowType(group.directions()),
			Vectors:  group.vectors,
			Involved: group.involved(),
			Score:    confidence,
		})
	}

	return relationships, nil
}

func (d *FlowDetector) pairwiseVectors(els []normElement) []FlowVector {
	var vectors []FlowVector
	for i := 0; i < len(els); i++ {
		for j := i + 1; j < len(els); j++ {
			magnitude := els[i].center.Distance(els[j].center)
			if magnitude <= d.config.MinimumFlowDistance {
				continue
			}
			vectors = append(vectors, FlowVector{
				Direction: els[i].center.AngleTo(els[j].center),
				Magnitude: magnitude,
				From:      els[i].id,
				To:        els[j].id,
			})
		}
	}
	return vectors
}

// vectorGroup accumulates vectors around a running average direction.
type vectorGroup struct {
	vectors []FlowVector
	average float64
}

func (g *vectorGroup) add(v FlowVector) {
	g.vectors = append(g.vectors, v)
	sum := 0.0
	for _, vec := range g.vectors {
		sum += vec.Direction
	}
	g.average = sum / float64(len(g.vectors))
}

func (g *vectorGroup) meanMagnitude() float64 {
	sum := 0.0
	for _, v := range g.vectors {
		sum += v.Magnitude
	}
	return sum / float64(len(g.vectors))
}

func (g *vectorGroup) directions() []float64 {
	dirs := make([]float64, len(g.vectors))
	for i, v := range g.vectors {
		dirs[i] = v.Direction
	}
	return dirs
}

func (g *vectorGroup) involved() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, v := range g.vectors {
		if !seen[v.From] {
			seen[v.From] = true
			ids = append(ids, v.From)
		}
		if !seen[v.To] {
			seen[v.To] = true
			ids = append(ids, v.To)
		}
	}
	return ids
}

// groupByDirection assigns each vector to the first group whose running
// average direction lies within the angle threshold, creating a new group
// when none fits. Greedy single-pass, first-fit.
func (d *FlowDetector) groupByDirection(vectors []FlowVector) []*vectorGroup {
	var groups []*vectorGroup

	for _, v := range vectors {
		placed := false
		for _, g := range groups {
			if angularDiff(v.Direction, g.average) <= d.config.FlowAngleThreshold {
				g.add(v)
				placed = true
				break
			}
		}
		if !placed {
			g := &vectorGroup{}
			g.add(v)
			groups = append(groups, g)
		}
	}

	return groups
}

// classifyFlowType maps the spread of a group's directions to a flow shape:
// tight groups read as linear movement, wider spreads as diagonal, spiral,
// and finally circular arrangements.
func classifyFlowType(directions []float64) FlowType {
	spread := directionStddev(directions)
	switch {
	case spread < 15:
		return FlowLinear
	case spread < 45:
		return FlowDiagonal
	case spread < 90:
		return FlowSpiral
	default:
		return FlowCircular
	}
}

// directionStddev is the plain population standard deviation of the group's
// direction angles in degrees. Wraparound at 0/360 is not unfolded, so a
// group straddling due east reads as a wide spread.
func directionStddev(directions []float64) float64 {
	if len(directions) < 2 {
		return 0
	}
	sd, err := stats.StdDevP(directions)
	if err != nil {
		return 0
	}
	return sd
}

var _ Detector = (*FlowDetector)(nil)
