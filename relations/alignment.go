package relations

import (
	"math"

	"github.com/tsawler/proxima/model"
)

// AlignmentDetector finds shared edge and center lines: sets of elements
// whose near edge, center, or far edge fall on one coordinate along an axis.
type AlignmentDetector struct {
	config Config
}

// NewAlignmentDetector creates an alignment detector with default
// configuration.
func NewAlignmentDetector() *AlignmentDetector {
	return &AlignmentDetector{config: DefaultConfig()}
}

// Name returns the detector's identifier ("alignment").
func (d *AlignmentDetector) Name() string {
	return "alignment"
}

// Configure sets the detector configuration.
func (d *AlignmentDetector) Configure(config Config) error {
	d.config = config
	return nil
}

// Detect runs independently over the horizontal axis (shared Y coordinates)
// and the vertical axis (shared X coordinates). A grid is emitted per axis
// when at least two lines with two or more members exist and the combined
// confidence clears the threshold.
func (d *AlignmentDetector) Detect(scene *model.Scene) ([]Relationship, error) {
	els := normalizeElements(scene)
	if len(els) < minPatternElements {
		return nil, nil
	}

	var relationships []Relationship

	// The pixel tolerance normalizes differently per axis.
	if scene.Root.Height > 0 {
		tolerance := d.config.AlignmentTolerance / scene.Root.Height
		if grid, ok := d.detectAxis(els, model.DirectionHorizontal, tolerance); ok {
			relationships = append(relationships, grid)
		}
	}
	if scene.Root.Width > 0 {
		tolerance := d.config.AlignmentTolerance / scene.Root.Width
		if grid, ok := d.detectAxis(els, model.DirectionVertical, tolerance); ok {
			relationships = append(relationships, grid)
		}
	}

	return relationships, nil
}

// axisCoordinate is one edge or center position contributed by an element.
type axisCoordinate struct {
	position  float64
	elementID string
}

// workingLine accumulates coordinates around a running average position.
type workingLine struct {
	position float64
	sum      float64
	count    int
	members  []string
	seen     map[string]bool
}

func (l *workingLine) add(c axisCoordinate) {
	l.sum += c.position
	l.count++
	l.position = l.sum / float64(l.count)
	if !l.seen[c.elementID] {
		l.seen[c.elementID] = true
		l.members = append(l.members, c.elementID)
	}
}

func (d *AlignmentDetector) detectAxis(els []normElement, axis model.Direction, tolerance float64) (AlignmentGrid, bool) {
	coords := collectCoordinates(els, axis)

	// Greedy first-fit merge into lines.
	var lines []*workingLine
	for _, c := range coords {
		placed := false
		for _, l := range lines {
			if math.Abs(c.position-l.position) <= tolerance {
				l.add(c)
				placed = true
				break
			}
		}
		if !placed {
			l := &workingLine{seen: make(map[string]bool)}
			l.add(c)
			lines = append(lines, l)
		}
	}

	total := float64(len(els))
	var kept []AlignmentLine
	strengthSum := 0.0
	for _, l := range lines {
		if len(l.members) < 2 {
			continue
		}
		strength := float64(len(l.members)) / total
		kept = append(kept, AlignmentLine{
			Position:   l.position,
			ElementIDs: l.members,
			Strength:   strength,
		})
		strengthSum += strength
	}

	if len(kept) < 2 {
		return AlignmentGrid{}, false
	}

	confidence := 0.7*(strengthSum/float64(len(kept))) +
		0.3*math.Min(1, float64(len(kept))/3)
	if confidence < d.config.ConfidenceThreshold {
		return AlignmentGrid{}, false
	}

	return AlignmentGrid{
		GridType: axis,
		Lines:    kept,
		Score:    confidence,
	}, true
}

// collectCoordinates gathers each element's near-edge, center, and far-edge
// coordinate on the given axis.
func collectCoordinates(els []normElement, axis model.Direction) []axisCoordinate {
	coords := make([]axisCoordinate, 0, len(els)*3)
	for _, el := range els {
		var near, center, far float64
		if axis == model.DirectionHorizontal {
			near, center, far = el.bounds.Top(), el.center.Y, el.bounds.Bottom()
		} else {
			near, center, far = el.bounds.Left(), el.center.X, el.bounds.Right()
		}
		coords = append(coords,
			axisCoordinate{near, el.id},
			axisCoordinate{center, el.id},
			axisCoordinate{far, el.id},
		)
	}
	return coords
}

var _ Detector = (*AlignmentDetector)(nil)
