package relations

import (
	"github.com/tsawler/proxima/model"
)

// Kind discriminates the relationship variants.
type Kind int

const (
	KindAnchor Kind = iota
	KindFlow
	KindAlignment
)

func (k Kind) String() string {
	switch k {
	case KindAnchor:
		return "anchor"
	case KindFlow:
		return "flow"
	case KindAlignment:
		return "alignment"
	default:
		return "unknown"
	}
}

// Relationship is the tagged union over the three pattern kinds. Consumers
// branch on Kind (or type-switch on the concrete type); every variant carries
// its own confidence. Relationship values are computed once per analysis call
// and never outlive it.
type Relationship interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Confidence returns the pattern confidence in [0,1].
	Confidence() float64

	// ElementIDs returns the ids of all involved elements.
	ElementIDs() []string
}

// AnchoredElement is one element positioned relative to an anchor.
type AnchoredElement struct {
	ElementID string

	// RelativePosition is the coarse placement relative to the anchor:
	// "right", "below", "left", or "above".
	RelativePosition string

	// AnchorStrength is the weighted attachment strength in [0,1].
	AnchorStrength float64
}

// AnchorPattern is a hub-and-spoke relationship: one anchor element with
// multiple elements positioned consistently around it.
type AnchorPattern struct {
	AnchorID string
	Anchored []AnchoredElement
	Score    float64
}

func (p AnchorPattern) Kind() Kind          { return KindAnchor }
func (p AnchorPattern) Confidence() float64 { return p.Score }

func (p AnchorPattern) ElementIDs() []string {
	ids := make([]string, 0, len(p.Anchored)+1)
	ids = append(ids, p.AnchorID)
	for _, a := range p.Anchored {
		ids = append(ids, a.ElementID)
	}
	return ids
}

// FlowType classifies the shape of a flow pattern by how tightly its vectors
// share a direction.
type FlowType int

const (
	FlowLinear FlowType = iota
	FlowDiagonal
	FlowSpiral
	FlowCircular
)

func (ft FlowType) String() string {
	switch ft {
	case FlowLinear:
		return "linear"
	case FlowDiagonal:
		return "diagonal"
	case FlowSpiral:
		return "spiral"
	default:
		return "circular"
	}
}

// FlowVector is one directional vector between two elements.
type FlowVector struct {
	// Direction is the angle in degrees, [0, 360).
	Direction float64

	// Magnitude is the normalized center distance.
	Magnitude float64

	From string
	To   string
}

// FlowPattern is a group of vectors sharing a similar direction, implying
// visual movement through the layout.
type FlowPattern struct {
	Type     FlowType
	Vectors  []FlowVector
	Involved []string
	Score    float64
}

func (p FlowPattern) Kind() Kind           { return KindFlow }
func (p FlowPattern) Confidence() float64  { return p.Score }
func (p FlowPattern) ElementIDs() []string { return p.Involved }

// AlignmentLine is one shared edge or center coordinate on an axis.
type AlignmentLine struct {
	// Position is the normalized coordinate of the line.
	Position float64

	// ElementIDs are the members aligned to this line.
	ElementIDs []string

	// Strength is the member count over the total element count.
	Strength float64
}

// AlignmentGrid is a set of alignment lines along one axis. GridType
// horizontal means shared Y coordinates (rows); vertical means shared X
// coordinates (columns).
type AlignmentGrid struct {
	GridType model.Direction
	Lines    []AlignmentLine
	Score    float64
}

func (g AlignmentGrid) Kind() Kind          { return KindAlignment }
func (g AlignmentGrid) Confidence() float64 { return g.Score }

func (g AlignmentGrid) ElementIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, line := range g.Lines {
		for _, id := range line.ElementIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}
