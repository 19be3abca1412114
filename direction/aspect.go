package direction

import (
	"github.com/tsawler/proxima/model"
)

// aspectRatio maps the cluster's bounding-box aspect ratio (width/height) to
// a direction through fixed thresholds: wide boxes imply a row, tall boxes a
// column, and near-square boxes get only a weak bias.
func aspectRatio(elements []model.Element) Score {
	boxes := make([]model.BBox, len(elements))
	for i, el := range elements {
		boxes[i] = el.Bounds
	}

	bounds, ok := model.BoundingBoxOf(boxes)
	if !ok || bounds.Height <= 0 {
		return Score{Direction: model.DirectionHorizontal, Score: 0, Reasoning: "no measurable bounds"}
	}

	ratio := bounds.Width / bounds.Height

	var horizontal float64
	switch {
	case ratio > 2.0:
		horizontal = 0.9
	case ratio > 1.5:
		horizontal = 0.7
	case ratio < 0.5:
		horizontal = 0.1
	case ratio < 0.67:
		horizontal = 0.3
	case ratio > 1.0:
		horizontal = 0.6
	default:
		horizontal = 0.4
	}

	if horizontal >= 0.5 {
		return Score{
			Direction: model.DirectionHorizontal,
			Score:     horizontal,
			Reasoning: reasonf("aspect ratio %.2f favors a row", ratio),
		}
	}
	return Score{
		Direction: model.DirectionVertical,
		Score:     1 - horizontal,
		Reasoning: reasonf("aspect ratio %.2f favors a column", ratio),
	}
}
