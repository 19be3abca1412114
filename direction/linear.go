package direction

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/tsawler/proxima/model"
)

const (
	// alignmentReference normalizes the cross-axis center deviation: a
	// standard deviation of 200px or more scores 0.
	alignmentReference = 200.0

	// spacingReference normalizes the inter-element gap deviation: a standard
	// deviation of 50px or more scores 0.
	spacingReference = 50.0

	// overlapPenaltyRange is the overlap depth at which an adjacent pair
	// zeroes the arrangement score.
	overlapPenaltyRange = 50.0
)

// linearArrangement scores how strongly the elements form a row or a column.
// Each candidate axis is scored as alignment x spacing consistency x overlap
// penalty; the better axis wins.
func linearArrangement(elements []model.Element) Score {
	horizontal := axisArrangementScore(elements, model.DirectionHorizontal)
	vertical := axisArrangementScore(elements, model.DirectionVertical)

	if vertical > horizontal {
		return Score{
			Direction: model.DirectionVertical,
			Score:     vertical,
			Reasoning: reasonf("%d elements form a column (score %.2f vs %.2f)", len(elements), vertical, horizontal),
		}
	}
	return Score{
		Direction: model.DirectionHorizontal,
		Score:     horizontal,
		Reasoning: reasonf("%d elements form a row (score %.2f vs %.2f)", len(elements), horizontal, vertical),
	}
}

// axisArrangementScore scores the elements as an arrangement along one axis.
// Tighter cross-axis alignment, more uniform gaps, and less overlap along the
// axis all raise the score.
func axisArrangementScore(elements []model.Element, axis model.Direction) float64 {
	sorted := make([]model.Element, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		if axis == model.DirectionHorizontal {
			return sorted[i].Bounds.Left() < sorted[j].Bounds.Left()
		}
		return sorted[i].Bounds.Top() < sorted[j].Bounds.Top()
	})

	crossCenters := make([]float64, len(sorted))
	for i, el := range sorted {
		if axis == model.DirectionHorizontal {
			crossCenters[i] = el.Bounds.Center().Y
		} else {
			crossCenters[i] = el.Bounds.Center().X
		}
	}
	alignment := math.Max(0, 1-stddev(crossCenters)/alignmentReference)

	// Raw gaps can be negative when adjacent bounds overlap along the axis;
	// they are clamped before the spacing statistic but drive the penalty.
	gaps := make([]float64, 0, len(sorted)-1)
	penalty := 1.0
	for i := 1; i < len(sorted); i++ {
		var gap float64
		if axis == model.DirectionHorizontal {
			gap = sorted[i].Bounds.Left() - sorted[i-1].Bounds.Right()
		} else {
			gap = sorted[i].Bounds.Top() - sorted[i-1].Bounds.Bottom()
		}

		if gap < 0 {
			penalty *= math.Max(0, 1-(-gap)/overlapPenaltyRange)
			gap = 0
		}
		gaps = append(gaps, gap)
	}
	spacing := math.Max(0, 1-stddev(gaps)/spacingReference)

	return alignment * spacing * penalty
}

// stddev returns the population standard deviation, or 0 for fewer than two
// values.
func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sd, err := stats.StandardDeviation(values)
	if err != nil {
		return 0
	}
	return sd
}

// meanOf returns the arithmetic mean, or 0 for an empty slice.
func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}
