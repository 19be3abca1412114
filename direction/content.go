package direction

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/proxima/model"
)

// navigationKeywords mark link-bar style text that usually sits in a row.
var navigationKeywords = []string{
	"home", "about", "contact", "menu", "shop", "blog",
	"services", "products", "login", "sign up", "faq",
}

// horizontalNameTokens and verticalNameTokens nudge the verdict based on
// layer naming conventions common in design tools.
var (
	horizontalNameTokens = []string{"button", "cta", "link", "tab", "nav", "chip", "badge"}
	verticalNameTokens   = []string{"card", "item", "tile", "list", "entry"}
)

const shortTextLimit = 20

// contentFlow scores the cluster by what its elements contain rather than
// where they sit: text patterns, layer names, and size consistency each
// produce a {horizontal, vertical} weight pair, and the three are averaged.
func contentFlow(elements []model.Element) Score {
	text := textPatternScores(elements)
	name := namePatternScores(elements)
	size := sizeConsistencyScores(elements)

	horizontal := (text.horizontal + name.horizontal + size.horizontal) / 3
	vertical := (text.vertical + name.vertical + size.vertical) / 3

	if vertical > horizontal {
		return Score{
			Direction: model.DirectionVertical,
			Score:     vertical,
			Reasoning: reasonf("content suggests vertical flow (text %.2f, name %.2f, size %.2f)", text.vertical, name.vertical, size.vertical),
		}
	}
	return Score{
		Direction: model.DirectionHorizontal,
		Score:     horizontal,
		Reasoning: reasonf("content suggests horizontal flow (text %.2f, name %.2f, size %.2f)", text.horizontal, name.horizontal, size.horizontal),
	}
}

// textPatternScores inspects the character content of text elements.
// Navigation-like keywords suggest a row; list markers, newlines, and short
// strings suggest a stack.
func textPatternScores(elements []model.Element) axisScores {
	var pairs []axisScores

	for _, el := range elements {
		if el.Text == "" {
			continue
		}
		text := norm.NFC.String(el.Text)
		lower := strings.ToLower(text)

		switch {
		case hasListMarker(text) || strings.Contains(text, "\n"):
			pairs = append(pairs, axisScores{horizontal: 0.15, vertical: 0.85})
		case hasNavigationKeyword(lower):
			pairs = append(pairs, axisScores{horizontal: 0.8, vertical: 0.2})
		case len([]rune(text)) < shortTextLimit:
			pairs = append(pairs, axisScores{horizontal: 0.35, vertical: 0.65})
		default:
			pairs = append(pairs, neutralScores())
		}
	}

	return averageScores(pairs)
}

func hasNavigationKeyword(lower string) bool {
	for _, kw := range navigationKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return strings.Contains(lower, " | ")
}

func hasListMarker(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	for _, marker := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	// Ordered-list prefix: "1. ", "2) " and the like.
	if len(trimmed) >= 2 && trimmed[0] >= '0' && trimmed[0] <= '9' &&
		(trimmed[1] == '.' || trimmed[1] == ')') {
		return true
	}
	return false
}

// namePatternScores inspects layer names for naming conventions that imply
// a layout direction.
func namePatternScores(elements []model.Element) axisScores {
	var pairs []axisScores

	for _, el := range elements {
		lower := strings.ToLower(el.Name)
		if lower == "" {
			continue
		}

		switch {
		case containsToken(lower, horizontalNameTokens):
			pairs = append(pairs, axisScores{horizontal: 0.75, vertical: 0.25})
		case containsToken(lower, verticalNameTokens):
			pairs = append(pairs, axisScores{horizontal: 0.25, vertical: 0.75})
		}
	}

	return averageScores(pairs)
}

func containsToken(lower string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// sizeConsistencyScores compares the spread of widths and heights. Uniform
// widths suggest a vertical stack, uniform heights a horizontal row.
func sizeConsistencyScores(elements []model.Element) axisScores {
	widths := make([]float64, 0, len(elements))
	heights := make([]float64, 0, len(elements))
	for _, el := range elements {
		widths = append(widths, el.Bounds.Width)
		heights = append(heights, el.Bounds.Height)
	}

	widthCV := coefficientOfVariation(widths)
	heightCV := coefficientOfVariation(heights)

	const uniformLimit = 0.15
	uniformWidths := widthCV < uniformLimit
	uniformHeights := heightCV < uniformLimit

	switch {
	case uniformWidths && !uniformHeights:
		return axisScores{horizontal: 0.3, vertical: 0.7}
	case uniformHeights && !uniformWidths:
		return axisScores{horizontal: 0.7, vertical: 0.3}
	case uniformWidths && uniformHeights:
		// Both uniform: lean toward whichever dimension is tighter.
		if widthCV < heightCV {
			return axisScores{horizontal: 0.4, vertical: 0.6}
		}
		if heightCV < widthCV {
			return axisScores{horizontal: 0.6, vertical: 0.4}
		}
		return neutralScores()
	default:
		return neutralScores()
	}
}

// coefficientOfVariation returns stddev/mean, or 0 for degenerate input.
func coefficientOfVariation(values []float64) float64 {
	m := meanOf(values)
	if m == 0 {
		return 0
	}
	return stddev(values) / m
}

// averageScores averages the pairs, or returns neutral when nothing voted.
func averageScores(pairs []axisScores) axisScores {
	if len(pairs) == 0 {
		return neutralScores()
	}
	var sum axisScores
	for _, p := range pairs {
		sum.horizontal += p.horizontal
		sum.vertical += p.vertical
	}
	return axisScores{
		horizontal: sum.horizontal / float64(len(pairs)),
		vertical:   sum.vertical / float64(len(pairs)),
	}
}
