package relations

import (
	"math"

	"github.com/tsawler/proxima/model"
)

// normElement is an element projected into normalized [0,1] coordinates
// relative to the analysis root.
type normElement struct {
	id     string
	bounds model.BBox
	center model.Point
	area   float64
}

// normalizeElements converts a scene's elements into normalized form. A root
// without positive dimensions yields nil, which makes every detector return
// empty rather than divide by zero.
func normalizeElements(scene *model.Scene) []normElement {
	if scene == nil || !scene.Root.IsValid() {
		return nil
	}

	els := make([]normElement, 0, len(scene.Elements))
	for _, el := range scene.Elements {
		n := el.Bounds.Normalize(model.BBox{Width: scene.Root.Width, Height: scene.Root.Height})
		els = append(els, normElement{
			id:     el.ID,
			bounds: n,
			center: n.Center(),
			area:   n.Area(),
		})
	}
	return els
}

// angularDiff folds the difference of two angles in degrees to [0, 180].
func angularDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
