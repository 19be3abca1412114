package model

import "math"

// Point represents a 2D point in scene coordinates (origin top-left, Y grows down).
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleTo returns the angle in degrees from p to other in [0, 360),
// measured from the positive X axis toward positive Y (downward).
func (p Point) AngleTo(other Point) float64 {
	deg := math.Atan2(other.Y-p.Y, other.X-p.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// BBox represents an axis-aligned bounding box in scene coordinates.
// X/Y are the top-left corner; Y grows downward.
type BBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point.
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Contains checks if a point is inside the bounding box.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
}

// Intersects checks if two bounding boxes intersect.
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Bottom() < other.Top() ||
		b.Top() > other.Bottom())
}

// Intersection returns the intersection of two bounding boxes.
// Returns a zero BBox when the boxes do not intersect.
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}

	x := math.Max(b.Left(), other.Left())
	y := math.Max(b.Top(), other.Top())
	right := math.Min(b.Right(), other.Right())
	bottom := math.Min(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Union returns the union of two bounding boxes.
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Area returns the area of the bounding box.
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// IsEmpty returns true if the bounding box has zero area.
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// IsValid returns true if the bounding box has positive dimensions.
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}

// HGap returns the horizontal gap between two boxes: the distance between
// their nearest vertical edges, or 0 when they overlap horizontally.
func (b BBox) HGap(other BBox) float64 {
	gap := math.Max(b.Left(), other.Left()) - math.Min(b.Right(), other.Right())
	if gap < 0 {
		return 0
	}
	return gap
}

// VGap returns the vertical gap between two boxes: the distance between
// their nearest horizontal edges, or 0 when they overlap vertically.
func (b BBox) VGap(other BBox) float64 {
	gap := math.Max(b.Top(), other.Top()) - math.Min(b.Bottom(), other.Bottom())
	if gap < 0 {
		return 0
	}
	return gap
}

// EdgeDistance returns the minimum edge-to-edge distance between two boxes.
// It is 0 when the boxes overlap with positive intersection area. When the
// boxes are diagonal neighbors (both gaps positive) the distance is the
// hypotenuse of the two gaps; otherwise it is the single non-zero gap.
func (b BBox) EdgeDistance(other BBox) float64 {
	if b.Intersects(other) && b.Intersection(other).Area() > 0 {
		return 0
	}

	h := b.HGap(other)
	v := b.VGap(other)

	if h > 0 && v > 0 {
		return math.Sqrt(h*h + v*v)
	}
	return math.Max(h, v)
}

// SeparationDirection classifies the axis that divides two boxes. Boxes
// sitting side by side (no vertical gap) are divided by a vertical axis;
// stacked boxes (no horizontal gap) by a horizontal one. When both gaps are
// positive the dominant gap decides, ties favoring vertical.
func (b BBox) SeparationDirection(other BBox) Direction {
	if b.HGap(other) >= b.VGap(other) {
		return DirectionVertical
	}
	return DirectionHorizontal
}

// Normalize maps the box into [0,1] coordinates relative to root. A root with
// zero width or height yields a zero box.
func (b BBox) Normalize(root BBox) BBox {
	if root.Width <= 0 || root.Height <= 0 {
		return BBox{}
	}
	return BBox{
		X:      (b.X - root.X) / root.Width,
		Y:      (b.Y - root.Y) / root.Height,
		Width:  b.Width / root.Width,
		Height: b.Height / root.Height,
	}
}

// RelativeBounds converts a host-absolute bounding box to coordinates
// relative to origin. A nil box (a non-drawable node) stays nil; callers
// must skip such elements.
func RelativeBounds(abs *BBox, origin Point) *BBox {
	if abs == nil {
		return nil
	}
	return &BBox{
		X:      abs.X - origin.X,
		Y:      abs.Y - origin.Y,
		Width:  abs.Width,
		Height: abs.Height,
	}
}

// BoundingBoxOf returns the union rectangle of a set of boxes. The second
// return value is false for an empty set.
func BoundingBoxOf(boxes []BBox) (BBox, bool) {
	if len(boxes) == 0 {
		return BBox{}, false
	}
	union := boxes[0]
	for _, b := range boxes[1:] {
		union = union.Union(b)
	}
	return union, true
}
