// Package model provides the shared data model for scene analysis.
//
// This package defines the types that describe a snapshot of a 2D scene and
// the geometric primitives the analysis packages operate on. A [Scene] is a
// flat, read-only list of [Element] values with bounds relative to an
// analysis root; the engine never mutates it.
//
// # Elements
//
// Each [Element] carries a stable host identifier, an [ElementType] tag, a
// bounding box, a reference to its immediate container, and, for text
// elements, the character content and font size used by layout heuristics.
//
// # Geometry
//
// Geometric primitives support proximity and pattern calculations:
//
//   - [BBox] - bounding box with intersection, union, gap and edge-distance
//     calculations; scene coordinates are top-left origin with Y growing down
//   - [Point] - 2D point with distance and angle calculations
//   - [Direction] - coarse horizontal/vertical classification
//
// [BBox.EdgeDistance] and [BBox.SeparationDirection] are the primitives the
// proximity graph is built from: the former is 0 exactly when two boxes
// overlap with positive area, the latter names the axis dividing two
// separated boxes.
package model
