// Package relations detects invisible compositional structures among scene
// elements: anchor patterns (hub-and-spoke positioning), flow patterns
// (directional vector fields), and alignment grids (shared edge/center
// lines).
//
// Detection operates on elements normalized into [0,1] coordinates relative
// to the analysis root and requires at least three elements; below that every
// detector returns empty. The three families are independent, and the
// [Engine] aggregates whatever subset succeeds: a panic inside one detector
// is recovered at its entry point and reported as a warning rather than
// propagated.
//
// Results form a tagged union: the [Relationship] interface is implemented by
// [AnchorPattern], [FlowPattern], and [AlignmentGrid], and consumers branch
// on [Relationship.Kind] or type-switch on the concrete types. Every variant
// carries its own confidence in [0,1].
package relations
