// Package direction classifies the stacking direction of element clusters.
//
// Given a cluster's element list, the [Classifier] runs three independent
// heuristics and combines them with fixed weights into a single directional
// recommendation with a confidence score:
//
//   - linear arrangement (weight 0.4): cross-axis alignment, spacing
//     consistency, and overlap along each candidate axis
//   - content flow (weight 0.3): text patterns, layer-name conventions, and
//     size consistency
//   - aspect ratio (weight 0.3): the cluster bounding box's width/height
//     ratio mapped through fixed thresholds
//
// A combined confidence below the configured floor (default 0.6) is reset to
// exactly 0.5, signaling to callers that the direction is effectively a coin
// flip. Classification is deterministic and allocation-light; the input
// element list is never mutated.
package direction
