// Package proximity builds proximity graphs over scene elements and extracts
// visually cohesive clusters from them.
//
// [BuildGraph] computes the O(n^2) pairwise edge-to-edge distance matrix for
// a candidate element set and keeps a symmetric edge for every pair within a
// configured threshold. The [Extractor] then finds connected components with
// an iterative depth-first traversal, filters them by minimum size and by
// container-boundary consistency, and annotates survivors with a bounding box
// and a stacking-direction recommendation from the direction package.
//
// Clusters from a single Extract call are disjoint by construction. When
// callers merge clusters from multiple passes, [ResolveOverlaps] reconciles
// conflicts by greedily preferring larger clusters.
//
// The engine enforces no cap on the candidate count: callers are responsible
// for bounding n before invocation.
package proximity
