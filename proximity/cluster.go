package proximity

import (
	"sort"

	"github.com/tsawler/proxima/direction"
	"github.com/tsawler/proxima/model"
)

// Cluster is a maximal set of elements reachable from one another through
// proximity edges, annotated with its enclosing bounding box and the
// recommended stacking direction.
type Cluster struct {
	// Members are the member elements in discovery order.
	Members []model.Element

	// Bounds encloses all member bounds.
	Bounds model.BBox

	// Direction is the recommended stacking direction.
	Direction model.Direction

	// Confidence is the direction confidence in [0,1].
	Confidence float64
}

// MemberIDs returns the member element ids in discovery order.
func (c Cluster) MemberIDs() []string {
	ids := make([]string, len(c.Members))
	for i, el := range c.Members {
		ids[i] = el.ID
	}
	return ids
}

// Config holds clustering configuration.
type Config struct {
	// ProximityThreshold is the maximum edge distance (px) for two elements
	// to be graph-adjacent.
	ProximityThreshold float64

	// MinGroupSize is the minimum number of elements for a connected
	// component to become a cluster.
	MinGroupSize int

	// RespectContainerBoundaries discards clusters whose members do not all
	// share one immediate parent.
	RespectContainerBoundaries bool

	// Direction configures the per-cluster direction classifier.
	Direction direction.Config
}

// DefaultConfig returns default clustering configuration.
func DefaultConfig() Config {
	return Config{
		ProximityThreshold:         50,
		MinGroupSize:               2,
		RespectContainerBoundaries: true,
		Direction:                  direction.DefaultConfig(),
	}
}

// Extractor finds proximity clusters in a candidate element set.
type Extractor struct {
	config     Config
	classifier *direction.Classifier
}

// NewExtractor creates an extractor with default configuration.
func NewExtractor() *Extractor {
	e := &Extractor{classifier: direction.NewClassifier()}
	_ = e.Configure(DefaultConfig())
	return e
}

// Configure sets the extractor configuration.
func (e *Extractor) Configure(config Config) error {
	e.config = config
	return e.classifier.Configure(config.Direction)
}

// Extract builds the proximity graph over the candidate elements, finds its
// connected components, filters them, and classifies each surviving cluster's
// direction. The returned clusters are pairwise disjoint.
func (e *Extractor) Extract(elements []model.Element) []Cluster {
	if len(elements) == 0 {
		return nil
	}

	graph := BuildGraph(elements, e.config.ProximityThreshold)
	components := connectedComponents(graph)

	var clusters []Cluster
	for _, members := range components {
		if len(members) < e.config.MinGroupSize {
			continue
		}
		if e.config.RespectContainerBoundaries && !sharesContainer(members) {
			continue
		}

		boxes := make([]model.BBox, len(members))
		for i, el := range members {
			boxes[i] = el.Bounds
		}
		bounds, _ := model.BoundingBoxOf(boxes)

		analysis := e.classifier.Classify(members)
		clusters = append(clusters, Cluster{
			Members:    members,
			Bounds:     bounds,
			Direction:  analysis.Direction,
			Confidence: analysis.Confidence,
		})
	}

	return clusters
}

// connectedComponents walks the graph from every unvisited node with an
// explicit stack. Iterative traversal keeps pathological graphs from blowing
// the call stack.
func connectedComponents(g *Graph) [][]model.Element {
	visited := make(map[string]bool, g.Len())
	var components [][]model.Element

	for _, start := range g.Nodes {
		if visited[start] {
			continue
		}

		var members []model.Element
		stack := []string{start}
		visited[start] = true

		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if el, ok := g.Element(id); ok {
				members = append(members, el)
			}
			for _, edge := range g.Neighbors(id) {
				if !visited[edge.To] {
					visited[edge.To] = true
					stack = append(stack, edge.To)
				}
			}
		}

		components = append(components, members)
	}

	return components
}

// sharesContainer reports whether every member has the same immediate parent.
func sharesContainer(members []model.Element) bool {
	for _, el := range members[1:] {
		if el.Parent != members[0].Parent {
			return false
		}
	}
	return true
}

// ResolveOverlaps reconciles clusters that may share elements, as can happen
// when callers merge output across analysis passes run with different
// thresholds. Candidates are sorted by descending member count and accepted
// greedily only when disjoint from every already-accepted cluster, so bigger
// groupings deterministically win over fragments.
func ResolveOverlaps(clusters []Cluster) []Cluster {
	sorted := make([]Cluster, len(clusters))
	copy(sorted, clusters)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Members) > len(sorted[j].Members)
	})

	taken := make(map[string]bool)
	accepted := make([]Cluster, 0, len(sorted))

	for _, c := range sorted {
		conflict := false
		for _, el := range c.Members {
			if taken[el.ID] {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		for _, el := range c.Members {
			taken[el.ID] = true
		}
		accepted = append(accepted, c)
	}

	return accepted
}
