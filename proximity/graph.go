package proximity

import (
	"github.com/tsawler/proxima/model"
)

// ElementDistance is the derived pairwise relation between two elements: the
// minimum edge-to-edge distance (0 when bounds overlap) and the coarse axis
// dividing them.
type ElementDistance struct {
	From      string
	To        string
	Distance  float64
	Direction model.Direction
}

// Edge is one adjacency in the proximity graph.
type Edge struct {
	To       string
	Distance float64
}

// Graph is an undirected proximity graph over a candidate element set.
// Nodes preserves the input element order so traversal is deterministic.
type Graph struct {
	Nodes     []string
	adjacency map[string][]Edge
	elements  map[string]model.Element
}

// BuildGraph computes pairwise distances over the candidate set and records
// a bidirectional edge for every pair whose edge distance is at or below
// threshold. Complexity is O(n^2) in the candidate count; callers bound n.
func BuildGraph(elements []model.Element, threshold float64) *Graph {
	g := &Graph{
		Nodes:     make([]string, 0, len(elements)),
		adjacency: make(map[string][]Edge, len(elements)),
		elements:  make(map[string]model.Element, len(elements)),
	}

	for _, el := range elements {
		g.Nodes = append(g.Nodes, el.ID)
		g.elements[el.ID] = el
	}

	for i := 0; i < len(elements); i++ {
		for j := i + 1; j < len(elements); j++ {
			d := Distance(elements[i], elements[j])
			if d.Distance <= threshold {
				g.adjacency[d.From] = append(g.adjacency[d.From], Edge{To: d.To, Distance: d.Distance})
				g.adjacency[d.To] = append(g.adjacency[d.To], Edge{To: d.From, Distance: d.Distance})
			}
		}
	}

	return g
}

// Distance computes the pairwise relation between two elements.
func Distance(a, b model.Element) ElementDistance {
	return ElementDistance{
		From:      a.ID,
		To:        b.ID,
		Distance:  a.Bounds.EdgeDistance(b.Bounds),
		Direction: a.Bounds.SeparationDirection(b.Bounds),
	}
}

// Neighbors returns the edges of one node.
func (g *Graph) Neighbors(id string) []Edge {
	return g.adjacency[id]
}

// Element returns the element behind a node id.
func (g *Graph) Element(id string) (model.Element, bool) {
	el, ok := g.elements[id]
	return el, ok
}

// Len returns the node count.
func (g *Graph) Len() int {
	return len(g.Nodes)
}
