package scene

import (
	"fmt"

	"github.com/tsawler/proxima/model"
)

// MinCandidateSize is the smallest width and height (in scene units) an
// element may have and still participate in grouping. Hairlines and
// decorative specks below this size only add noise to the proximity graph.
const MinCandidateSize = 5.0

// Candidates filters a scene's elements down to the set that should
// participate in grouping. Elements are dropped when they are invisible,
// smaller than MinCandidateSize on either side, carry degenerate bounds, or
// descend from a container in the atomic set. A warning is recorded for
// every dropped element.
//
// The atomic set holds IDs of containers whose contents are treated as one
// unit; pass nil when no containers are protected.
func Candidates(s *model.Scene, atomic map[string]bool) ([]model.Element, []string) {
	if s == nil {
		return nil, nil
	}

	kept := make([]model.Element, 0, len(s.Elements))
	var warnings []string

	for _, el := range s.Elements {
		switch {
		case !el.Visible:
			warnings = append(warnings, fmt.Sprintf("skipping %s: not visible", el.ID))
		case !el.Bounds.IsValid():
			warnings = append(warnings, fmt.Sprintf("skipping %s: degenerate bounds", el.ID))
		case el.Bounds.Width < MinCandidateSize || el.Bounds.Height < MinCandidateSize:
			warnings = append(warnings, fmt.Sprintf("skipping %s: below minimum size", el.ID))
		case insideAtomic(s, el, atomic):
			warnings = append(warnings, fmt.Sprintf("skipping %s: inside atomic container", el.ID))
		default:
			kept = append(kept, el)
		}
	}

	return kept, warnings
}

// insideAtomic reports whether any ancestor of el is in the atomic set. The
// element itself still participates when it is the protected container; only
// its contents are folded into it.
func insideAtomic(s *model.Scene, el model.Element, atomic map[string]bool) bool {
	if len(atomic) == 0 {
		return false
	}

	seen := make(map[string]bool)
	parent := el.Parent
	for parent != "" && !seen[parent] {
		if atomic[parent] {
			return true
		}
		seen[parent] = true
		ancestor := s.ElementByID(parent)
		if ancestor == nil {
			return false
		}
		parent = ancestor.Parent
	}
	return false
}
