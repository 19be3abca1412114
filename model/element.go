package model

// ElementType represents the kind of scene element.
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeText
	ElementTypeImage
	ElementTypeVector
	ElementTypeShape
	ElementTypeContainer
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeText:
		return "Text"
	case ElementTypeImage:
		return "Image"
	case ElementTypeVector:
		return "Vector"
	case ElementTypeShape:
		return "Shape"
	case ElementTypeContainer:
		return "Container"
	default:
		return "Unknown"
	}
}

// Direction is a coarse horizontal/vertical classification. It is used both
// for the separation axis between two elements and for a cluster's
// recommended stacking direction.
type Direction int

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

func (d Direction) String() string {
	if d == DirectionVertical {
		return "vertical"
	}
	return "horizontal"
}

// MarshalJSON encodes the direction as its lowercase string form.
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// Element is one visible scene leaf or container considered for analysis.
// Elements are built fresh per analysis call from a read-only snapshot of the
// host scene and are never mutated.
type Element struct {
	// ID is the host's stable identifier for this element.
	ID string

	// Name is the element's layer name, used only by name-pattern heuristics.
	Name string

	// Type tags the element kind.
	Type ElementType

	// Bounds is the bounding box relative to the analysis root.
	Bounds BBox

	// Parent is the ID of the immediate containing element ("" for roots).
	Parent string

	// Visible reports whether the host renders the element.
	Visible bool

	// Text is the character content for text elements, "" otherwise.
	Text string

	// FontSize is the font size for text elements, 0 otherwise.
	FontSize float64
}

// Scene is a read-only snapshot of the host scene handed to the engine.
type Scene struct {
	// Root is the analysis root's bounding box in host-absolute coordinates.
	Root BBox

	// Elements is the flat list of candidate elements, bounds relative to Root.
	Elements []Element
}

// ElementByID returns the element with the given id, or nil.
func (s *Scene) ElementByID(id string) *Element {
	for i := range s.Elements {
		if s.Elements[i].ID == id {
			return &s.Elements[i]
		}
	}
	return nil
}

// BoundsByID collects the bounds of the given element ids, skipping unknown
// ids.
func (s *Scene) BoundsByID(ids []string) []BBox {
	boxes := make([]BBox, 0, len(ids))
	for _, id := range ids {
		if el := s.ElementByID(id); el != nil {
			boxes = append(boxes, el.Bounds)
		}
	}
	return boxes
}
