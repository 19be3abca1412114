package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/proxima/model"
)

// snapshotFile is the JSON snapshot format emitted by export plugins.
type snapshotFile struct {
	Root     snapshotBounds    `json:"root"`
	Elements []snapshotElement `json:"elements"`
}

type snapshotBounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type snapshotElement struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	Type     string         `json:"type,omitempty"`
	Bounds   snapshotBounds `json:"bounds"`
	Parent   string         `json:"parent,omitempty"`
	Visible  *bool          `json:"visible,omitempty"`
	Text     string         `json:"text,omitempty"`
	FontSize float64        `json:"fontSize,omitempty"`
}

// Load reads a JSON scene snapshot from a file.
func Load(filename string) (*model.Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return LoadReader(f)
}

// LoadReader reads a JSON scene snapshot from an io.Reader.
func LoadReader(r io.Reader) (*model.Scene, error) {
	var file snapshotFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	root := model.NewBBox(file.Root.X, file.Root.Y, file.Root.Width, file.Root.Height)
	if !root.IsValid() {
		return nil, fmt.Errorf("snapshot root has invalid size %gx%g", root.Width, root.Height)
	}

	s := &model.Scene{
		Root:     root,
		Elements: make([]model.Element, 0, len(file.Elements)),
	}
	for i, se := range file.Elements {
		id := se.ID
		if id == "" {
			id = fmt.Sprintf("element-%d", i)
		}

		// Visibility defaults to true when the snapshot omits it.
		visible := true
		if se.Visible != nil {
			visible = *se.Visible
		}

		s.Elements = append(s.Elements, model.Element{
			ID:       id,
			Name:     se.Name,
			Type:     parseElementType(se.Type),
			Bounds:   model.NewBBox(se.Bounds.X, se.Bounds.Y, se.Bounds.Width, se.Bounds.Height),
			Parent:   se.Parent,
			Visible:  visible,
			Text:     se.Text,
			FontSize: se.FontSize,
		})
	}

	return s, nil
}

// parseElementType maps a snapshot type string to an ElementType.
// Unrecognized values map to TypeUnknown rather than failing the load.
func parseElementType(s string) model.ElementType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return model.ElementTypeText
	case "image":
		return model.ElementTypeImage
	case "vector":
		return model.ElementTypeVector
	case "shape", "rectangle", "ellipse":
		return model.ElementTypeShape
	case "container", "frame", "group":
		return model.ElementTypeContainer
	default:
		return model.ElementTypeUnknown
	}
}
