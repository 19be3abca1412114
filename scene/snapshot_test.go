package scene

import (
	"strings"
	"testing"

	"github.com/tsawler/proxima/model"
)

const sampleSnapshot = `{
  "root": {"x": 0, "y": 0, "width": 1440, "height": 900},
  "elements": [
    {"id": "nav", "name": "Navigation", "type": "container",
     "bounds": {"x": 0, "y": 0, "width": 1440, "height": 64}},
    {"id": "logo", "type": "image", "parent": "nav",
     "bounds": {"x": 24, "y": 12, "width": 120, "height": 40}},
    {"id": "title", "type": "text", "text": "Dashboard", "fontSize": 24,
     "bounds": {"x": 24, "y": 96, "width": 240, "height": 32}},
    {"id": "ghost", "type": "shape", "visible": false,
     "bounds": {"x": 0, "y": 200, "width": 100, "height": 100}},
    {"type": "rectangle",
     "bounds": {"x": 24, "y": 160, "width": 400, "height": 240}}
  ]
}`

func TestLoadReader(t *testing.T) {
	s, err := LoadReader(strings.NewReader(sampleSnapshot))
	if err != nil {
		t.Fatalf("LoadReader() failed: %v", err)
	}

	if s.Root.Width != 1440 || s.Root.Height != 900 {
		t.Errorf("root = %gx%g, want 1440x900", s.Root.Width, s.Root.Height)
	}
	if len(s.Elements) != 5 {
		t.Fatalf("loaded %d elements, want 5", len(s.Elements))
	}

	nav := s.ElementByID("nav")
	if nav == nil {
		t.Fatal("element 'nav' not found")
	}
	if nav.Type != model.ElementTypeContainer {
		t.Errorf("nav type = %v, want Container", nav.Type)
	}
	if !nav.Visible {
		t.Error("visibility should default to true when omitted")
	}

	logo := s.ElementByID("logo")
	if logo == nil || logo.Parent != "nav" {
		t.Errorf("logo parent not preserved: %+v", logo)
	}

	title := s.ElementByID("title")
	if title == nil || title.Text != "Dashboard" || title.FontSize != 24 {
		t.Errorf("title text/fontSize not preserved: %+v", title)
	}

	ghost := s.ElementByID("ghost")
	if ghost == nil || ghost.Visible {
		t.Error("explicit visible:false should be preserved")
	}

	// The unnamed rectangle gets a generated ID and the shape type.
	anon := s.Elements[4]
	if anon.ID != "element-4" {
		t.Errorf("generated ID = %q, want 'element-4'", anon.ID)
	}
	if anon.Type != model.ElementTypeShape {
		t.Errorf("rectangle type = %v, want Shape", anon.Type)
	}
}

func TestLoadReader_InvalidRoot(t *testing.T) {
	_, err := LoadReader(strings.NewReader(`{"root": {"width": 0, "height": 900}, "elements": []}`))
	if err == nil {
		t.Error("expected error for zero-width root")
	}
}

func TestLoadReader_MalformedJSON(t *testing.T) {
	_, err := LoadReader(strings.NewReader(`{"root": `))
	if err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestParseElementType(t *testing.T) {
	tests := []struct {
		input    string
		expected model.ElementType
	}{
		{"text", model.ElementTypeText},
		{"TEXT", model.ElementTypeText},
		{"image", model.ElementTypeImage},
		{"vector", model.ElementTypeVector},
		{"shape", model.ElementTypeShape},
		{"frame", model.ElementTypeContainer},
		{"group", model.ElementTypeContainer},
		{"widget", model.ElementTypeUnknown},
		{"", model.ElementTypeUnknown},
	}

	for _, tt := range tests {
		if got := parseElementType(tt.input); got != tt.expected {
			t.Errorf("parseElementType(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
