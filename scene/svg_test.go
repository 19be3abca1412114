package scene

import (
	"strings"
	"testing"

	"github.com/tsawler/proxima/model"
)

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="600">
  <g id="header">
    <rect id="bar" x="0" y="0" width="800" height="64"/>
    <text id="brand" x="24" y="40" font-size="20">Proxima</text>
  </g>
  <image id="hero" x="100" y="100" width="600" height="300"/>
  <circle id="dot" cx="400" cy="500" r="20"/>
  <rect id="hidden" x="0" y="550" width="50" height="50" visibility="hidden"/>
</svg>`

func TestReadSVG(t *testing.T) {
	s, err := ReadSVG(strings.NewReader(sampleSVG))
	if err != nil {
		t.Fatalf("ReadSVG() failed: %v", err)
	}

	if s.Root.Width != 800 || s.Root.Height != 600 {
		t.Errorf("root = %gx%g, want 800x600", s.Root.Width, s.Root.Height)
	}
	// bar, brand, the header group, hero, dot, hidden.
	if len(s.Elements) != 6 {
		t.Fatalf("parsed %d elements, want 6", len(s.Elements))
	}

	bar := s.ElementByID("bar")
	if bar == nil {
		t.Fatal("element 'bar' not found")
	}
	if bar.Type != model.ElementTypeShape {
		t.Errorf("bar type = %v, want Shape", bar.Type)
	}
	if bar.Bounds != model.NewBBox(0, 0, 800, 64) {
		t.Errorf("bar bounds = %+v", bar.Bounds)
	}
	if bar.Parent != "header" {
		t.Errorf("bar parent = %q, want 'header'", bar.Parent)
	}

	brand := s.ElementByID("brand")
	if brand == nil {
		t.Fatal("element 'brand' not found")
	}
	if brand.Type != model.ElementTypeText || brand.Text != "Proxima" {
		t.Errorf("brand not parsed as text: %+v", brand)
	}
	if brand.FontSize != 20 {
		t.Errorf("brand font size = %g, want 20", brand.FontSize)
	}

	header := s.ElementByID("header")
	if header == nil {
		t.Fatal("element 'header' not found")
	}
	if header.Type != model.ElementTypeContainer {
		t.Errorf("header type = %v, want Container", header.Type)
	}
	// The group spans its rect at least.
	if header.Bounds.Left() > 0 || header.Bounds.Right() < 800 {
		t.Errorf("header bounds = %+v, should span the bar", header.Bounds)
	}

	dot := s.ElementByID("dot")
	if dot == nil {
		t.Fatal("element 'dot' not found")
	}
	if dot.Bounds != model.NewBBox(380, 480, 40, 40) {
		t.Errorf("dot bounds = %+v, want 40x40 at (380,480)", dot.Bounds)
	}

	hidden := s.ElementByID("hidden")
	if hidden == nil || hidden.Visible {
		t.Error("visibility='hidden' should carry through")
	}
}

func TestReadSVG_ViewBoxFallback(t *testing.T) {
	s, err := ReadSVG(strings.NewReader(
		`<svg viewBox="0 0 1024 768"><rect id="r" x="0" y="0" width="10" height="10"/></svg>`))
	if err != nil {
		t.Fatalf("ReadSVG() failed: %v", err)
	}
	if s.Root.Width != 1024 || s.Root.Height != 768 {
		t.Errorf("root = %gx%g, want 1024x768 from viewBox", s.Root.Width, s.Root.Height)
	}
}

func TestReadSVG_NoSize(t *testing.T) {
	if _, err := ReadSVG(strings.NewReader(`<svg></svg>`)); err == nil {
		t.Error("expected error for svg without size")
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"42", 42},
		{"42px", 42},
		{" 3.5 ", 3.5},
		{"", 0},
		{"auto", 0},
	}

	for _, tt := range tests {
		if got := parseLength(tt.input); got != tt.expected {
			t.Errorf("parseLength(%q) = %g, want %g", tt.input, got, tt.expected)
		}
	}
}
