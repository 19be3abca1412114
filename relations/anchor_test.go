package relations

import (
	"math"
	"testing"

	"github.com/tsawler/proxima/model"
)

// satelliteAt places a 50x50 element with its center at the given angle and
// normalized radius from the scene center of a 1000x1000 root.
func satelliteAt(id string, angleDeg, radius float64) model.Element {
	rad := angleDeg * math.Pi / 180
	cx := (0.5 + radius*math.Cos(rad)) * 1000
	cy := (0.5 + radius*math.Sin(rad)) * 1000
	return model.Element{
		ID:     id,
		Bounds: model.NewBBox(cx-25, cy-25, 50, 50),
	}
}

func hubScene() *model.Scene {
	return &model.Scene{
		Root: model.NewBBox(0, 0, 1000, 1000),
		Elements: []model.Element{
			{ID: "hub", Bounds: model.NewBBox(300, 300, 400, 400)},
			satelliteAt("s1", 10, 0.2),
			satelliteAt("s2", 30, 0.2),
			satelliteAt("s3", 190, 0.2),
			satelliteAt("s4", 210, 0.2),
		},
	}
}

func TestAnchorDetector_Name(t *testing.T) {
	if name := NewAnchorDetector().Name(); name != "anchor" {
		t.Errorf("Name() = %q, want 'anchor'", name)
	}
}

func TestAnchorDetector_HubAndSpoke(t *testing.T) {
	d := NewAnchorDetector()

	found, err := d.Detect(hubScene())
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("Detect() returned %d patterns, want exactly 1", len(found))
	}

	pattern, ok := found[0].(AnchorPattern)
	if !ok {
		t.Fatalf("relationship is %T, want AnchorPattern", found[0])
	}
	if pattern.AnchorID != "hub" {
		t.Errorf("AnchorID = %q, want 'hub'", pattern.AnchorID)
	}
	if len(pattern.Anchored) != 4 {
		t.Errorf("anchored %d elements, want 4", len(pattern.Anchored))
	}
	if pattern.Score < 0.5 || pattern.Score > 1 {
		t.Errorf("Score = %f, want within [0.5,1]", pattern.Score)
	}
	for _, a := range pattern.Anchored {
		if a.AnchorStrength <= 0.3 {
			t.Errorf("element %s strength = %f, want > 0.3", a.ElementID, a.AnchorStrength)
		}
	}
}

func TestAnchorDetector_TooFewElements(t *testing.T) {
	d := NewAnchorDetector()

	scene := &model.Scene{
		Root: model.NewBBox(0, 0, 1000, 1000),
		Elements: []model.Element{
			{ID: "a", Bounds: model.NewBBox(100, 100, 50, 50)},
			{ID: "b", Bounds: model.NewBBox(400, 400, 50, 50)},
		},
	}

	found, err := d.Detect(scene)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if found != nil {
		t.Errorf("Detect() = %+v, want nil below 3 elements", found)
	}
}

func TestAnchorDetector_ScatteredElements(t *testing.T) {
	d := NewAnchorDetector()

	// Small, similarly sized elements far apart: nothing should anchor.
	scene := &model.Scene{
		Root: model.NewBBox(0, 0, 1000, 1000),
		Elements: []model.Element{
			{ID: "a", Bounds: model.NewBBox(0, 0, 20, 20)},
			{ID: "b", Bounds: model.NewBBox(900, 0, 20, 20)},
			{ID: "c", Bounds: model.NewBBox(0, 900, 20, 20)},
		},
	}

	found, err := d.Detect(scene)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("Detect() returned %d patterns, want 0", len(found))
	}
}

func TestRelativePosition(t *testing.T) {
	tests := []struct {
		angle    float64
		expected string
	}{
		{0, "right"},
		{44, "right"},
		{90, "below"},
		{180, "left"},
		{270, "above"},
		{330, "right"},
	}

	for _, tt := range tests {
		if got := relativePosition(tt.angle); got != tt.expected {
			t.Errorf("relativePosition(%v) = %q, want %q", tt.angle, got, tt.expected)
		}
	}
}
