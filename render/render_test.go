package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/tsawler/proxima/model"
	"github.com/tsawler/proxima/proximity"
	"github.com/tsawler/proxima/relations"
)

func testScene() *model.Scene {
	return &model.Scene{
		Root: model.NewBBox(0, 0, 200, 100),
		Elements: []model.Element{
			{ID: "a", Bounds: model.NewBBox(10, 10, 40, 20), Visible: true},
			{ID: "b", Bounds: model.NewBBox(60, 10, 40, 20), Visible: true},
			{ID: "c", Bounds: model.NewBBox(110, 10, 40, 20), Visible: true},
		},
	}
}

func TestNewOverlay(t *testing.T) {
	o, err := NewOverlay(testScene(), DefaultOptions())
	if err != nil {
		t.Fatalf("NewOverlay() failed: %v", err)
	}

	bounds := o.Image().Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 100 {
		t.Errorf("canvas is %dx%d, want 200x100", bounds.Dx(), bounds.Dy())
	}

	// Element outlines leave non-background pixels.
	if countNonBackground(o) == 0 {
		t.Error("canvas has no element outlines")
	}
}

func TestNewOverlay_InvalidScene(t *testing.T) {
	if _, err := NewOverlay(nil, DefaultOptions()); err == nil {
		t.Error("expected error for nil scene")
	}
	empty := &model.Scene{}
	if _, err := NewOverlay(empty, DefaultOptions()); err == nil {
		t.Error("expected error for zero-size root")
	}
}

func TestOverlay_DrawAndEncode(t *testing.T) {
	scene := testScene()
	o, err := NewOverlay(scene, DefaultOptions())
	if err != nil {
		t.Fatalf("NewOverlay() failed: %v", err)
	}
	baseline := countNonBackground(o)

	o.DrawClusters([]proximity.Cluster{
		{
			Members:    scene.Elements,
			Bounds:     model.NewBBox(10, 10, 140, 20),
			Direction:  model.DirectionHorizontal,
			Confidence: 0.9,
		},
	})
	o.DrawRelationships([]relations.Relationship{
		relations.AnchorPattern{
			AnchorID: "a",
			Anchored: []relations.AnchoredElement{
				{ElementID: "b", RelativePosition: "right", AnchorStrength: 0.5},
			},
			Score: 0.7,
		},
		relations.FlowPattern{
			Type:     relations.FlowLinear,
			Vectors:  []relations.FlowVector{{From: "a", To: "b"}, {From: "b", To: "c"}},
			Involved: []string{"a", "b", "c"},
			Score:    0.8,
		},
		relations.AlignmentGrid{
			GridType: model.DirectionHorizontal,
			Lines:    []relations.AlignmentLine{{Position: 0.2, ElementIDs: []string{"a", "b", "c"}, Strength: 1}},
			Score:    1,
		},
	})

	if countNonBackground(o) <= baseline {
		t.Error("drawing added no pixels to the canvas")
	}

	var buf bytes.Buffer
	if err := o.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() failed: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a readable PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 200 {
		t.Errorf("decoded width = %d, want 200", decoded.Bounds().Dx())
	}
}

func TestOverlay_UnknownElementIDs(t *testing.T) {
	o, err := NewOverlay(testScene(), DefaultOptions())
	if err != nil {
		t.Fatalf("NewOverlay() failed: %v", err)
	}

	// Stale IDs are skipped, not fatal.
	o.DrawRelationships([]relations.Relationship{
		relations.AnchorPattern{AnchorID: "missing"},
		relations.FlowPattern{Vectors: []relations.FlowVector{{From: "missing", To: "a"}}},
	})
}

func countNonBackground(o *Overlay) int {
	img := o.img
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	count := 0
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if img.RGBAAt(x, y) != white {
				count++
			}
		}
	}
	return count
}
