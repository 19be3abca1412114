package relations

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/proxima/model"
)

// stubDetector lets tests inject failures into the engine.
type stubDetector struct {
	name     string
	result   []Relationship
	err      error
	panicMsg string
}

func (d *stubDetector) Detect(scene *model.Scene) ([]Relationship, error) {
	if d.panicMsg != "" {
		panic(d.panicMsg)
	}
	return d.result, d.err
}

func (d *stubDetector) Name() string                { return d.name }
func (d *stubDetector) Configure(config Config) error { return nil }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubDetector{name: "one"})
	r.Register(&stubDetector{name: "two"})
	r.Register(&stubDetector{name: "one"})

	names := r.List()
	if len(names) != 2 {
		t.Fatalf("List() has %d names, want 2", len(names))
	}
	if names[0] != "one" || names[1] != "two" {
		t.Errorf("List() = %v, want [one two]", names)
	}
	if r.Get("two") == nil {
		t.Error("Get('two') returned nil for a registered detector")
	}
	if r.Get("missing") != nil {
		t.Error("Get('missing') should return nil")
	}
}

func TestEngine_StandardDetectors(t *testing.T) {
	e := NewEngine()

	names := e.Detectors().List()
	expected := []string{"anchor", "flow", "alignment"}
	if len(names) != len(expected) {
		t.Fatalf("engine has %d detectors, want %d", len(names), len(expected))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("detector %d = %q, want %q", i, names[i], name)
		}
	}
}

func TestEngine_Detect(t *testing.T) {
	e := NewEngine()

	// A row of three elements: flow and alignment both fire, anchor does not.
	found, warnings := e.Detect(rowScene())
	if len(warnings) != 0 {
		t.Fatalf("Detect() produced warnings: %v", warnings)
	}

	kinds := make(map[Kind]int)
	for _, rel := range found {
		if rel.Confidence() < 0.5 || rel.Confidence() > 1 {
			t.Errorf("%v confidence = %f, want within [0.5,1]", rel.Kind(), rel.Confidence())
		}
		kinds[rel.Kind()]++
	}
	if kinds[KindFlow] != 1 {
		t.Errorf("found %d flow patterns, want 1", kinds[KindFlow])
	}
	if kinds[KindAlignment] != 1 {
		t.Errorf("found %d alignment grids, want 1", kinds[KindAlignment])
	}
	if kinds[KindAnchor] != 0 {
		t.Errorf("found %d anchor patterns, want 0 for a uniform row", kinds[KindAnchor])
	}
}

func TestEngine_DetectNamedSubset(t *testing.T) {
	e := NewEngine()

	found, warnings := e.DetectNamed(rowScene(), []string{"flow"})
	if len(warnings) != 0 {
		t.Fatalf("DetectNamed() produced warnings: %v", warnings)
	}
	for _, rel := range found {
		if rel.Kind() != KindFlow {
			t.Errorf("subset run returned %v relationship", rel.Kind())
		}
	}
}

func TestEngine_UnknownDetectorName(t *testing.T) {
	e := NewEngine()

	found, warnings := e.DetectNamed(rowScene(), []string{"gravity"})
	if len(found) != 0 {
		t.Errorf("unknown detector returned %d relationships, want 0", len(found))
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if !strings.Contains(warnings[0], "gravity") {
		t.Errorf("warning %q does not name the unknown detector", warnings[0])
	}
}

func TestEngine_PanicIsolation(t *testing.T) {
	e := NewEngine()
	e.Detectors().Register(&stubDetector{name: "broken", panicMsg: "bad geometry"})

	found, warnings := e.Detect(rowScene())
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "broken") || !strings.Contains(warnings[0], "bad geometry") {
		t.Errorf("warning %q should carry detector name and panic value", warnings[0])
	}
	// The healthy detectors still ran.
	if len(found) == 0 {
		t.Error("panicking detector suppressed results from the others")
	}
}

func TestEngine_ErrorBecomesWarning(t *testing.T) {
	e := NewEngine()
	e.Detectors().Register(&stubDetector{name: "flaky", err: errors.New("transient")})

	_, warnings := e.Detect(rowScene())
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "transient") {
		t.Errorf("warning %q should carry the detector error", warnings[0])
	}
}

func TestEngine_Configure(t *testing.T) {
	e := NewEngine()

	config := DefaultConfig()
	config.ConfidenceThreshold = 0.99
	if err := e.Configure(config); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}

	// The raised threshold filters the row scene's patterns out.
	found, _ := e.Detect(rowScene())
	for _, rel := range found {
		if rel.Confidence() < 0.99 {
			t.Errorf("%v confidence %f below configured threshold", rel.Kind(), rel.Confidence())
		}
	}
}

func TestEngine_NilScene(t *testing.T) {
	e := NewEngine()

	found, warnings := e.Detect(nil)
	if len(found) != 0 {
		t.Errorf("nil scene returned %d relationships, want 0", len(found))
	}
	if len(warnings) != 0 {
		t.Errorf("nil scene produced warnings: %v", warnings)
	}
}
