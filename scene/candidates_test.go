package scene

import (
	"strings"
	"testing"

	"github.com/tsawler/proxima/model"
)

func TestCandidates_Filtering(t *testing.T) {
	s := &model.Scene{
		Root: model.NewBBox(0, 0, 1000, 1000),
		Elements: []model.Element{
			{ID: "keep", Bounds: model.NewBBox(0, 0, 100, 40), Visible: true},
			{ID: "hidden", Bounds: model.NewBBox(0, 100, 100, 40), Visible: false},
			{ID: "speck", Bounds: model.NewBBox(0, 200, 4, 4), Visible: true},
			{ID: "thin", Bounds: model.NewBBox(0, 300, 100, 2), Visible: true},
			{ID: "degenerate", Bounds: model.NewBBox(0, 400, 0, 0), Visible: true},
		},
	}

	kept, warnings := Candidates(s, nil)

	if len(kept) != 1 || kept[0].ID != "keep" {
		t.Errorf("Candidates() kept %+v, want only 'keep'", kept)
	}
	if len(warnings) != 4 {
		t.Fatalf("got %d warnings, want 4: %v", len(warnings), warnings)
	}

	checks := map[string]string{
		"hidden":     "not visible",
		"speck":      "below minimum size",
		"thin":       "below minimum size",
		"degenerate": "degenerate bounds",
	}
	for id, reason := range checks {
		found := false
		for _, w := range warnings {
			if strings.Contains(w, id) && strings.Contains(w, reason) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no warning for %s mentioning %q in %v", id, reason, warnings)
		}
	}
}

func TestCandidates_AtomicContainers(t *testing.T) {
	s := &model.Scene{
		Root: model.NewBBox(0, 0, 1000, 1000),
		Elements: []model.Element{
			{ID: "card", Type: model.ElementTypeContainer, Bounds: model.NewBBox(0, 0, 300, 200), Visible: true},
			{ID: "title", Parent: "card", Bounds: model.NewBBox(10, 10, 200, 20), Visible: true},
			{ID: "icon", Parent: "title", Bounds: model.NewBBox(10, 40, 16, 16), Visible: true},
			{ID: "outside", Bounds: model.NewBBox(500, 0, 100, 40), Visible: true},
		},
	}

	kept, warnings := Candidates(s, map[string]bool{"card": true})

	ids := make([]string, len(kept))
	for i, el := range kept {
		ids[i] = el.ID
	}
	// The container survives; its contents fold into it, including the
	// transitively nested icon.
	want := []string{"card", "outside"}
	if len(ids) != len(want) || ids[0] != want[0] || ids[1] != want[1] {
		t.Errorf("Candidates() kept %v, want %v", ids, want)
	}
	if len(warnings) != 2 {
		t.Errorf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
}

func TestCandidates_ParentCycle(t *testing.T) {
	// A malformed snapshot with a parent cycle must not hang the filter.
	s := &model.Scene{
		Root: model.NewBBox(0, 0, 1000, 1000),
		Elements: []model.Element{
			{ID: "a", Parent: "b", Bounds: model.NewBBox(0, 0, 100, 40), Visible: true},
			{ID: "b", Parent: "a", Bounds: model.NewBBox(0, 100, 100, 40), Visible: true},
		},
	}

	kept, _ := Candidates(s, map[string]bool{"other": true})
	if len(kept) != 2 {
		t.Errorf("Candidates() kept %d elements, want 2", len(kept))
	}
}

func TestCandidates_NilScene(t *testing.T) {
	kept, warnings := Candidates(nil, nil)
	if kept != nil || warnings != nil {
		t.Errorf("Candidates(nil) = %v, %v, want nil, nil", kept, warnings)
	}
}
