package proxima

import (
	"fmt"

	"github.com/tsawler/proxima/model"
	"github.com/tsawler/proxima/proximity"
	"github.com/tsawler/proxima/relations"
	"github.com/tsawler/proxima/scene"
)

// maxRelationElements caps the candidate count fed to the pairwise
// relationship detectors. Scenes beyond the cap still cluster; relationship
// detection is skipped with a warning.
const maxRelationElements = 500

// Result bundles the output of a full analysis pass.
type Result struct {
	// Clusters are the proximity groups found in the scene.
	Clusters []proximity.Cluster

	// Relationships are the detected anchor, flow, and alignment patterns.
	Relationships []relations.Relationship
}

// Analyzer provides a fluent interface for scene analysis. Each
// configuration method returns a new Analyzer instance, making it safe for
// concurrent use and allowing method chaining.
type Analyzer struct {
	// Source: either a scene or a deferred loader.
	scene *model.Scene
	load  func() (*model.Scene, error)

	// Configuration
	options AnalyzeOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Analyzer with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{
		scene:   a.scene,
		load:    a.load,
		options: a.options.clone(),
		err:     a.err,
	}
}

// ProximityThreshold sets the maximum edge distance (in scene units) for two
// elements to be considered neighbors.
func (a *Analyzer) ProximityThreshold(distance float64) *Analyzer {
	newA := a.clone()
	if distance < 0 {
		newA.err = fmt.Errorf("proximity threshold must be non-negative, got %g", distance)
		return newA
	}
	newA.options.proximityThreshold = distance
	return newA
}

// MinGroupSize sets the minimum number of members for a cluster to be
// reported.
func (a *Analyzer) MinGroupSize(size int) *Analyzer {
	newA := a.clone()
	if size < 1 {
		newA.err = fmt.Errorf("minimum group size must be at least 1, got %d", size)
		return newA
	}
	newA.options.minGroupSize = size
	return newA
}

// RespectContainerBoundaries controls whether clusters may span elements
// with different immediate parents.
func (a *Analyzer) RespectContainerBoundaries(respect bool) *Analyzer {
	newA := a.clone()
	newA.options.respectContainerBoundaries = respect
	return newA
}

// ResolveOverlaps enables greedy overlap resolution: when enabled, larger
// clusters win and overlapping smaller ones are dropped.
func (a *Analyzer) ResolveOverlaps() *Analyzer {
	newA := a.clone()
	newA.options.resolveOverlaps = true
	return newA
}

// AtomicContainers marks container IDs whose contents are treated as one
// unit: descendants are folded into the container before analysis.
func (a *Analyzer) AtomicContainers(ids ...string) *Analyzer {
	newA := a.clone()
	if newA.options.atomicContainers == nil {
		newA.options.atomicContainers = make(map[string]bool, len(ids))
	}
	for _, id := range ids {
		newA.options.atomicContainers[id] = true
	}
	return newA
}

// Detectors restricts relationship detection to the named detector families
// ("anchor", "flow", "alignment"). The default runs all of them.
func (a *Analyzer) Detectors(names ...string) *Analyzer {
	newA := a.clone()
	newA.options.detectors = append([]string(nil), names...)
	return newA
}

// ConfidenceThreshold sets the minimum confidence for a relationship pattern
// to be reported.
func (a *Analyzer) ConfidenceThreshold(threshold float64) *Analyzer {
	newA := a.clone()
	if threshold < 0 || threshold > 1 {
		newA.err = fmt.Errorf("confidence threshold must be within [0,1], got %g", threshold)
		return newA
	}
	newA.options.confidenceThreshold = threshold
	return newA
}

// ensureScene resolves the scene, running the deferred loader if needed.
func (a *Analyzer) ensureScene() (*model.Scene, error) {
	if a.scene != nil {
		return a.scene, nil
	}
	if a.load == nil {
		return nil, nil
	}
	s, err := a.load()
	if err != nil {
		return nil, err
	}
	a.scene = s
	return s, nil
}

// candidates filters the scene and converts filter notes into warnings.
func (a *Analyzer) candidates(s *model.Scene) ([]model.Element, []Warning) {
	kept, notes := scene.Candidates(s, a.options.atomicContainers)
	warnings := make([]Warning, 0, len(notes))
	for _, note := range notes {
		warnings = append(warnings, Warning{Stage: "candidates", Message: note})
	}
	return kept, warnings
}

// Clusters runs proximity clustering and returns the groups found. A scene
// with no usable root or no candidates yields an empty result, not an error.
func (a *Analyzer) Clusters() ([]proximity.Cluster, []Warning, error) {
	if a.err != nil {
		return nil, nil, a.err
	}
	s, err := a.ensureScene()
	if err != nil {
		return nil, nil, err
	}
	if s == nil || !s.Root.IsValid() {
		return nil, nil, nil
	}

	kept, warnings := a.candidates(s)
	clusters := a.cluster(kept)
	return clusters, warnings, nil
}

func (a *Analyzer) cluster(kept []model.Element) []proximity.Cluster {
	extractor := proximity.NewExtractor()
	config := proximity.DefaultConfig()
	config.ProximityThreshold = a.options.proximityThreshold
	config.MinGroupSize = a.options.minGroupSize
	config.RespectContainerBoundaries = a.options.respectContainerBoundaries
	_ = extractor.Configure(config)

	clusters := extractor.Extract(kept)
	if a.options.resolveOverlaps {
		clusters = proximity.ResolveOverlaps(clusters)
	}
	return clusters
}

// Relationships runs the pattern detectors and returns every pattern that
// clears the confidence threshold. Detector failures degrade to warnings.
func (a *Analyzer) Relationships() ([]relations.Relationship, []Warning, error) {
	if a.err != nil {
		return nil, nil, a.err
	}
	s, err := a.ensureScene()
	if err != nil {
		return nil, nil, err
	}
	if s == nil || !s.Root.IsValid() {
		return nil, nil, nil
	}

	kept, warnings := a.candidates(s)
	found, relWarnings := a.relationships(s, kept)
	return found, append(warnings, relWarnings...), nil
}

func (a *Analyzer) relationships(s *model.Scene, kept []model.Element) ([]relations.Relationship, []Warning) {
	if len(kept) > maxRelationElements {
		return nil, []Warning{{
			Stage:   "relations",
			Message: fmt.Sprintf("scene has %d candidates, above the %d cap; skipping pattern detection", len(kept), maxRelationElements),
		}}
	}

	engine := relations.NewEngine()
	config := relations.DefaultConfig()
	config.ConfidenceThreshold = a.options.confidenceThreshold
	if err := engine.Configure(config); err != nil {
		return nil, []Warning{{Stage: "relations", Message: err.Error()}}
	}

	filtered := &model.Scene{Root: s.Root, Elements: kept}

	var found []relations.Relationship
	var notes []string
	if a.options.detectors == nil {
		found, notes = engine.Detect(filtered)
	} else {
		found, notes = engine.DetectNamed(filtered, a.options.detectors)
	}

	warnings := make([]Warning, 0, len(notes))
	for _, note := range notes {
		warnings = append(warnings, Warning{Stage: "relations", Message: note})
	}
	return found, warnings
}

// Analyze runs clustering and relationship detection in one pass.
func (a *Analyzer) Analyze() (*Result, []Warning, error) {
	if a.err != nil {
		return nil, nil, a.err
	}
	s, err := a.ensureScene()
	if err != nil {
		return nil, nil, err
	}
	if s == nil || !s.Root.IsValid() {
		return &Result{}, nil, nil
	}

	kept, warnings := a.candidates(s)
	clusters := a.cluster(kept)
	found, relWarnings := a.relationships(s, kept)

	return &Result{
		Clusters:      clusters,
		Relationships: found,
	}, append(warnings, relWarnings...), nil
}
