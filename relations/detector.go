package relations

import (
	"fmt"

	"github.com/tsawler/proxima/model"
)

// Detector is the interface for relationship detection algorithms.
type Detector interface {
	// Detect finds relationships of one family in a scene.
	Detect(scene *model.Scene) ([]Relationship, error)

	// Name returns the detector name.
	Name() string

	// Configure sets detector parameters.
	Configure(config Config) error
}

// Config holds detector configuration. All positional values are interpreted
// in normalized [0,1] coordinates except AlignmentTolerance, which is given
// in scene pixels and normalized per axis against the root size.
type Config struct {
	// AnchorStrengthThreshold is the minimum strength for an element to be
	// recorded as anchored.
	AnchorStrengthThreshold float64

	// FlowAngleThreshold is the maximum angular deviation (degrees) for a
	// vector to join a flow group.
	FlowAngleThreshold float64

	// AlignmentTolerance is the merge tolerance for alignment lines, in
	// scene pixels.
	AlignmentTolerance float64

	// MinimumFlowDistance is the minimum normalized center distance for a
	// pair to produce a flow vector.
	MinimumFlowDistance float64

	// ConfidenceThreshold is the minimum confidence for any pattern to be
	// emitted.
	ConfidenceThreshold float64
}

// DefaultConfig returns default detector configuration.
func DefaultConfig() Config {
	return Config{
		AnchorStrengthThreshold: 0.3,
		FlowAngleThreshold:      15,
		AlignmentTolerance:      8,
		MinimumFlowDistance:     0.1,
		ConfidenceThreshold:     0.5,
	}
}

// minPatternElements is the smallest scene any detector will analyze.
const minPatternElements = 3

// DetectorRegistry holds registered detectors.
type DetectorRegistry struct {
	detectors map[string]Detector
	order     []string
}

// NewRegistry creates a new detector registry.
func NewRegistry() *DetectorRegistry {
	return &DetectorRegistry{detectors: make(map[string]Detector)}
}

// Register registers a detector.
func (r *DetectorRegistry) Register(detector Detector) {
	if _, exists := r.detectors[detector.Name()]; !exists {
		r.order = append(r.order, detector.Name())
	}
	r.detectors[detector.Name()] = detector
}

// Get retrieves a detector by name.
func (r *DetectorRegistry) Get(name string) Detector {
	return r.detectors[name]
}

// List returns all registered detector names in registration order.
func (r *DetectorRegistry) List() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Engine runs a set of detectors over one scene and aggregates whatever
// subset succeeds. The detector families are independent: a panic or error
// in one is converted into a warning and never suppresses the others.
type Engine struct {
	registry *DetectorRegistry
	config   Config
}

// NewEngine creates an engine with the three standard detectors (anchor,
// flow, alignment) and default configuration.
func NewEngine() *Engine {
	e := &Engine{registry: NewRegistry(), config: DefaultConfig()}
	e.registry.Register(NewAnchorDetector())
	e.registry.Register(NewFlowDetector())
	e.registry.Register(NewAlignmentDetector())
	return e
}

// Configure sets the configuration on the engine and every registered
// detector.
func (e *Engine) Configure(config Config) error {
	e.config = config
	for _, name := range e.registry.List() {
		if err := e.registry.Get(name).Configure(config); err != nil {
			return fmt.Errorf("configuring %s detector: %w", name, err)
		}
	}
	return nil
}

// Detectors returns the engine's registry.
func (e *Engine) Detectors() *DetectorRegistry {
	return e.registry
}

// Detect runs every registered detector and returns the flat, unordered
// relationship list plus warnings for detectors that failed.
func (e *Engine) Detect(scene *model.Scene) ([]Relationship, []string) {
	return e.DetectNamed(scene, e.registry.List())
}

// DetectNamed runs only the named detectors. Unknown names are reported as
// warnings. Callers use this to select a degraded subset (e.g. clustering
// only) when the scene is too large for the O(n^2) families.
func (e *Engine) DetectNamed(scene *model.Scene, names []string) ([]Relationship, []string) {
	var relationships []Relationship
	var warnings []string

	for _, name := range names {
		d := e.registry.Get(name)
		if d == nil {
			warnings = append(warnings, fmt.Sprintf("unknown detector %q", name))
			continue
		}

		found, err := safeDetect(d, scene)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s detection failed: %v", name, err))
			continue
		}
		relationships = append(relationships, found...)
	}

	return relationships, warnings
}

// safeDetect invokes a detector, converting a panic into an error so one bad
// input never aborts the caller's pipeline.
func safeDetect(d Detector, scene *model.Scene) (found []Relationship, err error) {
	defer func() {
		if r := recover(); r != nil {
			found = nil
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return d.Detect(scene)
}
