package proxima

// AnalyzeOptions holds configuration for scene analysis.
type AnalyzeOptions struct {
	// Clustering
	proximityThreshold         float64
	minGroupSize               int
	respectContainerBoundaries bool
	resolveOverlaps            bool

	// Candidate filtering
	atomicContainers map[string]bool

	// Relationship detection
	detectors           []string // nil means all registered detectors
	confidenceThreshold float64
}

// defaultOptions returns the default analysis options.
func defaultOptions() AnalyzeOptions {
	return AnalyzeOptions{
		proximityThreshold:         50,
		minGroupSize:               2,
		respectContainerBoundaries: true,
		resolveOverlaps:            false,
		atomicContainers:           nil,
		detectors:                  nil,
		confidenceThreshold:        0.5,
	}
}

// clone creates a deep copy of AnalyzeOptions.
func (o AnalyzeOptions) clone() AnalyzeOptions {
	newOpts := AnalyzeOptions{
		proximityThreshold:         o.proximityThreshold,
		minGroupSize:               o.minGroupSize,
		respectContainerBoundaries: o.respectContainerBoundaries,
		resolveOverlaps:            o.resolveOverlaps,
		confidenceThreshold:        o.confidenceThreshold,
	}

	if o.atomicContainers != nil {
		newOpts.atomicContainers = make(map[string]bool, len(o.atomicContainers))
		for id := range o.atomicContainers {
			newOpts.atomicContainers[id] = true
		}
	}
	if o.detectors != nil {
		newOpts.detectors = make([]string, len(o.detectors))
		copy(newOpts.detectors, o.detectors)
	}

	return newOpts
}
