// Package proxima provides a fluent API for analyzing the spatial structure
// of 2D scenes: proximity clustering, stacking-direction classification, and
// relationship pattern detection.
//
// Basic usage:
//
//	clusters, warnings, err := proxima.FromSnapshot("scene.json").Clusters()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", proxima.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := proxima.NewAnalyzer(scene).
//	    ProximityThreshold(80).
//	    MinGroupSize(3).
//	    Analyze()
//
// For advanced use cases, the lower-level proximity and relations packages
// are also available.
package proxima

import (
	"github.com/tsawler/proxima/model"
	"github.com/tsawler/proxima/scene"
)

// NewAnalyzer creates an Analyzer for the given scene with default options.
// The scene is treated as a read-only snapshot and is never mutated.
//
// Example:
//
//	clusters, warnings, err := proxima.NewAnalyzer(s).Clusters()
func NewAnalyzer(s *model.Scene) *Analyzer {
	return &Analyzer{
		scene:   s,
		options: defaultOptions(),
	}
}

// FromSnapshot creates an Analyzer that loads a JSON scene snapshot when a
// terminal operation runs. Load errors surface from the terminal call.
//
// Example:
//
//	result, warnings, err := proxima.FromSnapshot("scene.json").Analyze()
func FromSnapshot(filename string) *Analyzer {
	return &Analyzer{
		load:    func() (*model.Scene, error) { return scene.Load(filename) },
		options: defaultOptions(),
	}
}

// FromSVG creates an Analyzer that loads an SVG export when a terminal
// operation runs.
//
// Example:
//
//	result, warnings, err := proxima.FromSVG("frame.svg").Analyze()
func FromSVG(filename string) *Analyzer {
	return &Analyzer{
		load:    func() (*model.Scene, error) { return scene.OpenSVG(filename) },
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	s := proxima.Must(scene.Load("scene.json"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustAnalyze is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	clusters := proxima.MustAnalyze(proxima.NewAnalyzer(s).Clusters())
func MustAnalyze[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
