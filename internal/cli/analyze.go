package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tsawler/proxima"
	"github.com/tsawler/proxima/model"
	"github.com/tsawler/proxima/scene"
)

// resultEnvelope is the JSON document written by the analyze command. The run
// ID and timestamp live here rather than in the engine so analysis results
// stay deterministic.
type resultEnvelope struct {
	RunID         string             `json:"runId"`
	GeneratedAt   time.Time          `json:"generatedAt"`
	Source        string             `json:"source"`
	Clusters      []clusterJSON      `json:"clusters"`
	Relationships []relationshipJSON `json:"relationships"`
	Warnings      []string           `json:"warnings,omitempty"`
}

type clusterJSON struct {
	Members    []string        `json:"members"`
	Bounds     boundsJSON      `json:"bounds"`
	Direction  model.Direction `json:"direction"`
	Confidence float64         `json:"confidence"`
}

type relationshipJSON struct {
	Kind       string   `json:"kind"`
	Confidence float64  `json:"confidence"`
	ElementIDs []string `json:"elementIds"`
}

type boundsJSON struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func newAnalyzeCmd() *cobra.Command {
	var (
		configPath string
		threshold  float64
		minGroup   int
		output     string
	)

	cmd := &cobra.Command{
		Use:   "analyze <scene file>",
		Short: "Analyze a scene's spatial structure",
		Long: `Analyze loads a scene from a JSON snapshot or SVG export, runs proximity
clustering and relationship detection, and writes the result as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			track := newProgress(logger)

			analyzer, err := analyzerForFile(args[0])
			if err != nil {
				return err
			}
			if configPath != "" {
				config, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				analyzer = config.apply(analyzer)
			}
			if cmd.Flags().Changed("threshold") {
				analyzer = analyzer.ProximityThreshold(threshold)
			}
			if cmd.Flags().Changed("min-group") {
				analyzer = analyzer.MinGroupSize(minGroup)
			}

			result, warnings, err := analyzer.Analyze()
			if err != nil {
				return err
			}
			for _, w := range warnings {
				logger.Warn(w.String())
			}
			track.done(fmt.Sprintf("Found %d clusters, %d relationships",
				len(result.Clusters), len(result.Relationships)))

			return writeEnvelope(envelope(args[0], result, warnings), output)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 50, "proximity threshold in scene units")
	cmd.Flags().IntVarP(&minGroup, "min-group", "g", 2, "minimum cluster size")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// analyzerForFile picks the loader by file extension.
func analyzerForFile(path string) (*proxima.Analyzer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return proxima.FromSnapshot(path), nil
	case ".svg":
		return proxima.FromSVG(path), nil
	default:
		return nil, fmt.Errorf("unsupported scene format %q (want .json or .svg)", filepath.Ext(path))
	}
}

func envelope(source string, result *proxima.Result, warnings []proxima.Warning) resultEnvelope {
	env := resultEnvelope{
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		Source:        source,
		Clusters:      make([]clusterJSON, 0, len(result.Clusters)),
		Relationships: make([]relationshipJSON, 0, len(result.Relationships)),
	}

	for _, c := range result.Clusters {
		env.Clusters = append(env.Clusters, clusterJSON{
			Members: c.MemberIDs(),
			Bounds: boundsJSON{
				X: c.Bounds.X, Y: c.Bounds.Y,
				Width: c.Bounds.Width, Height: c.Bounds.Height,
			},
			Direction:  c.Direction,
			Confidence: c.Confidence,
		})
	}
	for _, rel := range result.Relationships {
		env.Relationships = append(env.Relationships, relationshipJSON{
			Kind:       rel.Kind().String(),
			Confidence: rel.Confidence(),
			ElementIDs: rel.ElementIDs(),
		})
	}
	for _, w := range warnings {
		env.Warnings = append(env.Warnings, w.String())
	}

	return env
}

func writeEnvelope(env resultEnvelope, output string) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

// loadScene resolves a scene file directly, for commands that need the scene
// itself rather than an analyzer.
func loadScene(path string) (*model.Scene, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return scene.Load(path)
	case ".svg":
		return scene.OpenSVG(path)
	default:
		return nil, fmt.Errorf("unsupported scene format %q (want .json or .svg)", filepath.Ext(path))
	}
}
