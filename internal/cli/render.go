package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/proxima"
	"github.com/tsawler/proxima/render"
)

func newRenderCmd() *cobra.Command {
	var (
		configPath string
		output     string
		noLabels   bool
	)

	cmd := &cobra.Command{
		Use:   "render <scene file>",
		Short: "Render an analysis overlay as PNG",
		Long: `Render analyzes a scene and draws the clusters and relationship patterns
over a scene-sized canvas for visual inspection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			track := newProgress(logger)

			s, err := loadScene(args[0])
			if err != nil {
				return err
			}

			analyzer := proxima.NewAnalyzer(s)
			if configPath != "" {
				config, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				analyzer = config.apply(analyzer)
			}

			result, warnings, err := analyzer.Analyze()
			if err != nil {
				return err
			}
			for _, w := range warnings {
				logger.Warn(w.String())
			}

			opts := render.DefaultOptions()
			opts.DrawLabels = !noLabels
			overlay, err := render.NewOverlay(s, opts)
			if err != nil {
				return err
			}
			overlay.DrawClusters(result.Clusters)
			overlay.DrawRelationships(result.Relationships)

			if err := overlay.SavePNG(output); err != nil {
				return err
			}
			track.done(fmt.Sprintf("Wrote %s", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&output, "output", "o", "overlay.png", "output PNG file")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "omit confidence labels")

	return cmd
}
