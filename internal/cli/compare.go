package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/atlas"
)

func newCompareCmd() *cobra.Command {
	var opts packOpts

	cmd := &cobra.Command{
		Use:   "compare <manifest>",
		Short: "Compare packing results across settings variations",
		Long: `Pack the same sprites under several settings variations and print
the resulting atlas sizes side by side.

Example:
  atlaspack compare sheet.csv --spacing 2 --power-of-two`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd, &opts)
			if err != nil {
				return err
			}

			if !isManifest(args[0]) {
				return fmt.Errorf("compare expects a CSV or XLSX manifest")
			}
			result := importManifest(args[0])
			logger := loggerFromContext(cmd.Context())
			for _, w := range result.Warnings {
				logger.Warn(w)
			}
			for _, e := range result.Errors {
				logger.Error(e)
			}
			if len(result.Sprites) == 0 {
				return fmt.Errorf("manifest %q produced no sprites", args[0])
			}

			scenarios := atlas.BuildDefaultScenarios(settings)
			results := atlas.CompareScenarios(scenarios, result.Sprites)

			cmd.Printf("%-20s  %-12s  %-10s  %s\n", "Scenario", "Atlas", "Efficiency", "Waste")
			for _, r := range results {
				if r.Err != nil {
					cmd.Printf("%-20s  error: %v\n", r.Scenario.Name, r.Err)
					continue
				}
				cmd.Printf("%-20s  %dx%-8d  %8.1f%%  %5.1f%%\n",
					r.Scenario.Name, r.Width, r.Height, r.Efficiency, r.WastePercent)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.spacing, "spacing", 0, "minimum gap between sprites in px")
	cmd.Flags().BoolVar(&opts.powerOfTwo, "power-of-two", false, "round atlas dimensions up to powers of two")
	cmd.Flags().IntVar(&opts.minWidth, "min-width", 0, "minimum atlas width in px")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "settings preset to apply")

	return cmd
}
