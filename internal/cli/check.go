package cli

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/atlas"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <layout.json>",
		Short: "Verify a layout file contains no overlapping placements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			layout, err := loadLayout(args[0])
			if err != nil {
				return err
			}
			if err := atlas.Verify(layout); err != nil {
				return err
			}
			logger.Infof("layout ok: %d placements in %dx%d atlas, no overlaps",
				len(layout.Placements), layout.Width, layout.Height)
			return nil
		},
	}
}
