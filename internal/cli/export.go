package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/export"
	"github.com/piwi3910/atlaspack/internal/model"
)

// exportOpts holds the shared flags for the export subcommands.
type exportOpts struct {
	output string // output file path
	name   string // atlas name shown on generated documents
}

func newExportCmd() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate PDF, DXF, XLSX, or label-sheet files from a layout",
		Long: `Export an atlas layout to other formats.

Examples:
  atlaspack export pdf atlas.json -o atlas.pdf
  atlaspack export dxf atlas.json -o atlas.dxf
  atlaspack export xlsx atlas.json -o placements.xlsx
  atlaspack export labels atlas.json -o labels.pdf`,
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "output file path (defaults to the layout name with the format extension)")
	cmd.PersistentFlags().StringVar(&opts.name, "name", "", "atlas name shown on generated documents")

	cmd.AddCommand(exportSubCmd(&opts, "pdf", "Export a layout diagram and placement table as PDF",
		func(path, name string, layout model.AtlasLayout) error {
			return export.WritePDF(path, name, layout)
		}))
	cmd.AddCommand(exportSubCmd(&opts, "dxf", "Export layout rectangles as a DXF drawing",
		func(path, _ string, layout model.AtlasLayout) error {
			return export.WriteDXF(path, layout)
		}))
	cmd.AddCommand(exportSubCmd(&opts, "xlsx", "Export the placement manifest as a spreadsheet",
		func(path, _ string, layout model.AtlasLayout) error {
			return export.WriteXLSX(path, layout)
		}))
	cmd.AddCommand(exportSubCmd(&opts, "labels", "Export QR-coded sprite labels as PDF",
		func(path, _ string, layout model.AtlasLayout) error {
			return export.WriteLabels(path, layout)
		}))

	return cmd
}

func exportSubCmd(opts *exportOpts, format, short string, write func(path, name string, layout model.AtlasLayout) error) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <layout.json>", format),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			layout, err := loadLayout(args[0])
			if err != nil {
				return err
			}

			name := opts.name
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			out := opts.output
			if out == "" {
				base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
				ext := format
				if format == "labels" {
					ext = "labels.pdf"
				}
				out = base + "." + ext
			}

			if err := write(out, name, layout); err != nil {
				return err
			}
			logger.Infof("wrote %s", out)
			return nil
		},
	}
}
