package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/atlas"
	"github.com/piwi3910/atlaspack/internal/importer"
	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/piwi3910/atlaspack/internal/project"
)

// packOpts holds the command-line flags for the pack command.
type packOpts struct {
	spacing    int    // minimum gap between sprites in px
	powerOfTwo bool   // round atlas dimensions up to powers of two
	minWidth   int    // floor on the atlas width in px
	preset     string // name of a settings preset to apply
	optimize   bool   // run the genetic order search
	output     string // output PNG path (skipped if empty)
	layoutPath string // layout JSON output path
}

func newPackCmd() *cobra.Command {
	var opts packOpts

	cmd := &cobra.Command{
		Use:   "pack <sprites...>",
		Short: "Pack sprite images or a manifest into an atlas",
		Long: `Pack sprite images into a texture atlas.

Arguments are either image files (PNG, JPEG, GIF) or a single CSV/XLSX
manifest listing sprite names and dimensions. Packing a manifest
produces a layout only; packing images also composes the atlas PNG.

Examples:
  atlaspack pack sprites/*.png -o atlas.png --layout atlas.json
  atlaspack pack sheet.csv --layout atlas.json
  atlaspack pack sprites/*.png --preset "Tileset" -o atlas.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd, &opts)
			if err != nil {
				return err
			}
			return runPack(cmd.Context(), &opts, settings, args)
		},
	}

	cmd.Flags().IntVar(&opts.spacing, "spacing", 0, "minimum gap between sprites in px")
	cmd.Flags().BoolVar(&opts.powerOfTwo, "power-of-two", false, "round atlas dimensions up to powers of two")
	cmd.Flags().IntVar(&opts.minWidth, "min-width", 0, "minimum atlas width in px")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "settings preset to apply")
	cmd.Flags().BoolVar(&opts.optimize, "optimize", false, "search sprite orderings for a smaller atlas (slower)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "atlas PNG output path")
	cmd.Flags().StringVar(&opts.layoutPath, "layout", "", "layout JSON output path")

	return cmd
}

// resolveSettings builds the effective packing settings: application
// defaults, then an optional preset, then any explicitly set flags.
func resolveSettings(cmd *cobra.Command, opts *packOpts) (model.AtlasSettings, error) {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return model.AtlasSettings{}, fmt.Errorf("cannot load application config: %w", err)
	}
	settings := model.DefaultSettings()
	cfg.ApplyToSettings(&settings)

	if opts.preset != "" {
		custom, err := project.LoadCustomPresetsFromDefault()
		if err != nil {
			return model.AtlasSettings{}, fmt.Errorf("cannot load presets: %w", err)
		}
		p, ok := model.FindPreset(opts.preset, custom)
		if !ok {
			return model.AtlasSettings{}, fmt.Errorf("unknown preset %q", opts.preset)
		}
		settings = p.Settings
	}

	if cmd.Flags().Changed("spacing") {
		settings.Spacing = opts.spacing
	}
	if cmd.Flags().Changed("power-of-two") {
		settings.PowerOfTwo = opts.powerOfTwo
	}
	if cmd.Flags().Changed("min-width") {
		settings.MinWidth = opts.minWidth
	}
	return settings, nil
}

func runPack(ctx context.Context, opts *packOpts, settings model.AtlasSettings, args []string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if isManifest(args[0]) {
		if len(args) > 1 {
			return fmt.Errorf("a manifest must be the only argument")
		}
		if opts.output != "" {
			return fmt.Errorf("cannot compose an atlas image from a manifest; use --layout instead")
		}

		result := importManifest(args[0])
		for _, w := range result.Warnings {
			logger.Warn(w)
		}
		for _, e := range result.Errors {
			logger.Error(e)
		}
		if len(result.Sprites) == 0 {
			return fmt.Errorf("manifest %q produced no sprites", args[0])
		}
		logger.Debugf("imported %d sprites from %s", len(result.Sprites), args[0])

		layout, err := buildAndWrite(opts, settings, result.Sprites)
		if err != nil {
			return err
		}
		prog.done(packSummary(layout))
		return nil
	}

	sprites, images, err := atlas.LoadSprites(args)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %d sprite images", len(sprites))

	layout, err := buildAndWrite(opts, settings, sprites)
	if err != nil {
		return err
	}
	if opts.output != "" {
		if err := atlas.WritePNG(opts.output, layout, images); err != nil {
			return err
		}
		logger.Infof("wrote atlas image %s", opts.output)
	}
	prog.done(packSummary(layout))
	return nil
}

// buildAndWrite packs the sprites and writes the layout file when
// requested.
func buildAndWrite(opts *packOpts, settings model.AtlasSettings, sprites []model.Sprite) (model.AtlasLayout, error) {
	build := atlas.Build
	if opts.optimize {
		build = atlas.OptimizeOrder
	}
	layout, err := build(settings, sprites)
	if err != nil {
		return model.AtlasLayout{}, err
	}
	if opts.layoutPath != "" {
		if err := saveLayout(opts.layoutPath, layout); err != nil {
			return model.AtlasLayout{}, fmt.Errorf("cannot write layout file: %w", err)
		}
	}
	return layout, nil
}

func packSummary(layout model.AtlasLayout) string {
	return fmt.Sprintf("packed %d sprites into %dx%d atlas (%.1f%% efficiency)",
		len(layout.Placements), layout.Width, layout.Height, layout.Efficiency())
}

// isManifest reports whether the path looks like a sprite manifest
// rather than an image file.
func isManifest(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt", ".xlsx":
		return true
	}
	return false
}

func importManifest(path string) importer.ImportResult {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return importer.ImportExcel(path)
	}
	return importer.ImportCSV(path)
}
