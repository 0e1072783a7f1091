package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/piwi3910/atlaspack/internal/project"
)

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage packing settings presets",
	}

	cmd.AddCommand(newPresetListCmd())
	cmd.AddCommand(newPresetExportCmd())
	cmd.AddCommand(newPresetImportCmd())

	return cmd
}

func newPresetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			custom, err := project.LoadCustomPresetsFromDefault()
			if err != nil {
				return err
			}

			printPreset := func(p model.SettingsPreset, origin string) {
				pow2 := "no"
				if p.Settings.PowerOfTwo {
					pow2 = "yes"
				}
				cmd.Printf("%-20s  spacing=%d  pow2=%s  min-width=%d  (%s)\n",
					p.Name, p.Settings.Spacing, pow2, p.Settings.MinWidth, origin)
			}

			for _, p := range model.BuiltInPresets() {
				printPreset(p, "built-in")
			}
			for _, p := range custom {
				printPreset(p, "custom")
			}
			return nil
		},
	}
}

func newPresetExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <name> <file>",
		Short: "Export a preset to a JSON file for sharing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			custom, err := project.LoadCustomPresetsFromDefault()
			if err != nil {
				return err
			}
			p, ok := model.FindPreset(args[0], custom)
			if !ok {
				return fmt.Errorf("unknown preset %q", args[0])
			}
			if err := project.ExportPreset(args[1], p); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Infof("exported preset %q to %s", p.Name, args[1])
			return nil
		},
	}
}

func newPresetImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a preset from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, err := project.ImportPreset(args[0])
			if err != nil {
				return err
			}

			custom, err := project.LoadCustomPresetsFromDefault()
			if err != nil {
				return err
			}
			for _, p := range custom {
				if p.Name == preset.Name {
					return fmt.Errorf("a preset named %q already exists", preset.Name)
				}
			}
			custom = append(custom, preset)

			if err := project.SaveCustomPresetsToDefault(custom); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Infof("imported preset %q", preset.Name)
			return nil
		},
	}
}
