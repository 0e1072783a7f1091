package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/piwi3910/atlaspack/internal/project"
)

func newLibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the shared sprite library",
	}

	cmd.AddCommand(newLibraryListCmd())
	cmd.AddCommand(newLibraryAddCmd())
	cmd.AddCommand(newLibraryRemoveCmd())
	cmd.AddCommand(newLibraryImportCmd())

	return cmd
}

func newLibraryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sprites in the shared library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, _, err := project.LoadOrCreateLibrary()
			if err != nil {
				return err
			}
			if len(lib.Sprites) == 0 {
				cmd.Println("library is empty")
				return nil
			}
			for _, s := range lib.Sprites {
				cmd.Printf("%s  %-20s  %dx%d\n", s.ID, s.Name, s.Width, s.Height)
			}
			return nil
		},
	}
}

func newLibraryAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <width> <height>",
		Short: "Add a sprite to the shared library",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := strconv.Atoi(args[1])
			if err != nil || w <= 0 {
				return fmt.Errorf("invalid width %q", args[1])
			}
			h, err := strconv.Atoi(args[2])
			if err != nil || h <= 0 {
				return fmt.Errorf("invalid height %q", args[2])
			}

			lib, path, err := project.LoadOrCreateLibrary()
			if err != nil {
				return err
			}
			sprite := model.NewSprite(args[0], w, h)
			lib.Add(sprite)

			if err := project.SaveLibrary(path, lib); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Infof("added sprite %q (%s)", sprite.Name, sprite.ID)
			return nil
		},
	}
}

func newLibraryRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <sprite-id>",
		Short: "Remove a sprite from the shared library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, path, err := project.LoadOrCreateLibrary()
			if err != nil {
				return err
			}
			if !lib.Remove(args[0]) {
				return fmt.Errorf("no sprite with ID %q", args[0])
			}
			if err := project.SaveLibrary(path, lib); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Infof("removed sprite %s", args[0])
			return nil
		},
	}
}

func newLibraryImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a library file into the shared library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, path, err := project.LoadOrCreateLibrary()
			if err != nil {
				return err
			}
			before := len(lib.Sprites)

			merged, err := project.ImportLibrary(args[0], lib)
			if err != nil {
				return err
			}
			if err := project.SaveLibrary(path, merged); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Infof("imported %d sprites", len(merged.Sprites)-before)
			return nil
		},
	}
}
