package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/piwi3910/atlaspack/internal/project"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage reusable project templates",
	}

	cmd.AddCommand(newTemplateListCmd())
	cmd.AddCommand(newTemplateSaveCmd())
	cmd.AddCommand(newTemplateDeleteCmd())
	cmd.AddCommand(newTemplateApplyCmd())

	return cmd
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}
			if len(store.Templates) == 0 {
				cmd.Println("no templates saved")
				return nil
			}
			for _, t := range store.Templates {
				cmd.Printf("%s  %-20s  %d sprites  %s\n", t.ID, t.Name, len(t.Sprites), t.Description)
			}
			return nil
		},
	}
}

func newTemplateSaveCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "save <project-file> <name>",
		Short: "Save a project's sprites and settings as a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.LoadProject(args[0])
			if err != nil {
				return err
			}

			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}
			tmpl := model.NewProjectTemplate(args[1], description, p.Sprites, p.Settings)
			store.Add(tmpl)

			if err := project.SaveDefaultTemplates(store); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Infof("saved template %q (%s)", tmpl.Name, tmpl.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "template description")
	return cmd
}

func newTemplateDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <template-id>",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}
			if !store.Remove(args[0]) {
				return fmt.Errorf("no template with ID %q", args[0])
			}
			if err := project.SaveDefaultTemplates(store); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Infof("deleted template %s", args[0])
			return nil
		},
	}
}

func newTemplateApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <template-id> <project-file>",
		Short: "Create a new project file from a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}
			tmpl, ok := store.Find(args[0])
			if !ok {
				return fmt.Errorf("no template with ID %q", args[0])
			}

			p := tmpl.ApplyToProject()
			if err := project.SaveProject(args[1], p); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Infof("created project %s from template %q", args[1], tmpl.Name)
			return nil
		},
	}
}
