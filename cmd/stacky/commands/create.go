package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stacky/internal/adapters/wizard"
	"go.trai.ch/stacky/internal/app"
)

func (c *CLI) newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [project-name]",
		Short: "Create a new project",
		Long: "Create a new project. Preferences are asked interactively unless --preferences " +
			"names a YAML or JSON file. Without a project name the project is created in the " +
			"projects directory itself.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectName := "."
			if len(args) == 1 {
				projectName = args[0]
			}
			prefsFile, _ := cmd.Flags().GetString("preferences")
			yes, _ := cmd.Flags().GetBool("yes")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			opts := app.CreateOptions{Yes: yes, DryRun: dryRun}
			if prefsFile != "" {
				prefs, err := wizard.LoadFile(prefsFile)
				if err != nil {
					return err
				}
				opts.Preferences = prefs
			}

			return c.app.Create(cmd.Context(), projectName, opts)
		},
	}
	cmd.Flags().StringP("preferences", "p", "", "Read preferences from a YAML or JSON file instead of prompting")
	cmd.Flags().BoolP("yes", "y", false, "Run the proposed commands without asking")
	cmd.Flags().Bool("dry-run", false, "Print the proposed commands without running them")
	return cmd
}
