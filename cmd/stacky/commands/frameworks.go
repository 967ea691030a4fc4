package commands

import "github.com/spf13/cobra"

func (c *CLI) newFrameworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frameworks",
		Short: "List frameworks with reference docs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			c.app.Frameworks(cmd.Context())
		},
	}
}
