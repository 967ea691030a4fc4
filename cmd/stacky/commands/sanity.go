package commands

import "github.com/spf13/cobra"

func (c *CLI) newSanityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanity",
		Short: "Check that the model backend is reachable and answering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Sanity(cmd.Context())
			return err
		},
	}
}
