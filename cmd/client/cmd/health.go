package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"signhub/cmd/client/cmd/types"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server and its storage are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := types.ClientFrom(cmd.Context())
			if err != nil {
				return err
			}

			if err := c.HealthCheck(cmd.Context()); err != nil {
				return fmt.Errorf("health check: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("OK"))
			return nil
		},
	}
}
