package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"signhub/cmd/client/cmd/output"
	"signhub/cmd/client/cmd/types"
)

func NewRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username>",
		Short: "Register a user and generate its key pair",
		Long: `Registers a new user on the server. The server generates a 2048-bit RSA key
pair for the user and answers with a welcome message signed by the new key.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := types.ClientFrom(cmd.Context())
			if err != nil {
				return err
			}

			res, err := c.Register(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}

			w := cmd.OutOrStdout()
			if output.JSON(cmd) {
				return output.PrintJSON(w, res)
			}

			fmt.Fprintln(w, res.Message)
			output.Field(w, "Username", res.Username)
			output.Field(w, "Welcome message", res.WelcomeMessage)
			output.Field(w, "Signature", res.Signature)
			return nil
		},
	}
}
