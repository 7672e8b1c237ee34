package signature

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"signhub/cmd/client/cmd/output"
	"signhub/cmd/client/cmd/types"
)

var errNoMessage = errors.New("message is required: pass it as an argument or pipe it on stdin")

func NewSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <username> [message]",
		Short: "Sign a message with the user's private key",
		Long: `Signs a message on behalf of a registered user. When the message argument is
omitted it is read from stdin, unless stdin is a terminal.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := types.ClientFrom(cmd.Context())
			if err != nil {
				return err
			}

			message, err := readMessage(cmd, args)
			if err != nil {
				return err
			}

			res, err := c.Sign(cmd.Context(), args[0], message)
			if err != nil {
				return fmt.Errorf("sign: %w", err)
			}

			w := cmd.OutOrStdout()
			if output.JSON(cmd) {
				return output.PrintJSON(w, res)
			}

			fmt.Fprintln(w, res.Message)
			output.Field(w, "Signature id", res.SignatureID)
			output.Field(w, "Signature", res.SignatureB64)
			return nil
		},
	}
}

func readMessage(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 2 {
		return args[1], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errNoMessage
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	// A single trailing newline comes from echo or heredocs and is not part of the message.
	message := strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	if message == "" {
		return "", errNoMessage
	}
	return message, nil
}
