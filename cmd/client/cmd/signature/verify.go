package signature

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"signhub/cmd/client/cmd/output"
	"signhub/cmd/client/cmd/types"
	"signhub/internal/app/client"
)

// ErrInvalid makes the process exit non-zero for an invalid or unknown signature.
var ErrInvalid = errors.New("signature is not valid")

func NewVerifyCmd() *cobra.Command {
	var req client.VerifyRequest

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature by id, or a text and signature pair",
		Example: `  signhub verify --id 3f1c2a9e-6f0b-4e53-9a55-2b8f0f7d1c44
  signhub verify --text "hello" --signature "kQ3x..."`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := types.ClientFrom(cmd.Context())
			if err != nil {
				return err
			}

			res, err := c.Verify(cmd.Context(), req)
			if err != nil && !isVerdict(err) {
				return fmt.Errorf("verify: %w", err)
			}

			w := cmd.OutOrStdout()
			if output.JSON(cmd) {
				if perr := output.PrintJSON(w, res); perr != nil {
					return perr
				}
			} else {
				output.Verdict(w, res)
			}

			if err != nil || !res.IsValid {
				return ErrInvalid
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.SignatureID, "id", "", "id of a stored signature")
	cmd.Flags().StringVar(&req.OriginalText, "text", "", "signed text, for offline verification")
	cmd.Flags().StringVar(&req.Signature, "signature", "", "base64 signature of --text")
	cmd.MarkFlagsRequiredTogether("text", "signature")
	cmd.MarkFlagsOneRequired("id", "text")

	return cmd
}

// isVerdict reports whether err still carries a verification result. An unknown signature
// id is answered with 404 and is_valid=false; every other error status is a failure.
func isVerdict(err error) bool {
	var apiErr *client.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
