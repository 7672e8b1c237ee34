package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"signhub/internal/app/client"
)

// JSON reports whether --json was passed to any command in the chain.
func JSON(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("json")
	return err == nil && v
}

func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func Field(w io.Writer, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "%-18s %s\n", color.New(color.Bold).Sprint(name+":"), value)
}

func Verdict(w io.Writer, res *client.VerifyResult) {
	if res.IsValid {
		fmt.Fprintln(w, color.GreenString("✔ VALID"))
	} else {
		fmt.Fprintln(w, color.RedString("✘ INVALID"))
	}
	Field(w, "Message", res.Message)
	Field(w, "Signer", res.Signer)
	Field(w, "Algorithm", res.Algorithm)
	Field(w, "Verification time", res.VerificationTime)
}
