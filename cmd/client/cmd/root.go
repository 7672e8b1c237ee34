package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"signhub/cmd/client/cmd/signature"
	"signhub/cmd/client/cmd/types"
	"signhub/cmd/client/cmd/user"
	"signhub/internal/app/client"
	"signhub/internal/app/client/config"
	"signhub/internal/utils/logger"
)

func NewRootCmd() *cobra.Command {
	var (
		debug     bool
		serverURL string
	)

	rootCmd := &cobra.Command{
		Use:   "signhub",
		Short: "Signhub - RSA signing service client",
		Long: `Signhub registers users with an RSA key pair, signs messages with their
private key and verifies signatures either by stored id or offline against
every registered public key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if serverURL != "" {
				cfg.ServerAddress = serverURL
			}

			var log *slog.Logger
			if debug {
				log = logger.New(cfg.Env)
			} else {
				log = logger.Discard()
			}

			cmd.SetContext(types.WithClient(cmd.Context(), client.NewHTTPClient(cfg, log)))
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log requests and responses")
	rootCmd.PersistentFlags().Bool("json", false, "print raw JSON results")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server address, overrides SIGNHUB_SERVER_ADDRESS")

	rootCmd.AddCommand(
		user.NewRegisterCmd(),
		signature.NewSignCmd(),
		signature.NewVerifyCmd(),
		newHealthCmd(),
	)

	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
