package commands

import (
	"github.com/spf13/cobra"

	"sealbox/internal/app"
)

var (
	keyB64 string
	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "sealbox",
		Short: "Authenticated encryption of messages into dot-delimited tokens",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(keyB64)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&keyB64, "key", "k", "", "secret key, base64 (default $SEALBOX_KEY)")

	root.AddCommand(keygenCmd(), encryptCmd(), decryptCmd())
	return root.Execute()
}
