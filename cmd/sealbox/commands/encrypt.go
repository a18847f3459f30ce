package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealbox/internal/crypto"
)

// encrypt <message>: seal a message and print the resulting token.
func encryptCmd() *cobra.Command {
	var nonceB64 string

	cmd := &cobra.Command{
		Use:   "encrypt <message>",
		Short: "Seal a message into a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var nonce []byte
			if nonceB64 != "" {
				n, err := crypto.FromB64(nonceB64)
				if err != nil {
					return fmt.Errorf("decode nonce: %w", err)
				}
				nonce = n
			}

			token, err := appCtx.Encrypter.Encrypt([]byte(args[0]), nonce, nil)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&nonceB64, "nonce", "", "nonce, base64 (random if omitted)")
	return cmd
}
