package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealbox/internal/crypto"
)

// keygen: generate a fresh random key and print it base64 encoded.
func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a fresh random key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			fmt.Println(crypto.B64(key))
			return nil
		},
	}
}
