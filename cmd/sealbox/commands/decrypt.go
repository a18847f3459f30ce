package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// decrypt <token>: open a token and print the recovered message.
func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <token>",
		Short: "Open a token and print the message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := appCtx.Encrypter.Decrypt(args[0], nil)
			if err != nil {
				return err
			}
			fmt.Println(string(message))
			return nil
		},
	}
}
