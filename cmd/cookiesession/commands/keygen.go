package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cookiesession/pkg/signer"
)

func keygenCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Print a random secret key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := signer.GenerateKey(size)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "bytes", "n", signer.DefaultKeySize, "number of random bytes")
	return cmd
}
