package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ethbridge-poc/canister-address/internal/canister"
)

var principalCmd = &cobra.Command{
	Use:   "principal [principal]",
	Short: "Encode a principal as the bytes32 used by the bridge contract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := canister.PrincipalToBytes32(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "0x%s\n", hex.EncodeToString(b[:]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(principalCmd)
}
