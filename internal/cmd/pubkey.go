package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ethbridge-poc/canister-address/address"
)

var pubkeyCmd = &cobra.Command{
	Use:   "pubkey",
	Short: "Fetch the canister public key and derive its address",
	Long: `Call the canister's public_key method once and print the returned key together
with the address it controls.`,
	Args: cobra.NoArgs,
	RunE: runPubkey,
}

var pubkeyFlags chainFlags

type pubkeyOutput struct {
	PublicKey string         `json:"public_key"`
	Addresses []chainAddress `json:"addresses"`
}

func init() {
	rootCmd.AddCommand(pubkeyCmd)
	addChainFlags(pubkeyCmd, &pubkeyFlags)
}

func runPubkey(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := connectCanister(cfg)
	if err != nil {
		return err
	}

	publicKeyHex, err := client.PublicKey(cmd.Context())
	if err != nil {
		return err
	}
	pubKey, err := address.DecodeHexPublicKey(publicKeyHex)
	if err != nil {
		return err
	}
	addrs, err := deriveAddresses(pubKey, pubkeyFlags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if pubkeyFlags.asJSON {
		return writeJSON(out, pubkeyOutput{PublicKey: publicKeyHex, Addresses: addrs})
	}
	fmt.Fprintf(out, "public_key → %s\n", publicKeyHex)
	printAddresses(out, addrs, pubkeyFlags)
	return nil
}
