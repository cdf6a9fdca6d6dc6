package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ethbridge-poc/canister-address/address"
	"github.com/ethbridge-poc/canister-address/common"
)

var addressCmd = &cobra.Command{
	Use:   "address [hex-public-key]",
	Short: "Derive addresses from a SEC1 public key",
	Long: `Derive the address controlled by a 33-byte compressed or 65-byte uncompressed
secp256k1 public key, given as hex with or without a 0x prefix. No network
access is needed.`,
	Args: cobra.ExactArgs(1),
	RunE: runAddress,
}

type chainFlags struct {
	chain  string
	all    bool
	asJSON bool
}

type chainAddress struct {
	Chain   common.Chain `json:"chain"`
	Address string       `json:"address"`
}

var addressFlags chainFlags

func init() {
	rootCmd.AddCommand(addressCmd)
	addChainFlags(addressCmd, &addressFlags)
}

func addChainFlags(cmd *cobra.Command, f *chainFlags) {
	cmd.Flags().StringVarP(&f.chain, "chain", "c", common.Ethereum.String(), "Chain to render the address for")
	cmd.Flags().BoolVarP(&f.all, "all", "a", false, "Render the address for every supported chain")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print addresses as JSON")
}

func runAddress(cmd *cobra.Command, args []string) error {
	pubKey, err := address.DecodeHexPublicKey(args[0])
	if err != nil {
		return err
	}
	addrs, err := deriveAddresses(pubKey, addressFlags)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if addressFlags.asJSON {
		return writeJSON(out, addrs)
	}
	printAddresses(out, addrs, addressFlags)
	return nil
}

func deriveAddresses(pubKey []byte, f chainFlags) ([]chainAddress, error) {
	chains := common.AllChains()
	if !f.all {
		chain, err := common.FromString(f.chain)
		if err != nil {
			return nil, err
		}
		chains = []common.Chain{chain}
	}

	addrs := make([]chainAddress, 0, len(chains))
	for _, chain := range chains {
		addr, err := address.GetAddress(pubKey, chain)
		if err != nil {
			return nil, fmt.Errorf("failed to derive %s address: %w", chain, err)
		}
		addrs = append(addrs, chainAddress{Chain: chain, Address: addr})
	}
	return addrs, nil
}

func printAddresses(out io.Writer, addrs []chainAddress, f chainFlags) {
	if !f.all {
		fmt.Fprintf(out, "address → %s\n", addrs[0].Address)
		return
	}
	for _, a := range addrs {
		fmt.Fprintf(out, "%-13s %s\n", a.Chain, a.Address)
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
