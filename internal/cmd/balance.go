package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ethbridge-poc/canister-address/address"
	"github.com/ethbridge-poc/canister-address/common"
	"github.com/ethbridge-poc/canister-address/internal/ethrpc"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Look up the canister address on an Ethereum node",
	Long: `Derive the canister's Ethereum address and print the network, balance and
nonce reported by the JSON-RPC node given with --eth-rpc.`,
	Args: cobra.NoArgs,
	RunE: runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rpcURL, err := cfg.EthRPC()
	if err != nil {
		return err
	}
	client, err := connectCanister(cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	publicKeyHex, err := client.PublicKey(ctx)
	if err != nil {
		return err
	}
	addr, err := address.GetEVMAddress(publicKeyHex)
	if err != nil {
		return err
	}

	node, err := ethrpc.Dial(ctx, rpcURL)
	if err != nil {
		return err
	}
	defer node.Close()

	chainID, err := node.ChainID(ctx)
	if err != nil {
		return err
	}
	balance, err := node.Balance(ctx, addr)
	if err != nil {
		return err
	}
	nonce, err := node.Nonce(ctx, addr)
	if err != nil {
		return err
	}

	network, symbol := "unknown", "ETH"
	if chain, err := common.FromEvmID(chainID); err == nil {
		network = chain.String()
		symbol, _ = chain.NativeSymbol()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "network → %s (chainId: %s)\n", network, chainID)
	fmt.Fprintf(out, "address → %s\n", addr)
	fmt.Fprintf(out, "balance → %s %s\n", ethrpc.FormatEther(balance), symbol)
	fmt.Fprintf(out, "nonce → %d\n", nonce)
	return nil
}
