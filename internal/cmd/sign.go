package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ethbridge-poc/canister-address/address"
	"github.com/ethbridge-poc/canister-address/internal/ethsig"
)

var signCmd = &cobra.Command{
	Use:   "sign [digest-hex]",
	Short: "Have the canister sign a 32-byte digest",
	Long: `Send a 32-byte digest (for example the Keccak-256 of an unsigned transaction)
to the canister's sign method. The returned r || s signature is completed with
its recovery id and checked to recover to the canister's address.`,
	Args: cobra.ExactArgs(1),
	RunE: runSign,
}

func init() {
	rootCmd.AddCommand(signCmd)
}

func runSign(cmd *cobra.Command, args []string) error {
	digest, err := address.DecodeHex(args[0])
	if err != nil {
		return fmt.Errorf("invalid digest: %w", err)
	}
	if len(digest) != 32 {
		return fmt.Errorf("digest must be 32 bytes, got %d", len(digest))
	}

	cfg, err := loadConfig()
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
	pubKey, err := address.DecodeHexPublicKey(publicKeyHex)
	if err != nil {
		return err
	}
	signer, err := address.DeriveEVMAddress(pubKey)
	if err != nil {
		return err
	}

	signatureHex, err := client.Sign(ctx, digest)
	if err != nil {
		return err
	}
	rawSig, err := address.DecodeHex(signatureHex)
	if err != nil {
		return fmt.Errorf("canister returned invalid signature hex: %w", err)
	}

	sig, err := ethsig.RecoverableSignature(digest, rawSig, pubKey)
	if err != nil {
		return err
	}
	if err := ethsig.VerifyAddress(digest, sig, signer); err != nil {
		return err
	}
	logrus.WithField("signer", signer).Info("signature verified")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "address → %s\n", signer)
	fmt.Fprintf(out, "signature → 0x%s\n", hex.EncodeToString(sig))
	fmt.Fprintf(out, "recovery_id → %d\n", sig[64])
	return nil
}
