package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// GetBitcoinAddress returns the native segwit (P2WPKH) mainnet address.
func GetBitcoinAddress(pubKey []byte) (string, error) {
	witnessProgram, err := compressedKeyHash(pubKey)
	if err != nil {
		return "", err
	}
	conv, err := btcutil.NewAddressWitnessPubKeyHash(witnessProgram, &chaincfg.MainNetParams)
	if err != nil {
		return "", fmt.Errorf("fail to get witness public key hash: %w", err)
	}
	return conv.EncodeAddress(), nil
}
