package address

import (
	"fmt"

	"github.com/gcash/bchd/chaincfg"
	"github.com/gcash/bchutil"
)

// GetBitcoinCashAddress returns the cashaddr P2PKH address without the
// "bitcoincash:" prefix.
func GetBitcoinCashAddress(pubKey []byte) (string, error) {
	pubKeyHash, err := compressedKeyHash(pubKey)
	if err != nil {
		return "", err
	}
	conv, err := bchutil.NewAddressPubKeyHash(pubKeyHash, &chaincfg.MainNetParams)
	if err != nil {
		return "", fmt.Errorf("fail to get public key hash: %w", err)
	}
	return conv.EncodeAddress(), nil
}
