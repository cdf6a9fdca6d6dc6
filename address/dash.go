package address

import (
	"github.com/btcsuite/btcd/btcutil/base58"
)

// DashMainNetAddressPrefix is the version byte for P2PKH addresses (X...)
const DashMainNetAddressPrefix = byte(0x4C)

// GetDashAddress returns the Dash mainnet P2PKH address.
func GetDashAddress(pubKey []byte) (string, error) {
	pubKeyHash, err := compressedKeyHash(pubKey)
	if err != nil {
		return "", err
	}
	return base58.CheckEncode(pubKeyHash, DashMainNetAddressPrefix), nil
}
