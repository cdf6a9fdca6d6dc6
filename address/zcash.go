package address

import (
	"github.com/btcsuite/btcd/btcutil/base58"
)

// ZcashMainNetAddressPrefix is the 2-byte prefix for transparent P2PKH
// addresses (t1...).
var ZcashMainNetAddressPrefix = [2]byte{0x1C, 0xB8}

// GetZcashAddress returns the Zcash transparent P2PKH address.
func GetZcashAddress(pubKey []byte) (string, error) {
	pubKeyHash, err := compressedKeyHash(pubKey)
	if err != nil {
		return "", err
	}
	// base58check treats the first prefix byte as the version and the second
	// as payload, which yields the same string as a 2-byte version.
	payload := append([]byte{ZcashMainNetAddressPrefix[1]}, pubKeyHash...)
	return base58.CheckEncode(payload, ZcashMainNetAddressPrefix[0]), nil
}
