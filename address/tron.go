package address

import (
	"github.com/btcsuite/btcd/btcutil/base58"
)

// TronMainNetAddressPrefix is the prefix byte for TRON mainnet addresses (0x41)
const TronMainNetAddressPrefix = byte(0x41)

// GetTronAddress derives a TRON address. TRON shares the Ethereum derivation
// (Keccak256 of the uncompressed key, last 20 bytes) but encodes it with
// base58check under the 0x41 prefix.
func GetTronAddress(pubKey []byte) (string, error) {
	raw, err := evmAddressBytes(pubKey)
	if err != nil {
		return "", err
	}
	return base58.CheckEncode(raw[:], TronMainNetAddressPrefix), nil
}
