package address

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GetBech32Address returns the bech32 account address under the given human
// readable prefix.
func GetBech32Address(pubKey []byte, hrp string) (string, error) {
	pubKeyHash, err := compressedKeyHash(pubKey)
	if err != nil {
		return "", err
	}
	return sdk.Bech32ifyAddressBytes(hrp, pubKeyHash)
}
