package address

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// Base58 alphabet used by XRP
const xrpAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// btcutil/base58 alphabet
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// GetXRPAddress returns the classic XRP account address (r...).
func GetXRPAddress(pubKey []byte) (string, error) {
	accountID, err := compressedKeyHash(pubKey)
	if err != nil {
		return "", err
	}
	encoded := base58.CheckEncode(accountID, 0x00)

	var sb strings.Builder
	sb.Grow(len(encoded))
	for _, b := range encoded {
		index := strings.IndexRune(base58Alphabet, b)
		if index == -1 {
			return "", fmt.Errorf("invalid base58 character: %s", string(b))
		}
		sb.WriteByte(xrpAlphabet[index])
	}
	return sb.String(), nil
}
