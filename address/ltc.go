package address

import (
	"fmt"

	ltcchaincfg "github.com/ltcsuite/ltcd/chaincfg"
	"github.com/ltcsuite/ltcd/ltcutil"
)

func GetLitecoinAddress(pubKey []byte) (string, error) {
	witnessProgram, err := compressedKeyHash(pubKey)
	if err != nil {
		return "", err
	}
	conv, err := ltcutil.NewAddressWitnessPubKeyHash(witnessProgram, &ltcchaincfg.MainNetParams)
	if err != nil {
		return "", fmt.Errorf("fail to get witness public key hash: %w", err)
	}
	return conv.EncodeAddress(), nil
}
