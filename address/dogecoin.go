package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// DogeMainNetParams defines the network parameters for the Dogecoin main network.
var DogeMainNetParams = chaincfg.Params{
	Name: "mainnet",
	Net:  0xc0c0c0c0, // Dogecoin mainnet magic bytes

	// Address encoding magics
	PubKeyHashAddrID: 0x1E, // starts with D
	ScriptHashAddrID: 0x16, // starts with 9 or A
}

func GetDogecoinAddress(pubKey []byte) (string, error) {
	// Dogecoin uses P2PKH addresses (no native SegWit support)
	pubKeyHash, err := compressedKeyHash(pubKey)
	if err != nil {
		return "", err
	}
	addr, err := btcutil.NewAddressPubKeyHash(pubKeyHash, &DogeMainNetParams)
	if err != nil {
		return "", fmt.Errorf("fail to get public key hash address: %w", err)
	}
	return addr.EncodeAddress(), nil
}
