package address

import (
	"fmt"

	"github.com/ethbridge-poc/canister-address/common"
)

// GetAddress renders the SEC1 encoded secp256k1 public key as an address on
// the given chain.
func GetAddress(pubKey []byte, chain common.Chain) (string, error) {
	if _, err := ParsePublicKey(pubKey); err != nil {
		return "", err
	}

	if chain.IsEvm() {
		return DeriveEVMAddress(pubKey)
	}

	switch chain {
	case common.Tron:
		return GetTronAddress(pubKey)
	case common.Bitcoin:
		return GetBitcoinAddress(pubKey)
	case common.BitcoinCash:
		return GetBitcoinCashAddress(pubKey)
	case common.Litecoin:
		return GetLitecoinAddress(pubKey)
	case common.Dogecoin:
		return GetDogecoinAddress(pubKey)
	case common.Dash:
		return GetDashAddress(pubKey)
	case common.Zcash:
		return GetZcashAddress(pubKey)
	case common.XRP:
		return GetXRPAddress(pubKey)
	case common.GaiaChain, common.THORChain, common.MayaChain, common.Kujira, common.Dydx,
		common.Terra, common.TerraClassic, common.Osmosis, common.Noble:
		hrp, err := chain.Bech32Prefix()
		if err != nil {
			return "", err
		}
		return GetBech32Address(pubKey, hrp)
	default:
		return "", fmt.Errorf("unsupported chain: %s", chain)
	}
}
