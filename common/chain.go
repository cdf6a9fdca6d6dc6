package common

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Chain is a network the canister's secp256k1 key can be rendered for.
type Chain int

const (
	Undefined Chain = iota
	Ethereum
	Sepolia
	Arbitrum
	Avalanche
	BscChain
	Base
	Blast
	CronosChain
	Optimism
	Polygon
	Zksync
	Tron
	Bitcoin
	BitcoinCash
	Litecoin
	Dogecoin
	Dash
	Zcash
	XRP
	GaiaChain
	THORChain
	MayaChain
	Kujira
	Dydx
	Terra
	TerraClassic
	Osmosis
	Noble
)

var chainToString = map[Chain]string{
	Ethereum:     "Ethereum",
	Sepolia:      "Sepolia",
	Arbitrum:     "Arbitrum",
	Avalanche:    "Avalanche",
	BscChain:     "BSC",
	Base:         "Base",
	Blast:        "Blast",
	CronosChain:  "CronosChain",
	Optimism:     "Optimism",
	Polygon:      "Polygon",
	Zksync:       "Zksync",
	Tron:         "Tron",
	Bitcoin:      "Bitcoin",
	BitcoinCash:  "BitcoinCash",
	Litecoin:     "Litecoin",
	Dogecoin:     "Dogecoin",
	Dash:         "Dash",
	Zcash:        "Zcash",
	XRP:          "XRP",
	GaiaChain:    "Cosmos",
	THORChain:    "THORChain",
	MayaChain:    "MayaChain",
	Kujira:       "Kujira",
	Dydx:         "Dydx",
	Terra:        "Terra",
	TerraClassic: "TerraClassic",
	Osmosis:      "Osmosis",
	Noble:        "Noble",
}

var chainBech32Prefix = map[Chain]string{
	GaiaChain:    "cosmos",
	THORChain:    "thor",
	MayaChain:    "maya",
	Kujira:       "kujira",
	Dydx:         "dydx",
	Terra:        "terra",
	TerraClassic: "terra",
	Osmosis:      "osmo",
	Noble:        "noble",
}

// FromString parses a chain name, ignoring case.
func FromString(str string) (Chain, error) {
	for key, value := range chainToString {
		if strings.EqualFold(value, str) {
			return key, nil
		}
	}
	return Undefined, fmt.Errorf("unsupported chain: %s", str)
}

// AllChains returns every defined chain in declaration order.
func AllChains() []Chain {
	chains := make([]Chain, 0, len(chainToString))
	for c := Ethereum; c <= Noble; c++ {
		chains = append(chains, c)
	}
	return chains
}

func (c Chain) IsEvm() bool {
	_, err := c.EvmID()
	return err == nil
}

func (c Chain) EvmID() (*big.Int, error) {
	switch c {
	case Ethereum:
		return big.NewInt(1), nil
	case Sepolia:
		return big.NewInt(11155111), nil
	case Arbitrum:
		return big.NewInt(42161), nil
	case Avalanche:
		return big.NewInt(43114), nil
	case BscChain:
		return big.NewInt(56), nil
	case Base:
		return big.NewInt(8453), nil
	case Blast:
		return big.NewInt(81457), nil
	case CronosChain:
		return big.NewInt(25), nil
	case Optimism:
		return big.NewInt(10), nil
	case Polygon:
		return big.NewInt(137), nil
	case Zksync:
		return big.NewInt(324), nil
	default:
		return nil, fmt.Errorf("no EVM ID for this chain: %d", c)
	}
}

// FromEvmID returns the EVM chain with the given chain id.
func FromEvmID(id *big.Int) (Chain, error) {
	for _, c := range AllChains() {
		evmID, err := c.EvmID()
		if err == nil && evmID.Cmp(id) == 0 {
			return c, nil
		}
	}
	return Undefined, fmt.Errorf("unknown EVM chain id: %s", id)
}

// Bech32Prefix returns the human readable part for Cosmos family chains.
func (c Chain) Bech32Prefix() (string, error) {
	if hrp, ok := chainBech32Prefix[c]; ok {
		return hrp, nil
	}
	return "", fmt.Errorf("no bech32 prefix for chain: %v", c)
}

func (c Chain) NativeSymbol() (string, error) {
	switch c {
	case Ethereum, Sepolia, Arbitrum, Base, Optimism, Blast, Zksync:
		return "ETH", nil
	case Avalanche:
		return "AVAX", nil
	case BscChain:
		return "BNB", nil
	case CronosChain:
		return "CRO", nil
	case Polygon:
		return "MATIC", nil
	case Tron:
		return "TRX", nil
	case Bitcoin:
		return "BTC", nil
	case BitcoinCash:
		return "BCH", nil
	case Litecoin:
		return "LTC", nil
	case Dogecoin:
		return "DOGE", nil
	case Dash:
		return "DASH", nil
	case Zcash:
		return "ZEC", nil
	case XRP:
		return "XRP", nil
	case GaiaChain:
		return "ATOM", nil
	case THORChain:
		return "RUNE", nil
	case MayaChain:
		return "CACAO", nil
	case Kujira:
		return "KUJI", nil
	case Dydx:
		return "DYDX", nil
	case Terra:
		return "LUNA", nil
	case TerraClassic:
		return "LUNC", nil
	case Osmosis:
		return "OSMO", nil
	case Noble:
		return "USDC", nil
	default:
		return "", fmt.Errorf("unsupported chain: %v", c)
	}
}

func (c Chain) String() string {
	if str, ok := chainToString[c]; ok {
		return str
	}
	return "UNKNOWN"
}

func (c Chain) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Chain) UnmarshalJSON(data []byte) error {
	var chainStr string
	if err := json.Unmarshal(data, &chainStr); err != nil {
		return err
	}
	chain, err := FromString(chainStr)
	if err != nil {
		return err
	}
	*c = chain
	return nil
}
