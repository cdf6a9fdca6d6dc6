// Package ethrpc looks up the canister's derived address on an Ethereum node.
package ethrpc

import (
	"context"
	"fmt"
	"math/big"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Client struct {
	url string
	eth *ethclient.Client
}

// Dial connects to the JSON-RPC endpoint at url. For http(s) endpoints no
// request is made until the first lookup.
func Dial(ctx context.Context, url string) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", url, err)
	}
	return &Client{url: url, eth: eth}, nil
}

func (c *Client) Close() {
	c.eth.Close()
}

// ChainID returns the node's EIP-155 chain id.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	c.logCall("eth_chainId", "")
	id, err := c.eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to call eth_chainId: %w", err)
	}
	return id, nil
}

// Balance returns the wei balance of address at the latest block.
func (c *Client) Balance(ctx context.Context, address string) (*big.Int, error) {
	account, err := parseAddress(address)
	if err != nil {
		return nil, err
	}
	c.logCall("eth_getBalance", address)
	balance, err := c.eth.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call eth_getBalance: %w", err)
	}
	return balance, nil
}

// Nonce returns the transaction count of address at the latest block.
func (c *Client) Nonce(ctx context.Context, address string) (uint64, error) {
	account, err := parseAddress(address)
	if err != nil {
		return 0, err
	}
	c.logCall("eth_getTransactionCount", address)
	nonce, err := c.eth.NonceAt(ctx, account, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to call eth_getTransactionCount: %w", err)
	}
	return nonce, nil
}

func (c *Client) logCall(method, address string) {
	fields := logrus.Fields{"node": c.url, "method": method}
	if address != "" {
		fields["address"] = address
	}
	logrus.WithFields(fields).Debug("json-rpc request")
}

func parseAddress(address string) (gethcommon.Address, error) {
	if !gethcommon.IsHexAddress(address) {
		return gethcommon.Address{}, fmt.Errorf("invalid ethereum address %q", address)
	}
	return gethcommon.HexToAddress(address), nil
}

// FormatEther renders a wei amount in ether without losing precision.
func FormatEther(wei *big.Int) string {
	return decimal.NewFromBigInt(wei, -18).String()
}
