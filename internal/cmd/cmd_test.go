package cmd

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethbridge-poc/canister-address/common"
	"github.com/ethbridge-poc/canister-address/internal/canister"
	"github.com/ethbridge-poc/canister-address/internal/config"
)

const (
	testCanisterID   = "bd3sg-teaaa-aaaaa-qaaba-cai"
	testGCompressed  = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	testGAddress     = "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"
	testGBitcoin     = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	testDigestString = "0x3a1027da644f02903708078bf33f7253c3f7a5b400f12abc5b1fc99a059c9f8c"
)

type fakeCanister struct {
	key          *ecdsa.PrivateKey
	publicKeyHex string
	err          error
}

func (f *fakeCanister) PublicKey(context.Context) (string, error) {
	return f.publicKeyHex, f.err
}

func (f *fakeCanister) Sign(_ context.Context, digest []byte) (string, error) {
	sig, err := crypto.Sign(digest, f.key)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sig[:64]), nil
}

func newFakeCanister(t *testing.T) *fakeCanister {
	t.Helper()
	d := make([]byte, 32)
	d[31] = 1
	key, err := crypto.ToECDSA(d)
	require.NoError(t, err)
	return &fakeCanister{key: key, publicKeyHex: testGCompressed}
}

func useCanister(t *testing.T, fake *fakeCanister) *[]canister.Config {
	t.Helper()
	var dialed []canister.Config
	orig := dialCanister
	dialCanister = func(cfg canister.Config) (signingCanister, error) {
		dialed = append(dialed, cfg)
		return fake, nil
	}
	t.Cleanup(func() { dialCanister = orig })
	return &dialed
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	addressFlags = chainFlags{chain: common.Ethereum.String()}
	pubkeyFlags = chainFlags{chain: common.Ethereum.String()}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestAddressCommand(t *testing.T) {
	out, err := run(t, "address", testGCompressed)
	require.NoError(t, err)
	assert.Equal(t, "address → "+testGAddress+"\n", out)

	out, err = run(t, "address", "--chain", "bitcoin", "0x"+testGCompressed)
	require.NoError(t, err)
	assert.Equal(t, "address → "+testGBitcoin+"\n", out)
}

func TestAddressCommandAll(t *testing.T) {
	out, err := run(t, "address", "--all", testGCompressed)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(common.AllChains()))
	assert.Contains(t, out, "Ethereum      "+testGAddress)
	assert.Contains(t, out, "Bitcoin       "+testGBitcoin)
}

func TestAddressCommandJSON(t *testing.T) {
	out, err := run(t, "address", "--all", "--json", testGCompressed)
	require.NoError(t, err)

	var addrs []chainAddress
	require.NoError(t, json.Unmarshal([]byte(out), &addrs))
	require.Len(t, addrs, len(common.AllChains()))
	assert.Equal(t, chainAddress{Chain: common.Ethereum, Address: testGAddress}, addrs[0])
	assert.Contains(t, addrs, chainAddress{Chain: common.Bitcoin, Address: testGBitcoin})
	assert.Contains(t, out, `"chain": "Bitcoin"`)

	out, err = run(t, "address", "--json", "--chain", "bitcoin", testGCompressed)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &addrs))
	assert.Equal(t, []chainAddress{{Chain: common.Bitcoin, Address: testGBitcoin}}, addrs)
}

func TestAddressCommandErrors(t *testing.T) {
	_, err := run(t, "address", "0a0b0c")
	assert.ErrorContains(t, err, "invalid public key encoding")

	_, err = run(t, "address", "--chain", "solana", testGCompressed)
	assert.EqualError(t, err, "unsupported chain: solana")
}

func TestPubkeyCommand(t *testing.T) {
	dialed := useCanister(t, newFakeCanister(t))

	out, err := run(t, "pubkey", "--canister-id", testCanisterID, "--call-mode", "query")
	require.NoError(t, err)
	assert.Equal(t, "public_key → "+testGCompressed+"\naddress → "+testGAddress+"\n", out)

	require.Len(t, *dialed, 1)
	assert.Equal(t, testCanisterID, (*dialed)[0].CanisterID)
	assert.Equal(t, canister.CallModeQuery, (*dialed)[0].CallMode)
	assert.Equal(t, config.DefaultConfig.Endpoint, (*dialed)[0].Endpoint)
}

func TestPubkeyCommandJSON(t *testing.T) {
	useCanister(t, newFakeCanister(t))

	out, err := run(t, "pubkey", "--canister-id", testCanisterID, "--json")
	require.NoError(t, err)

	var got pubkeyOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, pubkeyOutput{
		PublicKey: testGCompressed,
		Addresses: []chainAddress{{Chain: common.Ethereum, Address: testGAddress}},
	}, got)
}

func TestPubkeyCommandRemoteError(t *testing.T) {
	fake := newFakeCanister(t)
	fake.err = &canister.RemoteError{Method: "public_key", Message: "not ready"}
	useCanister(t, fake)

	_, err := run(t, "pubkey", "--canister-id", testCanisterID)
	assert.EqualError(t, err, "public_key returned error: not ready")
}

func TestPubkeyCommandMissingCanisterID(t *testing.T) {
	useCanister(t, newFakeCanister(t))

	_, err := run(t, "pubkey", "--canister-id=")
	assert.ErrorIs(t, err, config.ErrMissingCanisterID)
}

func TestSignCommand(t *testing.T) {
	useCanister(t, newFakeCanister(t))

	out, err := run(t, "sign", "--canister-id", testCanisterID, testDigestString)
	require.NoError(t, err)
	assert.Contains(t, out, "address → "+testGAddress+"\n")
	assert.Contains(t, out, "signature → 0x")
	assert.Contains(t, out, "recovery_id → ")
}

func TestSignCommandUppercasePrefix(t *testing.T) {
	useCanister(t, newFakeCanister(t))

	digest := "0X" + strings.ToUpper(strings.TrimPrefix(testDigestString, "0x"))
	out, err := run(t, "sign", "--canister-id", testCanisterID, digest)
	require.NoError(t, err)
	assert.Contains(t, out, "address → "+testGAddress+"\n")
}

func TestSignCommandWrongKey(t *testing.T) {
	fake := newFakeCanister(t)
	other, err := crypto.GenerateKey()
	require.NoError(t, err)
	fake.key = other
	useCanister(t, fake)

	_, err = run(t, "sign", "--canister-id", testCanisterID, testDigestString)
	assert.ErrorContains(t, err, "no recovery id recovers the public key")
}

func TestSignCommandBadDigest(t *testing.T) {
	useCanister(t, newFakeCanister(t))

	_, err := run(t, "sign", "--canister-id", testCanisterID, "0x1234")
	assert.EqualError(t, err, "digest must be 32 bytes, got 2")
}

func TestBalanceCommand(t *testing.T) {
	useCanister(t, newFakeCanister(t))

	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		results := map[string]string{
			"eth_chainId":             "0xaa36a7",
			"eth_getBalance":          "0x2386f26fc10000",
			"eth_getTransactionCount": "0x3",
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": results[req.Method]})
	}))
	defer node.Close()

	out, err := run(t, "balance", "--canister-id", testCanisterID, "--eth-rpc", node.URL)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"network → Sepolia (chainId: 11155111)",
		"address → " + testGAddress,
		"balance → 0.01 ETH",
		"nonce → 3",
	}, "\n")+"\n", out)
}

func TestPrincipalCommand(t *testing.T) {
	out, err := run(t, "principal", "aaaaa-aa")
	require.NoError(t, err)
	assert.Equal(t, "0x"+strings.Repeat("0", 64)+"\n", out)
}
