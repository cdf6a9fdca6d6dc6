package address

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// DeriveEVMAddress derives the EIP-55 checksummed Ethereum address of a SEC1
// encoded secp256k1 public key. The key is always re-encoded uncompressed
// before hashing, so both encodings of a point yield the same address.
func DeriveEVMAddress(pubKey []byte) (string, error) {
	raw, err := evmAddressBytes(pubKey)
	if err != nil {
		return "", err
	}
	return ChecksumHex(raw), nil
}

// GetEVMAddress is DeriveEVMAddress for a hex encoded public key.
func GetEVMAddress(hexPublicKey string) (string, error) {
	pubKeyBytes, err := DecodeHexPublicKey(hexPublicKey)
	if err != nil {
		return "", err
	}
	return DeriveEVMAddress(pubKeyBytes)
}

func evmAddressBytes(pubKey []byte) ([20]byte, error) {
	var raw [20]byte
	uncompressed, err := UncompressedPublicKey(pubKey)
	if err != nil {
		return raw, err
	}
	hash := crypto.Keccak256(uncompressed[1:])
	copy(raw[:], hash[12:])
	return raw, nil
}

// ChecksumHex renders a raw 20-byte address as 0x-prefixed hex with EIP-55
// mixed-case checksum.
func ChecksumHex(raw [20]byte) string {
	return "0x" + checksumCase(hex.EncodeToString(raw[:]))
}

// checksumCase applies EIP-55 casing to 40 lowercase hex digits.
func checksumCase(lower string) string {
	hash := crypto.Keccak256([]byte(lower))
	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}

// IsChecksumAddress reports whether s is a 0x-prefixed 40 digit hex address
// whose letter casing matches its EIP-55 checksum.
func IsChecksumAddress(s string) bool {
	if len(s) != 42 || !strings.HasPrefix(s, "0x") {
		return false
	}
	lower := strings.ToLower(s[2:])
	if _, err := hex.DecodeString(lower); err != nil {
		return false
	}
	return checksumCase(lower) == s[2:]
}
