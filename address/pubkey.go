package address

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	compressedKeyLen   = 33
	uncompressedKeyLen = 65

	tagCompressedEven = 0x02
	tagCompressedOdd  = 0x03
	tagUncompressed   = 0x04
)

// ErrInvalidEncoding is returned for public keys that are not a valid SEC1
// encoding of a secp256k1 point.
var ErrInvalidEncoding = errors.New("invalid public key encoding")

// ParsePublicKey parses a 33-byte compressed or 65-byte uncompressed SEC1
// public key and checks that it is a point on secp256k1.
func ParsePublicKey(pubKey []byte) (*secp256k1.PublicKey, error) {
	switch len(pubKey) {
	case compressedKeyLen:
		if pubKey[0] != tagCompressedEven && pubKey[0] != tagCompressedOdd {
			return nil, fmt.Errorf("%w: tag 0x%02x for %d-byte key", ErrInvalidEncoding, pubKey[0], len(pubKey))
		}
	case uncompressedKeyLen:
		// hybrid keys (0x06, 0x07) are accepted by the parser but are not SEC1
		if pubKey[0] != tagUncompressed {
			return nil, fmt.Errorf("%w: tag 0x%02x for %d-byte key", ErrInvalidEncoding, pubKey[0], len(pubKey))
		}
	default:
		return nil, fmt.Errorf("%w: length %d", ErrInvalidEncoding, len(pubKey))
	}

	key, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return key, nil
}

// UncompressedPublicKey returns the 65-byte 0x04 || X || Y form of pubKey.
func UncompressedPublicKey(pubKey []byte) ([]byte, error) {
	key, err := ParsePublicKey(pubKey)
	if err != nil {
		return nil, err
	}
	return key.SerializeUncompressed(), nil
}

// CompressedPublicKey returns the 33-byte form of pubKey.
func CompressedPublicKey(pubKey []byte) ([]byte, error) {
	key, err := ParsePublicKey(pubKey)
	if err != nil {
		return nil, err
	}
	return key.SerializeCompressed(), nil
}

// DecodeHex decodes s as hex. A leading 0x or 0X is accepted.
func DecodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
}

// DecodeHexPublicKey decodes a hex public key as returned by the signing
// canister. A leading 0x is accepted.
func DecodeHexPublicKey(hexPublicKey string) ([]byte, error) {
	pubKeyBytes, err := DecodeHex(hexPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return pubKeyBytes, nil
}
