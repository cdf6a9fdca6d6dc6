// Package ethsig turns raw r || s signatures from the signing canister into
// Ethereum recoverable signatures and checks them against an address.
package ethsig

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ethbridge-poc/canister-address/address"
)

var (
	// ErrNoRecoveryID is returned when neither parity recovers the expected key.
	ErrNoRecoveryID = errors.New("no recovery id recovers the public key")
	// ErrAddressMismatch is returned when a signature recovers to another address.
	ErrAddressMismatch = errors.New("recovered address does not match signer address")
)

// RecoverableSignature appends the recovery id to a 64-byte r || s signature
// over digest made by pubKey. A high s is first replaced by n - s so the
// result is acceptable to Ethereum.
func RecoverableSignature(digest, sig, pubKey []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("digest must be 32 bytes, got %d", len(digest))
	}
	if len(sig) != 64 {
		return nil, fmt.Errorf("signature must be 64 bytes, got %d", len(sig))
	}
	want, err := address.UncompressedPublicKey(pubKey)
	if err != nil {
		return nil, err
	}

	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(sig[32:]); overflow || s.IsZero() {
		return nil, errors.New("invalid signature s value")
	}
	if s.IsOverHalfOrder() {
		s.Negate()
	}
	normalizedS := s.Bytes()

	out := make([]byte, 65)
	copy(out, sig[:32])
	copy(out[32:64], normalizedS[:])
	for v := byte(0); v <= 1; v++ {
		out[64] = v
		recovered, err := crypto.Ecrecover(digest, out)
		if err != nil {
			continue
		}
		if bytes.Equal(recovered, want) {
			return out, nil
		}
	}
	return nil, ErrNoRecoveryID
}

// RecoverAddress returns the checksummed address that produced sig.
func RecoverAddress(digest, sig []byte) (string, error) {
	pubKey, err := crypto.Ecrecover(digest, sig)
	if err != nil {
		return "", fmt.Errorf("failed to recover public key: %w", err)
	}
	return address.DeriveEVMAddress(pubKey)
}

// VerifyAddress checks that sig recovers to expected, ignoring checksum case.
func VerifyAddress(digest, sig []byte, expected string) error {
	recovered, err := RecoverAddress(digest, sig)
	if err != nil {
		return err
	}
	if !strings.EqualFold(recovered, expected) {
		return fmt.Errorf("%w: recovered %s, expected %s", ErrAddressMismatch, recovered, expected)
	}
	return nil
}
