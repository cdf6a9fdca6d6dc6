package canister

import (
	"fmt"

	"github.com/aviate-labs/agent-go/principal"
)

// PrincipalToBytes32 encodes a principal the way the bridge contract expects
// it in a bytes32 argument: the raw length in the first byte, followed by the
// raw principal, right padded with zeros.
func PrincipalToBytes32(text string) ([32]byte, error) {
	var out [32]byte
	p, err := principal.Decode(text)
	if err != nil {
		return out, fmt.Errorf("invalid principal %q: %w", text, err)
	}
	if len(p.Raw) > len(out)-1 {
		return out, fmt.Errorf("principal %q is %d bytes, at most %d fit", text, len(p.Raw), len(out)-1)
	}
	out[0] = byte(len(p.Raw))
	copy(out[1:], p.Raw)
	return out, nil
}
