package canister

import "fmt"

// PublicKeyReply is the Ok payload of the canister's public_key method.
type PublicKeyReply struct {
	PublicKeyHex string `ic:"public_key_hex" json:"public_key_hex"`
}

// PublicKeyResult mirrors
//
//	variant { Ok : record { public_key_hex : text }; Err : text }
type PublicKeyResult struct {
	Ok  *PublicKeyReply `ic:"Ok,variant"`
	Err *string         `ic:"Err,variant"`
}

// SignatureReply is the Ok payload of the canister's sign method.
type SignatureReply struct {
	SignatureHex string `ic:"signature_hex" json:"signature_hex"`
}

// SignResult mirrors
//
//	variant { Ok : record { signature_hex : text }; Err : text }
type SignResult struct {
	Ok  *SignatureReply `ic:"Ok,variant"`
	Err *string         `ic:"Err,variant"`
}

// RemoteError is an Err variant returned by the canister.
type RemoteError struct {
	Method  string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s returned error: %s", e.Method, e.Message)
}
