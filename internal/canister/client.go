package canister

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"

	agent "github.com/aviate-labs/agent-go"
	"github.com/aviate-labs/agent-go/principal"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	methodPublicKey = "public_key"
	methodSign      = "sign"

	digestLen = 32
)

// CallMode selects whether public_key is issued as a query or an update call.
type CallMode string

const (
	CallModeQuery  CallMode = "query"
	CallModeUpdate CallMode = "update"
)

// ParseCallMode parses "query" or "update", ignoring case.
func ParseCallMode(s string) (CallMode, error) {
	switch CallMode(strings.ToLower(s)) {
	case CallModeQuery:
		return CallModeQuery, nil
	case CallModeUpdate:
		return CallModeUpdate, nil
	default:
		return "", fmt.Errorf("invalid call mode %q: must be %q or %q", s, CallModeQuery, CallModeUpdate)
	}
}

// Config holds everything needed to reach the signing canister.
type Config struct {
	Endpoint     string
	CanisterID   string
	CallMode     CallMode
	FetchRootKey bool
	PollTimeout  time.Duration
}

// Invoker is the subset of the IC agent used by Client.
type Invoker interface {
	Query(canisterID principal.Principal, methodName string, args []any, values []any) error
	Call(canisterID principal.Principal, methodName string, args []any, values []any) error
}

// Client calls the signing canister's public_key and sign methods.
type Client struct {
	canisterID principal.Principal
	mode       CallMode
	invoker    Invoker
}

// New builds an IC agent for cfg.Endpoint. When cfg.FetchRootKey is set the
// agent fetches the root key from the replica, which is required for local
// replicas and must not be used against mainnet.
func New(cfg Config) (*Client, error) {
	host, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", cfg.Endpoint, err)
	}
	canisterID, err := principal.Decode(cfg.CanisterID)
	if err != nil {
		return nil, fmt.Errorf("invalid canister id %q: %w", cfg.CanisterID, err)
	}
	mode, err := ParseCallMode(string(cfg.CallMode))
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"endpoint":       host.String(),
		"fetch_root_key": cfg.FetchRootKey,
	}).Debug("building agent")

	a, err := agent.New(agent.Config{
		ClientConfig: &agent.ClientConfig{Host: host},
		FetchRootKey: cfg.FetchRootKey,
		PollTimeout:  cfg.PollTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return NewWithInvoker(canisterID, mode, a), nil
}

// NewWithInvoker wraps an existing agent.
func NewWithInvoker(canisterID principal.Principal, mode CallMode, invoker Invoker) *Client {
	return &Client{
		canisterID: canisterID,
		mode:       mode,
		invoker:    invoker,
	}
}

// PublicKey returns the canister's hex encoded SEC1 public key.
func (c *Client) PublicKey(ctx context.Context) (string, error) {
	var result PublicKeyResult
	if err := c.invoke(ctx, methodPublicKey, c.mode, []any{}, []any{&result}); err != nil {
		return "", err
	}

	switch {
	case result.Err != nil:
		return "", &RemoteError{Method: methodPublicKey, Message: *result.Err}
	case result.Ok != nil:
		return result.Ok.PublicKeyHex, nil
	default:
		return "", fmt.Errorf("%s returned an empty variant", methodPublicKey)
	}
}

// Sign asks the canister to sign a 32-byte digest and returns the hex encoded
// 64-byte r || s signature. Threshold signing always goes through consensus,
// so this is an update call regardless of the configured mode.
func (c *Client) Sign(ctx context.Context, digest []byte) (string, error) {
	if len(digest) != digestLen {
		return "", fmt.Errorf("digest must be %d bytes, got %d", digestLen, len(digest))
	}

	var result SignResult
	arg := "0x" + hex.EncodeToString(digest)
	if err := c.invoke(ctx, methodSign, CallModeUpdate, []any{arg}, []any{&result}); err != nil {
		return "", err
	}

	switch {
	case result.Err != nil:
		return "", &RemoteError{Method: methodSign, Message: *result.Err}
	case result.Ok != nil:
		return result.Ok.SignatureHex, nil
	default:
		return "", fmt.Errorf("%s returned an empty variant", methodSign)
	}
}

func (c *Client) invoke(ctx context.Context, method string, mode CallMode, args []any, values []any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to call %s: %w", method, err)
	}

	log := logrus.WithFields(logrus.Fields{
		"call_id":  uuid.NewString(),
		"canister": c.canisterID.String(),
		"method":   method,
		"mode":     mode,
	})
	log.Debug("calling canister")

	start := time.Now()
	var err error
	if mode == CallModeQuery {
		err = c.invoker.Query(c.canisterID, method, args, values)
	} else {
		err = c.invoker.Call(c.canisterID, method, args, values)
	}
	if err != nil {
		log.WithError(err).Error("canister call failed")
		return fmt.Errorf("failed to call %s: %w", method, err)
	}

	log.WithField("elapsed", time.Since(start)).Info("canister call completed")
	return nil
}
