package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ethbridge-poc/canister-address/internal/canister"
)

// EnvPrefix prefixes every environment variable, e.g. CANISTER_ADDRESS_CANISTER_ID.
const EnvPrefix = "CANISTER_ADDRESS"

const (
	keyEndpoint     = "endpoint"
	keyCanisterID   = "canister_id"
	keyCallMode     = "call_mode"
	keyFetchRootKey = "fetch_root_key"
	keyPollTimeout  = "poll_timeout"
	keyEthRPCURL    = "eth_rpc_url"

	flagEndpoint     = "endpoint"
	flagCanisterID   = "canister-id"
	flagCallMode     = "call-mode"
	flagFetchRootKey = "fetch-root-key"
	flagPollTimeout  = "poll-timeout"
	flagEthRPC       = "eth-rpc"
)

var (
	ErrMissingCanisterID = errors.New("canister id is required (--canister-id or " + EnvPrefix + "_CANISTER_ID)")
	ErrMissingEthRPC     = errors.New("ethereum json-rpc url is required (--eth-rpc or " + EnvPrefix + "_ETH_RPC_URL)")
)

// Config is the resolved configuration from flags, environment and config file,
// in that order of precedence.
type Config struct {
	// Endpoint is the replica or boundary node URL.
	Endpoint   string `mapstructure:"endpoint"`
	CanisterID string `mapstructure:"canister_id"`
	// CallMode is "query" or "update" and applies to public_key only.
	CallMode string `mapstructure:"call_mode"`
	// FetchRootKey must be true for a local replica and false for mainnet.
	FetchRootKey bool          `mapstructure:"fetch_root_key"`
	PollTimeout  time.Duration `mapstructure:"poll_timeout"`
	EthRPCURL    string        `mapstructure:"eth_rpc_url"`
}

// DefaultConfig targets a local replica.
var DefaultConfig = Config{
	Endpoint:     "http://127.0.0.1:4943",
	CallMode:     string(canister.CallModeUpdate),
	FetchRootKey: true,
	PollTimeout:  30 * time.Second,
}

// AddFlags registers the configuration flags on cmd as persistent flags.
func AddFlags(cmd *cobra.Command) {
	def := DefaultConfig
	flags := cmd.PersistentFlags()
	flags.String(flagEndpoint, def.Endpoint, "Internet Computer replica URL")
	flags.String(flagCanisterID, def.CanisterID, "Signing canister principal")
	flags.String(flagCallMode, def.CallMode, "Call public_key as a query or update call")
	flags.Bool(flagFetchRootKey, def.FetchRootKey, "Fetch the root key from the replica (local replicas only)")
	flags.Duration(flagPollTimeout, def.PollTimeout, "How long to poll for update call results")
	flags.String(flagEthRPC, def.EthRPCURL, "Ethereum JSON-RPC URL")
}

// NewViper returns a viper instance with defaults, environment binding and
// the flags registered by AddFlags bound to their keys.
func NewViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig
	v.SetDefault(keyEndpoint, def.Endpoint)
	v.SetDefault(keyCanisterID, def.CanisterID)
	v.SetDefault(keyCallMode, def.CallMode)
	v.SetDefault(keyFetchRootKey, def.FetchRootKey)
	v.SetDefault(keyPollTimeout, def.PollTimeout)
	v.SetDefault(keyEthRPCURL, def.EthRPCURL)

	if cmd == nil {
		return v, nil
	}
	bindings := map[string]string{
		keyEndpoint:     flagEndpoint,
		keyCanisterID:   flagCanisterID,
		keyCallMode:     flagCallMode,
		keyFetchRootKey: flagFetchRootKey,
		keyPollTimeout:  flagPollTimeout,
		keyEthRPCURL:    flagEthRPC,
	}
	for key, flag := range bindings {
		f := cmd.PersistentFlags().Lookup(flag)
		if f == nil {
			return nil, fmt.Errorf("flag --%s is not registered", flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("failed to bind flag --%s: %w", flag, err)
		}
	}
	return v, nil
}

// Load reads the optional config file and unmarshals and validates the result.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields every command needs.
func (c Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if _, err := canister.ParseCallMode(c.CallMode); err != nil {
		return err
	}
	if c.PollTimeout <= 0 {
		return fmt.Errorf("poll timeout must be positive, got %s", c.PollTimeout)
	}
	return nil
}

// Canister returns the canister client configuration.
func (c Config) Canister() (canister.Config, error) {
	if c.CanisterID == "" {
		return canister.Config{}, ErrMissingCanisterID
	}
	mode, err := canister.ParseCallMode(c.CallMode)
	if err != nil {
		return canister.Config{}, err
	}
	return canister.Config{
		Endpoint:     c.Endpoint,
		CanisterID:   c.CanisterID,
		CallMode:     mode,
		FetchRootKey: c.FetchRootKey,
		PollTimeout:  c.PollTimeout,
	}, nil
}

// EthRPC returns the Ethereum JSON-RPC URL.
func (c Config) EthRPC() (string, error) {
	if c.EthRPCURL == "" {
		return "", ErrMissingEthRPC
	}
	return c.EthRPCURL, nil
}
