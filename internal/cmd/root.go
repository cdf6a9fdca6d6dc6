package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ethbridge-poc/canister-address/internal/canister"
	"github.com/ethbridge-poc/canister-address/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "canister-address",
	Short: "Inspect the Ethereum address of a threshold ECDSA canister",
	Long: `canister-address queries a signing canister on the Internet Computer for its
secp256k1 public key and derives the EIP-55 checksummed Ethereum address (and
other chain addresses) controlled by that key. It can also have the canister
sign a digest and verify the signature, and look up the address on an
Ethereum JSON-RPC node.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	cfgFile string
	v       *viper.Viper
)

// signingCanister is the part of canister.Client the commands use.
type signingCanister interface {
	PublicKey(ctx context.Context) (string, error)
	Sign(ctx context.Context, digest []byte) (string, error)
}

// dialCanister is replaced in tests.
var dialCanister = func(cfg canister.Config) (signingCanister, error) {
	client, err := canister.New(cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (yaml, toml or json)")
	config.AddFlags(rootCmd)

	var err error
	v, err = config.NewViper(rootCmd)
	cobra.CheckErr(err)
}

// initConfig initializes configuration
func initConfig() {
	// Set up logging
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.SetLevel(logrus.WarnLevel)

	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if debug, _ := rootCmd.PersistentFlags().GetBool("debug"); debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	logrus.WithFields(logrus.Fields{
		"endpoint":    cfg.Endpoint,
		"canister_id": cfg.CanisterID,
		"call_mode":   cfg.CallMode,
	}).Debug("configuration loaded")
	return cfg, nil
}

func connectCanister(cfg config.Config) (signingCanister, error) {
	canisterCfg, err := cfg.Canister()
	if err != nil {
		return nil, err
	}
	client, err := dialCanister(canisterCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to canister: %w", err)
	}
	return client, nil
}
