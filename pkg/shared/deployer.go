package shared

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// DefaultLogLevel applies when AVATAR_LOG_LEVEL is unset.
const DefaultLogLevel = "info"

// DeployerConfig describes the account that deploys Config and AvatarRegistry
// components. PrivateKey is empty when no key was configured, in which case
// callers generate one.
type DeployerConfig struct {
	Network    string
	PrivateKey string
	LogLevel   string
}

// deployerEnv holds the AVATAR_* variables. The HEDERA_* fallbacks shared
// with other tooling are resolved after parsing.
type deployerEnv struct {
	Network     string `env:"AVATAR_NETWORK"`
	DeployerKey string `env:"AVATAR_DEPLOYER_KEY"`
	LogLevel    string `env:"AVATAR_LOG_LEVEL" envDefault:"info"`
}

// HasPrivateKey reports whether a deployer key was configured.
func (config DeployerConfig) HasPrivateKey() bool {
	return strings.TrimSpace(config.PrivateKey) != ""
}

// Key parses the configured deployer key.
func (config DeployerConfig) Key() (hedera.PrivateKey, error) {
	return ParsePrivateKey(config.PrivateKey)
}

// DeployerConfigFromEnv loads the deployer configuration from the process
// environment and an optional .env file.
func DeployerConfigFromEnv() (DeployerConfig, error) {
	loadDotEnvIfPresent()

	var parsed deployerEnv
	if err := env.Parse(&parsed); err != nil {
		return DeployerConfig{}, fmt.Errorf("parse env: %w", err)
	}

	rawNetwork := strings.TrimSpace(parsed.Network)
	if rawNetwork == "" {
		rawNetwork = firstNonEmptyEnv("HEDERA_NETWORK")
	}
	network, err := NormalizeNetwork(rawNetwork)
	if err != nil {
		return DeployerConfig{}, err
	}

	privateKey := strings.TrimSpace(parsed.DeployerKey)
	if privateKey == "" {
		privateKey = firstNonEmptyEnv("HEDERA_PRIVATE_KEY", "PRIVATE_KEY")
	}
	switch network {
	case NetworkMainnet:
		if scopedKey := firstNonEmptyEnv("MAINNET_AVATAR_DEPLOYER_KEY", "MAINNET_HEDERA_PRIVATE_KEY"); scopedKey != "" {
			privateKey = scopedKey
		}
	case NetworkTestnet:
		if scopedKey := firstNonEmptyEnv("TESTNET_AVATAR_DEPLOYER_KEY", "TESTNET_HEDERA_PRIVATE_KEY"); scopedKey != "" {
			privateKey = scopedKey
		}
	}

	if privateKey != "" {
		if _, err := ParsePrivateKey(privateKey); err != nil {
			return DeployerConfig{}, err
		}
	}

	logLevel := strings.TrimSpace(parsed.LogLevel)
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}

	return DeployerConfig{
		Network:    network,
		PrivateKey: privateKey,
		LogLevel:   logLevel,
	}, nil
}
