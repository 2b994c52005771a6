package shared

import (
	"fmt"
	"strings"
)

// Networks a deployer may target.
const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// NormalizeNetwork maps a user supplied network name onto NetworkMainnet or
// NetworkTestnet. Blank input means testnet.
func NormalizeNetwork(network string) (string, error) {
	switch normalized := strings.ToLower(strings.TrimSpace(network)); normalized {
	case "", NetworkTestnet:
		return NetworkTestnet, nil
	case NetworkMainnet:
		return NetworkMainnet, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}
