// Package shared provides the helpers used across the Avatar Registry SDK for
// Go: entity ID normalization for identities and component handles, error
// kinds, network normalization, deployer configuration loaded from the
// environment, private key parsing and logger construction.
//
// # Entity IDs
//
// Accounts and deployed components are both addressed by Hedera entity IDs in
// shard.realm.num form. NormalizeEntityID returns the canonical string form and
// ZeroEntityID is the null reference:
//
//	id, err := shared.NormalizeEntityID("0.0.1001-abcde") // "0.0.1001"
//
// # Environment Variables
//
// DeployerConfigFromEnv reads AVATAR_NETWORK (or HEDERA_NETWORK),
// AVATAR_DEPLOYER_KEY (or HEDERA_PRIVATE_KEY) and AVATAR_LOG_LEVEL, loading a
// .env file from the working directory or one of its parents when present.
package shared
