// The Avatar Registry SDK for Go implements an owner-controlled Config store
// and an AvatarRegistry of non-transferable avatar assets bound to it.
//
// # Packages
//
//   - pkg/ownable: single-owner access control shared by every component
//   - pkg/config: the owned key/value Config component
//   - pkg/asset: asset collections and transfer policies
//   - pkg/avatar: the AvatarRegistry component
//   - pkg/ledger: an in-process deployment environment with signed calls,
//     total ordering and receipts
//   - pkg/shared: entity IDs, error kinds, environment configuration and logging
//
// The config, avatar and ownable packages also build Hedera smart contract
// calls for a Solidity deployment of the same interfaces.
//
// # Installation
//
//	go get github.com/hashgraph-online/avatar-registry-sdk-go@latest
package avatar_registry_sdk_go
