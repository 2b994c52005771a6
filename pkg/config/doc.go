// Package config implements the Config component: an owner-controlled
// key/value settings registry that other components bind to by handle.
//
// The deploying account becomes the owner. Only the owner may Set or Delete
// entries; anyone may read them. Reads observe every committed write.
//
//	settings, err := config.New("0.0.2001", "0.0.1001")
//	err = settings.Set("0.0.1001", "avatar:base-uri", "ipfs://avatars/")
//	value, ok := settings.Get("avatar:base-uri")
//
// Transaction builders in this package encode the same calls for a Solidity
// deployment of the component.
package config
