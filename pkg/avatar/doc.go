// Package avatar implements the AvatarRegistry component: a registry of
// non-transferable avatar assets bound to exactly one Config component.
//
// # Construction
//
// A registry is constructed with the handle of an existing Config. The handle
// is validated once through a ConfigResolver and stored; it can never be
// rebound. The deploying account becomes the registry owner. That owner is a
// copy taken at construction, so later ownership changes on the Config do not
// affect the registry.
//
//	registry, err := avatar.New("0.0.2002", deployer, "0.0.2001", resolver)
//	assetID, err := registry.Issue(deployer, "0.0.1002")
//
// # Transfers
//
// Avatars are bound to their holder. Transfer exists so callers receive an
// explicit NonTransferableError rather than a missing method, and the backing
// collection is built with the asset.NonTransferable policy.
package avatar
