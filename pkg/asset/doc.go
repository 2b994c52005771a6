// Package asset provides a generic registry of uniquely numbered assets, each
// held by one account, together with the transfer policies that decide whether
// a holder may move an asset.
//
// Collection.Transfer always consults its TransferPolicy before anything else.
// HolderOnly is the conventional policy; NonTransferable rejects every transfer
// so that no code path can change a holder after issuance.
package asset
