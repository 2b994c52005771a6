package asset

import "github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"

// TransferPolicy decides whether caller may move assetID from holder to to.
// holder is "" when the asset does not exist.
type TransferPolicy interface {
	CheckTransfer(assetID int64, holder string, caller string, to string) error
}

// HolderOnly lets the current holder transfer to any non-zero account.
type HolderOnly struct{}

// CheckTransfer implements TransferPolicy.
func (HolderOnly) CheckTransfer(assetID int64, holder string, caller string, to string) error {
	if holder == "" {
		return NewUnknownAssetError(assetID)
	}
	if !shared.SameEntity(caller, holder) {
		return NewNotHolderError(assetID, caller, holder)
	}
	if _, err := shared.RequireEntityID("to", to); err != nil {
		return err
	}
	return nil
}

// NonTransferable rejects every transfer regardless of its arguments.
type NonTransferable struct{}

// CheckTransfer implements TransferPolicy.
func (NonTransferable) CheckTransfer(assetID int64, _ string, _ string, _ string) error {
	return NewNonTransferableError(assetID)
}
