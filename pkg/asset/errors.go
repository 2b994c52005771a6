package asset

import "fmt"

const (
	KindNonTransferable = "non_transferable"
	KindUnknownAsset    = "unknown_asset"
	KindNotHolder       = "not_holder"
)

// NonTransferableError is the unconditional rejection of a transfer.
type NonTransferableError struct {
	AssetID int64
}

// NewNonTransferableError reports a refused transfer of assetID.
func NewNonTransferableError(assetID int64) error {
	return NonTransferableError{AssetID: assetID}
}

func (errorValue NonTransferableError) Error() string {
	return fmt.Sprintf("asset %d is non-transferable", errorValue.AssetID)
}

func (NonTransferableError) Kind() string {
	return KindNonTransferable
}

// UnknownAssetError is returned for an asset ID that was never issued.
type UnknownAssetError struct {
	AssetID int64
}

// NewUnknownAssetError reports that assetID does not exist.
func NewUnknownAssetError(assetID int64) error {
	return UnknownAssetError{AssetID: assetID}
}

func (errorValue UnknownAssetError) Error() string {
	return fmt.Sprintf("asset %d was never issued", errorValue.AssetID)
}

func (UnknownAssetError) Kind() string {
	return KindUnknownAsset
}

// NotHolderError is returned by HolderOnly when the caller does not hold the asset.
type NotHolderError struct {
	AssetID int64
	Caller  string
	Holder  string
}

// NewNotHolderError reports that caller is not holder of assetID.
func NewNotHolderError(assetID int64, caller string, holder string) error {
	return NotHolderError{AssetID: assetID, Caller: caller, Holder: holder}
}

func (errorValue NotHolderError) Error() string {
	return fmt.Sprintf("caller %s does not hold asset %d", errorValue.Caller, errorValue.AssetID)
}

func (NotHolderError) Kind() string {
	return KindNotHolder
}
