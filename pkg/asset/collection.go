package asset

import (
	"sync"

	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"
)

// Issued is the observation recorded when an asset is created.
type Issued struct {
	AssetID int64  `json:"assetId"`
	Holder  string `json:"holder"`
}

// Transferred is the observation recorded when an asset changes holder.
type Transferred struct {
	AssetID int64  `json:"assetId"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Collection numbers assets from 1 and tracks their holders under a
// TransferPolicy.
type Collection struct {
	policy TransferPolicy

	mutex   sync.RWMutex
	lastID  int64
	holders map[int64]string
}

// NewCollection returns an empty collection governed by policy. A nil policy
// selects HolderOnly.
func NewCollection(policy TransferPolicy) *Collection {
	if policy == nil {
		policy = HolderOnly{}
	}
	return &Collection{
		policy:  policy,
		holders: map[int64]string{},
	}
}

// Issue creates the next asset, numbered from 1, held by to. Authorization is
// the caller's concern.
func (collection *Collection) Issue(to string) (Issued, error) {
	holder, err := shared.RequireEntityID("to", to)
	if err != nil {
		return Issued{}, err
	}

	collection.mutex.Lock()
	defer collection.mutex.Unlock()

	collection.lastID++
	assetID := collection.lastID
	collection.holders[assetID] = holder
	return Issued{AssetID: assetID, Holder: holder}, nil
}

// HolderOf returns the holder of assetID or UnknownAssetError.
func (collection *Collection) HolderOf(assetID int64) (string, error) {
	collection.mutex.RLock()
	defer collection.mutex.RUnlock()

	holder, exists := collection.holders[assetID]
	if !exists {
		return "", NewUnknownAssetError(assetID)
	}
	return holder, nil
}

// Count returns the number of assets issued so far.
func (collection *Collection) Count() int64 {
	collection.mutex.RLock()
	defer collection.mutex.RUnlock()
	return collection.lastID
}

// Transfer moves assetID to to when the policy allows it. The policy runs
// first and sees the current holder, or "" for an unknown asset.
func (collection *Collection) Transfer(caller string, assetID int64, to string) (Transferred, error) {
	collection.mutex.Lock()
	defer collection.mutex.Unlock()

	holder := collection.holders[assetID]
	if err := collection.policy.CheckTransfer(assetID, holder, caller, to); err != nil {
		return Transferred{}, err
	}
	if holder == "" {
		return Transferred{}, NewUnknownAssetError(assetID)
	}

	recipient, err := shared.RequireEntityID("to", to)
	if err != nil {
		return Transferred{}, err
	}

	collection.holders[assetID] = recipient
	return Transferred{AssetID: assetID, From: holder, To: recipient}, nil
}
