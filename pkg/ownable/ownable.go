package ownable

import (
	"sync"

	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"
)

// OwnershipTransferred describes a committed change of owner.
type OwnershipTransferred struct {
	PreviousOwner string `json:"previousOwner"`
	NewOwner      string `json:"newOwner"`
}

// Ownable tracks a single owner and gates privileged operations on it.
type Ownable struct {
	mutex sync.RWMutex
	owner string
}

// New returns an Ownable owned by owner, which must be a non-zero entity ID.
func New(owner string) (*Ownable, error) {
	normalized, err := shared.RequireEntityID("owner", owner)
	if err != nil {
		return nil, err
	}
	return &Ownable{owner: normalized}, nil
}

// Owner returns the current owner, or shared.ZeroEntityID once renounced.
func (ownable *Ownable) Owner() string {
	ownable.mutex.RLock()
	defer ownable.mutex.RUnlock()
	return ownable.owner
}

// OnlyOwner returns UnauthorizedError unless caller is the current owner.
func (ownable *Ownable) OnlyOwner(caller string) error {
	ownable.mutex.RLock()
	defer ownable.mutex.RUnlock()
	return ownable.checkOwnerLocked(caller)
}

// Guard runs fn while holding the owner check, so fn observes the same owner
// that authorized it. fn must not call back into ownable.
func (ownable *Ownable) Guard(caller string, fn func() error) error {
	ownable.mutex.RLock()
	defer ownable.mutex.RUnlock()
	if err := ownable.checkOwnerLocked(caller); err != nil {
		return err
	}
	return fn()
}

// TransferOwnership hands ownership to newOwner, which must be a non-zero
// account. Only the current owner may call it.
func (ownable *Ownable) TransferOwnership(caller string, newOwner string) (OwnershipTransferred, error) {
	ownable.mutex.Lock()
	defer ownable.mutex.Unlock()

	if err := ownable.checkOwnerLocked(caller); err != nil {
		return OwnershipTransferred{}, err
	}
	normalized, err := shared.RequireEntityID("new owner", newOwner)
	if err != nil {
		return OwnershipTransferred{}, err
	}

	event := OwnershipTransferred{PreviousOwner: ownable.owner, NewOwner: normalized}
	ownable.owner = normalized
	return event, nil
}

// RenounceOwnership leaves the component without an owner. It cannot be undone.
func (ownable *Ownable) RenounceOwnership(caller string) (OwnershipTransferred, error) {
	ownable.mutex.Lock()
	defer ownable.mutex.Unlock()

	if err := ownable.checkOwnerLocked(caller); err != nil {
		return OwnershipTransferred{}, err
	}

	event := OwnershipTransferred{PreviousOwner: ownable.owner, NewOwner: shared.ZeroEntityID}
	ownable.owner = shared.ZeroEntityID
	return event, nil
}

func (ownable *Ownable) checkOwnerLocked(caller string) error {
	if ownable.owner == shared.ZeroEntityID || !shared.SameEntity(caller, ownable.owner) {
		return NewUnauthorizedError(caller, ownable.owner)
	}
	return nil
}
