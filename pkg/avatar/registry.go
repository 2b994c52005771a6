package avatar

import (
	"sync"

	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/asset"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/config"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/ownable"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"
)

// ConfigResolver looks up a deployed Config by handle.
type ConfigResolver interface {
	ResolveConfig(handle string) (*config.Config, bool)
}

// ResolverFunc adapts a function to ConfigResolver.
type ResolverFunc func(handle string) (*config.Config, bool)

// ResolveConfig calls fn.
func (fn ResolverFunc) ResolveConfig(handle string) (*config.Config, bool) {
	return fn(handle)
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithIssueObserver registers a callback invoked after every successful Issue.
func WithIssueObserver(observer func(asset.Issued)) Option {
	return func(registry *Registry) {
		if observer != nil {
			registry.observers = append(registry.observers, observer)
		}
	}
}

// Registry issues non-transferable avatars and carries a fixed reference
// to its Config. Its owner is independent of the Config owner.
type Registry struct {
	handle    string
	configRef string
	resolver  ConfigResolver
	owner     *ownable.Ownable
	assets    *asset.Collection

	observerMutex sync.Mutex
	observers     []func(asset.Issued)
}

// New constructs a registry at handle, owned by deployer and bound to the
// Config at configHandle.
func New(
	handle string,
	deployer string,
	configHandle string,
	resolver ConfigResolver,
	options ...Option,
) (*Registry, error) {
	normalizedHandle, err := shared.RequireEntityID("registry handle", handle)
	if err != nil {
		return nil, err
	}

	configRef, err := validateConfigHandle(configHandle, resolver)
	if err != nil {
		return nil, err
	}

	owner, err := ownable.New(deployer)
	if err != nil {
		return nil, err
	}

	registry := &Registry{
		handle:    normalizedHandle,
		configRef: configRef,
		resolver:  resolver,
		owner:     owner,
		assets:    asset.NewCollection(asset.NonTransferable{}),
	}
	for _, option := range options {
		option(registry)
	}
	return registry, nil
}

func validateConfigHandle(configHandle string, resolver ConfigResolver) (string, error) {
	normalized, err := shared.NormalizeEntityID(configHandle)
	if err != nil {
		return "", NewInvalidConfigError(configHandle, "malformed handle")
	}
	if normalized == shared.ZeroEntityID {
		return "", NewInvalidConfigError(configHandle, "zero handle")
	}
	if resolver == nil {
		return "", NewInvalidConfigError(configHandle, "no resolver")
	}
	if settings, ok := resolver.ResolveConfig(normalized); !ok || settings == nil {
		return "", NewInvalidConfigError(configHandle, "handle does not resolve to a config")
	}
	return normalized, nil
}

// Handle returns the registry's own entity ID.
func (registry *Registry) Handle() string {
	return registry.handle
}

// GetConfig returns the Config handle bound at construction.
func (registry *Registry) GetConfig() string {
	return registry.configRef
}

// Owner returns the registry's own owner. It is never read from the Config.
func (registry *Registry) Owner() string {
	return registry.owner.Owner()
}

// TransferOwnership hands the issue right to newOwner. Owner only.
func (registry *Registry) TransferOwnership(caller string, newOwner string) (ownable.OwnershipTransferred, error) {
	return registry.owner.TransferOwnership(caller, newOwner)
}

// RenounceOwnership sets the owner to the zero account, disabling Issue for good.
func (registry *Registry) RenounceOwnership(caller string) (ownable.OwnershipTransferred, error) {
	return registry.owner.RenounceOwnership(caller)
}

// Issue creates a new avatar held by to. Only the owner may issue.
func (registry *Registry) Issue(caller string, to string) (int64, error) {
	var issued asset.Issued
	err := registry.owner.Guard(caller, func() error {
		var issueErr error
		issued, issueErr = registry.assets.Issue(to)
		return issueErr
	})
	if err != nil {
		return 0, err
	}

	registry.notify(issued)
	return issued.AssetID, nil
}

// Transfer always fails with asset.NonTransferableError and changes nothing.
// The registry's collection is governed by asset.NonTransferable.
func (registry *Registry) Transfer(caller string, assetID int64, to string) error {
	_, err := registry.assets.Transfer(caller, assetID, to)
	return err
}

// HolderOf returns the holder of assetID, or asset.UnknownAssetError.
func (registry *Registry) HolderOf(assetID int64) (string, error) {
	return registry.assets.HolderOf(assetID)
}

// TotalIssued returns the number of avatars issued so far.
func (registry *Registry) TotalIssued() int64 {
	return registry.assets.Count()
}

// Setting reads key from the bound Config. The Config is resolved by handle on
// every call and is never written.
func (registry *Registry) Setting(key string) (string, bool, error) {
	settings, ok := registry.resolver.ResolveConfig(registry.configRef)
	if !ok || settings == nil {
		return "", false, NewInvalidConfigError(registry.configRef, "handle no longer resolves")
	}
	value, present := settings.Get(key)
	return value, present, nil
}

func (registry *Registry) notify(issued asset.Issued) {
	registry.observerMutex.Lock()
	observers := append([]func(asset.Issued){}, registry.observers...)
	registry.observerMutex.Unlock()

	for _, observer := range observers {
		observer(issued)
	}
}
