package config

import (
	"sort"
	"strings"
	"sync"

	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/ownable"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"
)

// MaxKeyLength bounds a normalized setting key in bytes.
const MaxKeyLength = 128

// Config is an owner-gated settings store addressed by its handle.
type Config struct {
	handle string
	owner  *ownable.Ownable

	mutex  sync.RWMutex
	values map[string]string
}

// New constructs a Config at handle owned by deployer.
func New(handle string, deployer string) (*Config, error) {
	normalizedHandle, err := shared.RequireEntityID("config handle", handle)
	if err != nil {
		return nil, err
	}
	owner, err := ownable.New(deployer)
	if err != nil {
		return nil, err
	}

	return &Config{
		handle: normalizedHandle,
		owner:  owner,
		values: map[string]string{},
	}, nil
}

// Handle returns the entity ID the Config was deployed at.
func (config *Config) Handle() string {
	return config.handle
}

// Owner returns the current owner, or the zero account once renounced.
func (config *Config) Owner() string {
	return config.owner.Owner()
}

// Set inserts or overwrites key. The owner check runs before key validation so
// a stranger always sees UnauthorizedError.
func (config *Config) Set(caller string, key string, value string) error {
	return config.owner.Guard(caller, func() error {
		normalizedKey, err := NormalizeKey(key)
		if err != nil {
			return err
		}

		config.mutex.Lock()
		defer config.mutex.Unlock()
		config.values[normalizedKey] = value
		return nil
	})
}

// Delete removes key and reports whether it was present.
func (config *Config) Delete(caller string, key string) (bool, error) {
	existed := false
	err := config.owner.Guard(caller, func() error {
		normalizedKey, err := NormalizeKey(key)
		if err != nil {
			return err
		}

		config.mutex.Lock()
		defer config.mutex.Unlock()
		_, existed = config.values[normalizedKey]
		delete(config.values, normalizedKey)
		return nil
	})
	return existed, err
}

// Get returns the value for key, or "", false when it was never set.
func (config *Config) Get(key string) (string, bool) {
	normalizedKey, err := NormalizeKey(key)
	if err != nil {
		return "", false
	}

	config.mutex.RLock()
	defer config.mutex.RUnlock()
	value, ok := config.values[normalizedKey]
	return value, ok
}

// Keys returns every stored key in lexical order.
func (config *Config) Keys() []string {
	config.mutex.RLock()
	defer config.mutex.RUnlock()

	keys := make([]string, 0, len(config.values))
	for key := range config.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of every stored entry.
func (config *Config) Snapshot() map[string]string {
	config.mutex.RLock()
	defer config.mutex.RUnlock()

	snapshot := make(map[string]string, len(config.values))
	for key, value := range config.values {
		snapshot[key] = value
	}
	return snapshot
}

// TransferOwnership moves write access to newOwner. Owner only.
func (config *Config) TransferOwnership(caller string, newOwner string) (ownable.OwnershipTransferred, error) {
	return config.owner.TransferOwnership(caller, newOwner)
}

// RenounceOwnership freezes the settings permanently. Owner only.
func (config *Config) RenounceOwnership(caller string) (ownable.OwnershipTransferred, error) {
	return config.owner.RenounceOwnership(caller)
}

// NormalizeKey trims key and checks its length.
func NormalizeKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" || len(trimmed) > MaxKeyLength {
		return "", NewInvalidKeyError(key)
	}
	return trimmed, nil
}
