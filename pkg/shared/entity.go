package shared

import (
	"fmt"
	"regexp"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// ZeroEntityID is the null identity and the null component handle.
const ZeroEntityID = "0.0.0"

var entityIDRegex = regexp.MustCompile(`^(0|(?:[1-9]\d*))\.(0|(?:[1-9]\d*))\.(0|(?:[1-9]\d*))(?:-([a-z]{5}))?$`)

// NormalizeEntityID returns the canonical shard.realm.num form of an account
// or contract identifier, dropping any checksum suffix.
func NormalizeEntityID(identifier string) (string, error) {
	trimmed := strings.TrimSpace(identifier)
	if !entityIDRegex.MatchString(trimmed) {
		return "", NewInvalidEntityIDError("", identifier)
	}

	accountID, err := hedera.AccountIDFromString(trimmed)
	if err != nil {
		return "", NewInvalidEntityIDError("", identifier)
	}

	return fmt.Sprintf("%d.%d.%d", accountID.Shard, accountID.Realm, accountID.Account), nil
}

// RequireEntityID normalizes identifier and rejects the zero entity.
func RequireEntityID(field string, identifier string) (string, error) {
	normalized, err := NormalizeEntityID(identifier)
	if err != nil {
		return "", NewInvalidEntityIDError(field, identifier)
	}
	if normalized == ZeroEntityID {
		return "", NewInvalidEntityIDError(field, identifier)
	}
	return normalized, nil
}

// IsZeroEntityID reports whether identifier normalizes to ZeroEntityID.
func IsZeroEntityID(identifier string) bool {
	normalized, err := NormalizeEntityID(identifier)
	return err == nil && normalized == ZeroEntityID
}

// SameEntity reports whether two identifiers refer to the same entity.
// Malformed identifiers never match.
func SameEntity(left string, right string) bool {
	normalizedLeft, err := NormalizeEntityID(left)
	if err != nil {
		return false
	}
	normalizedRight, err := NormalizeEntityID(right)
	if err != nil {
		return false
	}
	return normalizedLeft == normalizedRight
}

// ContractID converts a normalized handle into a hedera.ContractID.
func ContractID(handle string) (hedera.ContractID, error) {
	normalized, err := RequireEntityID("contract", handle)
	if err != nil {
		return hedera.ContractID{}, err
	}
	contractID, err := hedera.ContractIDFromString(normalized)
	if err != nil {
		return hedera.ContractID{}, fmt.Errorf("invalid contract ID: %w", err)
	}
	return contractID, nil
}

// SolidityAddress returns the 20-byte hex address of an account identity.
func SolidityAddress(identity string) (string, error) {
	normalized, err := RequireEntityID("account", identity)
	if err != nil {
		return "", err
	}
	accountID, err := hedera.AccountIDFromString(normalized)
	if err != nil {
		return "", fmt.Errorf("invalid account ID: %w", err)
	}
	return accountID.ToSolidityAddress(), nil
}
