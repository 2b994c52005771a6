package ledger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"
)

// NormalizeMessage trims message fields and canonicalizes the target
// contract. Arguments that a contract validates itself, such as recipients
// and config handles, are only trimmed so the contract reports its own error.
func NormalizeMessage(message Message) (Message, error) {
	normalized := message
	normalized.Protocol = strings.ToLower(strings.TrimSpace(message.Protocol))
	normalized.Operation = strings.ToLower(strings.TrimSpace(message.Operation))
	normalized.Config = strings.TrimSpace(message.Config)
	normalized.Key = strings.TrimSpace(message.Key)
	normalized.To = strings.TrimSpace(message.To)
	normalized.NewOwner = strings.TrimSpace(message.NewOwner)
	normalized.Memo = strings.TrimSpace(message.Memo)

	if contract := strings.TrimSpace(message.Contract); contract != "" {
		handle, err := shared.NormalizeEntityID(contract)
		if err != nil {
			return normalized, shared.NewInvalidEntityIDError("contract", message.Contract)
		}
		normalized.Contract = handle
	} else {
		normalized.Contract = ""
	}

	return normalized, nil
}

// ValidateMessage validates an avatar-registry message.
func ValidateMessage(message Message) error {
	normalized, err := NormalizeMessage(message)
	if err != nil {
		return err
	}

	if normalized.Protocol != ProtocolID {
		return NewInvalidMessageFormatError("p must be " + ProtocolID)
	}
	if len(normalized.Memo) > MaxMemoLength {
		return NewInvalidMessageFormatError(fmt.Sprintf("m must be <= %d characters", MaxMemoLength))
	}
	if len(normalized.Value) > MaxValueLength {
		return NewInvalidMessageFormatError(fmt.Sprintf("value must be <= %d characters", MaxValueLength))
	}

	switch normalized.Operation {
	case OperationDeployConfig, OperationDeployAvatar:
		if normalized.Contract != "" {
			return NewInvalidMessageFormatError(fmt.Sprintf("contract must be empty for %s", normalized.Operation))
		}
		return nil
	case OperationConfigSet,
		OperationConfigDelete,
		OperationTransferOwnership,
		OperationRenounceOwnership,
		OperationIssue,
		OperationTransfer:
		return requireContract(normalized)
	default:
		return NewInvalidMessageFormatError(
			"op must be one of deploy-config|deploy-avatar|config-set|config-delete|transfer-ownership|renounce-ownership|issue|transfer",
		)
	}
}

func requireContract(message Message) error {
	if message.Contract == "" || message.Contract == shared.ZeroEntityID {
		return NewInvalidMessageFormatError(fmt.Sprintf("contract is required for %s", message.Operation))
	}
	return nil
}

// ParseMessageBytes decodes and validates a message payload.
func ParseMessageBytes(payload []byte) (Message, error) {
	var message Message
	if err := json.Unmarshal(payload, &message); err != nil {
		return Message{}, NewInvalidMessageFormatError(fmt.Sprintf("failed to decode avatar-registry message: %v", err))
	}

	normalized, err := NormalizeMessage(message)
	if err != nil {
		return Message{}, err
	}
	if err := ValidateMessage(normalized); err != nil {
		return Message{}, err
	}

	return normalized, nil
}

// BuildMessagePayload validates and serializes a message.
func BuildMessagePayload(message Message) ([]byte, Message, error) {
	normalized, err := NormalizeMessage(message)
	if err != nil {
		return nil, Message{}, err
	}
	if err := ValidateMessage(normalized); err != nil {
		return nil, Message{}, err
	}

	payload, err := json.Marshal(normalized)
	if err != nil {
		return nil, Message{}, fmt.Errorf("failed to marshal avatar-registry message: %w", err)
	}

	return payload, normalized, nil
}

// DeployConfigMessage deploys a new Config.
func DeployConfigMessage() Message {
	return Message{Protocol: ProtocolID, Operation: OperationDeployConfig}
}

// DeployAvatarMessage deploys an AvatarRegistry bound to configHandle.
func DeployAvatarMessage(configHandle string) Message {
	return Message{Protocol: ProtocolID, Operation: OperationDeployAvatar, Config: configHandle}
}

// ConfigSetMessage writes key on a Config.
func ConfigSetMessage(contract string, key string, value string) Message {
	return Message{Protocol: ProtocolID, Operation: OperationConfigSet, Contract: contract, Key: key, Value: value}
}

// ConfigDeleteMessage removes key from a Config.
func ConfigDeleteMessage(contract string, key string) Message {
	return Message{Protocol: ProtocolID, Operation: OperationConfigDelete, Contract: contract, Key: key}
}

// TransferOwnershipMessage hands contract to newOwner.
func TransferOwnershipMessage(contract string, newOwner string) Message {
	return Message{Protocol: ProtocolID, Operation: OperationTransferOwnership, Contract: contract, NewOwner: newOwner}
}

// RenounceOwnershipMessage renounces ownership of contract.
func RenounceOwnershipMessage(contract string) Message {
	return Message{Protocol: ProtocolID, Operation: OperationRenounceOwnership, Contract: contract}
}

// IssueMessage issues an avatar to to.
func IssueMessage(contract string, to string) Message {
	return Message{Protocol: ProtocolID, Operation: OperationIssue, Contract: contract, To: to}
}

// TransferMessage attempts to move assetID. It always reverts.
func TransferMessage(contract string, assetID int64, to string) Message {
	return Message{Protocol: ProtocolID, Operation: OperationTransfer, Contract: contract, AssetID: assetID, To: to}
}
