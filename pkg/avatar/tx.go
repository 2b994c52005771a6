package avatar

import (
	"fmt"

	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/config"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/ownable"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// IssueTxParams describes an issue call.
type IssueTxParams struct {
	ContractID      string
	To              string
	Gas             uint64
	TransactionMemo string
}

// GetConfigQueryParams describes a getConfig query.
type GetConfigQueryParams struct {
	ContractID string
	Gas        uint64
}

// HolderOfQueryParams describes a holderOf query.
type HolderOfQueryParams struct {
	ContractID string
	AssetID    int64
	Gas        uint64
}

// BuildIssueTx builds an issue(address) contract call.
func BuildIssueTx(params IssueTxParams) (*hedera.ContractExecuteTransaction, error) {
	contractID, err := shared.ContractID(params.ContractID)
	if err != nil {
		return nil, err
	}
	if _, err := shared.RequireEntityID("to", params.To); err != nil {
		return nil, err
	}
	recipient, err := shared.SolidityAddress(params.To)
	if err != nil {
		return nil, err
	}

	functionParams, err := hedera.NewContractFunctionParameters().AddAddress(recipient)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recipient address: %w", err)
	}
	return ownable.NewContractCall(contractID, "issue", functionParams, params.Gas, params.TransactionMemo), nil
}

// BuildGetConfigQuery builds a read-only getConfig() query.
func BuildGetConfigQuery(params GetConfigQueryParams) (*hedera.ContractCallQuery, error) {
	contractID, err := shared.ContractID(params.ContractID)
	if err != nil {
		return nil, err
	}
	return newQuery(contractID, "getConfig", hedera.NewContractFunctionParameters(), params.Gas), nil
}

// BuildHolderOfQuery builds a read-only holderOf(uint64) query.
func BuildHolderOfQuery(params HolderOfQueryParams) (*hedera.ContractCallQuery, error) {
	contractID, err := shared.ContractID(params.ContractID)
	if err != nil {
		return nil, err
	}
	if params.AssetID <= 0 {
		return nil, fmt.Errorf("asset ID must be positive, got %d", params.AssetID)
	}

	functionParams := hedera.NewContractFunctionParameters().AddUint64(uint64(params.AssetID))
	return newQuery(contractID, "holderOf", functionParams, params.Gas), nil
}

func newQuery(
	contractID hedera.ContractID,
	function string,
	functionParams *hedera.ContractFunctionParameters,
	gas uint64,
) *hedera.ContractCallQuery {
	if gas == 0 {
		gas = config.DefaultQueryGas
	}
	return hedera.NewContractCallQuery().
		SetContractID(contractID).
		SetGas(gas).
		SetFunction(function, functionParams)
}
