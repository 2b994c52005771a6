package config

import (
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/ownable"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// DefaultQueryGas is the gas attached to read-only queries.
const DefaultQueryGas uint64 = 50_000

// SetTxParams describes a set call.
type SetTxParams struct {
	ContractID      string
	Key             string
	Value           string
	Gas             uint64
	TransactionMemo string
}

// DeleteTxParams describes a delete call.
type DeleteTxParams struct {
	ContractID      string
	Key             string
	Gas             uint64
	TransactionMemo string
}

// GetQueryParams describes a get query.
type GetQueryParams struct {
	ContractID string
	Key        string
	Gas        uint64
}

// BuildSetTx builds a set(string,string) contract call.
func BuildSetTx(params SetTxParams) (*hedera.ContractExecuteTransaction, error) {
	contractID, err := shared.ContractID(params.ContractID)
	if err != nil {
		return nil, err
	}
	key, err := NormalizeKey(params.Key)
	if err != nil {
		return nil, err
	}

	functionParams := hedera.NewContractFunctionParameters().
		AddString(key).
		AddString(params.Value)

	return ownable.NewContractCall(contractID, "set", functionParams, params.Gas, params.TransactionMemo), nil
}

// BuildDeleteTx builds a remove(string) contract call.
func BuildDeleteTx(params DeleteTxParams) (*hedera.ContractExecuteTransaction, error) {
	contractID, err := shared.ContractID(params.ContractID)
	if err != nil {
		return nil, err
	}
	key, err := NormalizeKey(params.Key)
	if err != nil {
		return nil, err
	}

	functionParams := hedera.NewContractFunctionParameters().AddString(key)
	return ownable.NewContractCall(contractID, "remove", functionParams, params.Gas, params.TransactionMemo), nil
}

// BuildGetQuery builds a read-only get(string) contract query.
func BuildGetQuery(params GetQueryParams) (*hedera.ContractCallQuery, error) {
	contractID, err := shared.ContractID(params.ContractID)
	if err != nil {
		return nil, err
	}
	key, err := NormalizeKey(params.Key)
	if err != nil {
		return nil, err
	}

	gas := params.Gas
	if gas == 0 {
		gas = DefaultQueryGas
	}

	return hedera.NewContractCallQuery().
		SetContractID(contractID).
		SetGas(gas).
		SetFunction("get", hedera.NewContractFunctionParameters().AddString(key)), nil
}
