package ownable

import (
	"fmt"
	"strings"

	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// DefaultGas is the gas attached to state-changing calls.
const DefaultGas uint64 = 100_000

// TransferOwnershipTxParams describes a transferOwnership call.
type TransferOwnershipTxParams struct {
	ContractID      string
	NewOwner        string
	Gas             uint64
	TransactionMemo string
}

// RenounceOwnershipTxParams describes a renounceOwnership call.
type RenounceOwnershipTxParams struct {
	ContractID      string
	Gas             uint64
	TransactionMemo string
}

// BuildTransferOwnershipTx builds a transferOwnership(address) contract call.
func BuildTransferOwnershipTx(params TransferOwnershipTxParams) (*hedera.ContractExecuteTransaction, error) {
	contractID, err := shared.ContractID(params.ContractID)
	if err != nil {
		return nil, err
	}
	newOwner, err := shared.SolidityAddress(params.NewOwner)
	if err != nil {
		return nil, err
	}

	functionParams, err := hedera.NewContractFunctionParameters().AddAddress(newOwner)
	if err != nil {
		return nil, fmt.Errorf("failed to encode new owner address: %w", err)
	}

	return NewContractCall(contractID, "transferOwnership", functionParams, params.Gas, params.TransactionMemo), nil
}

// BuildRenounceOwnershipTx builds a renounceOwnership() contract call.
func BuildRenounceOwnershipTx(params RenounceOwnershipTxParams) (*hedera.ContractExecuteTransaction, error) {
	contractID, err := shared.ContractID(params.ContractID)
	if err != nil {
		return nil, err
	}

	return NewContractCall(
		contractID,
		"renounceOwnership",
		hedera.NewContractFunctionParameters(),
		params.Gas,
		params.TransactionMemo,
	), nil
}

// NewContractCall assembles a ContractExecuteTransaction, applying DefaultGas
// when gas is zero.
func NewContractCall(
	contractID hedera.ContractID,
	function string,
	functionParams *hedera.ContractFunctionParameters,
	gas uint64,
	transactionMemo string,
) *hedera.ContractExecuteTransaction {
	if gas == 0 {
		gas = DefaultGas
	}

	transaction := hedera.NewContractExecuteTransaction().
		SetContractID(contractID).
		SetGas(gas).
		SetFunction(function, functionParams)

	if memo := strings.TrimSpace(transactionMemo); memo != "" {
		transaction.SetTransactionMemo(memo)
	}
	return transaction
}
