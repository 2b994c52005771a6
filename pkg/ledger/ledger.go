package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/asset"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/avatar"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/config"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/ownable"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ownedContract is implemented by every deployable component.
type ownedContract interface {
	Owner() string
	TransferOwnership(caller string, newOwner string) (ownable.OwnershipTransferred, error)
	RenounceOwnership(caller string) (ownable.OwnershipTransferred, error)
}

// Ledger hosts deployed contracts and applies calls to them one at a time.
type Ledger struct {
	logger  zerolog.Logger
	metrics *Metrics
	clock   Clock
	network string

	// execMutex orders every state-changing call and entity allocation.
	execMutex sync.Mutex

	stateMutex    sync.RWMutex
	nextEntityNum int64
	accounts      map[string]hedera.PublicKey
	configs       map[string]*config.Config
	registries    map[string]*avatar.Registry
	receipts      []Receipt
	lastConsensus time.Time
	consumed      map[string]struct{}
}

type preparedCall struct {
	caller  string
	message Message
}

// New creates an empty ledger.
func New(options ...Option) (*Ledger, error) {
	ledger := &Ledger{
		logger:        zerolog.Nop(),
		clock:         systemClock,
		network:       shared.NetworkTestnet,
		nextEntityNum: DefaultFirstEntityNum,
		accounts:      map[string]hedera.PublicKey{},
		configs:       map[string]*config.Config{},
		registries:    map[string]*avatar.Registry{},
		consumed:      map[string]struct{}{},
	}
	for _, option := range options {
		if err := option(ledger); err != nil {
			return nil, err
		}
	}
	return ledger, nil
}

// Network reports the network this ledger stamps into transaction metadata.
func (ledger *Ledger) Network() string {
	return ledger.network
}

// NewAccount generates an ECDSA key and registers a new account for it.
func (ledger *Ledger) NewAccount() (Account, error) {
	privateKey, err := hedera.PrivateKeyGenerateEcdsa()
	if err != nil {
		return Account{}, fmt.Errorf("failed to generate account key: %w", err)
	}

	accountID, err := ledger.CreateAccount(privateKey.PublicKey())
	if err != nil {
		return Account{}, err
	}
	return Account{ID: accountID, PrivateKey: privateKey}, nil
}

// CreateAccount registers publicKey under a freshly allocated account ID.
func (ledger *Ledger) CreateAccount(publicKey hedera.PublicKey) (string, error) {
	ledger.execMutex.Lock()
	defer ledger.execMutex.Unlock()

	ledger.stateMutex.Lock()
	defer ledger.stateMutex.Unlock()

	accountID := entityID(ledger.nextEntityNum)
	ledger.nextEntityNum++
	ledger.accounts[accountID] = publicKey

	ledger.logger.Debug().Str("account", accountID).Msg("account created")
	return accountID, nil
}

// Execute applies message on behalf of an already authenticated caller.
//
// A call rejected by a contract is still recorded: the returned receipt has
// status CONTRACT_REVERT_EXECUTED and the contract's error is returned
// alongside it. Calls that fail before reaching a contract return a zero
// receipt. A message with a non-zero Nonce is applied at most once per caller.
func (ledger *Ledger) Execute(ctx context.Context, caller string, message Message) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	call, err := ledger.prepare(caller, message)
	if err != nil {
		ledger.reject(err)
		return Receipt{}, err
	}

	ledger.execMutex.Lock()
	defer ledger.execMutex.Unlock()

	return ledger.executeLocked(ctx, call)
}

// Submit verifies a signed envelope against the caller's registered key and
// executes it.
func (ledger *Ledger) Submit(ctx context.Context, envelope Envelope) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	decoded, err := ledger.verify(envelope)
	if err != nil {
		ledger.reject(err)
		return Receipt{}, err
	}
	return ledger.Execute(ctx, decoded.Caller, decoded.Message)
}

// SubmitBatch verifies every envelope concurrently. If any fails verification
// or repeats a nonce, nothing is applied. Otherwise the calls are applied in
// input order with no other call interleaved, and one receipt is returned per
// envelope; contract rejections show up in the receipts rather than as an
// error.
func (ledger *Ledger) SubmitBatch(ctx context.Context, envelopes []Envelope) ([]Receipt, error) {
	decoded := make([]DecodedEnvelope, len(envelopes))

	group, groupCtx := errgroup.WithContext(ctx)
	for index, envelope := range envelopes {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			verified, err := ledger.verify(envelope)
			if err != nil {
				return fmt.Errorf("envelope %d: %w", index, err)
			}
			decoded[index] = verified
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		ledger.reject(err)
		return nil, err
	}

	calls := make([]preparedCall, len(decoded))
	batchNonces := make(map[string]int, len(decoded))
	for index, item := range decoded {
		call, err := ledger.prepare(item.Caller, item.Message)
		if err != nil {
			err = fmt.Errorf("envelope %d: %w", index, err)
			ledger.reject(err)
			return nil, err
		}
		key := nonceKey(call.caller, call.message.Nonce)
		if first, ok := batchNonces[key]; ok {
			err := fmt.Errorf("envelope %d repeats envelope %d: %w", index, first,
				NewDuplicateTransactionError(call.caller, call.message.Nonce))
			ledger.reject(err)
			return nil, err
		}
		batchNonces[key] = index
		calls[index] = call
	}

	ledger.execMutex.Lock()
	defer ledger.execMutex.Unlock()

	for index, call := range calls {
		if err := ledger.checkNonce(call); err != nil {
			err = fmt.Errorf("envelope %d: %w", index, err)
			ledger.reject(err)
			return nil, err
		}
	}

	receipts := make([]Receipt, 0, len(calls))
	for _, call := range calls {
		receipt, err := ledger.executeLocked(ctx, call)
		if err != nil && receipt.Sequence == 0 {
			return receipts, err
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}

// DeployConfig deploys a Config owned by caller and returns its handle.
func (ledger *Ledger) DeployConfig(ctx context.Context, caller string) (string, error) {
	receipt, err := ledger.Execute(ctx, caller, DeployConfigMessage())
	if err != nil {
		return "", err
	}
	return receipt.Contract, nil
}

// DeployAvatarRegistry deploys an AvatarRegistry owned by caller and bound to
// configHandle, and returns its handle.
func (ledger *Ledger) DeployAvatarRegistry(ctx context.Context, caller string, configHandle string) (string, error) {
	receipt, err := ledger.Execute(ctx, caller, DeployAvatarMessage(configHandle))
	if err != nil {
		return "", err
	}
	return receipt.Contract, nil
}

// Config returns the Config deployed at handle.
func (ledger *Ledger) Config(handle string) (*config.Config, error) {
	normalized, err := shared.NormalizeEntityID(handle)
	if err != nil {
		return nil, err
	}

	ledger.stateMutex.RLock()
	defer ledger.stateMutex.RUnlock()

	settings, ok := ledger.configs[normalized]
	if !ok {
		return nil, NewUnknownContractError(normalized, ContractKindConfig)
	}
	return settings, nil
}

// AvatarRegistry returns the AvatarRegistry deployed at handle.
func (ledger *Ledger) AvatarRegistry(handle string) (*avatar.Registry, error) {
	normalized, err := shared.NormalizeEntityID(handle)
	if err != nil {
		return nil, err
	}

	ledger.stateMutex.RLock()
	defer ledger.stateMutex.RUnlock()

	registry, ok := ledger.registries[normalized]
	if !ok {
		return nil, NewUnknownContractError(normalized, ContractKindAvatar)
	}
	return registry, nil
}

// ResolveConfig implements avatar.ConfigResolver.
func (ledger *Ledger) ResolveConfig(handle string) (*config.Config, bool) {
	settings, err := ledger.Config(handle)
	return settings, err == nil
}

// Receipts returns a copy of every receipt in sequence order.
func (ledger *Ledger) Receipts() []Receipt {
	ledger.stateMutex.RLock()
	defer ledger.stateMutex.RUnlock()

	receipts := make([]Receipt, len(ledger.receipts))
	copy(receipts, ledger.receipts)
	return receipts
}

// Receipt returns the receipt with the given sequence number.
func (ledger *Ledger) Receipt(sequence int64) (Receipt, bool) {
	ledger.stateMutex.RLock()
	defer ledger.stateMutex.RUnlock()

	if sequence <= 0 || sequence > int64(len(ledger.receipts)) {
		return Receipt{}, false
	}
	return ledger.receipts[sequence-1], true
}

func (ledger *Ledger) prepare(caller string, message Message) (preparedCall, error) {
	normalizedCaller, err := ledger.requireAccount(caller)
	if err != nil {
		return preparedCall{}, err
	}

	normalized, err := NormalizeMessage(message)
	if err == nil {
		err = ValidateMessage(normalized)
	}
	if err != nil {
		return preparedCall{}, err
	}
	return preparedCall{caller: normalizedCaller, message: normalized}, nil
}

// executeLocked applies one prepared call. It must be called with execMutex
// held.
func (ledger *Ledger) executeLocked(ctx context.Context, call preparedCall) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if err := ledger.checkNonce(call); err != nil {
		ledger.reject(err)
		return Receipt{}, err
	}

	started := time.Now()
	receipt, applyErr := ledger.apply(call.caller, call.message)
	ledger.metrics.ObserveExecuteLatency(time.Since(started))

	receipt = ledger.commit(call.caller, call.message, receipt, applyErr)
	return receipt, applyErr
}

func (ledger *Ledger) checkNonce(call preparedCall) error {
	if call.message.Nonce == 0 {
		return nil
	}

	ledger.stateMutex.RLock()
	defer ledger.stateMutex.RUnlock()

	if _, used := ledger.consumed[nonceKey(call.caller, call.message.Nonce)]; used {
		return NewDuplicateTransactionError(call.caller, call.message.Nonce)
	}
	return nil
}

func (ledger *Ledger) requireAccount(caller string) (string, error) {
	normalized, err := shared.RequireEntityID("caller", caller)
	if err != nil {
		return "", err
	}

	ledger.stateMutex.RLock()
	defer ledger.stateMutex.RUnlock()

	if _, ok := ledger.accounts[normalized]; !ok {
		return "", NewUnknownAccountError(normalized)
	}
	return normalized, nil
}

func (ledger *Ledger) verify(envelope Envelope) (DecodedEnvelope, error) {
	decoded, err := DecodeEnvelope(envelope)
	if err != nil {
		return DecodedEnvelope{}, err
	}

	ledger.stateMutex.RLock()
	publicKey, ok := ledger.accounts[decoded.Caller]
	ledger.stateMutex.RUnlock()
	if !ok {
		return DecodedEnvelope{}, NewUnknownAccountError(decoded.Caller)
	}

	if !shared.VerifySignature(publicKey, decoded.Payload, decoded.Signature) {
		return DecodedEnvelope{}, NewInvalidSignatureError(decoded.Caller, "signature does not match payload")
	}
	return decoded, nil
}

// apply runs message against the target contract. It must be called with
// execMutex held.
func (ledger *Ledger) apply(caller string, message Message) (Receipt, error) {
	receipt := Receipt{Contract: message.Contract}

	switch message.Operation {
	case OperationDeployConfig:
		handle := ledger.peekEntityID()
		settings, err := config.New(handle, caller)
		if err != nil {
			return receipt, err
		}
		ledger.stateMutex.Lock()
		ledger.configs[handle] = settings
		ledger.nextEntityNum++
		ledger.stateMutex.Unlock()

		ledger.metrics.IncrementDeployed(ContractKindConfig)
		receipt.Contract = handle
		return receipt, nil

	case OperationDeployAvatar:
		handle := ledger.peekEntityID()
		registry, err := avatar.New(handle, caller, message.Config, ledger)
		if err != nil {
			return receipt, err
		}
		ledger.stateMutex.Lock()
		ledger.registries[handle] = registry
		ledger.nextEntityNum++
		ledger.stateMutex.Unlock()

		ledger.metrics.IncrementDeployed(ContractKindAvatar)
		receipt.Contract = handle
		return receipt, nil

	case OperationConfigSet:
		settings, err := ledger.Config(message.Contract)
		if err != nil {
			return receipt, err
		}
		return receipt, settings.Set(caller, message.Key, message.Value)

	case OperationConfigDelete:
		settings, err := ledger.Config(message.Contract)
		if err != nil {
			return receipt, err
		}
		found, err := settings.Delete(caller, message.Key)
		receipt.Found = found
		return receipt, err

	case OperationTransferOwnership:
		contract, err := ledger.ownedContract(message.Contract)
		if err != nil {
			return receipt, err
		}
		event, err := contract.TransferOwnership(caller, message.NewOwner)
		if err != nil {
			return receipt, err
		}
		receipt.Ownership = &event
		return receipt, nil

	case OperationRenounceOwnership:
		contract, err := ledger.ownedContract(message.Contract)
		if err != nil {
			return receipt, err
		}
		event, err := contract.RenounceOwnership(caller)
		if err != nil {
			return receipt, err
		}
		receipt.Ownership = &event
		return receipt, nil

	case OperationIssue:
		registry, err := ledger.AvatarRegistry(message.Contract)
		if err != nil {
			return receipt, err
		}
		assetID, err := registry.Issue(caller, message.To)
		if err != nil {
			return receipt, err
		}
		holder, err := registry.HolderOf(assetID)
		if err != nil {
			return receipt, err
		}
		receipt.AssetID = assetID
		receipt.Issued = &asset.Issued{AssetID: assetID, Holder: holder}
		return receipt, nil

	case OperationTransfer:
		registry, err := ledger.AvatarRegistry(message.Contract)
		if err != nil {
			return receipt, err
		}
		receipt.AssetID = message.AssetID
		return receipt, registry.Transfer(caller, message.AssetID, message.To)

	default:
		return receipt, NewInvalidMessageFormatError(fmt.Sprintf("unsupported operation %q", message.Operation))
	}
}

func (ledger *Ledger) ownedContract(handle string) (ownedContract, error) {
	ledger.stateMutex.RLock()
	defer ledger.stateMutex.RUnlock()

	if settings, ok := ledger.configs[handle]; ok {
		return settings, nil
	}
	if registry, ok := ledger.registries[handle]; ok {
		return registry, nil
	}
	return nil, NewUnknownContractError(handle, "")
}

// commit stamps receipt with its sequence, transaction ID and consensus time,
// appends it and consumes the message nonce, so a reverted call cannot be
// replayed either. It must be called with execMutex held.
func (ledger *Ledger) commit(caller string, message Message, receipt Receipt, applyErr error) Receipt {
	ledger.stateMutex.Lock()
	consensus := ledger.clock().UTC()
	if !consensus.After(ledger.lastConsensus) {
		consensus = ledger.lastConsensus.Add(time.Nanosecond)
	}
	ledger.lastConsensus = consensus

	receipt.Sequence = int64(len(ledger.receipts)) + 1
	receipt.TransactionID = transactionID(caller, consensus)
	receipt.ConsensusTimestamp = fmt.Sprintf("%d.%09d", consensus.Unix(), consensus.Nanosecond())
	receipt.Operation = message.Operation
	receipt.Caller = caller
	receipt.Memo = message.Memo
	receipt.Nonce = message.Nonce
	receipt.Status = StatusSuccess
	if applyErr != nil {
		receipt.Status = StatusContractRevert
		receipt.ErrorKind = shared.ErrorKind(applyErr)
		receipt.ErrorMessage = applyErr.Error()
	}
	ledger.receipts = append(ledger.receipts, receipt)
	if message.Nonce != 0 {
		ledger.consumed[nonceKey(caller, message.Nonce)] = struct{}{}
	}
	ledger.stateMutex.Unlock()

	ledger.metrics.IncrementCall(message.Operation, receipt.Status)
	if applyErr != nil {
		ledger.metrics.IncrementRejection(receipt.ErrorKind)
	}

	event := ledger.logger.Info()
	if applyErr != nil {
		event = ledger.logger.Warn().Str("error_kind", receipt.ErrorKind).Err(applyErr)
	}
	event.
		Int64("sequence", receipt.Sequence).
		Str("op", receipt.Operation).
		Str("contract", receipt.Contract).
		Str("caller", caller).
		Str("status", receipt.Status).
		Msg("call executed")

	return receipt
}

func (ledger *Ledger) reject(err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}
	kind := shared.ErrorKind(err)
	ledger.metrics.IncrementRejection(kind)
	ledger.logger.Debug().Str("error_kind", kind).Err(err).Msg("call rejected before execution")
}

func (ledger *Ledger) peekEntityID() string {
	ledger.stateMutex.RLock()
	defer ledger.stateMutex.RUnlock()
	return entityID(ledger.nextEntityNum)
}

func nonceKey(caller string, nonce uint64) string {
	return fmt.Sprintf("%s/%d", caller, nonce)
}

func entityID(num int64) string {
	return fmt.Sprintf("0.0.%d", num)
}

func transactionID(caller string, validStart time.Time) string {
	accountID, err := hedera.AccountIDFromString(caller)
	if err != nil {
		return ""
	}
	return hedera.NewTransactionIDWithValidStart(accountID, validStart).String()
}
