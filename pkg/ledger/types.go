package ledger

import (
	"time"

	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/asset"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/ownable"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const (
	ProtocolID = "avatar-registry"

	OperationDeployConfig      = "deploy-config"
	OperationDeployAvatar      = "deploy-avatar"
	OperationConfigSet         = "config-set"
	OperationConfigDelete      = "config-delete"
	OperationTransferOwnership = "transfer-ownership"
	OperationRenounceOwnership = "renounce-ownership"
	OperationIssue             = "issue"
	OperationTransfer          = "transfer"

	StatusSuccess        = "SUCCESS"
	StatusContractRevert = "CONTRACT_REVERT_EXECUTED"

	ContractKindConfig = "config"
	ContractKindAvatar = "avatar"

	EncodingBrotli = "br"

	DefaultFirstEntityNum int64 = 1001
	CompressionThreshold        = 1024
	MaxMemoLength               = 500
	MaxValueLength              = 4096
)

// Message is the JSON payload of a contract call.
type Message struct {
	Protocol  string `json:"p"`
	Operation string `json:"op"`

	Contract string `json:"contract,omitempty"`
	Config   string `json:"config,omitempty"`
	Key      string `json:"key,omitempty"`
	Value    string `json:"value,omitempty"`
	To       string `json:"to,omitempty"`
	AssetID  int64  `json:"asset_id,omitempty"`
	NewOwner string `json:"new_owner,omitempty"`
	Memo     string `json:"m,omitempty"`

	// Nonce makes a signed message unique per caller. SignMessage fills it
	// in when zero and the ledger refuses to apply a (caller, nonce) pair
	// twice.
	Nonce uint64 `json:"nonce,omitempty"`
}

// Account is a ledger identity and the key that signs its envelopes.
type Account struct {
	ID         string
	PrivateKey hedera.PrivateKey
}

// Envelope carries a signed message. Payload and Signature are base64. The
// signature always covers the uncompressed payload bytes.
type Envelope struct {
	Caller    string `json:"caller"`
	Payload   string `json:"payload"`
	Signature string `json:"signature"`
	Encoding  string `json:"encoding,omitempty"`
}

// Receipt records the outcome of one executed call.
type Receipt struct {
	Sequence           int64  `json:"sequence"`
	TransactionID      string `json:"transactionId"`
	ConsensusTimestamp string `json:"consensusTimestamp"`
	Operation          string `json:"operation"`
	Contract           string `json:"contract,omitempty"`
	Caller             string `json:"caller"`
	Status             string `json:"status"`
	ErrorKind          string `json:"errorKind,omitempty"`
	ErrorMessage       string `json:"errorMessage,omitempty"`
	Memo               string `json:"memo,omitempty"`
	Nonce              uint64 `json:"nonce,omitempty"`

	AssetID   int64                         `json:"assetId,omitempty"`
	Found     bool                          `json:"found,omitempty"`
	Issued    *asset.Issued                 `json:"issued,omitempty"`
	Ownership *ownable.OwnershipTransferred `json:"ownership,omitempty"`
}

// Succeeded reports whether the call was applied.
func (receipt Receipt) Succeeded() bool {
	return receipt.Status == StatusSuccess
}

// Clock supplies consensus timestamps.
type Clock func() time.Time
