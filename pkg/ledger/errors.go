package ledger

import "fmt"

const (
	KindUnknownAccount       = "unknown_account"
	KindUnknownContract      = "unknown_contract"
	KindInvalidSignature     = "invalid_signature"
	KindInvalidMessageFormat = "invalid_message_format"
	KindDuplicateTransaction = "duplicate_transaction"
)

// LedgerError carries the message shared by every ledger error.
type LedgerError struct {
	Message string
}

func (errorValue LedgerError) Error() string {
	return errorValue.Message
}

// UnknownAccountError is returned for a caller that was never registered.
type UnknownAccountError struct {
	LedgerError
	AccountID string
}

// NewUnknownAccountError reports an unregistered accountID.
func NewUnknownAccountError(accountID string) error {
	return UnknownAccountError{
		LedgerError: LedgerError{Message: fmt.Sprintf("unknown account %q", accountID)},
		AccountID:   accountID,
	}
}

func (UnknownAccountError) Kind() string {
	return KindUnknownAccount
}

// UnknownContractError is returned when no contract of the expected kind exists at a handle.
type UnknownContractError struct {
	LedgerError
	Handle       string
	ExpectedKind string
}

// NewUnknownContractError reports a missing contract. expectedKind may be empty.
func NewUnknownContractError(handle string, expectedKind string) error {
	message := fmt.Sprintf("no contract deployed at %q", handle)
	if expectedKind != "" {
		message = fmt.Sprintf("no %s contract deployed at %q", expectedKind, handle)
	}
	return UnknownContractError{
		LedgerError:  LedgerError{Message: message},
		Handle:       handle,
		ExpectedKind: expectedKind,
	}
}

func (UnknownContractError) Kind() string {
	return KindUnknownContract
}

// InvalidSignatureError is returned when an envelope signature does not verify.
type InvalidSignatureError struct {
	LedgerError
	Caller string
}

// NewInvalidSignatureError reports a bad signature from caller.
func NewInvalidSignatureError(caller string, reason string) error {
	return InvalidSignatureError{
		LedgerError: LedgerError{Message: fmt.Sprintf("invalid signature from %q: %s", caller, reason)},
		Caller:      caller,
	}
}

func (InvalidSignatureError) Kind() string {
	return KindInvalidSignature
}

// InvalidMessageFormatError is returned for payloads that do not decode or validate.
type InvalidMessageFormatError struct {
	LedgerError
}

// NewInvalidMessageFormatError wraps message as a format error.
func NewInvalidMessageFormatError(message string) error {
	return InvalidMessageFormatError{LedgerError: LedgerError{Message: message}}
}

func (InvalidMessageFormatError) Kind() string {
	return KindInvalidMessageFormat
}

// DuplicateTransactionError rejects a message whose (caller, nonce) pair has
// already been applied.
type DuplicateTransactionError struct {
	LedgerError
	Caller string
	Nonce  uint64
}

// NewDuplicateTransactionError reports a reused nonce.
func NewDuplicateTransactionError(caller string, nonce uint64) error {
	return DuplicateTransactionError{
		LedgerError: LedgerError{Message: fmt.Sprintf("nonce %d from %q was already used", nonce, caller)},
		Caller:      caller,
		Nonce:       nonce,
	}
}

func (DuplicateTransactionError) Kind() string {
	return KindDuplicateTransaction
}
