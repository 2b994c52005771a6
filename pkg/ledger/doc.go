// Package ledger is an in-process deployment environment for the avatar
// registry components.
//
// A Ledger hands out Hedera-style entity IDs to accounts and deployed
// contracts, accepts calls as HCS-style JSON messages, and applies them one
// at a time in a single total order. Every executed call produces a Receipt
// with a sequence number, a transaction ID and a consensus timestamp; calls
// rejected by a contract are recorded with status CONTRACT_REVERT_EXECUTED.
//
// Calls arrive either through Execute, for an already authenticated caller,
// or through Submit and SubmitBatch, which verify an Envelope signed with the
// caller's key before anything is applied.
package ledger
