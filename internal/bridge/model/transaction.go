package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// TxStatus tags a verified transaction as live or soft-deleted.
type TxStatus string

var (
	TxActive      TxStatus = "active"
	TxDeactivated TxStatus = "deactivated"
)

// RecordID identifies a record produced by the indexing collaborator.
type RecordID string

// EffectResult is the outcome of applying a single claimed effect.
type EffectResult struct {
	Index    int
	RecordID RecordID
	Error    string
}

// Applied reports whether the indexer accepted the effect.
func (r EffectResult) Applied() bool {
	return r.Error == ""
}

// VerifiedTransaction is a claim promoted after proof and confirmation checks.
type VerifiedTransaction struct {
	TransactionHash chainhash.Hash
	ClaimedHeight   uint64
	Confirmations   uint32
	VerifiedAt      time.Time
	EffectCount     int
	Status          TxStatus
	IndexedEffects  int
	FailedEffects   int
	Effects         []EffectResult
	DeactivatedAt   *time.Time
}

// IsActive reports whether the transaction has not been deactivated.
func (v VerifiedTransaction) IsActive() bool {
	return v.Status == TxActive
}
