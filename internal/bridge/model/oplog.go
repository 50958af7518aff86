package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/google/uuid"
)

// OperationKind names an audited bridge mutation.
type OperationKind string

var (
	OpHeaderSubmitted        OperationKind = "header_submitted"
	OpHeaderVerified         OperationKind = "header_verified"
	OpProofSubmitted         OperationKind = "proof_submitted"
	OpProofVerified          OperationKind = "proof_verified"
	OpClaimSubmitted         OperationKind = "claim_submitted"
	OpClaimFinalized         OperationKind = "claim_finalized"
	OpClaimRejected          OperationKind = "claim_rejected"
	OpEffectFailed           OperationKind = "effect_failed"
	OpDepositCreated         OperationKind = "deposit_created"
	OpDepositConfirmed       OperationKind = "deposit_confirmed"
	OpBridgePaused           OperationKind = "bridge_paused"
	OpBridgeUnpaused         OperationKind = "bridge_unpaused"
	OpPolicyUpdated          OperationKind = "policy_updated"
	OpOperatorUpdated        OperationKind = "operator_updated"
	OpOwnerTransferred       OperationKind = "owner_transferred"
	OpTransactionDeactivated OperationKind = "transaction_deactivated"
)

// OperationLogEntry is one append-only audit record.
type OperationLogEntry struct {
	Seq             uint64
	ID              uuid.UUID
	Kind            OperationKind
	Caller          Principal
	TransactionHash chainhash.Hash
	Height          uint64
	DepositID       uint64
	Amount          btcutil.Amount
	Detail          string
	At              time.Time
}
