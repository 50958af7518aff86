package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Effect is an opaque downstream action applied once its claim is verified.
type Effect struct {
	Type    string
	Payload []byte
}

// PendingClaim is a submitted, not yet finalized assertion about a source-chain transaction.
type PendingClaim struct {
	TransactionHash chainhash.Hash
	SubmittedAt     time.Time
	Submitter       Principal
	ClaimedHeight   uint64
	ClaimedEffects  []Effect
}
