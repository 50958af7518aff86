package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// InclusionProof is a merkle path claiming a transaction is a leaf of TargetHeight's root.
type InclusionProof struct {
	TransactionHash  chainhash.Hash
	TargetHeight     uint64
	MerklePath       []chainhash.Hash
	TransactionIndex uint32
	Verified         bool
	SubmittedAt      time.Time
	VerifiedAt       time.Time
}
