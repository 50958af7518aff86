package model

// Snapshot is a serializable copy of the whole bridge state.
type Snapshot struct {
	Version       int
	Policy        Policy
	Stats         Stats
	HighestHeight uint64
	NextDepositID uint64
	NextLogSeq    uint64
	Headers       []BlockHeader
	Proofs        []InclusionProof
	Pending       []PendingClaim
	Verified      []VerifiedTransaction
	Deposits      []DepositRecord
	Log           []OperationLogEntry
}

// SnapshotVersion is bumped whenever Snapshot changes incompatibly.
const SnapshotVersion = 1
