package bridge

import (
	"bytes"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
)

// state is the bridge store handle. It is only touched with Bridge.mu held.
type state struct {
	policy        model.Policy
	stats         model.Stats
	highestHeight uint64
	nextDepositID uint64
	nextLogSeq    uint64

	headers      map[uint64]model.BlockHeader
	proofs       map[chainhash.Hash]model.InclusionProof
	pending      map[chainhash.Hash]model.PendingClaim
	verified     map[chainhash.Hash]model.VerifiedTransaction
	deposits     map[uint64]model.DepositRecord
	depositsByTx map[chainhash.Hash][]uint64
	log          []model.OperationLogEntry
}

func newState(policy model.Policy) *state {
	return &state{
		policy:        policy,
		nextDepositID: 1,
		nextLogSeq:    1,
		headers:       make(map[uint64]model.BlockHeader),
		proofs:        make(map[chainhash.Hash]model.InclusionProof),
		pending:       make(map[chainhash.Hash]model.PendingClaim),
		verified:      make(map[chainhash.Hash]model.VerifiedTransaction),
		deposits:      make(map[uint64]model.DepositRecord),
		depositsByTx:  make(map[chainhash.Hash][]uint64),
	}
}

func (s *state) appendLog(e model.OperationLogEntry, retention int) {
	s.log = append(s.log, e)
	if over := len(s.log) - retention; over > 0 {
		s.log = append(s.log[:0:0], s.log[over:]...)
	}
}

func (s *state) addDeposit(d model.DepositRecord) {
	s.deposits[d.ID] = d
	s.depositsByTx[d.TransactionHash] = append(s.depositsByTx[d.TransactionHash], d.ID)
}

func clonePolicy(p model.Policy) model.Policy {
	p.Operators = append([]model.Principal(nil), p.Operators...)
	return p
}

func cloneProof(p model.InclusionProof) model.InclusionProof {
	p.MerklePath = append([]chainhash.Hash(nil), p.MerklePath...)
	return p
}

func cloneEffects(effects []model.Effect) []model.Effect {
	if effects == nil {
		return nil
	}
	out := make([]model.Effect, len(effects))
	for i, e := range effects {
		out[i] = model.Effect{Type: e.Type, Payload: bytes.Clone(e.Payload)}
	}
	return out
}

func cloneClaim(c model.PendingClaim) model.PendingClaim {
	c.ClaimedEffects = cloneEffects(c.ClaimedEffects)
	return c
}

func cloneVerified(v model.VerifiedTransaction) model.VerifiedTransaction {
	v.Effects = append([]model.EffectResult(nil), v.Effects...)
	if v.DeactivatedAt != nil {
		at := *v.DeactivatedAt
		v.DeactivatedAt = &at
	}
	return v
}

func cloneDeposit(d model.DepositRecord) model.DepositRecord {
	if d.ConfirmedAt != nil {
		at := *d.ConfirmedAt
		d.ConfirmedAt = &at
	}
	return d
}

func hashLess(a, b chainhash.Hash) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

func sortedHashes[V any](m map[chainhash.Hash]V) []chainhash.Hash {
	keys := make([]chainhash.Hash, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return hashLess(keys[i], keys[j]) })
	return keys
}
