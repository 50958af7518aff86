package bridge

import (
	"fmt"
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"go.uber.org/zap"
)

// Snapshot returns a deep copy of the bridge state with every collection in key order.
func (b *Bridge) Snapshot() model.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.st
	snap := model.Snapshot{
		Version:       model.SnapshotVersion,
		Policy:        clonePolicy(st.policy),
		Stats:         st.stats,
		HighestHeight: st.highestHeight,
		NextDepositID: st.nextDepositID,
		NextLogSeq:    st.nextLogSeq,
		Headers:       make([]model.BlockHeader, 0, len(st.headers)),
		Proofs:        make([]model.InclusionProof, 0, len(st.proofs)),
		Pending:       make([]model.PendingClaim, 0, len(st.pending)),
		Verified:      make([]model.VerifiedTransaction, 0, len(st.verified)),
		Deposits:      make([]model.DepositRecord, 0, len(st.deposits)),
		Log:           append([]model.OperationLogEntry(nil), st.log...),
	}

	for _, h := range st.headers {
		snap.Headers = append(snap.Headers, h)
	}
	sort.Slice(snap.Headers, func(i, j int) bool { return snap.Headers[i].Height < snap.Headers[j].Height })

	for _, k := range sortedHashes(st.proofs) {
		snap.Proofs = append(snap.Proofs, cloneProof(st.proofs[k]))
	}
	for _, k := range sortedHashes(st.pending) {
		snap.Pending = append(snap.Pending, cloneClaim(st.pending[k]))
	}
	for _, k := range sortedHashes(st.verified) {
		snap.Verified = append(snap.Verified, cloneVerified(st.verified[k]))
	}

	for _, d := range st.deposits {
		snap.Deposits = append(snap.Deposits, cloneDeposit(d))
	}
	sort.Slice(snap.Deposits, func(i, j int) bool { return snap.Deposits[i].ID < snap.Deposits[j].ID })

	return snap
}

// Restore replaces the bridge state with snap. The snapshot is validated as a whole
// and the current state is kept when it is rejected.
func (b *Bridge) Restore(snap model.Snapshot) error {
	if snap.Version != model.SnapshotVersion {
		return bridgeerr.ErrInvalidInput.WithCause(
			fmt.Errorf("snapshot version %d, want %d", snap.Version, model.SnapshotVersion))
	}
	if err := validatePolicy(snap.Policy); err != nil {
		return fmt.Errorf("restore policy: %w", err)
	}

	st := newState(clonePolicy(snap.Policy))
	st.stats = snap.Stats
	st.highestHeight = snap.HighestHeight
	st.nextDepositID = max(snap.NextDepositID, 1)
	st.nextLogSeq = max(snap.NextLogSeq, 1)

	for _, h := range snap.Headers {
		if _, dup := st.headers[h.Height]; dup || h.Height == 0 {
			return bridgeerr.ErrInvalidInput.WithCause(fmt.Errorf("snapshot header %d duplicated or zero", h.Height))
		}
		st.headers[h.Height] = h
		st.highestHeight = max(st.highestHeight, h.Height)
	}
	for _, p := range snap.Proofs {
		st.proofs[p.TransactionHash] = cloneProof(p)
	}
	for _, c := range snap.Pending {
		st.pending[c.TransactionHash] = cloneClaim(c)
	}
	for _, v := range snap.Verified {
		if _, both := st.pending[v.TransactionHash]; both {
			return bridgeerr.ErrInvalidInput.WithCause(
				fmt.Errorf("snapshot transaction %s is both pending and verified", v.TransactionHash))
		}
		st.verified[v.TransactionHash] = cloneVerified(v)
	}
	for _, d := range snap.Deposits {
		if d.ID == 0 || d.ID >= st.nextDepositID {
			return bridgeerr.ErrInvalidInput.WithCause(
				fmt.Errorf("snapshot deposit id %d outside [1, %d)", d.ID, st.nextDepositID))
		}
		st.addDeposit(cloneDeposit(d))
	}
	for _, e := range snap.Log {
		if e.Seq >= st.nextLogSeq {
			return bridgeerr.ErrInvalidInput.WithCause(
				fmt.Errorf("snapshot log seq %d not below next %d", e.Seq, st.nextLogSeq))
		}
	}
	st.log = append([]model.OperationLogEntry(nil), snap.Log...)

	b.mu.Lock()
	b.st = st
	b.mu.Unlock()

	b.logger.Info("state restored",
		zap.Int("headers", len(st.headers)),
		zap.Int("pending", len(st.pending)),
		zap.Int("verified", len(st.verified)),
		zap.Int("deposits", len(st.deposits)),
		zap.Uint64("next_log_seq", st.nextLogSeq))
	return nil
}
