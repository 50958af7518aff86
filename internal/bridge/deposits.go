package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"go.uber.org/zap"
)

// CreateDeposit opens a pending deposit backed by an active verified transaction.
func (b *Bridge) CreateDeposit(
	ctx context.Context,
	depositor model.Principal,
	txHash chainhash.Hash,
	amount btcutil.Amount,
) (model.DepositRecord, error) {
	var out model.DepositRecord
	err := b.apply(ctx, "create_deposit", func(o *op) error {
		o.with(zap.Stringer("tx", txHash), zap.Int64("amount_sat", int64(amount)))
		if b.st.policy.Paused {
			return bridgeerr.ErrBridgePaused
		}
		if depositor == model.Anonymous {
			return bridgeerr.ErrInvalidInput.WithCause(errors.New("depositor is required"))
		}
		if minAmount := b.st.policy.MinDepositAmount; amount < minAmount {
			return bridgeerr.ErrBelowThreshold.WithCause(fmt.Errorf("%v below %v", amount, minAmount))
		}
		vt, ok := b.st.verified[txHash]
		if !ok {
			return fmt.Errorf("deposit for %s: %w", txHash, bridgeerr.ErrTransactionNotVerified)
		}
		if !vt.IsActive() {
			return bridgeerr.ErrTransactionNotVerified.WithCause(fmt.Errorf("transaction %s is deactivated", txHash))
		}

		d := model.DepositRecord{
			ID:              b.st.nextDepositID,
			TransactionHash: txHash,
			Depositor:       depositor,
			Amount:          amount,
			Status:          model.DepositPending,
			CreatedAt:       o.at,
		}
		b.st.nextDepositID++
		b.st.addDeposit(d)
		b.st.stats.DepositsCreated++
		o.with(zap.Uint64("deposit", d.ID))
		o.record(model.OperationLogEntry{
			Kind:            model.OpDepositCreated,
			Caller:          depositor,
			TransactionHash: txHash,
			DepositID:       d.ID,
			Amount:          amount,
		})
		out = d
		return nil
	})
	return out, err
}

// ConfirmDeposit moves a pending deposit to confirmed. It happens at most once.
func (b *Bridge) ConfirmDeposit(ctx context.Context, caller model.Principal, id uint64) (model.DepositRecord, error) {
	var out model.DepositRecord
	err := b.apply(ctx, "confirm_deposit", func(o *op) error {
		o.with(zap.Uint64("deposit", id))
		if err := b.requireOperator(caller); err != nil {
			return err
		}
		d, ok := b.st.deposits[id]
		if !ok {
			return fmt.Errorf("deposit %d: %w", id, bridgeerr.ErrNotFound)
		}
		if d.Status != model.DepositPending {
			return fmt.Errorf("deposit %d is %s: %w", id, d.Status, bridgeerr.ErrNotPending)
		}

		at := o.at
		d.Status = model.DepositConfirmed
		d.ConfirmedAt = &at
		b.st.deposits[id] = d
		b.st.stats.DepositsConfirmed++
		o.record(model.OperationLogEntry{
			Kind:            model.OpDepositConfirmed,
			Caller:          caller,
			TransactionHash: d.TransactionHash,
			DepositID:       id,
			Amount:          d.Amount,
		})
		out = cloneDeposit(d)
		return nil
	})
	return out, err
}

// Deposit returns the deposit with id.
func (b *Bridge) Deposit(id uint64) (model.DepositRecord, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.st.deposits[id]
	if !ok {
		return model.DepositRecord{}, false
	}
	return cloneDeposit(d), true
}

// DepositsByTransaction returns the deposits opened against txHash in id order.
func (b *Bridge) DepositsByTransaction(txHash chainhash.Hash) []model.DepositRecord {
	b.mu.Lock()
	defer b.mu.Unlock()

	ids := b.st.depositsByTx[txHash]
	out := make([]model.DepositRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneDeposit(b.st.deposits[id]))
	}
	return out
}
