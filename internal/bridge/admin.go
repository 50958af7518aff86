package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"go.uber.org/zap"
)

// SetPaused switches the pause flag. Paused bridges refuse new claims and deposits.
func (b *Bridge) SetPaused(ctx context.Context, caller model.Principal, paused bool) error {
	return b.apply(ctx, "set_paused", func(o *op) error {
		o.with(zap.Bool("paused", paused))
		if err := b.requireOwner(caller); err != nil {
			return err
		}

		b.st.policy.Paused = paused
		kind := model.OpBridgeUnpaused
		if paused {
			kind = model.OpBridgePaused
		}
		o.record(model.OperationLogEntry{Kind: kind, Caller: caller})
		return nil
	})
}

// SetMinConfirmations sets the finalization depth, which must lie in [1, MaxConfirmations].
func (b *Bridge) SetMinConfirmations(ctx context.Context, caller model.Principal, n uint32) error {
	return b.apply(ctx, "set_min_confirmations", func(o *op) error {
		o.with(zap.Uint32("min_confirmations", n))
		if err := b.requireOwner(caller); err != nil {
			return err
		}
		if upper := b.st.policy.MaxConfirmations; n == 0 || n > upper {
			return bridgeerr.ErrInvalidInput.WithCause(fmt.Errorf("min confirmations %d outside [1, %d]", n, upper))
		}

		b.st.policy.MinConfirmations = n
		o.record(model.OperationLogEntry{
			Kind:   model.OpPolicyUpdated,
			Caller: caller,
			Detail: fmt.Sprintf("min_confirmations=%d", n),
		})
		return nil
	})
}

// SetMaxConfirmations sets the upper bound for MinConfirmations.
func (b *Bridge) SetMaxConfirmations(ctx context.Context, caller model.Principal, n uint32) error {
	return b.apply(ctx, "set_max_confirmations", func(o *op) error {
		o.with(zap.Uint32("max_confirmations", n))
		if err := b.requireOwner(caller); err != nil {
			return err
		}
		if lower := b.st.policy.MinConfirmations; n < lower {
			return bridgeerr.ErrInvalidInput.WithCause(fmt.Errorf("max confirmations %d below min %d", n, lower))
		}

		b.st.policy.MaxConfirmations = n
		o.record(model.OperationLogEntry{
			Kind:   model.OpPolicyUpdated,
			Caller: caller,
			Detail: fmt.Sprintf("max_confirmations=%d", n),
		})
		return nil
	})
}

// SetMinDepositAmount sets the smallest amount CreateDeposit accepts.
func (b *Bridge) SetMinDepositAmount(ctx context.Context, caller model.Principal, amount btcutil.Amount) error {
	return b.apply(ctx, "set_min_deposit_amount", func(o *op) error {
		o.with(zap.Int64("min_deposit_sat", int64(amount)))
		if err := b.requireOwner(caller); err != nil {
			return err
		}
		if amount <= 0 {
			return bridgeerr.ErrInvalidInput.WithCause(errors.New("min deposit amount must be positive"))
		}

		b.st.policy.MinDepositAmount = amount
		o.record(model.OperationLogEntry{
			Kind:   model.OpPolicyUpdated,
			Caller: caller,
			Amount: amount,
			Detail: "min_deposit_amount",
		})
		return nil
	})
}

// SetOperator grants or revokes the operator role.
func (b *Bridge) SetOperator(ctx context.Context, caller, who model.Principal, enabled bool) error {
	return b.apply(ctx, "set_operator", func(o *op) error {
		o.with(zap.String("operator", string(who)), zap.Bool("enabled", enabled))
		if err := b.requireOwner(caller); err != nil {
			return err
		}
		if who == model.Anonymous {
			return bridgeerr.ErrInvalidInput.WithCause(errors.New("operator principal is required"))
		}

		b.st.policy.Operators = b.st.policy.WithOperator(who, enabled)
		verb := "revoked"
		if enabled {
			verb = "granted"
		}
		o.record(model.OperationLogEntry{
			Kind:   model.OpOperatorUpdated,
			Caller: caller,
			Detail: fmt.Sprintf("%s %s", verb, who),
		})
		return nil
	})
}

// TransferOwnership hands every owner-only operation to newOwner.
func (b *Bridge) TransferOwnership(ctx context.Context, caller, newOwner model.Principal) error {
	return b.apply(ctx, "transfer_ownership", func(o *op) error {
		o.with(zap.String("new_owner", string(newOwner)))
		if err := b.requireOwner(caller); err != nil {
			return err
		}
		if newOwner == model.Anonymous {
			return bridgeerr.ErrInvalidInput.WithCause(errors.New("new owner is required"))
		}

		b.st.policy.Owner = newOwner
		o.record(model.OperationLogEntry{
			Kind:   model.OpOwnerTransferred,
			Caller: caller,
			Detail: string(newOwner),
		})
		return nil
	})
}

// Policy returns a copy of the current configuration.
func (b *Bridge) Policy() model.Policy {
	b.mu.Lock()
	defer b.mu.Unlock()

	return clonePolicy(b.st.policy)
}

// Paused reports whether the bridge is paused.
func (b *Bridge) Paused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.st.policy.Paused
}

// Stats returns the current counters.
func (b *Bridge) Stats() model.Stats {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.st.stats
}
