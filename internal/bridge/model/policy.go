package model

import (
	"sort"

	"github.com/btcsuite/btcd/btcutil"
)

const (
	DefaultMinConfirmations uint32         = 6
	DefaultMaxConfirmations uint32         = 144
	DefaultMinDepositAmount btcutil.Amount = 10_000

	MaxClaimEffects      = 10
	MaxEffectPayloadSize = 4096
	MaxEffectTypeLength  = 64
	MaxMerklePathLength  = 32
)

// Policy holds the mutable bridge configuration.
type Policy struct {
	Owner            Principal
	Operators        []Principal
	Paused           bool
	MinConfirmations uint32
	MaxConfirmations uint32
	MinDepositAmount btcutil.Amount
}

// DefaultPolicy returns a policy owned by owner with default thresholds.
func DefaultPolicy(owner Principal) Policy {
	return Policy{
		Owner:            owner,
		MinConfirmations: DefaultMinConfirmations,
		MaxConfirmations: DefaultMaxConfirmations,
		MinDepositAmount: DefaultMinDepositAmount,
	}
}

// IsOperator reports whether p may run operator-only operations. The owner always may.
func (p Policy) IsOperator(who Principal) bool {
	if who == Anonymous {
		return false
	}
	if who == p.Owner {
		return true
	}
	for _, op := range p.Operators {
		if op == who {
			return true
		}
	}
	return false
}

// WithOperator returns the operator set with who granted or revoked, sorted.
func (p Policy) WithOperator(who Principal, enabled bool) []Principal {
	out := make([]Principal, 0, len(p.Operators)+1)
	for _, op := range p.Operators {
		if op != who {
			out = append(out, op)
		}
	}
	if enabled {
		out = append(out, who)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
