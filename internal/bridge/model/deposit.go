package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// DepositStatus is the deposit lifecycle state.
type DepositStatus string

var (
	DepositPending   DepositStatus = "pending"
	DepositConfirmed DepositStatus = "confirmed"
)

// DepositRecord is a value transfer backed by a verified transaction.
type DepositRecord struct {
	ID              uint64
	TransactionHash chainhash.Hash
	Depositor       Principal
	Amount          btcutil.Amount
	Status          DepositStatus
	CreatedAt       time.Time
	ConfirmedAt     *time.Time
}
