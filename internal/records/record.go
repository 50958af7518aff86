// Package records stores the records produced when a verified claim's effects are indexed.
package records

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/google/uuid"
)

// Status tags a record as live or soft-deleted.
type Status string

const (
	StatusActive      Status = "active"
	StatusDeactivated Status = "deactivated"
)

// Record is one indexed effect.
type Record struct {
	ID            model.RecordID `json:"id"`
	Type          string         `json:"type"`
	Payload       []byte         `json:"payload"`
	SourceTx      chainhash.Hash `json:"source_tx"`
	SourceHeight  uint64         `json:"source_height"`
	Status        Status         `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	DeactivatedAt *time.Time     `json:"deactivated_at,omitempty"`
}

// ErrEmptyEffect is returned for effects without a type.
var ErrEmptyEffect = errors.New("effect type is empty")

func newRecord(effect model.Effect, sourceTx chainhash.Hash, sourceHeight uint64, now time.Time) (Record, error) {
	if effect.Type == "" {
		return Record{}, ErrEmptyEffect
	}
	return Record{
		ID:           model.RecordID(uuid.NewString()),
		Type:         effect.Type,
		Payload:      append([]byte(nil), effect.Payload...),
		SourceTx:     sourceTx,
		SourceHeight: sourceHeight,
		Status:       StatusActive,
		CreatedAt:    now.UTC(),
	}, nil
}

func notFound(id model.RecordID) error {
	return fmt.Errorf("record %s: %w", id, bridgeerr.ErrNotFound)
}

func alreadyDeactivated(id model.RecordID) error {
	return fmt.Errorf("record %s: %w", id, bridgeerr.ErrAlreadyDeactivated)
}
