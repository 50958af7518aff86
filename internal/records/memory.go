package records

import (
	"context"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
)

// Memory is a process-local record store.
type Memory struct {
	mu       sync.RWMutex
	records  map[model.RecordID]Record
	bySource map[chainhash.Hash][]model.RecordID
	now      func() time.Time
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		records:  make(map[model.RecordID]Record),
		bySource: make(map[chainhash.Hash][]model.RecordID),
		now:      time.Now,
	}
}

// IndexEffect stores effect as a new active record.
func (m *Memory) IndexEffect(_ context.Context, effect model.Effect, sourceTx chainhash.Hash, sourceHeight uint64) (model.RecordID, error) {
	r, err := newRecord(effect, sourceTx, sourceHeight, m.now())
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[r.ID] = r
	m.bySource[sourceTx] = append(m.bySource[sourceTx], r.ID)
	return r.ID, nil
}

// RecordExists reports whether id was ever stored, deactivated or not.
func (m *Memory) RecordExists(_ context.Context, id model.RecordID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.records[id]
	return ok, nil
}

// GetRecord returns the record with id.
func (m *Memory) GetRecord(_ context.Context, id model.RecordID) (Record, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[id]
	if !ok {
		return Record{}, false, nil
	}
	r.Payload = append([]byte(nil), r.Payload...)
	return r, true, nil
}

// RecordsBySource returns the ids indexed from sourceTx in creation order.
func (m *Memory) RecordsBySource(_ context.Context, sourceTx chainhash.Hash) ([]model.RecordID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]model.RecordID(nil), m.bySource[sourceTx]...), nil
}

// Deactivate soft-deletes the record.
func (m *Memory) Deactivate(_ context.Context, id model.RecordID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.records[id]
	if !ok {
		return notFound(id)
	}
	if r.Status == StatusDeactivated {
		return alreadyDeactivated(id)
	}
	at := m.now().UTC()
	r.Status = StatusDeactivated
	r.DeactivatedAt = &at
	m.records[id] = r
	return nil
}
