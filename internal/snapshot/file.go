// Package snapshot persists bridge state to a local file.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/creachadair/atomicfile"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
)

const fileMode = 0o600

// Save writes snap to path. Readers never observe a partially written file.
func Save(path string, snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if _, err := atomicfile.WriteAll(path, bytes.NewReader(data), fileMode); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// Load reads a snapshot from path. A missing file is reported with ok=false.
func Load(path string) (snap model.Snapshot, ok bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Snapshot{}, false, nil
	}
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, false, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return snap, true, nil
}
