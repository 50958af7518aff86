package snapshot

import "github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// State is the bridge surface the keeper persists.
type State interface {
	Snapshot() model.Snapshot
	Restore(snap model.Snapshot) error
	LastSeq() uint64
}
