package transport

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthService is the gRPC health service name reported for the bridge.
const HealthService = "blockinsight7000.bridge"

// HealthUpdater mirrors the pause flag into the gRPC health status. It is wired as an
// audit sink, so it follows committed pause and unpause operations. Batches may arrive
// out of commit order; an entry older than the last applied one is ignored.
type HealthUpdater struct {
	health HealthSetter
	logger *zap.Logger

	mu      sync.Mutex
	lastSeq uint64
}

func NewHealthUpdater(health HealthSetter, paused bool, logger *zap.Logger) *HealthUpdater {
	if logger == nil {
		logger = zap.NewNop()
	}
	u := &HealthUpdater{health: health, logger: logger.Named("health")}
	u.set(paused)
	return u
}

func (u *HealthUpdater) Publish(_ context.Context, entries []model.OperationLogEntry) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, e := range entries {
		if e.Kind != model.OpBridgePaused && e.Kind != model.OpBridgeUnpaused {
			continue
		}
		if e.Seq <= u.lastSeq {
			u.logger.Debug("stale pause entry ignored", zap.Uint64("seq", e.Seq), zap.Uint64("applied", u.lastSeq))
			continue
		}
		u.lastSeq = e.Seq
		u.set(e.Kind == model.OpBridgePaused)
	}
	return nil
}

// Sync sets the status from the current pause flag, e.g. after state is restored.
func (u *HealthUpdater) Sync(paused bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.set(paused)
}

func (u *HealthUpdater) set(paused bool) {
	status := healthpb.HealthCheckResponse_SERVING
	if paused {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	u.health.SetServingStatus(HealthService, status)
	u.logger.Info("serving status changed", zap.Stringer("status", status))
}
