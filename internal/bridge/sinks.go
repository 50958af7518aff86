package bridge

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
)

// MultiSink publishes every batch to each sink in order and joins their errors.
type MultiSink []AuditSink

func (m MultiSink) Publish(ctx context.Context, entries []model.OperationLogEntry) error {
	var errs []error
	for _, s := range m {
		if err := s.Publish(ctx, entries); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
