package background

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/neighborly/neighborly-api/community"
	"github.com/neighborly/neighborly-api/notification"
)

const logPrefix = "background"

// Background is a struct to maintain common services
// and sweeps for all background workers
type Background struct {
	Gate       *community.Gate
	Dispatcher *notification.Dispatcher
}

// SweepExpiredBlocks ends every temporary community block past its end date
func (b *Background) SweepExpiredBlocks(ctx context.Context) (int, error) {
	n, err := b.Gate.ProcessExpiredBlocks(ctx)
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"count":  n,
	}).Info("expired community blocks processed")
	return n, nil
}

// SweepExpiredNotifications removes notifications past their retention
func (b *Background) SweepExpiredNotifications(ctx context.Context) (int64, error) {
	return b.Dispatcher.CleanupExpired(ctx)
}
