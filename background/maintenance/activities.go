package maintenance

import (
	"context"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"
)

// ExpireBlocksActivity ends every temporary community block past its end date
func (w *MaintenanceWorker) ExpireBlocksActivity(ctx context.Context) (int, error) {
	logger := activity.GetLogger(ctx)

	n, err := w.SweepExpiredBlocks(ctx)
	if err != nil {
		logger.Error("Fail to expire blocks", zap.Error(err))
		return 0, err
	}
	return n, nil
}

// CleanupNotificationsActivity removes notifications past their retention
func (w *MaintenanceWorker) CleanupNotificationsActivity(ctx context.Context) (int64, error) {
	logger := activity.GetLogger(ctx)

	n, err := w.SweepExpiredNotifications(ctx)
	if err != nil {
		logger.Error("Fail to clean up notifications", zap.Error(err))
		return 0, err
	}
	return n, nil
}
