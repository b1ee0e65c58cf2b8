package maintenance

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"
)

const (
	DefaultSweepInterval = 10 * time.Minute
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// MaintenanceWorkflow waits one interval, runs both sweeps and renews itself.
// A failed sweep is reported and retried on the next round.
func (w *MaintenanceWorker) MaintenanceWorkflow(ctx workflow.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	logger := workflow.GetLogger(ctx)

	if err := workflow.Sleep(ctx, interval); err != nil {
		return err
	}

	var expired int
	if err := workflow.ExecuteActivity(ctx, w.ExpireBlocksActivity).Get(ctx, &expired); err != nil {
		logger.Error("Fail to process expired blocks", zap.Error(err))
		sentry.CaptureException(err)
	} else {
		logger.Info("Expired blocks processed", zap.Int("count", expired))
	}

	var removed int64
	if err := workflow.ExecuteActivity(ctx, w.CleanupNotificationsActivity).Get(ctx, &removed); err != nil {
		logger.Error("Fail to clean up notifications", zap.Error(err))
		sentry.CaptureException(err)
	} else {
		logger.Info("Expired notifications removed", zap.Int64("count", removed))
	}

	return workflow.NewContinueAsNewError(ctx, w.MaintenanceWorkflow, interval)
}
