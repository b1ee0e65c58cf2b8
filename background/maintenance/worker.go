package maintenance

import (
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/neighborly/neighborly-api/background"
	"github.com/neighborly/neighborly-api/external/cadence"
)

const (
	TaskListName = "neighborly-maintenance-tasks"
	WorkflowID   = "neighborly-maintenance"
)

type MaintenanceWorker struct {
	background.Background
	domain string
}

func NewMaintenanceWorker(domain string, b background.Background) *MaintenanceWorker {
	return &MaintenanceWorker{
		Background: b,
		domain:     domain,
	}
}

func (w *MaintenanceWorker) Register() {
	workflow.RegisterWithOptions(w.MaintenanceWorkflow, workflow.RegisterOptions{Name: "MaintenanceWorkflow"})

	activity.RegisterWithOptions(w.ExpireBlocksActivity, activity.RegisterOptions{Name: "ExpireBlocksActivity"})
	activity.RegisterWithOptions(w.CleanupNotificationsActivity, activity.RegisterOptions{Name: "CleanupNotificationsActivity"})
}

func (w *MaintenanceWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	workerOptions := worker.Options{
		Logger:        logger,
		MetricsScope:  tally.NewTestScope(TaskListName, map[string]string{}),
		DataConverter: cadence.NewMsgPackDataConverter(),
	}

	worker := worker.New(
		service,
		w.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
