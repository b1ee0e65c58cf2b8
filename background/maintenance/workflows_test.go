package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/neighborly/neighborly-api/external/cadence"
)

type MaintenanceWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env    *testsuite.TestWorkflowEnvironment
	worker *MaintenanceWorker
}

func (ts *MaintenanceWorkflowTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.worker = testWorker
}

func (ts *MaintenanceWorkflowTestSuite) SetupTest() {
	ts.env = ts.NewTestWorkflowEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		DataConverter: cadence.NewMsgPackDataConverter(),
	})
}

func (ts *MaintenanceWorkflowTestSuite) TestRunsBothSweepsAndRenews() {
	ts.env.OnActivity(ts.worker.ExpireBlocksActivity, mock.Anything).Return(
		func(ctx context.Context) (int, error) {
			return 2, nil
		}).Once()
	ts.env.OnActivity(ts.worker.CleanupNotificationsActivity, mock.Anything).Return(
		func(ctx context.Context) (int64, error) {
			return 5, nil
		}).Once()

	ts.env.ExecuteWorkflow(ts.worker.MaintenanceWorkflow, time.Minute)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.Error(ts.env.GetWorkflowError(), "ContinueAsNew")
	ts.env.AssertExpectations(ts.T())
}

func (ts *MaintenanceWorkflowTestSuite) TestFailedSweepDoesNotStopTheOther() {
	ts.env.OnActivity(ts.worker.ExpireBlocksActivity, mock.Anything).Return(
		func(ctx context.Context) (int, error) {
			return 0, errors.New("mongo down")
		})
	ts.env.OnActivity(ts.worker.CleanupNotificationsActivity, mock.Anything).Return(
		func(ctx context.Context) (int64, error) {
			return 0, nil
		}).Once()

	ts.env.ExecuteWorkflow(ts.worker.MaintenanceWorkflow, time.Minute)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.Error(ts.env.GetWorkflowError(), "ContinueAsNew")
	ts.env.AssertExpectations(ts.T())
}

func TestMaintenanceWorkflow(t *testing.T) {
	suite.Run(t, new(MaintenanceWorkflowTestSuite))
}
