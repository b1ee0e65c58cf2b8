package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/neighborly/neighborly-api/background"
	"github.com/neighborly/neighborly-api/community"
	"github.com/neighborly/neighborly-api/external/cadence"
	"github.com/neighborly/neighborly-api/mocks"
	"github.com/neighborly/neighborly-api/notification"
)

type MaintenanceActivityTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env       *testsuite.TestActivityEnvironment
	worker    *MaintenanceWorker
	mockCtrl  *gomock.Controller
	mongoMock *mocks.MockMongoStore
	now       time.Time
}

func (ts *MaintenanceActivityTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.now = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
}

func (ts *MaintenanceActivityTestSuite) SetupTest() {
	ts.env = ts.NewTestActivityEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		BackgroundActivityContext: context.Background(),
		DataConverter:             cadence.NewMsgPackDataConverter(),
	})

	ts.mockCtrl = gomock.NewController(ts.T())
	ts.mongoMock = mocks.NewMockMongoStore(ts.mockCtrl)

	gate := community.New(ts.mongoMock, mocks.NewMockCommunityNotifier(ts.mockCtrl))
	gate.Now = func() time.Time { return ts.now }
	dispatcher := notification.NewDispatcher(ts.mongoMock, mocks.NewMockLimiter(ts.mockCtrl), mocks.NewMockPusher(ts.mockCtrl), 0)
	dispatcher.Now = func() time.Time { return ts.now }

	testWorker.Background = background.Background{Gate: gate, Dispatcher: dispatcher}
	ts.worker = testWorker
}

func (ts *MaintenanceActivityTestSuite) TearDownTest() {
	ts.mockCtrl.Finish()
}

func (ts *MaintenanceActivityTestSuite) TestExpireBlocksActivity() {
	ts.mongoMock.EXPECT().ExpireBlocks(gomock.Any(), ts.now).Return(2, nil)

	values, err := ts.env.ExecuteActivity(ts.worker.ExpireBlocksActivity)
	ts.NoError(err)

	var n int
	ts.NoError(values.Get(&n))
	ts.Equal(2, n)
}

func (ts *MaintenanceActivityTestSuite) TestExpireBlocksActivityFailure() {
	ts.mongoMock.EXPECT().ExpireBlocks(gomock.Any(), ts.now).Return(0, errors.New("mongo down"))

	_, err := ts.env.ExecuteActivity(ts.worker.ExpireBlocksActivity)
	ts.Error(err)
}

func (ts *MaintenanceActivityTestSuite) TestCleanupNotificationsActivity() {
	ts.mongoMock.EXPECT().DeleteExpiredNotifications(gomock.Any(), ts.now).Return(int64(9), nil)

	values, err := ts.env.ExecuteActivity(ts.worker.CleanupNotificationsActivity)
	ts.NoError(err)

	var n int64
	ts.NoError(values.Get(&n))
	ts.Equal(int64(9), n)
}

func TestMaintenanceActivity(t *testing.T) {
	suite.Run(t, new(MaintenanceActivityTestSuite))
}
