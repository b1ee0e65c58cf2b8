package background

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/neighborly/neighborly-api/community"
	"github.com/neighborly/neighborly-api/mocks"
	"github.com/neighborly/neighborly-api/notification"
)

type fakeTaskSender struct {
	signatures []*tasks.Signature
	err        error
}

func (f *fakeTaskSender) SendTaskWithContext(ctx context.Context, signature *tasks.Signature) (*result.AsyncResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.signatures = append(f.signatures, signature)
	return nil, nil
}

type ManagerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *mocks.MockMongoStore
	pusher  *mocks.MockPusher
	manager *BackgroundManager
	now     time.Time
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockMongoStore(s.ctrl)
	s.pusher = mocks.NewMockPusher(s.ctrl)
	s.now = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	gate := community.New(s.store, mocks.NewMockCommunityNotifier(s.ctrl))
	gate.Now = func() time.Time { return s.now }
	dispatcher := notification.NewDispatcher(s.store, mocks.NewMockLimiter(s.ctrl), s.pusher, 0)
	dispatcher.Now = func() time.Time { return s.now }

	s.manager = New(Background{Gate: gate, Dispatcher: dispatcher}, s.pusher, nil)
}

func (s *ManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ManagerTestSuite) TestEnqueuedPushIsDelivered() {
	sender := &fakeTaskSender{}
	msg := notification.PushMessage{
		UserIDs: []string{"u1", "u2"},
		TitleID: "push.help_request.title",
		BodyID:  "push.help_request.body",
		Params:  map[string]interface{}{"Title": "Groceries"},
		Data:    map[string]string{"type": notification.PushHelpRequestCreated},
	}

	s.NoError(NewPushEnqueuer(sender).Push(context.Background(), msg))
	s.Len(sender.signatures, 1)

	signature := sender.signatures[0]
	s.Equal(TaskDeliverPush, signature.Name)
	s.Equal(pushRetryCount, signature.RetryCount)

	s.pusher.EXPECT().Push(gomock.Any(), msg).Return(nil)
	s.NoError(s.manager.DeliverPush(signature.Args[0].Value.(string)))
}

func (s *ManagerTestSuite) TestEnqueueSkipsEmptyPush() {
	sender := &fakeTaskSender{}
	s.NoError(NewPushEnqueuer(sender).Push(context.Background(), notification.PushMessage{}))
	s.Len(sender.signatures, 0)
}

func (s *ManagerTestSuite) TestEnqueueFailure() {
	sender := &fakeTaskSender{err: errors.New("broker down")}
	s.Error(NewPushEnqueuer(sender).Push(context.Background(), notification.PushMessage{UserIDs: []string{"u1"}}))
}

func (s *ManagerTestSuite) TestDeliverPushDropsMalformedPayload() {
	s.NoError(s.manager.DeliverPush("{not json"))
}

func (s *ManagerTestSuite) TestDeliverPushRetriesOnFailure() {
	payload, err := json.Marshal(notification.PushMessage{UserIDs: []string{"u1"}})
	s.NoError(err)

	s.pusher.EXPECT().Push(gomock.Any(), gomock.Any()).Return(errors.New("fcm unavailable"))
	s.Error(s.manager.DeliverPush(string(payload)))
}

func (s *ManagerTestSuite) TestSweeps() {
	s.store.EXPECT().ExpireBlocks(gomock.Any(), s.now).Return(3, nil)
	s.store.EXPECT().DeleteExpiredNotifications(gomock.Any(), s.now).Return(int64(7), nil)

	s.NoError(s.manager.ProcessExpiredBlocks())
	s.NoError(s.manager.CleanupExpiredNotifications())
}

func (s *ManagerTestSuite) TestSweepFailure() {
	s.store.EXPECT().ExpireBlocks(gomock.Any(), s.now).Return(0, errors.New("mongo down"))

	s.Error(s.manager.ProcessExpiredBlocks())
}

func TestManager(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}
