package notification_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/neighborly/neighborly-api/mocks"
	"github.com/neighborly/neighborly-api/notification"
	"github.com/neighborly/neighborly-api/schema"
	"github.com/neighborly/neighborly-api/store"
	"github.com/neighborly/neighborly-api/utils"
)

func TestMain(m *testing.M) {
	if err := utils.InitI18NBundle("", notification.Messages...); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type DispatcherTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	store      *mocks.MockMongoStore
	limiter    *mocks.MockLimiter
	pusher     *mocks.MockPusher
	dispatcher *notification.Dispatcher
	now        time.Time
	help       schema.HelpRequest
}

func (s *DispatcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockMongoStore(s.ctrl)
	s.limiter = mocks.NewMockLimiter(s.ctrl)
	s.pusher = mocks.NewMockPusher(s.ctrl)
	s.now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	s.dispatcher = notification.NewDispatcher(s.store, s.limiter, s.pusher, 0)
	s.dispatcher.Now = func() time.Time { return s.now }

	s.help = schema.HelpRequest{
		ID:             "h1",
		RequesterID:    "req",
		RequesterEmail: "req@example.com",
		RequesterName:  "Ann",
		Title:          "Groceries",
		Description:    "milk and eggs",
		Address:        "Main St",
		Priority:       schema.PriorityUrgent,
		Status:         schema.HelpOpen,
	}
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DispatcherTestSuite) TestHelpRequestCreatedFansOutOncePerMember() {
	s.store.EXPECT().GetProfile(gomock.Any(), "req").Return(&schema.Profile{
		ID:          "req",
		Email:       "req@example.com",
		Communities: []string{"c1", "c2", "c3"},
	}, nil)
	s.store.EXPECT().GetCommunities(gomock.Any(), []string{"c1", "c2", "c3"}).Return([]schema.Community{
		{ID: "c1", Name: "North", Members: []string{"req@example.com", "a@example.com", "b@example.com"}},
		{ID: "c2", Name: "South", Members: []string{"b@example.com", "req@example.com", "x@example.com"}},
		{ID: "c3", Name: "Stale", Members: []string{"y@example.com"}},
	}, nil)
	s.store.EXPECT().GetProfilesByEmails(gomock.Any(), []string{"a@example.com", "b@example.com", "x@example.com"}).Return([]schema.Profile{
		{ID: "a", Email: "a@example.com"},
		{ID: "b", Email: "b@example.com"},
		{ID: "x", Email: "x@example.com", Language: "en"},
	}, nil)

	s.limiter.EXPECT().Allow(gomock.Any(), "a", s.now).Return(true, nil)
	s.limiter.EXPECT().Allow(gomock.Any(), "b", s.now).Return(false, nil)
	s.limiter.EXPECT().Allow(gomock.Any(), "x", s.now).Return(false, errors.New("redis down"))

	s.store.EXPECT().InsertNotifications(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, notifications []schema.Notification) error {
			s.Len(notifications, 2)

			a := notifications[0]
			s.Equal("a", a.RecipientID)
			s.Equal(schema.NotificationHelpRequest, a.Type)
			s.Equal("c1", a.CommunityID)
			s.Equal("North", a.CommunityName)
			s.Equal("⚠️ Groceries Help Needed", a.Title)
			s.Equal("Ann needs groceries help: milk and eggs", a.Message)
			s.Equal("h1", a.HelpRequestID)
			s.Equal("Groceries", a.Request.Title)
			s.False(a.IsRead)
			s.Equal(s.now.Add(notification.DefaultRetention), a.ExpiresAt)

			s.Equal("x", notifications[1].RecipientID)
			s.Equal("c2", notifications[1].CommunityID)
			return nil
		})
	s.pusher.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, msg notification.PushMessage) error {
			s.Equal([]string{"a", "x"}, msg.UserIDs)
			s.Equal("push.help_request.title", msg.TitleID)
			s.Equal(notification.PushHelpRequestCreated, msg.Data["type"])
			s.Equal("h1", msg.Data["helpRequestId"])
			return errors.New("fcm unavailable")
		})

	n, err := s.dispatcher.HelpRequestCreated(context.Background(), s.help)
	s.NoError(err)
	s.Equal(2, n)
}

func (s *DispatcherTestSuite) TestHelpRequestCreatedWithoutCommunities() {
	s.store.EXPECT().GetProfile(gomock.Any(), "req").Return(&schema.Profile{ID: "req", Email: "req@example.com"}, nil)
	s.store.EXPECT().GetCommunities(gomock.Any(), gomock.Any()).Return([]schema.Community{}, nil)

	n, err := s.dispatcher.HelpRequestCreated(context.Background(), s.help)
	s.NoError(err)
	s.Equal(0, n)
}

func (s *DispatcherTestSuite) TestHelpRespondedNotifiesRequester() {
	s.store.EXPECT().GetProfile(gomock.Any(), "req").Return(&schema.Profile{ID: "req", Email: "req@example.com"}, nil)
	s.limiter.EXPECT().Allow(gomock.Any(), "req", s.now).Return(true, nil)
	s.store.EXPECT().InsertNotifications(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, notifications []schema.Notification) error {
			s.Len(notifications, 1)
			s.Equal(schema.NotificationHelpResponse, notifications[0].Type)
			s.Equal(schema.ResponseCommunityID, notifications[0].CommunityID)
			s.Equal("👋 Someone Wants to Help!", notifications[0].Title)
			s.Equal("Bob responded to your Groceries help request", notifications[0].Message)
			return nil
		})
	s.pusher.EXPECT().Push(gomock.Any(), gomock.Any()).Return(nil)

	err := s.dispatcher.HelpResponded(context.Background(), s.help, schema.Response{ID: "r1", Username: "Bob"})
	s.NoError(err)
}

func (s *DispatcherTestSuite) TestHelpRespondedOverDailyLimit() {
	s.store.EXPECT().GetProfile(gomock.Any(), "req").Return(&schema.Profile{ID: "req"}, nil)
	s.limiter.EXPECT().Allow(gomock.Any(), "req", s.now).Return(false, nil)

	s.NoError(s.dispatcher.HelpResponded(context.Background(), s.help, schema.Response{ID: "r1"}))
}

func (s *DispatcherTestSuite) TestHelpRespondedUnknownRequester() {
	s.store.EXPECT().GetProfile(gomock.Any(), "req").Return(nil, store.ErrProfileNotFound)

	s.NoError(s.dispatcher.HelpResponded(context.Background(), s.help, schema.Response{ID: "r1"}))
}

func (s *DispatcherTestSuite) TestHelpStatusChangedDedupesRecipients() {
	s.help.Status = schema.HelpCompleted
	s.store.EXPECT().GetProfilesByIDs(gomock.Any(), []string{"req", "h1", "h2"}).Return([]schema.Profile{
		{ID: "req"}, {ID: "h1"}, {ID: "h2"},
	}, nil)
	s.limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), s.now).Return(true, nil).Times(3)
	s.store.EXPECT().InsertNotifications(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, notifications []schema.Notification) error {
			for _, n := range notifications {
				s.Equal(schema.NotificationStatusUpdate, n.Type)
				s.Equal(schema.StatusCommunityID, n.CommunityID)
				s.Equal("✅ Help Request Completed", n.Title)
			}
			return nil
		})
	s.pusher.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, msg notification.PushMessage) error {
			s.Equal("push.help_completed.title", msg.TitleID)
			s.Equal("completed", msg.Data["status"])
			return nil
		})

	responders := []string{"h1", "req", "h2", "", "h1"}
	n, err := s.dispatcher.HelpStatusChanged(context.Background(), s.help, responders)
	s.NoError(err)
	s.Equal(3, n)
	s.Equal([]string{"h1", "req", "h2", "", "h1"}, responders)
}

func (s *DispatcherTestSuite) TestInsertFailureSkipsPush() {
	s.store.EXPECT().GetProfilesByIDs(gomock.Any(), []string{"req"}).Return([]schema.Profile{{ID: "req"}}, nil)
	s.limiter.EXPECT().Allow(gomock.Any(), "req", s.now).Return(true, nil)
	s.store.EXPECT().InsertNotifications(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))
	s.limiter.EXPECT().Release(gomock.Any(), "req", s.now).Return(nil)

	_, err := s.dispatcher.HelpStatusChanged(context.Background(), s.help, nil)
	s.Error(err)
}

func (s *DispatcherTestSuite) TestDispatcherWithoutLimiterOrPusher() {
	d := notification.NewDispatcher(s.store, nil, nil, 0)
	d.Now = func() time.Time { return s.now }

	s.store.EXPECT().GetProfilesByIDs(gomock.Any(), []string{"req"}).Return([]schema.Profile{{ID: "req"}}, nil)
	s.store.EXPECT().InsertNotifications(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, notifications []schema.Notification) error {
			s.Len(notifications, 1)
			s.Equal("req", notifications[0].RecipientID)
			return nil
		})

	n, err := d.HelpStatusChanged(context.Background(), s.help, nil)
	s.NoError(err)
	s.Equal(1, n)
}

func (s *DispatcherTestSuite) TestCommunityAdminActionSkipsActingAdmin() {
	community := schema.Community{ID: "c1", Name: "North", Admins: []string{"a1@example.com", "a2@example.com", "a3@example.com"}}
	s.store.EXPECT().GetProfilesByEmails(gomock.Any(), []string{"a2@example.com", "a3@example.com"}).Return([]schema.Profile{
		{ID: "a2", Email: "a2@example.com"},
		{ID: "a3", Email: "a3@example.com"},
	}, nil)
	s.limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), s.now).Return(true, nil).Times(2)
	s.store.EXPECT().InsertNotifications(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, notifications []schema.Notification) error {
			for _, n := range notifications {
				s.Equal(schema.NotificationCommunityAdmin, n.Type)
				s.Equal("c1", n.CommunityID)
				s.Equal("a1@example.com blocked u@example.com", n.Message)
				s.Nil(n.Request)
			}
			return nil
		})
	s.pusher.EXPECT().Push(gomock.Any(), gomock.Any()).Return(nil)

	n, err := s.dispatcher.CommunityAdminAction(context.Background(), community, "a1@example.com", "u@example.com", "blocked")
	s.NoError(err)
	s.Equal(2, n)
}

func (s *DispatcherTestSuite) TestCommunityAdminActionSoleAdmin() {
	community := schema.Community{ID: "c1", Admins: []string{"a1@example.com"}}

	n, err := s.dispatcher.CommunityAdminAction(context.Background(), community, "a1@example.com", "u@example.com", "removed")
	s.NoError(err)
	s.Equal(0, n)
}

func (s *DispatcherTestSuite) TestCleanupExpired() {
	s.store.EXPECT().DeleteExpiredNotifications(gomock.Any(), s.now).Return(int64(4), nil)

	n, err := s.dispatcher.CleanupExpired(context.Background())
	s.NoError(err)
	s.Equal(int64(4), n)
}

func TestDispatcher(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}
