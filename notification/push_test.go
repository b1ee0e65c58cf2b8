package notification_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/neighborly/neighborly-api/external/fcm"
	"github.com/neighborly/neighborly-api/mocks"
	"github.com/neighborly/neighborly-api/notification"
	"github.com/neighborly/neighborly-api/schema"
)

func TestPushGroupsTokensByLanguageAndPrunes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockMongoStore(ctrl)
	messenger := mocks.NewMockMessenger(ctrl)

	m.EXPECT().GetProfilesByIDs(gomock.Any(), []string{"p1", "p2", "p3"}).Return([]schema.Profile{
		{ID: "p1", FCMTokens: []string{"t1", "t2"}},
		{ID: "p2", Language: "zh-TW", FCMTokens: []string{"t3"}},
		{ID: "p3"},
	}, nil)

	sent := make([]string, 0)
	messenger.EXPECT().SendMulticast(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tokens []string, msg fcm.Message) (*fcm.Result, error) {
			assert.Equal(t, "Someone responded to your help request!", msg.Title)
			assert.Equal(t, "Bob wants to help with Groceries", msg.Body)
			assert.Equal(t, "h1", msg.Data["helpRequestId"])

			sent = append(sent, tokens...)
			if len(tokens) == 2 {
				return &fcm.Result{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"t2"}}, nil
			}
			return &fcm.Result{SuccessCount: 1}, nil
		}).Times(2)
	m.EXPECT().PruneFCMTokens(gomock.Any(), []string{"t2"}).Return(int64(1), nil)

	p := notification.NewPushService(m, messenger)
	err := p.Push(context.Background(), notification.PushMessage{
		UserIDs: []string{"p1", "p2", "p3"},
		TitleID: "push.help_response.title",
		BodyID:  "push.help_response.body",
		Params:  map[string]interface{}{"Name": "Bob", "Title": "Groceries"},
		Data:    map[string]string{"helpRequestId": "h1"},
	})
	assert.NoError(t, err)

	sort.Strings(sent)
	assert.Equal(t, []string{"t1", "t2", "t3"}, sent)
}

func TestPushWithoutTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockMongoStore(ctrl)
	messenger := mocks.NewMockMessenger(ctrl)
	m.EXPECT().GetProfilesByIDs(gomock.Any(), []string{"p1"}).Return([]schema.Profile{{ID: "p1"}}, nil)

	p := notification.NewPushService(m, messenger)
	assert.NoError(t, p.Push(context.Background(), notification.PushMessage{UserIDs: []string{"p1"}}))
	assert.NoError(t, p.Push(context.Background(), notification.PushMessage{}))
}

func TestPushProviderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockMongoStore(ctrl)
	messenger := mocks.NewMockMessenger(ctrl)
	m.EXPECT().GetProfilesByIDs(gomock.Any(), gomock.Any()).Return([]schema.Profile{{ID: "p1", FCMTokens: []string{"t1"}}}, nil)
	messenger.EXPECT().SendMulticast(gomock.Any(), []string{"t1"}, gomock.Any()).Return(nil, errors.New("unavailable"))

	p := notification.NewPushService(m, messenger)
	assert.Error(t, p.Push(context.Background(), notification.PushMessage{UserIDs: []string{"p1"}, TitleID: "x", BodyID: "y"}))
}
