package fcm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
)

var errUnregistered = errors.New("unregistered")

type fakeSender struct {
	calls   [][]string
	failAll bool
}

func (f *fakeSender) SendEachForMulticast(ctx context.Context, m *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.calls = append(f.calls, m.Tokens)
	if f.failAll {
		return nil, errors.New("unavailable")
	}

	br := &messaging.BatchResponse{}
	for _, t := range m.Tokens {
		if t == "dead" || t == "broken" {
			err := errUnregistered
			if t == "broken" {
				err = errors.New("quota exceeded")
			}
			br.Responses = append(br.Responses, &messaging.SendResponse{Success: false, Error: err})
			br.FailureCount++
			continue
		}
		br.Responses = append(br.Responses, &messaging.SendResponse{Success: true, MessageID: "m-" + t})
		br.SuccessCount++
	}
	return br, nil
}

func newTestClient(s sender) *Client {
	return &Client{
		sender:    s,
		deadToken: func(err error) bool { return err == errUnregistered },
	}
}

func TestSendMulticastReportsDeadTokens(t *testing.T) {
	s := &fakeSender{}
	c := newTestClient(s)

	r, err := c.SendMulticast(context.Background(), []string{"a", "dead", "broken", "b"}, Message{Title: "t", Body: "b"})
	assert.NoError(t, err)
	assert.Equal(t, 2, r.SuccessCount)
	assert.Equal(t, 2, r.FailureCount)
	assert.Equal(t, []string{"dead"}, r.InvalidTokens)
}

func TestSendMulticastChunks(t *testing.T) {
	s := &fakeSender{}
	c := newTestClient(s)

	tokens := make([]string, 0, MaxMulticastTokens+20)
	for i := 0; i < MaxMulticastTokens+20; i++ {
		tokens = append(tokens, fmt.Sprintf("token-%d", i))
	}

	r, err := c.SendMulticast(context.Background(), tokens, Message{Title: "t"})
	assert.NoError(t, err)
	assert.Len(t, s.calls, 2)
	assert.Len(t, s.calls[0], MaxMulticastTokens)
	assert.Len(t, s.calls[1], 20)
	assert.Equal(t, len(tokens), r.SuccessCount)
}

func TestSendMulticastAllFailed(t *testing.T) {
	c := newTestClient(&fakeSender{failAll: true})

	r, err := c.SendMulticast(context.Background(), []string{"a", "b"}, Message{})
	assert.Error(t, err)
	assert.Equal(t, 2, r.FailureCount)
}

func TestBuildMulticast(t *testing.T) {
	m := buildMulticast([]string{"a"}, Message{Title: "hi", Body: "there", Data: map[string]string{"type": "help_request_created"}})
	assert.Equal(t, "hi", m.Notification.Title)
	assert.Equal(t, ChannelID, m.Android.Notification.ChannelID)
	assert.Equal(t, "high", m.Android.Priority)
	assert.Equal(t, "default", m.APNS.Payload.Aps.Sound)
	assert.Equal(t, "help_request_created", m.Data["type"])
}
