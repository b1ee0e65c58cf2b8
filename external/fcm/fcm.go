package fcm

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

const (
	logPrefix = "fcm"

	// MaxMulticastTokens is the provider limit of tokens in one multicast call
	MaxMulticastTokens = 500
	ChannelID          = "neighborly_channel"
)

// Message is one push payload
type Message struct {
	Title string
	Body  string
	Data  map[string]string
}

// Result summarizes a multicast. InvalidTokens are the tokens the provider
// reported as unregistered or malformed.
type Result struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

type sender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// Client sends push notifications through firebase cloud messaging
type Client struct {
	sender    sender
	deadToken func(error) bool
}

func isDeadToken(err error) bool {
	return messaging.IsRegistrationTokenNotRegistered(err) || messaging.IsInvalidArgument(err)
}

// New creates a client from a service account credentials file
func New(ctx context.Context, credentialsFile string) (*Client, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, err
	}

	m, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}

	return &Client{sender: m, deadToken: isDeadToken}, nil
}

func buildMulticast(tokens []string, msg Message) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: ChannelID,
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}
}

// SendMulticast delivers msg to every token in chunks the provider accepts.
// A failed chunk is logged and counted as failures, the other chunks still go out.
func (c *Client) SendMulticast(ctx context.Context, tokens []string, msg Message) (*Result, error) {
	result := &Result{InvalidTokens: []string{}}

	var lastErr error
	for start := 0; start < len(tokens); start += MaxMulticastTokens {
		end := start + MaxMulticastTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		chunk := tokens[start:end]

		br, err := c.sender.SendEachForMulticast(ctx, buildMulticast(chunk, msg))
		if err != nil {
			log.WithField("prefix", logPrefix).WithError(err).WithField("tokens", len(chunk)).Error("send multicast")
			result.FailureCount += len(chunk)
			lastErr = err
			continue
		}

		result.SuccessCount += br.SuccessCount
		result.FailureCount += br.FailureCount
		for i, r := range br.Responses {
			if r.Success || i >= len(chunk) {
				continue
			}
			if c.deadToken(r.Error) {
				result.InvalidTokens = append(result.InvalidTokens, chunk[i])
			}
		}
	}

	if lastErr != nil && result.SuccessCount == 0 {
		return result, lastErr
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"success": result.SuccessCount,
		"failure": result.FailureCount,
		"invalid": len(result.InvalidTokens),
	}).Debug("multicast sent")

	return result, nil
}
