package background

import (
	"context"
	"encoding/json"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	log "github.com/sirupsen/logrus"

	"github.com/neighborly/neighborly-api/notification"
)

const pushRetryCount = 3

type taskSender interface {
	SendTaskWithContext(ctx context.Context, signature *tasks.Signature) (*result.AsyncResult, error)
}

// PushEnqueuer hands push messages over to the background worker instead of sending them
// inline. It implements notification.Pusher.
type PushEnqueuer struct {
	server taskSender
}

func NewPushEnqueuer(server taskSender) *PushEnqueuer {
	return &PushEnqueuer{server: server}
}

func (e *PushEnqueuer) Push(ctx context.Context, msg notification.PushMessage) error {
	if len(msg.UserIDs) == 0 {
		return nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	signature := &tasks.Signature{
		Name: TaskDeliverPush,
		Args: []tasks.Arg{
			{Type: "string", Value: string(payload)},
		},
		RetryCount: pushRetryCount,
	}

	if _, err := e.server.SendTaskWithContext(ctx, signature); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"recipients": len(msg.UserIDs),
		"type":       msg.Data["type"],
	}).Debug("push enqueued")
	return nil
}
