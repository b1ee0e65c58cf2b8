package background

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/RichardKnop/machinery/v1"
	log "github.com/sirupsen/logrus"

	"github.com/neighborly/neighborly-api/notification"
)

const (
	TaskDeliverPush                 = "deliver_push"
	TaskProcessExpiredBlocks        = "process_expired_blocks"
	TaskCleanupExpiredNotifications = "cleanup_expired_notifications"

	WorkerName = "neighborly-worker"
)

// BackgroundManager runs the machinery worker of push delivery and sweeps
type BackgroundManager struct {
	Background

	pusher notification.Pusher

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(b Background, pusher notification.Pusher, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		Background: b,
		pusher:     pusher,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every task this worker serves
func (m *BackgroundManager) RegisterTasks() error {
	return m.taskServer.RegisterTasks(map[string]interface{}{
		TaskDeliverPush:                 m.DeliverPush,
		TaskProcessExpiredBlocks:        m.ProcessExpiredBlocks,
		TaskCleanupExpiredNotifications: m.CleanupExpiredNotifications,
	})
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run(concurrency int) error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker(WorkerName, concurrency)
	return m.worker.Launch()
}

// DeliverPush is a background job sending one queued push message
func (m *BackgroundManager) DeliverPush(payload string) error {
	var msg notification.PushMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Error("drop malformed push payload")
		return nil
	}

	return m.pusher.Push(context.Background(), msg)
}

// ProcessExpiredBlocks is a background job ending expired temporary blocks
func (m *BackgroundManager) ProcessExpiredBlocks() error {
	_, err := m.SweepExpiredBlocks(context.Background())
	return err
}

// CleanupExpiredNotifications is a background job removing notifications past retention
func (m *BackgroundManager) CleanupExpiredNotifications() error {
	_, err := m.SweepExpiredNotifications(context.Background())
	return err
}
