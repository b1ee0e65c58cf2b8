package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/neighborly/neighborly-api/schema"
)

// NotificationStore - in-app notification records
type NotificationStore interface {
	InsertNotifications(ctx context.Context, notifications []schema.Notification) error
	ListNotifications(ctx context.Context, recipientID string, limit int64) ([]schema.Notification, error)
	MarkNotificationRead(ctx context.Context, recipientID, id string, now time.Time) error
	MarkAllNotificationsRead(ctx context.Context, recipientID string, now time.Time) (int64, error)
	DeleteExpiredNotifications(ctx context.Context, now time.Time) (int64, error)
}

// InsertNotifications writes a batch of independent records. Ordering is disabled so
// one bad record does not stop the rest.
func (m *mongoDB) InsertNotifications(ctx context.Context, notifications []schema.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(notifications))
	for _, n := range notifications {
		docs = append(docs, n)
	}

	_, err := m.collection(schema.NotificationCollection).InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func (m *mongoDB) ListNotifications(ctx context.Context, recipientID string, limit int64) ([]schema.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)
	cursor, err := m.collection(schema.NotificationCollection).Find(ctx, bson.M{"recipient_id": recipientID}, opts)
	if err != nil {
		return nil, err
	}

	notifications := make([]schema.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (m *mongoDB) MarkNotificationRead(ctx context.Context, recipientID, id string, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	r, err := m.collection(schema.NotificationCollection).UpdateOne(ctx,
		bson.M{"id": id, "recipient_id": recipientID},
		bson.M{"$set": bson.M{"is_read": true, "read_at": now}},
	)
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (m *mongoDB) MarkAllNotificationsRead(ctx context.Context, recipientID string, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	r, err := m.collection(schema.NotificationCollection).UpdateMany(ctx,
		bson.M{"recipient_id": recipientID, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true, "read_at": now}},
	)
	if err != nil {
		return 0, err
	}
	return r.ModifiedCount, nil
}

// DeleteExpiredNotifications is the retention sweep
func (m *mongoDB) DeleteExpiredNotifications(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	r, err := m.collection(schema.NotificationCollection).DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": now}})
	if err != nil {
		return 0, err
	}
	return r.DeletedCount, nil
}
