package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexProfileCollection())
	panicIfError(m.IndexHelpRequestCollection())
	panicIfError(m.IndexHelpResponseCollection())
	panicIfError(m.IndexHelpedRequestCollection())
	panicIfError(m.IndexCommunityCollection())
	panicIfError(m.IndexCommunityBlockCollection())
	panicIfError(m.IndexNotificationCollection())
}

func (m *MongoDBIndexer) IndexProfileCollection() error {
	if err := m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"email": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"fcm_tokens": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexHelpRequestCollection() error {
	if err := m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}

// IndexHelpResponseCollection enforces one response per user and request
func (m *MongoDBIndexer) IndexHelpResponseCollection() error {
	if err := m.createIndex(HelpResponseCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(HelpResponseCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "request_id", Value: 1},
			{Key: "user_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexHelpedRequestCollection() error {
	if err := m.createIndex(HelpedRequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"request_id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(HelpedRequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"accepted_user_id": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(HelpedRequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"request.requester_id": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexCommunityCollection() error {
	return m.createIndex(CommunityCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

// IndexCommunityBlockCollection allows a single active block per community and user
func (m *MongoDBIndexer) IndexCommunityBlockCollection() error {
	if err := m.createIndex(CommunityBlockCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(CommunityBlockCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "community_id", Value: 1},
			{Key: "blocked_user_email", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"is_active": true}),
	}); err != nil {
		return err
	}

	return m.createIndex(CommunityBlockCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "block_type", Value: 1},
			{Key: "is_active", Value: 1},
			{Key: "end_date", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexNotificationCollection() error {
	if err := m.createIndex(NotificationCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(NotificationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "recipient_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(NotificationCollection, mongo.IndexModel{
		Keys: bson.M{
			"expires_at": 1,
		},
	})
}
