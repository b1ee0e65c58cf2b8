package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/neighborly/neighborly-api/schema"
)

// ProfileStore - user profiles with their XP state and device tokens
type ProfileStore interface {
	UpsertProfile(ctx context.Context, p *schema.Profile, now time.Time) (*schema.Profile, error)
	GetProfile(ctx context.Context, id string) (*schema.Profile, error)
	GetProfilesByIDs(ctx context.Context, ids []string) ([]schema.Profile, error)
	GetProfilesByEmails(ctx context.Context, emails []string) ([]schema.Profile, error)
	AddFCMToken(ctx context.Context, id, token string) error
	RemoveFCMToken(ctx context.Context, id, token string) error
	PruneFCMTokens(ctx context.Context, tokens []string) (int64, error)
}

// UpsertProfile creates a profile on first sight and refreshes its contact fields after.
// XP fields are only initialized here and never overwritten.
func (m *mongoDB) UpsertProfile(ctx context.Context, p *schema.Profile, now time.Time) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"email":      p.Email,
			"username":   p.Username,
			"phone":      p.Phone,
			"language":   p.Language,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"id":                  p.ID,
			"fcm_tokens":          []string{},
			"communities":         []string{},
			"pending_communities": []string{},
			"accumulate_xp":       0,
			"level":               1,
			"post_count":          0,
			"created_at":          now,
		},
	}

	var result schema.Profile
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	if err := m.collection(schema.ProfileCollection).FindOneAndUpdate(ctx, bson.M{"id": p.ID}, update, opts).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (m *mongoDB) GetProfile(ctx context.Context, id string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p schema.Profile
	if err := m.collection(schema.ProfileCollection).FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *mongoDB) GetProfilesByIDs(ctx context.Context, ids []string) ([]schema.Profile, error) {
	return m.findProfiles(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (m *mongoDB) GetProfilesByEmails(ctx context.Context, emails []string) ([]schema.Profile, error) {
	return m.findProfiles(ctx, bson.M{"email": bson.M{"$in": emails}})
}

func (m *mongoDB) findProfiles(ctx context.Context, query bson.M) ([]schema.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.ProfileCollection).Find(ctx, query)
	if err != nil {
		return nil, err
	}

	profiles := make([]schema.Profile, 0)
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (m *mongoDB) AddFCMToken(ctx context.Context, id, token string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	r, err := m.collection(schema.ProfileCollection).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$addToSet": bson.M{"fcm_tokens": token}})
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (m *mongoDB) RemoveFCMToken(ctx context.Context, id, token string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	r, err := m.collection(schema.ProfileCollection).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$pull": bson.M{"fcm_tokens": token}})
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// PruneFCMTokens removes dead device tokens from every profile holding them
func (m *mongoDB) PruneFCMTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	r, err := m.collection(schema.ProfileCollection).UpdateMany(ctx,
		bson.M{"fcm_tokens": bson.M{"$in": tokens}},
		bson.M{"$pull": bson.M{"fcm_tokens": bson.M{"$in": tokens}}},
	)
	if err != nil {
		return 0, err
	}
	return r.ModifiedCount, nil
}
