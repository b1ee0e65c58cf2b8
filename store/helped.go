package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/neighborly/neighborly-api/schema"
	"github.com/neighborly/neighborly-api/score"
)

// HelpedRequestStore - read access to the XP ledger
type HelpedRequestStore interface {
	GetHelpedRequest(ctx context.Context, requestID string) (*schema.HelpedRequest, error)
	ListHelpProvided(ctx context.Context, helperID string) ([]schema.HelpedRequest, error)
	ListHelpReceived(ctx context.Context, requesterID string) ([]schema.HelpedRequest, error)
}

func (m *mongoDB) GetHelpedRequest(ctx context.Context, requestID string) (*schema.HelpedRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ledger schema.HelpedRequest
	if err := m.collection(schema.HelpedRequestCollection).FindOne(ctx, bson.M{"request_id": requestID}).Decode(&ledger); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &ledger, nil
}

// ListHelpProvided returns the ledger entries where the user was the accepted helper
func (m *mongoDB) ListHelpProvided(ctx context.Context, helperID string) ([]schema.HelpedRequest, error) {
	return m.listHelped(ctx, bson.M{"accepted_user_id": helperID})
}

// ListHelpReceived returns the ledger entries of the user's own requests
func (m *mongoDB) ListHelpReceived(ctx context.Context, requesterID string) ([]schema.HelpedRequest, error) {
	return m.listHelped(ctx, bson.M{"request.requester_id": requesterID})
}

func (m *mongoDB) listHelped(ctx context.Context, query bson.M) ([]schema.HelpedRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"accepted_at": -1})
	cursor, err := m.collection(schema.HelpedRequestCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]schema.HelpedRequest, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// awardLedgerXP flips the award guard of a ledger entry and credits its frozen XP to the
// helper. It returns nil when the entry was already awarded. It must run in a transaction.
func (m *mongoDB) awardLedgerXP(sc mongo.SessionContext, requestID string, now time.Time) (*schema.XPState, error) {
	var ledger schema.HelpedRequest
	err := m.collection(schema.HelpedRequestCollection).FindOneAndUpdate(sc,
		bson.M{"request_id": requestID, "xp_awarded": false},
		bson.M{"$set": bson.M{"xp_awarded": true, "updated_at": now}},
	).Decode(&ledger)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return m.applyAward(sc, ledger.AcceptedUserID, ledger.XP, now)
}

// applyAward increments the accumulated XP of a user and recomputes the level from the
// incremented value. Inside a transaction two awards to the same user conflict and one
// of them is retried, so the level always matches the total.
func (m *mongoDB) applyAward(sc mongo.SessionContext, userID string, xp int, now time.Time) (*schema.XPState, error) {
	profiles := m.collection(schema.ProfileCollection)

	var state schema.XPState
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"id": 1, "accumulate_xp": 1, "level": 1})
	err := profiles.FindOneAndUpdate(sc,
		bson.M{"id": userID},
		bson.M{
			"$inc": bson.M{"accumulate_xp": xp},
			"$set": bson.M{"updated_at": now},
		},
		opts,
	).Decode(&state)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	level := score.LevelFor(state.AccumulateXP)
	if level != state.Level {
		if _, err := profiles.UpdateOne(sc, bson.M{"id": userID}, bson.M{"$set": bson.M{"level": level}}); err != nil {
			return nil, err
		}
		state.Level = level
	}

	log.WithFields(log.Fields{
		"prefix":        mongoLogPrefix,
		"user_id":       userID,
		"xp":            xp,
		"accumulate_xp": state.AccumulateXP,
		"level":         state.Level,
	}).Info("xp awarded")

	return &state, nil
}
