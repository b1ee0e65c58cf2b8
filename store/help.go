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

const (
	DefaultListLimit = 100
)

// HelpRequestStore - the transactional core of the help request lifecycle
type HelpRequestStore interface {
	CreateHelpRequest(ctx context.Context, help *schema.HelpRequest) error
	GetHelpRequest(ctx context.Context, id string) (*schema.HelpRequest, error)
	ListHelpRequests(ctx context.Context, filter schema.HelpRequestFilter) ([]schema.HelpRequest, error)
	ListResponses(ctx context.Context, requestIDs ...string) ([]schema.Response, error)
	AddResponse(ctx context.Context, resp *schema.Response) (*schema.HelpRequest, error)
	AcceptResponse(ctx context.Context, ownerID, requestID, responseID string, now time.Time) (*AcceptResult, error)
	UpdateHelpStatus(ctx context.Context, ownerID, requestID string, status schema.HelpStatus, now time.Time) (*StatusResult, error)
	DeleteHelpRequest(ctx context.Context, ownerID, requestID string) (*schema.HelpRequest, error)
}

// AcceptResult is everything committed by a response acceptance
type AcceptResult struct {
	Request    schema.HelpRequest
	Accepted   schema.Response
	Ledger     schema.HelpedRequest
	XP         *schema.XPState
	Responders []string
}

// StatusResult is everything committed by a status update
type StatusResult struct {
	Request    schema.HelpRequest
	Previous   schema.HelpStatus
	Ledger     *schema.HelpedRequest
	XP         *schema.XPState
	Responders []string
}

// CreateHelpRequest inserts a new open request and counts it as a post of the requester
func (m *mongoDB) CreateHelpRequest(ctx context.Context, help *schema.HelpRequest) error {
	_, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := m.collection(schema.HelpRequestCollection).InsertOne(sc, help); err != nil {
			return nil, err
		}

		if _, err := m.collection(schema.ProfileCollection).UpdateOne(sc,
			bson.M{"id": help.RequesterID},
			bson.M{"$inc": bson.M{"post_count": 1}},
		); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("insert help request")
		return err
	}
	return nil
}

func findHelpRequest(ctx context.Context, c *mongo.Collection, id string) (*schema.HelpRequest, error) {
	var help schema.HelpRequest
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&help); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &help, nil
}

// GetHelpRequest returns a request without its responses
func (m *mongoDB) GetHelpRequest(ctx context.Context, id string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findHelpRequest(ctx, m.collection(schema.HelpRequestCollection), id)
}

// ListHelpRequests returns requests newest first
func (m *mongoDB) ListHelpRequests(ctx context.Context, filter schema.HelpRequestFilter) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.RequesterID != "" {
		query["requester_id"] = filter.RequesterID
	}

	limit := filter.Limit
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)
	cursor, err := m.collection(schema.HelpRequestCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	helps := make([]schema.HelpRequest, 0)
	if err := cursor.All(ctx, &helps); err != nil {
		return nil, err
	}
	return helps, nil
}

// ListResponses returns the responses of the given requests, oldest first
func (m *mongoDB) ListResponses(ctx context.Context, requestIDs ...string) ([]schema.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	responses := make([]schema.Response, 0)
	if len(requestIDs) == 0 {
		return responses, nil
	}

	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := m.collection(schema.HelpResponseCollection).Find(ctx, bson.M{"request_id": bson.M{"$in": requestIDs}}, opts)
	if err != nil {
		return nil, err
	}

	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// AddResponse stores a pending response on an open request. The request document is
// written in the same transaction so a racing acceptance conflicts with it.
func (m *mongoDB) AddResponse(ctx context.Context, resp *schema.Response) (*schema.HelpRequest, error) {
	requests := m.collection(schema.HelpRequestCollection)
	responses := m.collection(schema.HelpResponseCollection)

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		help, err := findHelpRequest(sc, requests, resp.RequestID)
		if err != nil {
			return nil, err
		}

		if help.RequesterID == resp.UserID {
			return nil, ErrOwnRequest
		}

		if help.Status != schema.HelpOpen {
			return nil, ErrRequestNotOpen
		}

		count, err := responses.CountDocuments(sc, bson.M{"request_id": resp.RequestID, "user_id": resp.UserID})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateResponse
		}

		if _, err := responses.InsertOne(sc, resp); err != nil {
			if isDuplicateKey(err) {
				return nil, ErrDuplicateResponse
			}
			return nil, err
		}

		r, err := requests.UpdateOne(sc,
			bson.M{"id": help.ID, "status": schema.HelpOpen},
			bson.M{
				"$inc": bson.M{"response_count": 1},
				"$set": bson.M{"updated_at": resp.CreatedAt},
			})
		if err != nil {
			return nil, err
		}
		if r.MatchedCount == 0 {
			return nil, ErrRequestNotOpen
		}

		help.ResponseCount++
		help.UpdatedAt = resp.CreatedAt
		return help, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*schema.HelpRequest), nil
}

// AcceptResponse moves an open request to in_progress with the given response accepted,
// creates its ledger entry with frozen XP, rejects the other pending responses and awards
// the helper. All of it commits together or not at all.
func (m *mongoDB) AcceptResponse(ctx context.Context, ownerID, requestID, responseID string, now time.Time) (*AcceptResult, error) {
	requests := m.collection(schema.HelpRequestCollection)
	responses := m.collection(schema.HelpResponseCollection)
	helped := m.collection(schema.HelpedRequestCollection)

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		help, err := findHelpRequest(sc, requests, requestID)
		if err != nil {
			return nil, err
		}

		if help.RequesterID != ownerID {
			return nil, ErrNotRequestOwner
		}

		if help.Status != schema.HelpOpen {
			return nil, ErrRequestNoLongerAvailable
		}

		var accepted schema.Response
		if err := responses.FindOne(sc, bson.M{"id": responseID, "request_id": requestID}).Decode(&accepted); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrResponseNotFound
			}
			return nil, err
		}

		if accepted.Status != schema.ResponsePending {
			return nil, ErrRequestNoLongerAvailable
		}

		r, err := requests.UpdateOne(sc,
			bson.M{"id": requestID, "status": schema.HelpOpen},
			bson.M{"$set": bson.M{
				"status":               schema.HelpInProgress,
				"accepted_response_id": accepted.ID,
				"accepted_user_id":     accepted.UserID,
				"updated_at":           now,
			}})
		if err != nil {
			return nil, err
		}
		if r.ModifiedCount == 0 {
			return nil, ErrRequestNoLongerAvailable
		}

		help.Status = schema.HelpInProgress
		help.AcceptedResponseID = accepted.ID
		help.AcceptedUserID = accepted.UserID
		help.UpdatedAt = now

		ledger := schema.HelpedRequest{
			RequestID:      help.ID,
			AcceptedUserID: accepted.UserID,
			ResponseID:     accepted.ID,
			AcceptedAt:     now,
			Status:         schema.HelpInProgress,
			XP:             score.XPFor(help.Priority),
			UpdatedAt:      now,
			Request:        help.Snapshot(),
			Responder: schema.ResponderSnapshot{
				UserID:   accepted.UserID,
				Username: accepted.Username,
				Email:    accepted.Email,
				Phone:    accepted.Phone,
			},
		}
		if _, err := helped.InsertOne(sc, &ledger); err != nil {
			if isDuplicateKey(err) {
				return nil, ErrRequestNoLongerAvailable
			}
			return nil, err
		}

		if _, err := responses.UpdateOne(sc,
			bson.M{"id": accepted.ID, "status": schema.ResponsePending},
			bson.M{"$set": bson.M{"status": schema.ResponseAccepted, "accepted_at": now}},
		); err != nil {
			return nil, err
		}
		accepted.Status = schema.ResponseAccepted
		accepted.AcceptedAt = &now

		if _, err := responses.UpdateMany(sc,
			bson.M{"request_id": requestID, "id": bson.M{"$ne": accepted.ID}, "status": schema.ResponsePending},
			bson.M{"$set": bson.M{"status": schema.ResponseRejected, "rejected_at": now}},
		); err != nil {
			return nil, err
		}

		xp, err := m.awardLedgerXP(sc, requestID, now)
		if err != nil {
			return nil, err
		}
		if xp != nil {
			ledger.XPAwarded = true
		}

		responders, err := responderIDs(sc, responses, requestID)
		if err != nil {
			return nil, err
		}

		return &AcceptResult{
			Request:    *help,
			Accepted:   accepted,
			Ledger:     ledger,
			XP:         xp,
			Responders: responders,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*AcceptResult), nil
}

// UpdateHelpStatus applies an owner status change. Entering an XP eligible status
// mirrors it onto the ledger entry and awards the helper if that has not happened yet.
func (m *mongoDB) UpdateHelpStatus(ctx context.Context, ownerID, requestID string, status schema.HelpStatus, now time.Time) (*StatusResult, error) {
	requests := m.collection(schema.HelpRequestCollection)
	responses := m.collection(schema.HelpResponseCollection)
	helped := m.collection(schema.HelpedRequestCollection)

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		help, err := findHelpRequest(sc, requests, requestID)
		if err != nil {
			return nil, err
		}

		if help.RequesterID != ownerID {
			return nil, ErrNotRequestOwner
		}

		if !schema.CanTransition(help.Status, status) {
			return nil, ErrInvalidTransition
		}

		previous := help.Status
		acceptedUserID := help.AcceptedUserID

		set := bson.M{"status": status, "updated_at": now}
		switch status {
		case schema.HelpCompleted:
			set["completed_at"] = now
			help.CompletedAt = &now
		case schema.HelpCancelled:
			set["cancelled_at"] = now
			set["accepted_response_id"] = ""
			set["accepted_user_id"] = ""
			help.CancelledAt = &now
			help.AcceptedResponseID = ""
			help.AcceptedUserID = ""
		}

		r, err := requests.UpdateOne(sc, bson.M{"id": requestID, "status": previous}, bson.M{"$set": set})
		if err != nil {
			return nil, err
		}
		if r.ModifiedCount == 0 {
			return nil, ErrRequestNoLongerAvailable
		}

		help.Status = status
		help.UpdatedAt = now

		res := &StatusResult{Previous: previous}

		if status.XPEligible() && acceptedUserID != "" {
			ledgerSet := bson.M{"status": status, "updated_at": now}
			if status == schema.HelpCompleted {
				ledgerSet["completed_at"] = now
			}

			var ledger schema.HelpedRequest
			opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
			if err := helped.FindOneAndUpdate(sc, bson.M{"request_id": requestID}, bson.M{"$set": ledgerSet}, opts).Decode(&ledger); err != nil {
				if err != mongo.ErrNoDocuments {
					return nil, err
				}
			} else {
				xp, err := m.awardLedgerXP(sc, requestID, now)
				if err != nil {
					return nil, err
				}
				if xp != nil {
					ledger.XPAwarded = true
				}
				res.Ledger = &ledger
				res.XP = xp
			}
		}

		responders, err := responderIDs(sc, responses, requestID)
		if err != nil {
			return nil, err
		}

		res.Request = *help
		res.Responders = responders
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*StatusResult), nil
}

// DeleteHelpRequest removes a request with all of its responses. The ledger entry stays.
func (m *mongoDB) DeleteHelpRequest(ctx context.Context, ownerID, requestID string) (*schema.HelpRequest, error) {
	requests := m.collection(schema.HelpRequestCollection)
	responses := m.collection(schema.HelpResponseCollection)

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		help, err := findHelpRequest(sc, requests, requestID)
		if err != nil {
			return nil, err
		}

		if help.RequesterID != ownerID {
			return nil, ErrNotRequestOwner
		}

		if _, err := responses.DeleteMany(sc, bson.M{"request_id": requestID}); err != nil {
			return nil, err
		}

		r, err := requests.DeleteOne(sc, bson.M{"id": requestID})
		if err != nil {
			return nil, err
		}
		if r.DeletedCount == 0 {
			return nil, ErrRequestNotFound
		}

		return help, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*schema.HelpRequest), nil
}

func responderIDs(ctx context.Context, responses *mongo.Collection, requestID string) ([]string, error) {
	values, err := responses.Distinct(ctx, "user_id", bson.M{"request_id": requestID})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
