package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/neighborly/neighborly-api/schema"
)

// CommunityStore - community membership sets and block records
type CommunityStore interface {
	GetCommunity(ctx context.Context, id string) (*schema.Community, error)
	GetCommunities(ctx context.Context, ids []string) ([]schema.Community, error)

	RequestJoin(ctx context.Context, communityID string, req schema.JoinRequest) error
	ApproveJoin(ctx context.Context, adminEmail, communityID, userEmail string) error
	RejectJoin(ctx context.Context, adminEmail, communityID, userEmail string) error
	LeaveCommunity(ctx context.Context, communityID, userEmail string) error

	BlockMember(ctx context.Context, block *schema.CommunityBlock) (*schema.Community, error)
	UnblockMember(ctx context.Context, adminEmail, communityID, userEmail string, now time.Time) (*schema.Community, error)
	RemoveMember(ctx context.Context, adminEmail, communityID, userEmail string, now time.Time) (*schema.Community, error)

	GetActiveBlock(ctx context.Context, communityID, userEmail string) (*schema.CommunityBlock, error)
	ListActiveBlocks(ctx context.Context, communityID string) ([]schema.CommunityBlock, error)
	ExpireBlock(ctx context.Context, block schema.CommunityBlock, now time.Time) (bool, error)
	ExpireBlocks(ctx context.Context, now time.Time) (int, error)
}

func findCommunity(ctx context.Context, c *mongo.Collection, id string) (*schema.Community, error) {
	var community schema.Community
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&community); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCommunityNotFound
		}
		return nil, err
	}
	return &community, nil
}

func (m *mongoDB) GetCommunity(ctx context.Context, id string) (*schema.Community, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return findCommunity(ctx, m.collection(schema.CommunityCollection), id)
}

func (m *mongoDB) GetCommunities(ctx context.Context, ids []string) ([]schema.Community, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	communities := make([]schema.Community, 0)
	if len(ids) == 0 {
		return communities, nil
	}

	cursor, err := m.collection(schema.CommunityCollection).Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	if err := cursor.All(ctx, &communities); err != nil {
		return nil, err
	}
	return communities, nil
}

func (m *mongoDB) hasActiveBlock(ctx context.Context, communityID, userEmail string) (bool, error) {
	n, err := m.collection(schema.CommunityBlockCollection).CountDocuments(ctx, bson.M{
		"community_id":       communityID,
		"blocked_user_email": userEmail,
		"is_active":          true,
	})
	return n > 0, err
}

// RequestJoin queues a join request on the community and marks it pending on the profile
func (m *mongoDB) RequestJoin(ctx context.Context, communityID string, req schema.JoinRequest) error {
	communities := m.collection(schema.CommunityCollection)
	profiles := m.collection(schema.ProfileCollection)

	_, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		community, err := findCommunity(sc, communities, communityID)
		if err != nil {
			return nil, err
		}

		if community.IsMember(req.UserEmail) {
			return nil, ErrAlreadyMember
		}

		if community.HasJoinRequest(req.UserEmail) {
			return nil, ErrJoinRequestPending
		}

		blocked, err := m.hasActiveBlock(sc, communityID, req.UserEmail)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, ErrBlockedFromCommunity
		}

		if _, err := communities.UpdateOne(sc, bson.M{"id": communityID}, bson.M{"$push": bson.M{"join_requests": req}}); err != nil {
			return nil, err
		}

		if _, err := profiles.UpdateOne(sc, bson.M{"email": req.UserEmail}, bson.M{"$addToSet": bson.M{"pending_communities": communityID}}); err != nil {
			return nil, err
		}

		return nil, nil
	})
	return err
}

// ApproveJoin turns a pending join request into membership
func (m *mongoDB) ApproveJoin(ctx context.Context, adminEmail, communityID, userEmail string) error {
	communities := m.collection(schema.CommunityCollection)
	profiles := m.collection(schema.ProfileCollection)

	_, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		community, err := findCommunity(sc, communities, communityID)
		if err != nil {
			return nil, err
		}

		if !community.IsAdmin(adminEmail) {
			return nil, ErrNotCommunityAdmin
		}

		if !community.HasJoinRequest(userEmail) {
			return nil, ErrJoinRequestNotFound
		}

		update := bson.M{
			"$pull":     bson.M{"join_requests": bson.M{"user_email": userEmail}},
			"$addToSet": bson.M{"members": userEmail},
		}
		if !community.IsMember(userEmail) {
			update["$inc"] = bson.M{"member_count": 1}
		}
		if _, err := communities.UpdateOne(sc, bson.M{"id": communityID}, update); err != nil {
			return nil, err
		}

		if _, err := profiles.UpdateOne(sc, bson.M{"email": userEmail}, bson.M{
			"$pull":     bson.M{"pending_communities": communityID},
			"$addToSet": bson.M{"communities": communityID},
		}); err != nil {
			return nil, err
		}

		return nil, nil
	})
	return err
}

// RejectJoin drops a pending join request
func (m *mongoDB) RejectJoin(ctx context.Context, adminEmail, communityID, userEmail string) error {
	communities := m.collection(schema.CommunityCollection)
	profiles := m.collection(schema.ProfileCollection)

	_, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		community, err := findCommunity(sc, communities, communityID)
		if err != nil {
			return nil, err
		}

		if !community.IsAdmin(adminEmail) {
			return nil, ErrNotCommunityAdmin
		}

		if !community.HasJoinRequest(userEmail) {
			return nil, ErrJoinRequestNotFound
		}

		if _, err := communities.UpdateOne(sc, bson.M{"id": communityID}, bson.M{
			"$pull": bson.M{"join_requests": bson.M{"user_email": userEmail}},
		}); err != nil {
			return nil, err
		}

		if _, err := profiles.UpdateOne(sc, bson.M{"email": userEmail}, bson.M{
			"$pull": bson.M{"pending_communities": communityID},
		}); err != nil {
			return nil, err
		}

		return nil, nil
	})
	return err
}

func (m *mongoDB) LeaveCommunity(ctx context.Context, communityID, userEmail string) error {
	communities := m.collection(schema.CommunityCollection)
	profiles := m.collection(schema.ProfileCollection)

	_, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		community, err := findCommunity(sc, communities, communityID)
		if err != nil {
			return nil, err
		}

		if !community.IsMember(userEmail) {
			return nil, ErrNotMember
		}

		if _, err := communities.UpdateOne(sc, bson.M{"id": communityID}, bson.M{
			"$pull": bson.M{"members": userEmail},
			"$inc":  bson.M{"member_count": -1},
		}); err != nil {
			return nil, err
		}

		if _, err := profiles.UpdateOne(sc, bson.M{"email": userEmail}, bson.M{
			"$pull": bson.M{"communities": communityID},
		}); err != nil {
			return nil, err
		}

		return nil, nil
	})
	return err
}

func (m *mongoDB) deactivateBlocks(sc mongo.SessionContext, communityID, userEmail string, now time.Time) (int64, error) {
	r, err := m.collection(schema.CommunityBlockCollection).UpdateMany(sc,
		bson.M{"community_id": communityID, "blocked_user_email": userEmail, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": now}},
	)
	if err != nil {
		return 0, err
	}
	return r.ModifiedCount, nil
}

// BlockMember records a block and moves the user out of the member set. A permanent
// block removes the user from the community entirely, the other types park the user in
// the blocked set. A previous active block of the same user is superseded.
func (m *mongoDB) BlockMember(ctx context.Context, block *schema.CommunityBlock) (*schema.Community, error) {
	communities := m.collection(schema.CommunityCollection)
	profiles := m.collection(schema.ProfileCollection)
	blocks := m.collection(schema.CommunityBlockCollection)

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		community, err := findCommunity(sc, communities, block.CommunityID)
		if err != nil {
			return nil, err
		}

		if !community.IsAdmin(block.BlockedByAdminEmail) {
			return nil, ErrNotCommunityAdmin
		}

		blocked, err := m.hasActiveBlock(sc, block.CommunityID, block.BlockedUserEmail)
		if err != nil {
			return nil, err
		}
		if !community.IsMember(block.BlockedUserEmail) && !blocked {
			return nil, ErrNotMember
		}

		if _, err := m.deactivateBlocks(sc, block.CommunityID, block.BlockedUserEmail, block.CreatedAt); err != nil {
			return nil, err
		}

		if _, err := blocks.InsertOne(sc, block); err != nil {
			return nil, err
		}

		update := bson.M{}
		if block.BlockType == schema.BlockPermanent {
			update["$pull"] = bson.M{
				"members":         block.BlockedUserEmail,
				"blocked_members": block.BlockedUserEmail,
				"join_requests":   bson.M{"user_email": block.BlockedUserEmail},
			}
		} else {
			update["$pull"] = bson.M{
				"members":       block.BlockedUserEmail,
				"join_requests": bson.M{"user_email": block.BlockedUserEmail},
			}
			update["$addToSet"] = bson.M{"blocked_members": block.BlockedUserEmail}
		}
		if community.IsMember(block.BlockedUserEmail) {
			update["$inc"] = bson.M{"member_count": -1}
		}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		var updated schema.Community
		if err := communities.FindOneAndUpdate(sc, bson.M{"id": block.CommunityID}, update, opts).Decode(&updated); err != nil {
			return nil, err
		}

		if block.BlockType == schema.BlockPermanent {
			if _, err := profiles.UpdateOne(sc, bson.M{"email": block.BlockedUserEmail}, bson.M{
				"$pull": bson.M{"communities": block.CommunityID, "pending_communities": block.CommunityID},
			}); err != nil {
				return nil, err
			}
		}

		return &updated, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*schema.Community), nil
}

// restoreMembership moves a user from the blocked set back to the members
func (m *mongoDB) restoreMembership(sc mongo.SessionContext, communityID, userEmail string) (*schema.Community, error) {
	communities := m.collection(schema.CommunityCollection)

	community, err := findCommunity(sc, communities, communityID)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$pull":     bson.M{"blocked_members": userEmail},
		"$addToSet": bson.M{"members": userEmail},
	}
	if !community.IsMember(userEmail) {
		update["$inc"] = bson.M{"member_count": 1}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated schema.Community
	if err := communities.FindOneAndUpdate(sc, bson.M{"id": communityID}, update, opts).Decode(&updated); err != nil {
		return nil, err
	}

	if _, err := m.collection(schema.ProfileCollection).UpdateOne(sc, bson.M{"email": userEmail}, bson.M{
		"$addToSet": bson.M{"communities": communityID},
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

// UnblockMember ends the active block of a user and restores the membership
func (m *mongoDB) UnblockMember(ctx context.Context, adminEmail, communityID, userEmail string, now time.Time) (*schema.Community, error) {
	communities := m.collection(schema.CommunityCollection)

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		community, err := findCommunity(sc, communities, communityID)
		if err != nil {
			return nil, err
		}

		if !community.IsAdmin(adminEmail) {
			return nil, ErrNotCommunityAdmin
		}

		n, err := m.deactivateBlocks(sc, communityID, userEmail, now)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, ErrNotBlocked
		}

		return m.restoreMembership(sc, communityID, userEmail)
	})
	if err != nil {
		return nil, err
	}

	return result.(*schema.Community), nil
}

// RemoveMember takes a user out of both the member and the blocked sets
func (m *mongoDB) RemoveMember(ctx context.Context, adminEmail, communityID, userEmail string, now time.Time) (*schema.Community, error) {
	communities := m.collection(schema.CommunityCollection)
	profiles := m.collection(schema.ProfileCollection)

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		community, err := findCommunity(sc, communities, communityID)
		if err != nil {
			return nil, err
		}

		if !community.IsAdmin(adminEmail) {
			return nil, ErrNotCommunityAdmin
		}

		isBlocked := false
		for _, e := range community.BlockedMembers {
			if e == userEmail {
				isBlocked = true
			}
		}
		if !community.IsMember(userEmail) && !isBlocked {
			return nil, ErrNotMember
		}

		if _, err := m.deactivateBlocks(sc, communityID, userEmail, now); err != nil {
			return nil, err
		}

		update := bson.M{
			"$pull": bson.M{"members": userEmail, "blocked_members": userEmail},
		}
		if community.IsMember(userEmail) {
			update["$inc"] = bson.M{"member_count": -1}
		}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		var updated schema.Community
		if err := communities.FindOneAndUpdate(sc, bson.M{"id": communityID}, update, opts).Decode(&updated); err != nil {
			return nil, err
		}

		if _, err := profiles.UpdateOne(sc, bson.M{"email": userEmail}, bson.M{
			"$pull": bson.M{"communities": communityID},
		}); err != nil {
			return nil, err
		}

		return &updated, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*schema.Community), nil
}

// GetActiveBlock returns nil without error when the user has no active block
func (m *mongoDB) GetActiveBlock(ctx context.Context, communityID, userEmail string) (*schema.CommunityBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var block schema.CommunityBlock
	err := m.collection(schema.CommunityBlockCollection).FindOne(ctx, bson.M{
		"community_id":       communityID,
		"blocked_user_email": userEmail,
		"is_active":          true,
	}).Decode(&block)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &block, nil
}

func (m *mongoDB) ListActiveBlocks(ctx context.Context, communityID string) ([]schema.CommunityBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := m.collection(schema.CommunityBlockCollection).Find(ctx, bson.M{
		"community_id": communityID,
		"is_active":    true,
	}, opts)
	if err != nil {
		return nil, err
	}

	blocks := make([]schema.CommunityBlock, 0)
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// ExpireBlock ends one expired temporary block and restores the membership. It
// reports false when the block was already inactive.
func (m *mongoDB) ExpireBlock(ctx context.Context, block schema.CommunityBlock, now time.Time) (bool, error) {
	blocks := m.collection(schema.CommunityBlockCollection)

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		r, err := blocks.UpdateOne(sc,
			bson.M{"id": block.ID, "is_active": true},
			bson.M{"$set": bson.M{"is_active": false, "updated_at": now}},
		)
		if err != nil {
			return nil, err
		}
		if r.ModifiedCount == 0 {
			return false, nil
		}

		if _, err := m.restoreMembership(sc, block.CommunityID, block.BlockedUserEmail); err != nil {
			return nil, err
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}

	return result.(bool), nil
}

// ExpireBlocks ends every active temporary block past its end date in one transaction
func (m *mongoDB) ExpireBlocks(ctx context.Context, now time.Time) (int, error) {
	blocks := m.collection(schema.CommunityBlockCollection)

	result, err := m.withTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		cursor, err := blocks.Find(sc, bson.M{
			"block_type": schema.BlockTemporary,
			"is_active":  true,
			"end_date":   bson.M{"$lt": now},
		})
		if err != nil {
			return nil, err
		}

		expired := make([]schema.CommunityBlock, 0)
		if err := cursor.All(sc, &expired); err != nil {
			return nil, err
		}

		for _, b := range expired {
			if _, err := blocks.UpdateOne(sc,
				bson.M{"id": b.ID, "is_active": true},
				bson.M{"$set": bson.M{"is_active": false, "updated_at": now}},
			); err != nil {
				return nil, err
			}

			if _, err := m.restoreMembership(sc, b.CommunityID, b.BlockedUserEmail); err != nil {
				if err == ErrCommunityNotFound {
					continue
				}
				return nil, err
			}
		}

		return len(expired), nil
	})
	if err != nil {
		return 0, err
	}

	count := result.(int)
	if count > 0 {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"count":  count,
		}).Info("expired community blocks")
	}
	return count, nil
}
