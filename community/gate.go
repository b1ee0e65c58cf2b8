package community

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/neighborly/neighborly-api/apperr"
	"github.com/neighborly/neighborly-api/schema"
	"github.com/neighborly/neighborly-api/store"
)

const (
	logPrefix = "community"

	ActionBlocked   = "blocked"
	ActionUnblocked = "unblocked"
	ActionRemoved   = "removed"
)

//go:generate mockgen -destination=../mocks/community.go -package=mocks -mock_names=Notifier=MockCommunityNotifier github.com/neighborly/neighborly-api/community Notifier

// Notifier tells the other admins of a community about an admin action
type Notifier interface {
	CommunityAdminAction(ctx context.Context, community schema.Community, adminEmail, userEmail, action string) (int, error)
}

// Gate decides whether a user may act in a community and manages community blocks
type Gate struct {
	store    store.MongoStore
	notifier Notifier

	Now func() time.Time
}

func New(s store.MongoStore, notifier Notifier) *Gate {
	return &Gate{
		store:    s,
		notifier: notifier,
		Now:      time.Now,
	}
}

// BlockStatus is the answer of IsBlocked
type BlockStatus struct {
	Blocked bool                   `json:"is_blocked"`
	Block   *schema.CommunityBlock `json:"block_info,omitempty"`
}

// IsBlocked checks the active block of a user. An expired temporary block is ended
// on the spot and the user is treated as unblocked.
func (g *Gate) IsBlocked(ctx context.Context, userEmail, communityID string) (*BlockStatus, error) {
	block, err := g.store.GetActiveBlock(ctx, communityID, userEmail)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return &BlockStatus{Blocked: false}, nil
	}

	now := g.Now()
	if block.Expired(now) {
		if _, err := g.store.ExpireBlock(ctx, *block, now); err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{
			"prefix":       logPrefix,
			"community_id": communityID,
			"user":         userEmail,
		}).Info("temporary block expired on read")
		return &BlockStatus{Blocked: false}, nil
	}

	return &BlockStatus{Blocked: true, Block: block}, nil
}

// BlockInput describes a block action
type BlockInput struct {
	BlockType    string `json:"block_type"`
	Duration     string `json:"duration"`
	Reason       string `json:"reason"`
	CustomReason string `json:"custom_reason"`
}

// Block records a block and moves the user out of the community members
func (g *Gate) Block(ctx context.Context, adminEmail, communityID, userEmail string, in BlockInput) (*schema.CommunityBlock, error) {
	now := g.Now()
	blockType := schema.BlockType(strings.ToLower(strings.TrimSpace(in.BlockType)))

	fields := apperr.Fields{}
	if !blockType.Valid() {
		fields.Add("block_type", "must be one of temporary, indefinite, permanent")
	}
	if strings.TrimSpace(in.Reason) == "" {
		fields.Add("reason", "required")
	}
	if userEmail == adminEmail {
		fields.Add("user_email", "admins cannot block themselves")
	}

	var endDate *time.Time
	duration := ""
	if blockType == schema.BlockTemporary {
		end, err := EndDate(now, in.Duration)
		if err != nil {
			fields.Add("duration", err.Error())
		} else {
			endDate = &end
			duration = strings.TrimSpace(in.Duration)
		}
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	block := &schema.CommunityBlock{
		ID:                  uuid.New().String(),
		CommunityID:         communityID,
		BlockedUserEmail:    userEmail,
		BlockedByAdminEmail: adminEmail,
		BlockType:           blockType,
		Duration:            duration,
		StartDate:           now,
		EndDate:             endDate,
		Reason:              strings.TrimSpace(in.Reason),
		CustomReason:        strings.TrimSpace(in.CustomReason),
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	community, err := g.store.BlockMember(ctx, block)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix":       logPrefix,
		"community_id": communityID,
		"user":         userEmail,
		"block_type":   blockType,
	}).Info("member blocked")

	g.notifyAdmins(ctx, *community, adminEmail, userEmail, ActionBlocked)
	return block, nil
}

// Unblock ends the active block of a user and makes them a member again
func (g *Gate) Unblock(ctx context.Context, adminEmail, communityID, userEmail string) (*schema.Community, error) {
	community, err := g.store.UnblockMember(ctx, adminEmail, communityID, userEmail, g.Now())
	if err != nil {
		return nil, err
	}

	g.notifyAdmins(ctx, *community, adminEmail, userEmail, ActionUnblocked)
	return community, nil
}

// Remove takes a user out of the community without leaving a block behind
func (g *Gate) Remove(ctx context.Context, adminEmail, communityID, userEmail string) (*schema.Community, error) {
	community, err := g.store.RemoveMember(ctx, adminEmail, communityID, userEmail, g.Now())
	if err != nil {
		return nil, err
	}

	g.notifyAdmins(ctx, *community, adminEmail, userEmail, ActionRemoved)
	return community, nil
}

// ListBlocks returns the active blocks of a community to one of its admins
func (g *Gate) ListBlocks(ctx context.Context, adminEmail, communityID string) ([]schema.CommunityBlock, error) {
	community, err := g.store.GetCommunity(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if !community.IsAdmin(adminEmail) {
		return nil, store.ErrNotCommunityAdmin
	}

	return g.store.ListActiveBlocks(ctx, communityID)
}

// ProcessExpiredBlocks is the sweep ending every temporary block past its end date
func (g *Gate) ProcessExpiredBlocks(ctx context.Context) (int, error) {
	return g.store.ExpireBlocks(ctx, g.Now())
}

func (g *Gate) notifyAdmins(ctx context.Context, community schema.Community, adminEmail, userEmail, action string) {
	if _, err := g.notifier.CommunityAdminAction(ctx, community, adminEmail, userEmail, action); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).WithField("action", action).Error("notify community admins")
	}
}
