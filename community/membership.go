package community

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/neighborly/neighborly-api/schema"
	"github.com/neighborly/neighborly-api/store"
)

// RequestJoin asks the admins of a community to let the user in
func (g *Gate) RequestJoin(ctx context.Context, user schema.Profile, communityID, message string) error {
	status, err := g.IsBlocked(ctx, user.Email, communityID)
	if err != nil {
		return err
	}
	if status.Blocked {
		return store.ErrBlockedFromCommunity
	}

	return g.store.RequestJoin(ctx, communityID, schema.JoinRequest{
		UserID:      user.ID,
		UserEmail:   user.Email,
		Username:    user.DisplayName(),
		Message:     strings.TrimSpace(message),
		RequestedAt: g.Now(),
	})
}

func (g *Gate) ApproveJoin(ctx context.Context, adminEmail, communityID, userEmail string) error {
	if err := g.store.ApproveJoin(ctx, adminEmail, communityID, userEmail); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":       logPrefix,
		"community_id": communityID,
		"user":         userEmail,
	}).Info("join request approved")
	return nil
}

func (g *Gate) RejectJoin(ctx context.Context, adminEmail, communityID, userEmail string) error {
	return g.store.RejectJoin(ctx, adminEmail, communityID, userEmail)
}

func (g *Gate) Leave(ctx context.Context, communityID, userEmail string) error {
	return g.store.LeaveCommunity(ctx, communityID, userEmail)
}
