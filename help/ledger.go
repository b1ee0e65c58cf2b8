package help

import (
	"context"

	"github.com/neighborly/neighborly-api/schema"
	"github.com/neighborly/neighborly-api/score"
)

// XPSummary is the experience state of a user
type XPSummary struct {
	UserID       string `json:"user_id"`
	AccumulateXP int    `json:"accumulate_xp"`
	Level        int    `json:"level"`
	NextLevelXP  int    `json:"next_level_xp"`
}

// History is the ledger seen from one user
type History struct {
	Provided []schema.HelpedRequest `json:"provided"`
	Received []schema.HelpedRequest `json:"received"`
}

func (l *Lifecycle) XP(ctx context.Context, userID string) (*XPSummary, error) {
	p, err := l.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &XPSummary{
		UserID:       p.ID,
		AccumulateXP: p.AccumulateXP,
		Level:        score.LevelFor(p.AccumulateXP),
		NextLevelXP:  score.NextLevelXP(p.AccumulateXP),
	}, nil
}

func (l *Lifecycle) History(ctx context.Context, userID string) (*History, error) {
	provided, err := l.store.ListHelpProvided(ctx, userID)
	if err != nil {
		return nil, err
	}

	received, err := l.store.ListHelpReceived(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &History{Provided: provided, Received: received}, nil
}

// Badges are computed from the ledger on every call
func (l *Lifecycle) Badges(ctx context.Context, userID string) (*score.Badges, error) {
	p, err := l.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := l.store.ListHelpProvided(ctx, userID)
	if err != nil {
		return nil, err
	}

	b := score.BadgesFor(entries, p.PostCount)
	return &b, nil
}
