package notification

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/neighborly/neighborly-api/external/fcm"
	"github.com/neighborly/neighborly-api/store"
	"github.com/neighborly/neighborly-api/utils"
)

const (
	PushHelpRequestCreated  = "help_request_created"
	PushHelpRequestResponse = "help_request_response"
	PushHelpRequestStatus   = "help_request_status"
	PushCommunityAdmin      = "community_admin"

	pushLogPrefix = "push"
)

// PushMessage describes one push to a set of users. Texts are rendered per
// recipient language at delivery time.
type PushMessage struct {
	UserIDs []string               `json:"user_ids"`
	TitleID string                 `json:"title_id"`
	BodyID  string                 `json:"body_id"`
	Params  map[string]interface{} `json:"params"`
	Data    map[string]string      `json:"data"`
}

// Pusher hands a push over for delivery
type Pusher interface {
	Push(ctx context.Context, msg PushMessage) error
}

type noPush struct{}

func (noPush) Push(context.Context, PushMessage) error { return nil }

// Messenger is the multicast push provider
type Messenger interface {
	SendMulticast(ctx context.Context, tokens []string, msg fcm.Message) (*fcm.Result, error)
}

// PushService resolves device tokens, sends one multicast per language and prunes
// the tokens the provider rejected.
type PushService struct {
	store     store.MongoStore
	messenger Messenger
}

func NewPushService(s store.MongoStore, messenger Messenger) *PushService {
	return &PushService{store: s, messenger: messenger}
}

func (p *PushService) Push(ctx context.Context, msg PushMessage) error {
	if len(msg.UserIDs) == 0 {
		return nil
	}

	profiles, err := p.store.GetProfilesByIDs(ctx, msg.UserIDs)
	if err != nil {
		return err
	}

	tokensByLang := make(map[string][]string)
	for _, profile := range profiles {
		if len(profile.FCMTokens) == 0 {
			continue
		}
		lang := languageOf(profile.Language)
		tokensByLang[lang] = append(tokensByLang[lang], profile.FCMTokens...)
	}

	invalid := make([]string, 0)
	var lastErr error
	for lang, tokens := range tokensByLang {
		result, err := p.messenger.SendMulticast(ctx, tokens, fcm.Message{
			Title: utils.Localize(lang, msg.TitleID, msg.Params),
			Body:  utils.Localize(lang, msg.BodyID, msg.Params),
			Data:  msg.Data,
		})
		if result != nil {
			invalid = append(invalid, result.InvalidTokens...)
		}
		if err != nil {
			lastErr = err
		}
	}

	if len(invalid) > 0 {
		n, err := p.store.PruneFCMTokens(ctx, invalid)
		if err != nil {
			log.WithField("prefix", pushLogPrefix).WithError(err).Error("prune fcm tokens")
		} else {
			log.WithFields(log.Fields{
				"prefix":   pushLogPrefix,
				"tokens":   len(invalid),
				"profiles": n,
			}).Info("pruned invalid fcm tokens")
		}
	}

	return lastErr
}

func languageOf(lang string) string {
	if lang == "" {
		return "en"
	}
	return lang
}
