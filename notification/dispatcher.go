package notification

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/neighborly/neighborly-api/schema"
	"github.com/neighborly/neighborly-api/store"
	"github.com/neighborly/neighborly-api/utils"
)

const (
	DefaultRetention = 7 * 24 * time.Hour

	logPrefix = "notification"
)

// Dispatcher turns lifecycle events into in-app notification records and pushes.
// Every recipient is subject to the daily cap. Push failures never fail a dispatch.
type Dispatcher struct {
	store     store.MongoStore
	limiter   Limiter
	pusher    Pusher
	retention time.Duration

	Now func() time.Time
}

// NewDispatcher builds a dispatcher. A nil limiter means no daily cap and a nil pusher
// stores records without pushing.
func NewDispatcher(s store.MongoStore, limiter Limiter, pusher Pusher, retention time.Duration) *Dispatcher {
	if retention <= 0 {
		retention = DefaultRetention
	}
	if limiter == nil {
		limiter = unlimited{}
	}
	if pusher == nil {
		pusher = noPush{}
	}
	return &Dispatcher{
		store:     s,
		limiter:   limiter,
		pusher:    pusher,
		retention: retention,
		Now:       time.Now,
	}
}

// recipient is a notification target with the community the event reached it through
type recipient struct {
	profile       schema.Profile
	communityID   string
	communityName string
}

// allowed keeps the recipients still within their daily cap. A limiter failure lets
// the recipient through.
func (d *Dispatcher) allowed(ctx context.Context, recipients []recipient, now time.Time) []recipient {
	result := make([]recipient, 0, len(recipients))
	for _, r := range recipients {
		ok, err := d.limiter.Allow(ctx, r.profile.ID, now)
		if err != nil {
			log.WithField("prefix", logPrefix).WithError(err).WithField("user_id", r.profile.ID).Warn("daily limit check")
			ok = true
		}
		if !ok {
			log.WithField("prefix", logPrefix).WithField("user_id", r.profile.ID).Debug("daily notification limit reached")
			continue
		}
		result = append(result, r)
	}
	return result
}

func (d *Dispatcher) newNotification(r recipient, t schema.NotificationType, title, message string, help *schema.HelpRequest, now time.Time) schema.Notification {
	n := schema.Notification{
		ID:             uuid.New().String(),
		RecipientID:    r.profile.ID,
		RecipientEmail: r.profile.Email,
		Type:           t,
		Title:          title,
		Message:        message,
		CommunityID:    r.communityID,
		CommunityName:  r.communityName,
		IsRead:         false,
		CreatedAt:      now,
		ExpiresAt:      now.Add(d.retention),
	}
	if help != nil {
		snapshot := help.Snapshot()
		n.HelpRequestID = help.ID
		n.Request = &snapshot
	}
	return n
}

// deliver stores the records and hands one push over for all of their recipients
func (d *Dispatcher) deliver(ctx context.Context, notifications []schema.Notification, push PushMessage) (int, error) {
	if len(notifications) == 0 {
		return 0, nil
	}

	if err := d.store.InsertNotifications(ctx, notifications); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Error("insert notifications")
		for _, n := range notifications {
			if err := d.limiter.Release(ctx, n.RecipientID, n.CreatedAt); err != nil {
				log.WithField("prefix", logPrefix).WithError(err).WithField("user_id", n.RecipientID).Warn("release daily limit slot")
			}
		}
		return 0, err
	}

	push.UserIDs = make([]string, 0, len(notifications))
	for _, n := range notifications {
		push.UserIDs = append(push.UserIDs, n.RecipientID)
	}

	if err := d.pusher.Push(ctx, push); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).WithField("type", push.Data["type"]).Warn("push delivery")
	}

	return len(notifications), nil
}

func priorityIcon(p schema.Priority) string {
	switch p {
	case schema.PriorityEmergency:
		return "🚨 "
	case schema.PriorityUrgent:
		return "⚠️ "
	}
	return "📢 "
}

// HelpRequestCreated notifies every member of the communities the requester belongs
// to, except the requester. A member reached through several communities gets one record.
func (d *Dispatcher) HelpRequestCreated(ctx context.Context, help schema.HelpRequest) (int, error) {
	now := d.Now()

	requester, err := d.store.GetProfile(ctx, help.RequesterID)
	if err != nil {
		if err == store.ErrProfileNotFound {
			return 0, nil
		}
		return 0, err
	}

	communities, err := d.store.GetCommunities(ctx, requester.Communities)
	if err != nil {
		return 0, err
	}

	communityOf := make(map[string]schema.Community)
	emails := make([]string, 0)
	for _, c := range communities {
		if !c.IsMember(requester.Email) {
			continue
		}
		for _, email := range c.Members {
			if email == requester.Email {
				continue
			}
			if _, ok := communityOf[email]; ok {
				continue
			}
			communityOf[email] = c
			emails = append(emails, email)
		}
	}

	if len(emails) == 0 {
		return 0, nil
	}

	profiles, err := d.store.GetProfilesByEmails(ctx, emails)
	if err != nil {
		return 0, err
	}

	recipients := make([]recipient, 0, len(profiles))
	for _, p := range profiles {
		if p.ID == help.RequesterID {
			continue
		}
		c := communityOf[p.Email]
		recipients = append(recipients, recipient{profile: p, communityID: c.ID, communityName: c.Name})
	}

	params := map[string]interface{}{
		"Icon":        priorityIcon(help.Priority),
		"Title":       help.Title,
		"LowerTitle":  strings.ToLower(help.Title),
		"Name":        help.RequesterName,
		"Description": help.Description,
		"Location":    help.Address,
	}

	notifications := make([]schema.Notification, 0, len(recipients))
	for _, r := range d.allowed(ctx, recipients, now) {
		lang := languageOf(r.profile.Language)
		notifications = append(notifications, d.newNotification(r, schema.NotificationHelpRequest,
			utils.Localize(lang, msgHelpRequestTitle, params),
			utils.Localize(lang, msgHelpRequestMessage, params),
			&help, now))
	}

	return d.deliver(ctx, notifications, PushMessage{
		TitleID: msgPushRequestTitle,
		BodyID:  msgPushRequestBody,
		Params:  params,
		Data: map[string]string{
			"type":          PushHelpRequestCreated,
			"helpRequestId": help.ID,
		},
	})
}

// HelpResponded notifies the requester only
func (d *Dispatcher) HelpResponded(ctx context.Context, help schema.HelpRequest, resp schema.Response) error {
	now := d.Now()

	requester, err := d.store.GetProfile(ctx, help.RequesterID)
	if err != nil {
		if err == store.ErrProfileNotFound {
			return nil
		}
		return err
	}

	params := map[string]interface{}{
		"Name":  resp.Username,
		"Title": help.Title,
	}

	owner := recipient{
		profile:       *requester,
		communityID:   schema.ResponseCommunityID,
		communityName: schema.ResponseCommunityName,
	}

	notifications := make([]schema.Notification, 0, 1)
	for _, r := range d.allowed(ctx, []recipient{owner}, now) {
		lang := languageOf(r.profile.Language)
		notifications = append(notifications, d.newNotification(r, schema.NotificationHelpResponse,
			utils.Localize(lang, msgHelpResponseTitle, params),
			utils.Localize(lang, msgHelpResponseMessage, params),
			&help, now))
	}

	_, err = d.deliver(ctx, notifications, PushMessage{
		TitleID: msgPushResponseTitle,
		BodyID:  msgPushResponseBody,
		Params:  params,
		Data: map[string]string{
			"type":          PushHelpRequestResponse,
			"helpRequestId": help.ID,
			"responseId":    resp.ID,
		},
	})
	return err
}

func statusMessageIDs(status schema.HelpStatus) (title, message, pushTitle, pushBody string) {
	switch status {
	case schema.HelpCompleted:
		return msgHelpCompletedTitle, msgHelpCompletedMessage, msgPushCompletedTitle, msgPushCompletedBody
	case schema.HelpCancelled:
		return msgHelpCancelledTitle, msgHelpCancelledMessage, msgPushCancelledTitle, msgPushCancelledBody
	}
	return msgHelpUpdatedTitle, msgHelpUpdatedMessage, msgPushUpdatedTitle, msgPushUpdatedBody
}

// HelpStatusChanged notifies the requester and everyone who responded to the request
func (d *Dispatcher) HelpStatusChanged(ctx context.Context, help schema.HelpRequest, responders []string) (int, error) {
	now := d.Now()

	ids := make([]string, 0, len(responders)+1)
	seen := make(map[string]bool)
	candidates := append([]string{help.RequesterID}, responders...)
	for _, id := range candidates {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	profiles, err := d.store.GetProfilesByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	recipients := make([]recipient, 0, len(profiles))
	for _, p := range profiles {
		recipients = append(recipients, recipient{
			profile:       p,
			communityID:   schema.StatusCommunityID,
			communityName: schema.StatusCommunityName,
		})
	}

	params := map[string]interface{}{
		"Title":  help.Title,
		"Name":   help.RequesterName,
		"Status": string(help.Status),
	}
	titleID, messageID, pushTitleID, pushBodyID := statusMessageIDs(help.Status)

	notifications := make([]schema.Notification, 0, len(recipients))
	for _, r := range d.allowed(ctx, recipients, now) {
		lang := languageOf(r.profile.Language)
		notifications = append(notifications, d.newNotification(r, schema.NotificationStatusUpdate,
			utils.Localize(lang, titleID, params),
			utils.Localize(lang, messageID, params),
			&help, now))
	}

	return d.deliver(ctx, notifications, PushMessage{
		TitleID: pushTitleID,
		BodyID:  pushBodyID,
		Params:  params,
		Data: map[string]string{
			"type":          PushHelpRequestStatus,
			"helpRequestId": help.ID,
			"status":        string(help.Status),
		},
	})
}

// CommunityAdminAction tells the other admins of a community about a block, unblock
// or removal done by one of them
func (d *Dispatcher) CommunityAdminAction(ctx context.Context, community schema.Community, adminEmail, userEmail, action string) (int, error) {
	now := d.Now()

	emails := make([]string, 0, len(community.Admins))
	for _, a := range community.Admins {
		if a != adminEmail {
			emails = append(emails, a)
		}
	}
	if len(emails) == 0 {
		return 0, nil
	}

	profiles, err := d.store.GetProfilesByEmails(ctx, emails)
	if err != nil {
		return 0, err
	}

	recipients := make([]recipient, 0, len(profiles))
	for _, p := range profiles {
		recipients = append(recipients, recipient{profile: p, communityID: community.ID, communityName: community.Name})
	}

	params := map[string]interface{}{
		"Community": community.Name,
		"Admin":     adminEmail,
		"Action":    action,
		"User":      userEmail,
	}

	notifications := make([]schema.Notification, 0, len(recipients))
	for _, r := range d.allowed(ctx, recipients, now) {
		lang := languageOf(r.profile.Language)
		notifications = append(notifications, d.newNotification(r, schema.NotificationCommunityAdmin,
			utils.Localize(lang, msgCommunityAdminTitle, params),
			utils.Localize(lang, msgCommunityAdminMessage, params),
			nil, now))
	}

	return d.deliver(ctx, notifications, PushMessage{
		TitleID: msgPushAdminTitle,
		BodyID:  msgPushAdminBody,
		Params:  params,
		Data: map[string]string{
			"type":        PushCommunityAdmin,
			"communityId": community.ID,
		},
	})
}

// CleanupExpired is the retention sweep
func (d *Dispatcher) CleanupExpired(ctx context.Context) (int64, error) {
	n, err := d.store.DeleteExpiredNotifications(ctx, d.Now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.WithField("prefix", logPrefix).WithField("count", n).Info("expired notifications removed")
	}
	return n, nil
}
