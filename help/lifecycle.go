package help

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/neighborly/neighborly-api/apperr"
	"github.com/neighborly/neighborly-api/external/geoinfo"
	"github.com/neighborly/neighborly-api/schema"
	"github.com/neighborly/neighborly-api/score"
	"github.com/neighborly/neighborly-api/store"
	"github.com/neighborly/neighborly-api/utils"
)

const (
	logPrefix = "help"

	DefaultNearbyRadiusKM = 10.0
)

//go:generate mockgen -destination=../mocks/help.go -package=mocks -mock_names=Notifier=MockHelpNotifier github.com/neighborly/neighborly-api/help Notifier

// Notifier fans lifecycle transitions out to the people they concern
type Notifier interface {
	HelpRequestCreated(ctx context.Context, help schema.HelpRequest) (int, error)
	HelpResponded(ctx context.Context, help schema.HelpRequest, resp schema.Response) error
	HelpStatusChanged(ctx context.Context, help schema.HelpRequest, responders []string) (int, error)
}

// Lifecycle drives help requests through their states. Every transition commits in
// one store transaction and its notifications are sent after the commit, best effort.
type Lifecycle struct {
	store    store.MongoStore
	notifier Notifier
	geo      geoinfo.GeoInfo

	Now func() time.Time
}

// New returns a Lifecycle. geo may be nil, requests are then stored without a locality.
func New(s store.MongoStore, notifier Notifier, geo geoinfo.GeoInfo) *Lifecycle {
	return &Lifecycle{
		store:    s,
		notifier: notifier,
		geo:      geo,
		Now:      time.Now,
	}
}

// CreateInput is the body of a new help request
type CreateInput struct {
	Type        string           `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Location    *schema.Location `json:"location"`
	Address     string           `json:"address"`
	Priority    string           `json:"priority"`
	Phone       string           `json:"phone"`
}

func (in CreateInput) validate() (schema.Priority, error) {
	fields := apperr.Fields{}
	if strings.TrimSpace(in.Type) == "" {
		fields.Add("type", "required")
	}
	if strings.TrimSpace(in.Title) == "" {
		fields.Add("title", "required")
	}
	if strings.TrimSpace(in.Description) == "" {
		fields.Add("description", "required")
	}
	if in.Location == nil {
		fields.Add("location", "required")
	} else if !in.Location.Valid() {
		fields.Add("location", "out of range")
	}
	if strings.TrimSpace(in.Address) == "" {
		fields.Add("address", "required")
	}

	priority, ok := schema.ParsePriority(in.Priority)
	if !ok {
		fields.Add("priority", "must be one of low, medium, high, urgent, emergency")
	}

	return priority, fields.Err()
}

func (l *Lifecycle) locality(ctx context.Context, loc schema.Location) string {
	if l.geo == nil {
		return ""
	}

	results, err := l.geo.Get(ctx, loc)
	if err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Warn("reverse geocode help location")
		return ""
	}
	return geoinfo.Locality(results)
}

// Create posts a new open request and notifies the requester's communities
func (l *Lifecycle) Create(ctx context.Context, requester schema.Profile, in CreateInput) (*schema.HelpRequest, error) {
	priority, err := in.validate()
	if err != nil {
		return nil, err
	}

	now := l.Now()
	help := &schema.HelpRequest{
		ID:             uuid.New().String(),
		RequesterID:    requester.ID,
		RequesterEmail: requester.Email,
		RequesterName:  requester.DisplayName(),
		Type:           strings.TrimSpace(in.Type),
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		Location:       *in.Location,
		Address:        strings.TrimSpace(in.Address),
		Locality:       l.locality(ctx, *in.Location),
		Priority:       priority,
		Phone:          in.Phone,
		Status:         schema.HelpOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := l.store.CreateHelpRequest(ctx, help); err != nil {
		return nil, err
	}

	count, err := l.notifier.HelpRequestCreated(ctx, *help)
	if err != nil {
		log.WithField("prefix", logPrefix).WithError(err).WithField("help_id", help.ID).Error("notify help request created")
	} else {
		log.WithFields(log.Fields{
			"prefix":     logPrefix,
			"help_id":    help.ID,
			"recipients": count,
		}).Info("help request created")
	}

	return help, nil
}

// Respond offers the responder's help on an open request and notifies its owner
func (l *Lifecycle) Respond(ctx context.Context, responder schema.Profile, requestID, message string) (*schema.Response, error) {
	resp := &schema.Response{
		ID:        uuid.New().String(),
		RequestID: requestID,
		UserID:    responder.ID,
		Username:  responder.DisplayName(),
		Email:     responder.Email,
		Phone:     responder.Phone,
		Message:   strings.TrimSpace(message),
		Status:    schema.ResponsePending,
		CreatedAt: l.Now(),
	}

	help, err := l.store.AddResponse(ctx, resp)
	if err != nil {
		return nil, err
	}

	if err := l.notifier.HelpResponded(ctx, *help, *resp); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).WithField("help_id", help.ID).Error("notify help response")
	}

	return resp, nil
}

// AcceptResponder accepts one response of an open request owned by ownerID
func (l *Lifecycle) AcceptResponder(ctx context.Context, ownerID, requestID, responseID string) (*store.AcceptResult, error) {
	result, err := l.store.AcceptResponse(ctx, ownerID, requestID, responseID, l.Now())
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"help_id": requestID,
		"helper":  result.Accepted.UserID,
		"xp":      result.Ledger.XP,
	}).Info("responder accepted")

	if _, err := l.notifier.HelpStatusChanged(ctx, result.Request, result.Responders); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).WithField("help_id", requestID).Error("notify help accepted")
	}

	return result, nil
}

// UpdateStatus applies an owner status change
func (l *Lifecycle) UpdateStatus(ctx context.Context, ownerID, requestID, status string) (*store.StatusResult, error) {
	s := schema.HelpStatus(strings.TrimSpace(status))
	if !s.Valid() {
		return nil, apperr.Invalid("status", "must be one of open, in_progress, completed, cancelled")
	}

	result, err := l.store.UpdateHelpStatus(ctx, ownerID, requestID, s, l.Now())
	if err != nil {
		return nil, err
	}

	if _, err := l.notifier.HelpStatusChanged(ctx, result.Request, result.Responders); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).WithField("help_id", requestID).Error("notify help status")
	}

	return result, nil
}

// Delete removes a request owned by ownerID with its responses
func (l *Lifecycle) Delete(ctx context.Context, ownerID, requestID string) error {
	help, err := l.store.DeleteHelpRequest(ctx, ownerID, requestID)
	if err != nil {
		return err
	}

	log.WithField("prefix", logPrefix).WithField("help_id", help.ID).Info("help request deleted")
	return nil
}

// Get returns a request with its responses
func (l *Lifecycle) Get(ctx context.Context, requestID string) (*schema.HelpRequest, error) {
	help, err := l.store.GetHelpRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	responses, err := l.store.ListResponses(ctx, requestID)
	if err != nil {
		return nil, err
	}
	help.Responses = responses

	return help, nil
}

// List returns requests newest first with their responses attached
func (l *Lifecycle) List(ctx context.Context, filter schema.HelpRequestFilter) ([]schema.HelpRequest, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperr.Invalid("status", "unknown status")
	}

	helps, err := l.store.ListHelpRequests(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := l.attachResponses(ctx, helps); err != nil {
		return nil, err
	}
	return helps, nil
}

func (l *Lifecycle) attachResponses(ctx context.Context, helps []schema.HelpRequest) error {
	if len(helps) == 0 {
		return nil
	}

	ids := make([]string, 0, len(helps))
	for _, h := range helps {
		ids = append(ids, h.ID)
	}

	responses, err := l.store.ListResponses(ctx, ids...)
	if err != nil {
		return err
	}

	byRequest := make(map[string][]schema.Response)
	for _, r := range responses {
		byRequest[r.RequestID] = append(byRequest[r.RequestID], r)
	}
	for i := range helps {
		helps[i].Responses = byRequest[helps[i].ID]
	}
	return nil
}

// NearbyHelp is a request with its distance from the searched point
type NearbyHelp struct {
	schema.HelpRequest
	DistanceKM float64 `json:"distance_km"`
}

// Nearby scans the requests of a status and keeps those within radiusKM of center,
// nearest first. The status defaults to open and the radius to 10 km.
func (l *Lifecycle) Nearby(ctx context.Context, center schema.Location, radiusKM float64, status schema.HelpStatus) ([]NearbyHelp, error) {
	if !center.Valid() {
		return nil, apperr.Invalid("location", "out of range")
	}
	if radiusKM <= 0 {
		radiusKM = DefaultNearbyRadiusKM
	}
	if status == "" {
		status = schema.HelpOpen
	}
	if !status.Valid() {
		return nil, apperr.Invalid("status", "unknown status")
	}

	helps, err := l.store.ListHelpRequests(ctx, schema.HelpRequestFilter{Status: status})
	if err != nil {
		return nil, err
	}

	nearby := make([]NearbyHelp, 0)
	for _, h := range helps {
		d := utils.DistanceKM(center, h.Location)
		if d <= radiusKM {
			nearby = append(nearby, NearbyHelp{HelpRequest: h, DistanceKM: score.Round2(d)})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKM < nearby[j].DistanceKM
	})

	return nearby, nil
}
