package help

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"googlemaps.github.io/maps"

	"github.com/neighborly/neighborly-api/apperr"
	externalMocks "github.com/neighborly/neighborly-api/external/mocks"
	"github.com/neighborly/neighborly-api/mocks"
	"github.com/neighborly/neighborly-api/schema"
	"github.com/neighborly/neighborly-api/score"
	"github.com/neighborly/neighborly-api/store"
)

type LifecycleTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *mocks.MockMongoStore
	notifier  *mocks.MockHelpNotifier
	geo       *externalMocks.MockGeoInfo
	lifecycle *Lifecycle
	now       time.Time
	requester schema.Profile
}

func (s *LifecycleTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockMongoStore(s.ctrl)
	s.notifier = mocks.NewMockHelpNotifier(s.ctrl)
	s.geo = externalMocks.NewMockGeoInfo(s.ctrl)
	s.now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	s.lifecycle = New(s.store, s.notifier, s.geo)
	s.lifecycle.Now = func() time.Time { return s.now }

	s.requester = schema.Profile{ID: "requester", Email: "requester@example.com", Username: "Ann"}
}

func (s *LifecycleTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LifecycleTestSuite) validInput() CreateInput {
	return CreateInput{
		Type:        "General",
		Title:       " Groceries ",
		Description: "Need someone to pick up groceries",
		Location:    &schema.Location{Latitude: 25.033, Longitude: 121.565},
		Address:     "Taipei 101",
		Priority:    "Urgent",
	}
}

func (s *LifecycleTestSuite) TestCreate() {
	s.geo.EXPECT().Get(gomock.Any(), schema.Location{Latitude: 25.033, Longitude: 121.565}).Return([]maps.GeocodingResult{
		{
			AddressComponents: []maps.AddressComponent{
				{LongName: "Xinyi District", Types: []string{"administrative_area_level_2", "political"}},
			},
		},
	}, nil)
	s.store.EXPECT().CreateHelpRequest(gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().HelpRequestCreated(gomock.Any(), gomock.Any()).Return(3, nil)

	help, err := s.lifecycle.Create(context.Background(), s.requester, s.validInput())
	s.NoError(err)
	s.NotEmpty(help.ID)
	s.Equal("Groceries", help.Title)
	s.Equal(schema.PriorityUrgent, help.Priority)
	s.Equal(schema.HelpOpen, help.Status)
	s.Equal("Ann", help.RequesterName)
	s.Equal("Xinyi District", help.Locality)
	s.Equal(s.now, help.CreatedAt)
}

func (s *LifecycleTestSuite) TestCreateSurvivesGeocodeAndNotifyFailures() {
	s.geo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("quota"))
	s.store.EXPECT().CreateHelpRequest(gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().HelpRequestCreated(gomock.Any(), gomock.Any()).Return(0, errors.New("redis down"))

	help, err := s.lifecycle.Create(context.Background(), s.requester, s.validInput())
	s.NoError(err)
	s.Empty(help.Locality)
}

func (s *LifecycleTestSuite) TestCreateWithoutGeocoder() {
	lifecycle := New(s.store, s.notifier, nil)
	s.store.EXPECT().CreateHelpRequest(gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().HelpRequestCreated(gomock.Any(), gomock.Any()).Return(0, nil)

	in := s.validInput()
	in.Priority = ""
	help, err := lifecycle.Create(context.Background(), s.requester, in)
	s.NoError(err)
	s.Equal(schema.PriorityMedium, help.Priority)
}

func (s *LifecycleTestSuite) TestCreateValidation() {
	cases := map[string]func(in *CreateInput){
		"type":        func(in *CreateInput) { in.Type = "" },
		"title":       func(in *CreateInput) { in.Title = "  " },
		"description": func(in *CreateInput) { in.Description = "" },
		"location":    func(in *CreateInput) { in.Location = &schema.Location{Latitude: 91} },
		"address":     func(in *CreateInput) { in.Address = "" },
		"priority":    func(in *CreateInput) { in.Priority = "whenever" },
	}

	for field, mutate := range cases {
		in := s.validInput()
		mutate(&in)
		_, err := s.lifecycle.Create(context.Background(), s.requester, in)

		var v *apperr.ValidationError
		s.True(errors.As(err, &v), field)
		s.Contains(v.Fields, field)
	}

	in := s.validInput()
	in.Location = nil
	_, err := s.lifecycle.Create(context.Background(), s.requester, in)
	s.Equal(apperr.Validation, apperr.KindOf(err))
}

func (s *LifecycleTestSuite) TestRespond() {
	helper := schema.Profile{ID: "helper", Email: "helper@example.com", Phone: "0912"}
	help := &schema.HelpRequest{ID: "h1", RequesterID: "requester", Status: schema.HelpOpen}

	s.store.EXPECT().AddResponse(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, resp *schema.Response) (*schema.HelpRequest, error) {
			s.Equal("h1", resp.RequestID)
			s.Equal("helper", resp.UserID)
			s.Equal("helper@example.com", resp.Username)
			s.Equal(schema.ResponsePending, resp.Status)
			return help, nil
		})
	s.notifier.EXPECT().HelpResponded(gomock.Any(), *help, gomock.Any()).Return(nil)

	resp, err := s.lifecycle.Respond(context.Background(), helper, "h1", " on my way ")
	s.NoError(err)
	s.Equal("on my way", resp.Message)
}

func (s *LifecycleTestSuite) TestRespondStoreRejection() {
	s.store.EXPECT().AddResponse(gomock.Any(), gomock.Any()).Return(nil, store.ErrOwnRequest)

	_, err := s.lifecycle.Respond(context.Background(), s.requester, "h1", "")
	s.Equal(store.ErrOwnRequest, err)
}

func (s *LifecycleTestSuite) TestAcceptResponder() {
	result := &store.AcceptResult{
		Request:    schema.HelpRequest{ID: "h1", Status: schema.HelpInProgress},
		Accepted:   schema.Response{ID: "r1", UserID: "helper"},
		Ledger:     schema.HelpedRequest{RequestID: "h1", XP: score.UrgentXP},
		Responders: []string{"helper", "other"},
	}
	s.store.EXPECT().AcceptResponse(gomock.Any(), "requester", "h1", "r1", s.now).Return(result, nil)
	s.notifier.EXPECT().HelpStatusChanged(gomock.Any(), result.Request, result.Responders).Return(3, nil)

	got, err := s.lifecycle.AcceptResponder(context.Background(), "requester", "h1", "r1")
	s.NoError(err)
	s.Equal(result, got)
}

func (s *LifecycleTestSuite) TestAcceptResponderConflict() {
	s.store.EXPECT().AcceptResponse(gomock.Any(), "requester", "h1", "r1", s.now).Return(nil, store.ErrRequestNotOpen)

	_, err := s.lifecycle.AcceptResponder(context.Background(), "requester", "h1", "r1")
	s.Equal(apperr.StateConflict, apperr.KindOf(err))
}

func (s *LifecycleTestSuite) TestUpdateStatus() {
	result := &store.StatusResult{
		Request:  schema.HelpRequest{ID: "h1", Status: schema.HelpCompleted},
		Previous: schema.HelpInProgress,
	}
	s.store.EXPECT().UpdateHelpStatus(gomock.Any(), "requester", "h1", schema.HelpCompleted, s.now).Return(result, nil)
	s.notifier.EXPECT().HelpStatusChanged(gomock.Any(), result.Request, gomock.Any()).Return(1, nil)

	got, err := s.lifecycle.UpdateStatus(context.Background(), "requester", "h1", "completed")
	s.NoError(err)
	s.Equal(schema.HelpCompleted, got.Request.Status)

	_, err = s.lifecycle.UpdateStatus(context.Background(), "requester", "h1", "done")
	s.Equal(apperr.Validation, apperr.KindOf(err))
}

func (s *LifecycleTestSuite) TestGetAttachesResponses() {
	s.store.EXPECT().GetHelpRequest(gomock.Any(), "h1").Return(&schema.HelpRequest{ID: "h1"}, nil)
	s.store.EXPECT().ListResponses(gomock.Any(), "h1").Return([]schema.Response{{ID: "r1", RequestID: "h1"}}, nil)

	help, err := s.lifecycle.Get(context.Background(), "h1")
	s.NoError(err)
	s.Len(help.Responses, 1)
}

func (s *LifecycleTestSuite) TestListAttachesResponses() {
	filter := schema.HelpRequestFilter{Status: schema.HelpOpen}
	s.store.EXPECT().ListHelpRequests(gomock.Any(), filter).Return([]schema.HelpRequest{{ID: "h1"}, {ID: "h2"}}, nil)
	s.store.EXPECT().ListResponses(gomock.Any(), "h1", "h2").Return([]schema.Response{
		{ID: "r1", RequestID: "h2"},
		{ID: "r2", RequestID: "h2"},
	}, nil)

	helps, err := s.lifecycle.List(context.Background(), filter)
	s.NoError(err)
	s.Len(helps[0].Responses, 0)
	s.Len(helps[1].Responses, 2)

	_, err = s.lifecycle.List(context.Background(), schema.HelpRequestFilter{Status: "archived"})
	s.Equal(apperr.Validation, apperr.KindOf(err))
}

func (s *LifecycleTestSuite) TestNearby() {
	center := schema.Location{Latitude: 25.0330, Longitude: 121.5654}
	s.store.EXPECT().ListHelpRequests(gomock.Any(), schema.HelpRequestFilter{Status: schema.HelpOpen}).Return([]schema.HelpRequest{
		{ID: "far", Location: schema.Location{Latitude: 24.1477, Longitude: 120.6736}},
		{ID: "near", Location: schema.Location{Latitude: 25.0400, Longitude: 121.5654}},
		{ID: "here", Location: center},
	}, nil)

	nearby, err := s.lifecycle.Nearby(context.Background(), center, 0, "")
	s.NoError(err)
	s.Len(nearby, 2)
	s.Equal("here", nearby[0].ID)
	s.Equal(0.0, nearby[0].DistanceKM)
	s.Equal("near", nearby[1].ID)
	s.Equal(0.78, nearby[1].DistanceKM)
}

func (s *LifecycleTestSuite) TestXP() {
	s.store.EXPECT().GetProfile(gomock.Any(), "helper").Return(&schema.Profile{ID: "helper", AccumulateXP: 1200, Level: 2}, nil)

	xp, err := s.lifecycle.XP(context.Background(), "helper")
	s.NoError(err)
	s.Equal(2, xp.Level)
	s.Equal(3500, xp.NextLevelXP)
}

func (s *LifecycleTestSuite) TestBadges() {
	s.store.EXPECT().GetProfile(gomock.Any(), "helper").Return(&schema.Profile{ID: "helper", PostCount: 4}, nil)
	s.store.EXPECT().ListHelpProvided(gomock.Any(), "helper").Return([]schema.HelpedRequest{
		{Status: schema.HelpCompleted, Request: schema.HelpSnapshot{Type: score.BronzeBadgeType}},
		{Status: schema.HelpInProgress, Request: schema.HelpSnapshot{Type: score.GoldBadgeType}},
		{Status: schema.HelpCancelled, Request: schema.HelpSnapshot{Type: score.GoldBadgeType}},
		{Status: schema.HelpCompleted, Request: schema.HelpSnapshot{Type: "Transport"}},
	}, nil)

	b, err := s.lifecycle.Badges(context.Background(), "helper")
	s.NoError(err)
	s.Equal(score.Badges{Bronze: 1, Gold: 1, Other: 1, TotalHelps: 3, Posts: 4}, *b)
}

func (s *LifecycleTestSuite) TestHistory() {
	s.store.EXPECT().ListHelpProvided(gomock.Any(), "u").Return([]schema.HelpedRequest{{RequestID: "a"}}, nil)
	s.store.EXPECT().ListHelpReceived(gomock.Any(), "u").Return([]schema.HelpedRequest{}, nil)

	h, err := s.lifecycle.History(context.Background(), "u")
	s.NoError(err)
	s.Len(h.Provided, 1)
	s.Len(h.Received, 0)
}

func TestLifecycle(t *testing.T) {
	suite.Run(t, new(LifecycleTestSuite))
}
