package moderation

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/neighborly/neighborly-api/apperr"
	"github.com/neighborly/neighborly-api/mocks"
	"github.com/neighborly/neighborly-api/schema"
	"github.com/neighborly/neighborly-api/score"
	"github.com/neighborly/neighborly-api/store"
)

type ScorerTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	store  *mocks.MockModerationCore
	scorer *Scorer
	now    time.Time
}

func (s *ScorerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockModerationCore(s.ctrl)
	s.now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s.scorer = New(s.store)
	s.scorer.Now = func() time.Time { return s.now }
}

func (s *ScorerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ScorerTestSuite) validReport() ReportInput {
	return ReportInput{
		ReportedUserEmail: "bad@example.com",
		ReportType:        "harassment",
		Severity:          "High",
		Description:       "rude messages",
	}
}

func (s *ScorerTestSuite) TestRecordReport() {
	decision := &score.BlockDecision{Score: 4}
	s.store.EXPECT().CreateReport(gomock.Any(), s.now).DoAndReturn(
		func(r *schema.Report, now time.Time) (*score.BlockDecision, error) {
			s.Equal("reporter@example.com", r.ReporterEmail)
			s.Equal("bad@example.com", r.ReportedUserEmail)
			s.Equal(schema.SeverityHigh, r.Severity)
			return decision, nil
		})

	report, d, err := s.scorer.RecordReport("reporter@example.com", s.validReport())
	s.NoError(err)
	s.Equal(decision, d)
	s.Equal("harassment", report.ReportType)
}

func (s *ScorerTestSuite) TestRecordReportAutoBlock() {
	s.store.EXPECT().CreateReport(gomock.Any(), s.now).
		Return(&score.BlockDecision{Score: 8, Block: true, Reason: score.CriticalBlockReason}, nil)

	in := s.validReport()
	in.Severity = "Critical"
	_, d, err := s.scorer.RecordReport("reporter@example.com", in)
	s.NoError(err)
	s.True(d.Block)
}

func (s *ScorerTestSuite) TestRecordReportValidation() {
	cases := map[string]func(in *ReportInput){
		"reported_user_email": func(in *ReportInput) { in.ReportedUserEmail = "not-an-email" },
		"report_type":         func(in *ReportInput) { in.ReportType = " " },
		"severity":            func(in *ReportInput) { in.Severity = "Extreme" },
		"description":         func(in *ReportInput) { in.Description = "" },
		"image_evidence_urls": func(in *ReportInput) { in.ImageEvidenceURLs = []string{"1", "2", "3", "4", "5", "6"} },
	}

	for field, mutate := range cases {
		in := s.validReport()
		mutate(&in)
		_, _, err := s.scorer.RecordReport("reporter@example.com", in)
		s.Equal(apperr.Validation, apperr.KindOf(err), field)

		var v *apperr.ValidationError
		s.True(errors.As(err, &v))
		s.Contains(v.Fields, field)
	}
}

func (s *ScorerTestSuite) TestCannotReportSelf() {
	in := s.validReport()
	in.ReportedUserEmail = "Bad@Example.com"
	_, _, err := s.scorer.RecordReport("bad@example.com", in)
	s.Equal(apperr.Validation, apperr.KindOf(err))
}

func (s *ScorerTestSuite) TestRecordFeedback() {
	s.store.EXPECT().CreateFeedback(gomock.Any(), true, s.now).
		Return(&schema.UserRating{Email: "helper@example.com", RatingCount: 1, TotalRating: 5, AverageRating: 5}, nil)

	fb, err := s.scorer.RecordFeedback("me@example.com", FeedbackInput{
		TargetEmail:  "helper@example.com",
		FeedbackType: "help",
		Rating:       5,
		Description:  "great",
		Recommend:    true,
	})
	s.NoError(err)
	s.Equal("me@example.com", fb.ReviewerEmail)
}

func (s *ScorerTestSuite) TestServiceFeedbackSkipsAggregate() {
	s.store.EXPECT().CreateFeedback(gomock.Any(), false, s.now).Return(nil, nil)

	_, err := s.scorer.RecordFeedback("me@example.com", FeedbackInput{
		TargetEmail:  UnknownTarget,
		FeedbackType: "app",
		Rating:       3,
		Description:  "ok",
	})
	s.NoError(err)
}

func (s *ScorerTestSuite) TestFeedbackRatingRange() {
	for _, rating := range []int{0, 6, -1} {
		_, err := s.scorer.RecordFeedback("me@example.com", FeedbackInput{
			TargetEmail:  "helper@example.com",
			FeedbackType: "help",
			Rating:       rating,
			Description:  "x",
		})
		s.Equal(apperr.Validation, apperr.KindOf(err))
	}
}

func (s *ScorerTestSuite) TestRating() {
	email := "helper@example.com"
	s.store.EXPECT().GetUserRating(email).Return(&schema.UserRating{
		Email:         email,
		TotalRating:   14,
		RatingCount:   3,
		AverageRating: 14.0 / 3,
		Recommends:    2,
	}, nil)
	s.store.EXPECT().HasPendingReports(email).Return(false, nil)
	s.store.EXPECT().ListFeedbacks(email, 5).Return([]schema.Feedback{{Rating: 5}}, nil)

	summary, err := s.scorer.Rating(email)
	s.NoError(err)
	s.Equal(4.67, summary.AverageRating)
	s.Equal(3, summary.TotalFeedbacks)
	s.Equal(66.7, summary.RecommendationPercentage)
	s.Equal(score.Round1(score.TrustScore(14.0/3, 3, false)), summary.TrustScore)
	s.False(summary.HasPendingReports)
	s.Len(summary.RecentFeedbacks, 1)
}

func (s *ScorerTestSuite) TestRatingOfUnratedUser() {
	email := "new@example.com"
	s.store.EXPECT().GetUserRating(email).Return(&schema.UserRating{Email: email}, nil)
	s.store.EXPECT().HasPendingReports(email).Return(true, nil)
	s.store.EXPECT().ListFeedbacks(email, 5).Return([]schema.Feedback{}, nil)

	summary, err := s.scorer.Rating(email)
	s.NoError(err)
	s.Equal(0.0, summary.RecommendationPercentage)
	s.True(summary.HasPendingReports)
}

func (s *ScorerTestSuite) TestBlocked() {
	s.store.EXPECT().GetAccount("bad@example.com").Return(&schema.Account{Email: "bad@example.com", Blocked: true}, nil)

	blocked, err := s.scorer.Blocked("bad@example.com")
	s.NoError(err)
	s.True(blocked)
}

func (s *ScorerTestSuite) TestUpdateReportStatus() {
	id := "5f0c4e8e-7c11-4b6f-a9f0-2b7f3c3f0e11"
	s.store.EXPECT().UpdateReportStatus(id, schema.ReportResolved, s.now).Return(nil)

	s.NoError(s.scorer.UpdateReportStatus(id, schema.ReportResolved))
	s.Equal(apperr.Validation, apperr.KindOf(s.scorer.UpdateReportStatus(id, "closed")))
	s.Equal(apperr.Validation, apperr.KindOf(s.scorer.UpdateReportStatus("42", schema.ReportResolved)))
}

func (s *ScorerTestSuite) TestListReports() {
	filter := store.ReportFilter{Status: schema.ReportPending}
	s.store.EXPECT().ListReports(filter).Return([]schema.Report{}, nil)

	_, err := s.scorer.ListReports(filter)
	s.NoError(err)

	_, err = s.scorer.ListReports(store.ReportFilter{Status: "unknown"})
	s.Equal(apperr.Validation, apperr.KindOf(err))
}

func TestScorer(t *testing.T) {
	suite.Run(t, new(ScorerTestSuite))
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@example.com", "a-b@sub.example.org"}
	invalid := []string{"", "plain", "a@b", "a@b.toolongtld", "a b@example.com"}

	for _, e := range valid {
		if !ValidEmail(e) {
			t.Fatalf("expect %q to be valid", e)
		}
	}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Fatalf("expect %q to be invalid", e)
		}
	}
}
