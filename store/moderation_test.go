package store

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/stretchr/testify/suite"

	"github.com/neighborly/neighborly-api/schema"
	"github.com/neighborly/neighborly-api/score"
)

const testORMConnEnv = "NEIGHBORLY_TEST_ORM_CONN"

type ModerationTestSuite struct {
	suite.Suite
	ormDB *gorm.DB
	store *ModerationStore
	now   time.Time
}

func (s *ModerationTestSuite) SetupSuite() {
	db, err := gorm.Open("postgres", os.Getenv(testORMConnEnv))
	if err != nil {
		s.T().Fatalf("open orm connection with error: %s", err)
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		s.T().Fatalf("create uuid extension with error: %s", err)
	}
	s.ormDB = db
	s.store = NewModerationStore(db)
}

func (s *ModerationTestSuite) SetupTest() {
	s.now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.NoError(s.ormDB.DropTableIfExists(&schema.Report{}, &schema.Feedback{}, &schema.UserRating{}, &schema.Account{}).Error)
	s.NoError(schema.MigrateORM(s.ormDB))
}

func (s *ModerationTestSuite) TearDownSuite() {
	if s.ormDB != nil {
		s.ormDB.Close()
	}
}

func (s *ModerationTestSuite) report(target string, severity schema.Severity) *score.BlockDecision {
	d, err := s.store.CreateReport(&schema.Report{
		ID:                uuid.New(),
		ReporterEmail:     "reporter@example.com",
		ReportedUserEmail: target,
		ReportType:        "harassment",
		Severity:          severity,
		Description:       "rude",
	}, s.now)
	s.NoError(err)
	return d
}

func (s *ModerationTestSuite) TestCriticalReportBlocks() {
	d := s.report("x@example.com", schema.SeverityCritical)
	s.True(d.Block)
	s.Equal(score.CriticalBlockReason, d.Reason)

	account, err := s.store.GetAccount("x@example.com")
	s.NoError(err)
	s.True(account.Blocked)
	s.Equal(score.CriticalBlockReason, account.BlockReason)

	reports, err := s.store.ListReports(ReportFilter{Status: schema.ReportAutoResolved})
	s.NoError(err)
	s.Len(reports, 1)
	s.Equal(d.Resolution(), reports[0].Resolution)

	pending, err := s.store.HasPendingReports("x@example.com")
	s.NoError(err)
	s.False(pending)
}

func (s *ModerationTestSuite) TestReportsAccumulate() {
	for i := 0; i < 4; i++ {
		s.False(s.report("y@example.com", schema.SeverityMedium).Block)
	}
	d := s.report("y@example.com", schema.SeverityMedium)
	s.True(d.Block)
	s.Equal(10, d.Score)
	s.Equal(score.ReportBlockReason, d.Reason)

	stats, err := s.store.ReportStats()
	s.NoError(err)
	s.Equal(5, stats.Total)
	s.Equal(5, stats.AutoResolved)
}

func (s *ModerationTestSuite) TestLowReportsStayPending() {
	for i := 0; i < 9; i++ {
		s.False(s.report("z@example.com", schema.SeverityLow).Block)
	}

	account, err := s.store.GetAccount("z@example.com")
	s.NoError(err)
	s.False(account.Blocked)

	pending, err := s.store.HasPendingReports("z@example.com")
	s.NoError(err)
	s.True(pending)
}

func (s *ModerationTestSuite) TestUnknownAccountIsNotBlocked() {
	account, err := s.store.GetAccount("nobody@example.com")
	s.NoError(err)
	s.False(account.Blocked)
}

func (s *ModerationTestSuite) TestUpdateReportStatus() {
	s.report("x@example.com", schema.SeverityLow)
	reports, err := s.store.ListReports(ReportFilter{})
	s.NoError(err)
	s.Len(reports, 1)

	s.NoError(s.store.UpdateReportStatus(reports[0].ID.String(), schema.ReportResolved, s.now))
	s.Equal(ErrReportNotFound, s.store.UpdateReportStatus(uuid.New().String(), schema.ReportResolved, s.now))
}

func (s *ModerationTestSuite) TestFeedbackAggregate() {
	for _, rating := range []int{5, 4} {
		_, err := s.store.CreateFeedback(&schema.Feedback{
			ID:            uuid.New(),
			ReviewerEmail: "r@example.com",
			TargetEmail:   "helper@example.com",
			FeedbackType:  "help",
			Rating:        rating,
			Recommend:     rating == 5,
		}, true, s.now)
		s.NoError(err)
	}

	rating, err := s.store.GetUserRating("helper@example.com")
	s.NoError(err)
	s.Equal(9, rating.TotalRating)
	s.Equal(2, rating.RatingCount)
	s.InDelta(4.5, rating.AverageRating, 0.0001)
	s.Equal(1, rating.Recommends)

	r, err := s.store.CreateFeedback(&schema.Feedback{
		ID:            uuid.New(),
		ReviewerEmail: "r@example.com",
		TargetEmail:   "unknown@example.com",
		FeedbackType:  "general",
		Rating:        3,
	}, false, s.now)
	s.NoError(err)
	s.Nil(r)

	feedbacks, err := s.store.ListFeedbacks("", 0)
	s.NoError(err)
	s.Len(feedbacks, 3)

	empty, err := s.store.GetUserRating("unknown@example.com")
	s.NoError(err)
	s.Equal(0, empty.RatingCount)
}

func TestModerationStore(t *testing.T) {
	if os.Getenv(testORMConnEnv) == "" {
		t.Skipf("%s is not set", testORMConnEnv)
	}
	suite.Run(t, new(ModerationTestSuite))
}
