package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/neighborly/neighborly-api/schema"
	"github.com/neighborly/neighborly-api/score"
)

// ModerationCore - reports, feedback and the moderation-wide account block
type ModerationCore interface {
	Ping() error

	// Account
	GetAccount(email string) (*schema.Account, error)

	// Report
	CreateReport(report *schema.Report, now time.Time) (*score.BlockDecision, error)
	ListReports(filter ReportFilter) ([]schema.Report, error)
	UpdateReportStatus(id, status string, now time.Time) error
	HasPendingReports(email string) (bool, error)
	ReportStats() (*ReportStats, error)

	// Feedback
	CreateFeedback(feedback *schema.Feedback, aggregate bool, now time.Time) (*schema.UserRating, error)
	GetUserRating(email string) (*schema.UserRating, error)
	ListFeedbacks(targetEmail string, limit int) ([]schema.Feedback, error)
}

// ReportFilter narrows a report listing
type ReportFilter struct {
	ReportType string
	Status     string
	Limit      int
}

type ReportStats struct {
	Total         int     `json:"total"`
	Pending       int     `json:"pending"`
	Investigating int     `json:"investigating"`
	Resolved      int     `json:"resolved"`
	AutoResolved  int     `json:"auto_resolved"`
	Feedbacks     int     `json:"feedbacks"`
	AverageRating float64 `json:"average_rating"`
	Recommends    int     `json:"recommends"`
}

// ModerationStore is an implementation of ModerationCore
type ModerationStore struct {
	ormDB *gorm.DB
}

func NewModerationStore(ormDB *gorm.DB) *ModerationStore {
	return &ModerationStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *ModerationStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// GetAccount returns an unblocked account for an email never moderated
func (s *ModerationStore) GetAccount(email string) (*schema.Account, error) {
	var account schema.Account
	if err := s.ormDB.Where("email = ?", email).First(&account).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &schema.Account{Email: email}, nil
		}
		return nil, err
	}
	return &account, nil
}

// CreateReport stores a pending report and evaluates the pending reports of its target.
// The target account row is locked for the whole transaction so concurrent reports
// against the same user are evaluated one after another.
func (s *ModerationStore) CreateReport(report *schema.Report, now time.Time) (*score.BlockDecision, error) {
	tx := s.ormDB.Begin()
	if err := tx.Error; err != nil {
		return nil, err
	}
	defer tx.RollbackUnlessCommitted()

	if err := tx.Exec(`INSERT INTO accounts (email, blocked, created_at, updated_at)
		VALUES (?, false, ?, ?) ON CONFLICT (email) DO NOTHING`,
		report.ReportedUserEmail, now, now).Error; err != nil {
		return nil, err
	}

	var account schema.Account
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("email = ?", report.ReportedUserEmail).
		First(&account).Error; err != nil {
		return nil, err
	}

	report.Status = schema.ReportPending
	report.CreatedAt = now
	report.UpdatedAt = now
	if err := tx.Create(report).Error; err != nil {
		return nil, err
	}

	var pending []schema.Report
	if err := tx.Where("reported_user_email = ? AND status = ?", report.ReportedUserEmail, schema.ReportPending).
		Find(&pending).Error; err != nil {
		return nil, err
	}

	decision := score.EvaluateReports(pending)
	if decision.Block {
		if err := tx.Model(schema.Account{}).
			Where("email = ?", report.ReportedUserEmail).
			Updates(map[string]interface{}{
				"blocked":      true,
				"blocked_at":   now,
				"block_reason": decision.Reason,
				"updated_at":   now,
			}).Error; err != nil {
			return nil, err
		}

		if err := tx.Model(schema.Report{}).
			Where("reported_user_email = ? AND status = ?", report.ReportedUserEmail, schema.ReportPending).
			Updates(map[string]interface{}{
				"status":      schema.ReportAutoResolved,
				"resolution":  decision.Resolution(),
				"resolved_at": now,
				"updated_at":  now,
			}).Error; err != nil {
			return nil, err
		}

		report.Status = schema.ReportAutoResolved
		report.Resolution = decision.Resolution()
		report.ResolvedAt = &now
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &decision, nil
}

// ListReports returns reports newest first
func (s *ModerationStore) ListReports(filter ReportFilter) ([]schema.Report, error) {
	limit := filter.Limit
	if limit <= 0 || limit > DefaultListLimit {
		limit = 50
	}

	query := s.ormDB.Order("created_at DESC").Limit(limit)
	if filter.ReportType != "" {
		query = query.Where("report_type = ?", filter.ReportType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	reports := make([]schema.Report, 0)
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// UpdateReportStatus is the manual moderation path
func (s *ModerationStore) UpdateReportStatus(id, status string, now time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": now,
	}
	if status == schema.ReportResolved {
		updates["resolved_at"] = now
	}

	result := s.ormDB.Model(schema.Report{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

func (s *ModerationStore) HasPendingReports(email string) (bool, error) {
	var count int
	if err := s.ormDB.Model(schema.Report{}).
		Where("reported_user_email = ? AND status = ?", email, schema.ReportPending).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *ModerationStore) ReportStats() (*ReportStats, error) {
	type statusCount struct {
		Status string
		Count  int
	}

	var counts []statusCount
	if err := s.ormDB.Model(schema.Report{}).
		Select("status, count(*) AS count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	stats := ReportStats{}
	for _, c := range counts {
		stats.Total += c.Count
		switch c.Status {
		case schema.ReportPending:
			stats.Pending = c.Count
		case schema.ReportInvestigating:
			stats.Investigating = c.Count
		case schema.ReportResolved:
			stats.Resolved = c.Count
		case schema.ReportAutoResolved:
			stats.AutoResolved = c.Count
		}
	}

	var feedback struct {
		Total      int
		Average    float64
		Recommends int
	}
	if err := s.ormDB.Model(schema.Feedback{}).
		Select("count(*) AS total, COALESCE(avg(rating), 0) AS average, count(*) FILTER (WHERE recommend) AS recommends").
		Scan(&feedback).Error; err != nil {
		return nil, err
	}

	stats.Feedbacks = feedback.Total
	stats.AverageRating = score.Round2(feedback.Average)
	stats.Recommends = feedback.Recommends

	return &stats, nil
}

// CreateFeedback stores a feedback and, when aggregate is set, folds its rating into the
// target's running aggregate with a single upsert.
func (s *ModerationStore) CreateFeedback(feedback *schema.Feedback, aggregate bool, now time.Time) (*schema.UserRating, error) {
	tx := s.ormDB.Begin()
	if err := tx.Error; err != nil {
		return nil, err
	}
	defer tx.RollbackUnlessCommitted()

	feedback.CreatedAt = now
	if err := tx.Create(feedback).Error; err != nil {
		return nil, err
	}

	var rating schema.UserRating
	if aggregate {
		recommend := 0
		if feedback.Recommend {
			recommend = 1
		}

		if err := tx.Exec(`INSERT INTO user_ratings (email, total_rating, rating_count, average_rating, recommends, updated_at)
			VALUES (?, ?, 1, ?, ?, ?)
			ON CONFLICT (email) DO UPDATE SET
				total_rating = user_ratings.total_rating + EXCLUDED.total_rating,
				rating_count = user_ratings.rating_count + 1,
				average_rating = (user_ratings.total_rating + EXCLUDED.total_rating)::float8 / (user_ratings.rating_count + 1),
				recommends = user_ratings.recommends + EXCLUDED.recommends,
				updated_at = EXCLUDED.updated_at`,
			feedback.TargetEmail, feedback.Rating, float64(feedback.Rating), recommend, now).Error; err != nil {
			return nil, err
		}

		if err := tx.Where("email = ?", feedback.TargetEmail).First(&rating).Error; err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if !aggregate {
		return nil, nil
	}
	return &rating, nil
}

// GetUserRating returns an empty aggregate for a user never rated
func (s *ModerationStore) GetUserRating(email string) (*schema.UserRating, error) {
	var rating schema.UserRating
	if err := s.ormDB.Where("email = ?", email).First(&rating).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &schema.UserRating{Email: email}, nil
		}
		return nil, err
	}
	return &rating, nil
}

// ListFeedbacks returns feedback newest first, for one target when targetEmail is set
func (s *ModerationStore) ListFeedbacks(targetEmail string, limit int) ([]schema.Feedback, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = 50
	}

	query := s.ormDB.Order("created_at DESC").Limit(limit)
	if targetEmail != "" {
		query = query.Where("target_email = ?", targetEmail)
	}

	feedbacks := make([]schema.Feedback, 0)
	if err := query.Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}
