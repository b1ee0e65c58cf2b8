package moderation

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/neighborly/neighborly-api/apperr"
	"github.com/neighborly/neighborly-api/schema"
	"github.com/neighborly/neighborly-api/score"
	"github.com/neighborly/neighborly-api/store"
)

const (
	logPrefix = "moderation"

	// UnknownTarget marks feedback about the service rather than a person
	UnknownTarget = "unknown@example.com"

	MaxEvidenceImages = 5
	recentFeedbacks   = 5
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

// ValidEmail reports whether s looks like an email address
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Scorer records reports and feedback and decides automatic blocks
type Scorer struct {
	store store.ModerationCore

	Now func() time.Time
}

func New(s store.ModerationCore) *Scorer {
	return &Scorer{store: s, Now: time.Now}
}

// ReportInput is a report against a user
type ReportInput struct {
	ReportedUserEmail string   `json:"reported_user_email"`
	ReportedContentID string   `json:"reported_content_id"`
	ReportType        string   `json:"report_type"`
	Severity          string   `json:"severity"`
	Description       string   `json:"description"`
	TextEvidence      string   `json:"text_evidence"`
	ImageEvidenceURLs []string `json:"image_evidence_urls"`
	IsAnonymous       bool     `json:"is_anonymous"`
}

func (in ReportInput) validate(reporterEmail string) error {
	fields := apperr.Fields{}

	target := strings.TrimSpace(in.ReportedUserEmail)
	if target == "" {
		fields.Add("reported_user_email", "required")
	} else if !ValidEmail(target) {
		fields.Add("reported_user_email", "invalid email format")
	} else if strings.EqualFold(target, reporterEmail) {
		fields.Add("reported_user_email", "cannot report yourself")
	}

	if strings.TrimSpace(in.ReportType) == "" {
		fields.Add("report_type", "required")
	}
	if in.Severity == "" {
		fields.Add("severity", "required")
	} else if !schema.Severity(in.Severity).Valid() {
		fields.Add("severity", "must be one of Low, Medium, High, Critical")
	}
	if strings.TrimSpace(in.Description) == "" {
		fields.Add("description", "required")
	}
	if len(in.ImageEvidenceURLs) > MaxEvidenceImages {
		fields.Add("image_evidence_urls", "maximum 5 images allowed")
	}

	return fields.Err()
}

// RecordReport stores a pending report and blocks its target when the pending
// reports against them cross a threshold
func (s *Scorer) RecordReport(reporterEmail string, in ReportInput) (*schema.Report, *score.BlockDecision, error) {
	if err := in.validate(reporterEmail); err != nil {
		return nil, nil, err
	}

	report := &schema.Report{
		ID:                uuid.New(),
		ReporterEmail:     reporterEmail,
		ReportedUserEmail: strings.TrimSpace(in.ReportedUserEmail),
		ReportedContentID: in.ReportedContentID,
		ReportType:        strings.TrimSpace(in.ReportType),
		Severity:          schema.Severity(in.Severity),
		Description:       strings.TrimSpace(in.Description),
		TextEvidence:      in.TextEvidence,
		EvidenceURLs:      in.ImageEvidenceURLs,
		IsAnonymous:       in.IsAnonymous,
	}

	decision, err := s.store.CreateReport(report, s.Now())
	if err != nil {
		return nil, nil, err
	}

	if decision.Block {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"user":   report.ReportedUserEmail,
			"score":  decision.Score,
			"reason": decision.Reason,
		}).Warn("user auto-blocked")
	}

	return report, decision, nil
}

// FeedbackInput is a rating of a helper or of the service
type FeedbackInput struct {
	TargetEmail   string `json:"target_user_email"`
	HelpRequestID string `json:"help_request_id"`
	FeedbackType  string `json:"feedback_type"`
	Rating        int    `json:"rating"`
	Description   string `json:"description"`
	Suggestion    string `json:"improvement_suggestion"`
	Recommend     bool   `json:"would_recommend"`
}

func (in FeedbackInput) validate() error {
	fields := apperr.Fields{}

	target := strings.TrimSpace(in.TargetEmail)
	if target == "" {
		fields.Add("target_user_email", "required")
	} else if target != UnknownTarget && !ValidEmail(target) {
		fields.Add("target_user_email", "invalid email format")
	}
	if strings.TrimSpace(in.FeedbackType) == "" {
		fields.Add("feedback_type", "required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		fields.Add("rating", "must be between 1 and 5")
	}
	if strings.TrimSpace(in.Description) == "" {
		fields.Add("description", "required")
	}

	return fields.Err()
}

// RecordFeedback stores feedback and folds its rating into the target's aggregate.
// Feedback about UnknownTarget is stored without an aggregate.
func (s *Scorer) RecordFeedback(reviewerEmail string, in FeedbackInput) (*schema.Feedback, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	feedback := &schema.Feedback{
		ID:            uuid.New(),
		ReviewerEmail: reviewerEmail,
		TargetEmail:   strings.TrimSpace(in.TargetEmail),
		HelpRequestID: in.HelpRequestID,
		FeedbackType:  strings.TrimSpace(in.FeedbackType),
		Rating:        in.Rating,
		Description:   strings.TrimSpace(in.Description),
		Suggestion:    in.Suggestion,
		Recommend:     in.Recommend,
	}

	if _, err := s.store.CreateFeedback(feedback, feedback.TargetEmail != UnknownTarget, s.Now()); err != nil {
		return nil, err
	}
	return feedback, nil
}

// RatingSummary is the public reputation of a user
type RatingSummary struct {
	Email                    string            `json:"user_email"`
	AverageRating            float64           `json:"average_rating"`
	TotalFeedbacks           int               `json:"total_feedbacks"`
	RecommendationPercentage float64           `json:"recommendation_percentage"`
	TrustScore               float64           `json:"trust_score"`
	HasPendingReports        bool              `json:"has_pending_reports"`
	RecentFeedbacks          []schema.Feedback `json:"recent_feedbacks"`
}

// Rating summarizes the aggregate, pending reports and latest feedback of a user
func (s *Scorer) Rating(email string) (*RatingSummary, error) {
	if !ValidEmail(email) {
		return nil, apperr.Invalid("email", "invalid email format")
	}

	rating, err := s.store.GetUserRating(email)
	if err != nil {
		return nil, err
	}

	pending, err := s.store.HasPendingReports(email)
	if err != nil {
		return nil, err
	}

	recent, err := s.store.ListFeedbacks(email, recentFeedbacks)
	if err != nil {
		return nil, err
	}

	recommendation := 0.0
	if rating.RatingCount > 0 {
		recommendation = float64(rating.Recommends) / float64(rating.RatingCount) * 100
	}

	return &RatingSummary{
		Email:                    email,
		AverageRating:            score.Round2(rating.AverageRating),
		TotalFeedbacks:           rating.RatingCount,
		RecommendationPercentage: score.Round1(recommendation),
		TrustScore:               score.Round1(score.TrustScore(rating.AverageRating, rating.RatingCount, pending)),
		HasPendingReports:        pending,
		RecentFeedbacks:          recent,
	}, nil
}

// Blocked tells whether the moderation-wide block is set on a user
func (s *Scorer) Blocked(email string) (bool, error) {
	account, err := s.store.GetAccount(email)
	if err != nil {
		return false, err
	}
	return account.Blocked, nil
}

func (s *Scorer) ListReports(filter store.ReportFilter) ([]schema.Report, error) {
	if filter.Status != "" && !schema.ValidReportStatus(filter.Status) {
		return nil, apperr.Invalid("status", "unknown report status")
	}
	return s.store.ListReports(filter)
}

// UpdateReportStatus is the manual moderation path of a report
func (s *Scorer) UpdateReportStatus(id, status string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Invalid("id", "invalid report id")
	}
	if !schema.ValidReportStatus(status) {
		return apperr.Invalid("status", "unknown report status")
	}
	return s.store.UpdateReportStatus(id, status, s.Now())
}

func (s *Scorer) Stats() (*store.ReportStats, error) {
	return s.store.ReportStats()
}
