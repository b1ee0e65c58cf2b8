package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
)

// Severity of a user report
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

const (
	ReportPending       = "pending"
	ReportInvestigating = "investigating"
	ReportResolved      = "resolved"
	ReportAutoResolved  = "auto-resolved"
)

// ValidReportStatus tells whether a moderator may set a report to this status
func ValidReportStatus(s string) bool {
	switch s {
	case ReportPending, ReportInvestigating, ReportResolved, ReportAutoResolved:
		return true
	}
	return false
}

// Account is the moderation state of a user, independent of any community
type Account struct {
	Email       string     `json:"email" gorm:"primary_key"`
	Blocked     bool       `json:"blocked" gorm:"not null;default:false"`
	BlockedAt   *time.Time `json:"blocked_at"`
	BlockReason string     `json:"block_reason"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Report struct {
	ID                uuid.UUID      `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ReporterEmail     string         `json:"reporter_email" gorm:"index"`
	ReportedUserEmail string         `json:"reported_user_email" gorm:"index"`
	ReportedContentID string         `json:"reported_content_id,omitempty"`
	ReportType        string         `json:"report_type" gorm:"index"`
	Severity          Severity       `json:"severity"`
	Description       string         `json:"description"`
	TextEvidence      string         `json:"text_evidence,omitempty"`
	EvidenceURLs      pq.StringArray `json:"image_evidence_urls" gorm:"type:text[]"`
	IsAnonymous       bool           `json:"is_anonymous"`
	Status            string         `json:"status" gorm:"index" sql:"default:'pending'"`
	Resolution        string         `json:"resolution,omitempty"`
	ResolvedAt        *time.Time     `json:"resolved_at,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type Feedback struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ReviewerEmail string    `json:"reviewer_email"`
	TargetEmail   string    `json:"target_email" gorm:"index"`
	HelpRequestID string    `json:"help_request_id,omitempty"`
	FeedbackType  string    `json:"feedback_type"`
	Rating        int       `json:"rating"`
	Description   string    `json:"description"`
	Suggestion    string    `json:"improvement_suggestion,omitempty"`
	Recommend     bool      `json:"would_recommend"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserRating is the running rating aggregate of a user
type UserRating struct {
	Email         string    `json:"email" gorm:"primary_key"`
	TotalRating   int       `json:"total_rating" gorm:"not null;default:0"`
	RatingCount   int       `json:"rating_count" gorm:"not null;default:0"`
	AverageRating float64   `json:"average_rating" gorm:"not null;default:0"`
	Recommends    int       `json:"recommends" gorm:"not null;default:0"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MigrateORM creates or updates the moderation tables
func MigrateORM(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Account{},
		&Report{},
		&Feedback{},
		&UserRating{},
	).Error; err != nil {
		return err
	}

	return db.Model(Report{}).
		AddIndex("report_target_status", "reported_user_email", "status").Error
}
